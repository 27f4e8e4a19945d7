package recon

import (
	"context"
	"fmt"
	"strings"

	"recon-manager/core/storage"
	"recon-manager/core/table"
	"recon-manager/feature/recon/models"

	"github.com/minio/minio-go/v7"
)

// extractExtension filters which bucket objects count as login extracts.
const extractExtension = ".csv"

// LoadStorageObject fetches a CSV extract object from the bucket and parses
// it into a core table.
func LoadStorageObject(ctx context.Context, client storage.Client, bucket, objectName string) (*table.Table, error) {
	obj, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch object %s: %w", objectName, err)
	}
	defer obj.Close()

	t, err := table.ReadCSV(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to parse object %s: %w", objectName, err)
	}
	return t, nil
}

// ListExtracts lists the CSV extract objects available in the bucket.
func ListExtracts(ctx context.Context, client storage.Client, bucket string) ([]models.ExtractInfo, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	var out []models.ExtractInfo
	for info := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", bucket, info.Err)
		}
		if !strings.HasSuffix(info.Key, extractExtension) {
			continue
		}
		out = append(out, models.ExtractInfo{
			Name:         info.Key,
			Size:         info.Size,
			LastModified: info.LastModified,
		})
	}
	return out, nil
}
