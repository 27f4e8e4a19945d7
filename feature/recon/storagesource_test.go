package recon

import (
	"context"
	"io"
	"strings"
	"testing"

	"recon-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func objectStream(infos ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(infos))
	for _, info := range infos {
		ch <- info
	}
	close(ch)
	return ch
}

func TestLoadStorageObject(t *testing.T) {
	client := new(mocks.Client)
	body := io.NopCloser(strings.NewReader("id,uatloginname,idtype\n5,tom,type3\n"))
	client.On("GetObject", mock.Anything, "recon", "uat_logins.csv", mock.Anything).Return(body, nil)

	tbl, err := LoadStorageObject(context.Background(), client, "recon", "uat_logins.csv")
	assert.NoError(t, err)
	assert.Equal(t, []string{"id", "uatloginname", "idtype"}, tbl.Columns())
	assert.Equal(t, 1, tbl.NumRows())

	v, ok := tbl.Cell(0, "uatloginname")
	assert.True(t, ok)
	assert.Equal(t, "tom", v.AsString())

	client.AssertExpectations(t)
}

func TestLoadStorageObject_FetchError(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "recon", "missing.csv", mock.Anything).
		Return(nil, assert.AnError)

	tbl, err := LoadStorageObject(context.Background(), client, "recon", "missing.csv")
	assert.Nil(t, tbl)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing.csv")
}

func TestListExtracts(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "recon").Return(true, nil)
	client.On("ListObjects", mock.Anything, "recon", mock.Anything).Return(objectStream(
		minio.ObjectInfo{Key: "dev_logins.csv", Size: 120},
		minio.ObjectInfo{Key: "readme.txt", Size: 10},
		minio.ObjectInfo{Key: "uat_logins.csv", Size: 140},
	))

	extracts, err := ListExtracts(context.Background(), client, "recon")
	assert.NoError(t, err)
	assert.Len(t, extracts, 2)
	assert.Equal(t, "dev_logins.csv", extracts[0].Name)
	assert.Equal(t, "uat_logins.csv", extracts[1].Name)
}

func TestListExtracts_MissingBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "recon").Return(false, nil)

	extracts, err := ListExtracts(context.Background(), client, "recon")
	assert.Nil(t, extracts)
	assert.Error(t, err)
}
