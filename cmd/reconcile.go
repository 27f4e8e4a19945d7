package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"recon-manager/core/config"
	"recon-manager/core/database"
	"recon-manager/core/logger"
	"recon-manager/core/reconcile"
	"recon-manager/core/storage"
	"recon-manager/core/table"
	"recon-manager/feature/recon"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Source selection flags
	sampleData  bool
	leftCSV     string
	rightCSV    string
	fromStorage bool
	leftObject  string
	rightObject string
	leftTable   string
	rightTable  string

	// Key column overrides
	leftIDColumn     string
	leftLoginColumn  string
	rightIDColumn    string
	rightLoginColumn string

	// Output flags
	outDir       string
	exportPrefix string
	showRows     int
)

// reconcileCmd runs one reconciliation from CSV files, database tables,
// storage extracts, or the built-in sample dataset.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile the dev and UAT login extracts",
	Long: `Reconcile two login extracts by composite (id, login) key and report
matched logins, dev-only records, and UAT-only records.

Sources, in order of precedence:
  --sample                      built-in demo dataset
  --left-csv / --right-csv      local CSV files
  --storage                     CSV objects from the configured bucket
  (default)                     the configured database extract tables

Examples:
  # Demo run with the built-in sample extracts
  recon-manager reconcile --sample

  # Local CSV files with custom key columns
  recon-manager reconcile --left-csv dev.csv --right-csv uat.csv --left-id staff_no

  # Bucket extracts, writing the three partitions to ./out
  recon-manager reconcile --storage --left-object dev_logins.csv --right-object uat_logins.csv --out ./out`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().BoolVar(&sampleData, "sample", false, "Use the built-in sample extracts")
	reconcileCmd.Flags().StringVar(&leftCSV, "left-csv", "", "Path to the left (dev) CSV extract")
	reconcileCmd.Flags().StringVar(&rightCSV, "right-csv", "", "Path to the right (UAT) CSV extract")
	reconcileCmd.Flags().BoolVar(&fromStorage, "storage", false, "Load extracts from the configured bucket")
	reconcileCmd.Flags().StringVar(&leftObject, "left-object", "dev_logins.csv", "Left extract object name (with --storage)")
	reconcileCmd.Flags().StringVar(&rightObject, "right-object", "uat_logins.csv", "Right extract object name (with --storage)")
	reconcileCmd.Flags().StringVar(&leftTable, "left-table", "", "Left extract database table (default from config)")
	reconcileCmd.Flags().StringVar(&rightTable, "right-table", "", "Right extract database table (default from config)")

	reconcileCmd.Flags().StringVar(&leftIDColumn, "left-id", "", "Left id column (default from config)")
	reconcileCmd.Flags().StringVar(&leftLoginColumn, "left-login", "", "Left login column (default from config)")
	reconcileCmd.Flags().StringVar(&rightIDColumn, "right-id", "", "Right id column (default from config)")
	reconcileCmd.Flags().StringVar(&rightLoginColumn, "right-login", "", "Right login column (default from config)")

	reconcileCmd.Flags().StringVar(&outDir, "out", "", "Directory to write matched/unmatched CSV files into")
	reconcileCmd.Flags().StringVar(&exportPrefix, "export-prefix", "", "Upload results to the bucket under this prefix")
	reconcileCmd.Flags().IntVar(&showRows, "show", 5, "Sample rows to print per partition")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	left, right, err := loadInputs(ctx, l, cfg)
	if err != nil {
		return err
	}

	keys := resolveKeys(cfg.Recon)
	result, err := reconcile.Reconcile(left, right, keys)
	if err != nil {
		// A missing key column is an input problem, not a crash: name it
		// clearly and stop.
		var missing *reconcile.MissingColumnError
		if errors.As(err, &missing) {
			l.Error("Input error: key column not found",
				zap.String("column", missing.Column),
				zap.String("table", string(missing.Side)),
			)
			return fmt.Errorf("fix the %s extract or the column flags: %w", missing.Side, err)
		}
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	printReport(l, left, right, result)

	if outDir != "" {
		if err := writeResultFiles(outDir, result); err != nil {
			return fmt.Errorf("failed to write result files: %w", err)
		}
		l.Info("Result files written", zap.String("dir", outDir))
	}

	if exportPrefix != "" {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		if err := exportResults(ctx, client, cfg.Storage.Bucket, exportPrefix, result); err != nil {
			return fmt.Errorf("failed to export results: %w", err)
		}
		l.Info("Results exported",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("prefix", exportPrefix),
		)
	}

	return nil
}

// loadInputs resolves the two input tables from the selected source.
func loadInputs(ctx context.Context, l *zap.Logger, cfg *config.Config) (*table.Table, *table.Table, error) {
	switch {
	case sampleData:
		l.Info("Using built-in sample extracts")
		left, right := recon.SampleTables()
		return left, right, nil

	case leftCSV != "" || rightCSV != "":
		if leftCSV == "" || rightCSV == "" {
			return nil, nil, fmt.Errorf("both --left-csv and --right-csv are required")
		}
		left, err := readCSVFile(leftCSV)
		if err != nil {
			return nil, nil, err
		}
		right, err := readCSVFile(rightCSV)
		if err != nil {
			return nil, nil, err
		}
		l.Info("Loaded CSV extracts",
			zap.String("left", leftCSV), zap.Int("left_rows", left.NumRows()),
			zap.String("right", rightCSV), zap.Int("right_rows", right.NumRows()),
		)
		return left, right, nil

	case fromStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		left, err := recon.LoadStorageObject(ctx, client, cfg.Storage.Bucket, leftObject)
		if err != nil {
			return nil, nil, err
		}
		right, err := recon.LoadStorageObject(ctx, client, cfg.Storage.Bucket, rightObject)
		if err != nil {
			return nil, nil, err
		}
		l.Info("Loaded bucket extracts",
			zap.String("left", leftObject), zap.String("right", rightObject),
		)
		return left, right, nil

	default:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		lt := leftTable
		if lt == "" {
			lt = cfg.Recon.LeftTable
		}
		rt := rightTable
		if rt == "" {
			rt = cfg.Recon.RightTable
		}
		left, err := recon.LoadDBTable(ctx, db, lt)
		if err != nil {
			return nil, nil, err
		}
		right, err := recon.LoadDBTable(ctx, db, rt)
		if err != nil {
			return nil, nil, err
		}
		l.Info("Loaded database extracts",
			zap.String("left", lt), zap.String("right", rt),
		)
		return left, right, nil
	}
}

// resolveKeys applies flag overrides over the configured defaults.
func resolveKeys(defaults reconcile.Config) reconcile.Keys {
	keys := defaults.Keys()
	if leftIDColumn != "" {
		keys.LeftID = leftIDColumn
	}
	if leftLoginColumn != "" {
		keys.LeftLogin = leftLoginColumn
	}
	if rightIDColumn != "" {
		keys.RightID = rightIDColumn
	}
	if rightLoginColumn != "" {
		keys.RightLogin = rightLoginColumn
	}
	return keys
}

// readCSVFile parses one local CSV extract.
func readCSVFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	t, err := table.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return t, nil
}

// printReport logs the summary and a sample of each partition.
func printReport(l *zap.Logger, left, right *table.Table, result *reconcile.Result) {
	s := reconcile.Summarize(left, right, result)

	l.Info("Reconciliation report",
		zap.Int("left_rows", s.LeftRows),
		zap.Int("right_rows", s.RightRows),
		zap.Int("matched", s.Matched),
		zap.Int("unmatched_left", s.UnmatchedLeft),
		zap.Int("unmatched_right", s.UnmatchedRight),
	)

	printPartition(l, "matched", result.Matched)
	printPartition(l, "unmatched_left", result.UnmatchedLeft)
	printPartition(l, "unmatched_right", result.UnmatchedRight)
}

// printPartition logs up to --show rows of one partition.
func printPartition(l *zap.Logger, name string, t *table.Table) {
	maxShow := showRows
	if t.NumRows() < maxShow {
		maxShow = t.NumRows()
	}
	for i := 0; i < maxShow; i++ {
		cells := make([]string, t.NumColumns())
		for c, v := range t.Row(i) {
			cells[c] = v.String()
		}
		l.Info("Sample row",
			zap.String("partition", name),
			zap.String("row", strings.Join(cells, ", ")),
		)
	}
	if t.NumRows() > maxShow {
		l.Info("Additional rows not shown",
			zap.String("partition", name),
			zap.Int("count", t.NumRows()-maxShow),
		)
	}
}

// resultFiles maps output file names to partitions.
func resultFiles(result *reconcile.Result) map[string]*table.Table {
	return map[string]*table.Table{
		"matched.csv":         result.Matched,
		"unmatched_left.csv":  result.UnmatchedLeft,
		"unmatched_right.csv": result.UnmatchedRight,
	}
}

// writeResultFiles writes the three partitions as CSV files into dir.
func writeResultFiles(dir string, result *reconcile.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, t := range resultFiles(result) {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		if err := table.WriteCSV(f, t); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

// exportResults uploads the three partitions as CSV objects under prefix.
func exportResults(ctx context.Context, client storage.Client, bucket, prefix string, result *reconcile.Result) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
	}

	for name, t := range resultFiles(result) {
		var buf bytes.Buffer
		if err := table.WriteCSV(&buf, t); err != nil {
			return err
		}
		objectName := strings.TrimSuffix(prefix, "/") + "/" + name
		if _, err := client.PutObject(ctx, bucket, objectName, &buf, int64(buf.Len()), minio.PutObjectOptions{ContentType: "text/csv"}); err != nil {
			return fmt.Errorf("failed to upload %s: %w", objectName, err)
		}
	}
	return nil
}
