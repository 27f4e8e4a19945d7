package recon

import (
	"context"
	"fmt"

	"recon-manager/core/reconcile"
	"recon-manager/core/storage"
	"recon-manager/core/table"
	"recon-manager/feature/recon/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs reconciliations against the configured data sources.
type Service struct {
	client   storage.Client
	bucket   string
	logger   *zap.Logger
	db       *gorm.DB
	defaults reconcile.Config
}

// NewService creates a new recon service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, defaults reconcile.Config) *Service {
	return &Service{
		client:   client,
		bucket:   bucket,
		logger:   logger,
		db:       db,
		defaults: defaults,
	}
}

// keys merges request overrides over the configured defaults.
func (s *Service) keys(overrides models.KeyColumns) reconcile.Keys {
	keys := s.defaults.Keys()
	if overrides.LeftID != "" {
		keys.LeftID = overrides.LeftID
	}
	if overrides.LeftLogin != "" {
		keys.LeftLogin = overrides.LeftLogin
	}
	if overrides.RightID != "" {
		keys.RightID = overrides.RightID
	}
	if overrides.RightLogin != "" {
		keys.RightLogin = overrides.RightLogin
	}
	return keys
}

// Run reconciles two inline table payloads.
func (s *Service) Run(ctx context.Context, req *models.ReconcileRequest) (*models.ReconcileReport, error) {
	left, err := req.Left.ToTable()
	if err != nil {
		return nil, fmt.Errorf("invalid left table: %w", err)
	}
	right, err := req.Right.ToTable()
	if err != nil {
		return nil, fmt.Errorf("invalid right table: %w", err)
	}
	return s.reconcile(left, right, s.keys(req.Keys))
}

// RunFromTables reconciles two database tables by name. Empty names fall
// back to the configured extract tables.
func (s *Service) RunFromTables(ctx context.Context, req *models.TablesRequest) (*models.ReconcileReport, error) {
	leftTable := req.LeftTable
	if leftTable == "" {
		leftTable = s.defaults.LeftTable
	}
	rightTable := req.RightTable
	if rightTable == "" {
		rightTable = s.defaults.RightTable
	}

	left, err := LoadDBTable(ctx, s.db, leftTable)
	if err != nil {
		return nil, err
	}
	right, err := LoadDBTable(ctx, s.db, rightTable)
	if err != nil {
		return nil, err
	}
	return s.reconcile(left, right, s.keys(req.Keys))
}

// RunFromExtracts reconciles two CSV extract objects from the bucket.
func (s *Service) RunFromExtracts(ctx context.Context, req *models.ExtractsRequest) (*models.ReconcileReport, error) {
	if req.LeftObject == "" || req.RightObject == "" {
		return nil, fmt.Errorf("left_object and right_object are required")
	}

	left, err := LoadStorageObject(ctx, s.client, s.bucket, req.LeftObject)
	if err != nil {
		return nil, err
	}
	right, err := LoadStorageObject(ctx, s.client, s.bucket, req.RightObject)
	if err != nil {
		return nil, err
	}
	return s.reconcile(left, right, s.keys(req.Keys))
}

// ListExtracts lists the CSV extracts available in the bucket.
func (s *Service) ListExtracts(ctx context.Context) ([]models.ExtractInfo, error) {
	return ListExtracts(ctx, s.client, s.bucket)
}

// reconcile runs the engine and assembles the wire report.
func (s *Service) reconcile(left, right *table.Table, keys reconcile.Keys) (*models.ReconcileReport, error) {
	result, err := reconcile.Reconcile(left, right, keys)
	if err != nil {
		return nil, err
	}

	summary := reconcile.Summarize(left, right, result)
	s.logger.Info("Reconciliation finished",
		zap.Int("left_rows", summary.LeftRows),
		zap.Int("right_rows", summary.RightRows),
		zap.Int("matched", summary.Matched),
		zap.Int("unmatched_left", summary.UnmatchedLeft),
		zap.Int("unmatched_right", summary.UnmatchedRight),
	)

	return models.ReportFromResult(left, right, result), nil
}
