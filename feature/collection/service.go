package collection

import (
	"context"

	"figurine-manager/core/reconcile"
	"figurine-manager/core/telemetry"
	"figurine-manager/feature/collection/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles collection operations.
type Service struct {
	repo    *Repository
	logger  *zap.Logger
	metrics *telemetry.Metrics
}

// NewService creates a new collection service. metrics may be nil.
func NewService(db *gorm.DB, logger *zap.Logger, metrics *telemetry.Metrics) *Service {
	return &Service{
		repo:    NewRepository(db),
		logger:  logger,
		metrics: metrics,
	}
}

// Repository exposes the underlying repository, which is the inventory provider.
func (s *Service) Repository() *Repository {
	return s.repo
}

// List returns the stored items.
func (s *Service) List(ctx context.Context) ([]models.Item, error) {
	return s.repo.List(ctx)
}

// Count returns the number of stored items.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Import decodes a JSON or YAML document of owned items and stores them.
func (s *Service) Import(ctx context.Context, data []byte, format reconcile.Format, replace bool) (int, error) {
	items, err := reconcile.DecodeOwned(data, format)
	if err != nil {
		return 0, err
	}

	n, err := s.repo.Import(ctx, items, replace)
	if err != nil {
		return 0, err
	}

	if s.metrics != nil {
		s.metrics.ImportedItemsTotal.Add(float64(n))
	}
	s.logger.Info("Collection imported",
		zap.Int("items", n),
		zap.Bool("replace", replace),
		zap.String("format", string(format)),
	)
	return n, nil
}
