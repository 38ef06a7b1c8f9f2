package collection

import (
	"figurine-manager/core/telemetry"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	db      *gorm.DB
	service *Service
	handler *Handler
}

// NewFeature creates a new Collection feature.
func NewFeature(db *gorm.DB, logger *zap.Logger, metrics *telemetry.Metrics) *Feature {
	svc := NewService(db, logger, metrics)
	h := NewHandler(svc)
	return &Feature{db: db, service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "collection"
}

// IsEnabled checks if the feature is enabled. The collection needs a database.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Load migrates the collection tables and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.repo.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}
