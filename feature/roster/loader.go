package roster

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	provider *Provider
	handler  *Handler
}

// NewFeature creates a new Roster feature around provider.
func NewFeature(provider *Provider, logger *zap.Logger) *Feature {
	return &Feature{
		provider: provider,
		handler:  NewHandler(provider, logger),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "roster"
}

// IsEnabled checks if the feature is enabled. Rosters need object storage.
func (f *Feature) IsEnabled() bool {
	return f.provider != nil && f.provider.client != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
