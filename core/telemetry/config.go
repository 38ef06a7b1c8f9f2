package telemetry

// Config holds configuration for tracing.
type Config struct {
	// Enabled turns the OTLP exporter on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the OTLP/HTTP collector URL (e.g. http://localhost:4318).
	Endpoint string `mapstructure:"endpoint" default:""`
	// ServiceName is reported as service.name.
	ServiceName string `mapstructure:"service_name" default:"figurine-manager"`
}
