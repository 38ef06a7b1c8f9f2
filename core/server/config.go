package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps request bodies (inline reconciliations, collection imports).
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"4"`
}

// BodyLimit returns the request body limit in bytes, falling back to 4 MiB.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 4 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}
