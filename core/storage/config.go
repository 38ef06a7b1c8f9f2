package storage

import "time"

// Config holds configuration for the object storage holding rosters and reports.
type Config struct {
	// Endpoint is host:port, optionally prefixed with http:// or https://.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL applies when Endpoint carries no scheme.
	UseSSL bool   `mapstructure:"use_ssl" default:"false"`
	Bucket string `mapstructure:"bucket" default:"figurines"`
	// Region is also used when the structure fix creates the bucket.
	Region         string `mapstructure:"region" default:""`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" default:"30"`
}

// Timeout returns the connection timeout, falling back to 30 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
