package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"figurine-manager/core/database"
	"figurine-manager/core/logger"
	"figurine-manager/core/reconcile"
	"figurine-manager/core/server"
	"figurine-manager/core/storage"
	"figurine-manager/core/telemetry"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileName is the optional configuration file looked up next to the .env file
// (figurine-manager.yaml, .json or .toml).
const FileName = "figurine-manager"

// Config holds all configuration for the application.
type Config struct {
	Server    server.Config    `mapstructure:"server"`
	Storage   storage.Config   `mapstructure:"storage"`
	Log       logger.Config    `mapstructure:"log"`
	Database  database.Config  `mapstructure:"database"`
	Reconcile ReconcileConfig  `mapstructure:"reconcile"`
	Telemetry telemetry.Config `mapstructure:"telemetry"`
}

// ReconcileConfig controls where rosters and reports live and how large a reconciliation may be.
type ReconcileConfig struct {
	// RosterPrefix is the bucket folder holding roster documents.
	RosterPrefix string `mapstructure:"roster_prefix" default:"rosters"`
	// ReportPrefix is the bucket folder receiving saved reports.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports"`
	// CacheTTLSeconds is how long a parsed roster is reused. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
	// MaxInstances bounds the instances on each side of a reconciliation.
	// Zero falls back to the engine cap (reconcile.MaxInstances).
	MaxInstances int `mapstructure:"max_instances" default:"500"`
}

// CacheTTL returns the roster cache lifetime.
func (c ReconcileConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Folders returns the bucket folders rosters and reports are kept in.
func (c ReconcileConfig) Folders() []string {
	return []string{c.RosterPrefix, c.ReportPrefix}
}

// LoadConfig reads, in increasing precedence: struct-tag defaults, the optional
// figurine-manager.* file in path, the .env file in path and the process environment.
func LoadConfig(path string) (*Config, error) {
	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()
	bindValues(v, Config{}, "")

	v.SetConfigName(FileName)
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	var errs []error

	r := c.Reconcile
	if strings.Trim(r.RosterPrefix, "/") == "" || strings.Trim(r.ReportPrefix, "/") == "" {
		errs = append(errs, errors.New("reconcile.roster_prefix and reconcile.report_prefix must not be empty"))
	} else if strings.Trim(r.RosterPrefix, "/") == strings.Trim(r.ReportPrefix, "/") {
		errs = append(errs, fmt.Errorf("reconcile.roster_prefix and reconcile.report_prefix must differ, both are %q", r.RosterPrefix))
	}
	if r.CacheTTLSeconds < 0 {
		errs = append(errs, fmt.Errorf("reconcile.cache_ttl_seconds must not be negative, got %d", r.CacheTTLSeconds))
	}
	if r.MaxInstances < 0 || r.MaxInstances > reconcile.MaxInstances {
		errs = append(errs, fmt.Errorf("reconcile.max_instances must be between 0 and %d, got %d", reconcile.MaxInstances, r.MaxInstances))
	}

	switch c.Database.Driver {
	case database.DriverMySQL, database.DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("database.driver %q is not supported", c.Database.Driver))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// bindValues registers every 'mapstructure' key with its 'default' tag value,
// recursing into nested structs, so AutomaticEnv can see each key.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
