// Package config loads the service configuration.
//
// Every setting has a default in a `default` struct tag. Defaults can be
// overridden by an optional figurine-manager.yaml (or .json/.toml) file, then by
// a .env file, then by environment variables named after the key with dots
// replaced by underscores (reconcile.max_instances -> RECONCILE_MAX_INSTANCES).
//
// Sections: server, storage, log, database, reconcile, telemetry.
//
// LoadConfig validates the result; roster and report prefixes must be set and
// distinct, limits must not be negative and the database driver must be mysql
// or sqlite.
package config
