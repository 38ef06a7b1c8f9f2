// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration. SQLite is the default, which keeps a
// single collector's inventory in one local file.
//
// # Connect
//
// Connect opens the configured dialect, applies pool settings, and pings the
// database within the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns (PRAGMA table_info on SQLite, SHOW
// COLUMNS on MySQL). The server integrity check compares them against the
// collection models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "collection_items")
package database
