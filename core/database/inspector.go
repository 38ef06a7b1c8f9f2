package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo describes one column as reported by the database.
// Field and Type are lower-cased.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string // NULL default is possible
	Extra   string
}

// GetTableColumns retrieves the column definitions for a given table.
// A missing table yields an empty slice on sqlite and an error on mysql.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	if db.Dialector.Name() == DriverSQLite {
		return sqliteColumns(db, tableName)
	}

	var columns []ColumnInfo
	if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

func sqliteColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	type pragmaColumn struct {
		Cid       int
		Name      string
		Type      string
		Notnull   int
		DfltValue *string
		Pk        int
	}

	var rows []pragmaColumn
	if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	columns := make([]ColumnInfo, 0, len(rows))
	for _, col := range rows {
		info := ColumnInfo{
			Field:   strings.ToLower(col.Name),
			Type:    strings.ToLower(col.Type),
			Default: col.DfltValue,
			Null:    "YES",
		}
		if col.Notnull == 1 {
			info.Null = "NO"
		}
		if col.Pk > 0 {
			info.Key = "PRI"
		}
		columns = append(columns, info)
	}
	return columns, nil
}
