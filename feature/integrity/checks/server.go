package checks

import (
	"fmt"
	"reflect"
	"strings"

	"figurine-manager/core/database"
	"figurine-manager/feature/collection/models"

	"gorm.io/gorm"
)

// ServerReport strictly types the result of a server integrity check.
type ServerReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckServerIntegrity verifies the collection schema using the GORM models as the source of truth.
func CheckServerIntegrity(db *gorm.DB) (*ServerReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &ServerReport{
		Driver:  db.Dialector.Name(),
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
		Matched: true,
	}

	for _, model := range models.All() {
		if err := checkTable(db, model, report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func checkTable(db *gorm.DB, model any, report *ServerReport) error {
	tabler, ok := model.(interface{ TableName() string })
	if !ok {
		return fmt.Errorf("model %T does not implement TableName", model)
	}
	tableName := tabler.TableName()

	val := reflect.TypeOf(model)
	if val.Kind() == reflect.Pointer {
		val = val.Elem()
	}

	tblReport := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}

	actualCols, err := database.GetTableColumns(db, tableName)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
		report.Matched = false
		return nil // Partial fail
	}

	actualMap := make(map[string]database.ColumnInfo)
	for _, col := range actualCols {
		actualMap[col.Field] = col
	}

	for i := 0; i < val.NumField(); i++ {
		gormTag := val.Field(i).Tag.Get("gorm")

		colName := parseGormColumn(gormTag)
		if colName == "" {
			continue
		}

		actCol, exists := actualMap[colName]
		if !exists {
			tblReport.MissingColumns = append(tblReport.MissingColumns, colName)
			tblReport.Status = "error"
			report.Matched = false
			continue
		}

		// Soft check, only when the tag names a type.
		expType := strings.ToLower(parseGormType(gormTag))
		if expType != "" && !strings.Contains(actCol.Type, expType) {
			mismatch := fmt.Sprintf("%s: expected %s, got %s", colName, expType, actCol.Type)
			tblReport.TypeMismatches = append(tblReport.TypeMismatches, mismatch)
			tblReport.Status = "error"
			report.Matched = false
		}
	}

	report.Tables[tableName] = tblReport
	return nil
}

// Helpers to parse simple GORM tags
func parseGormColumn(tag string) string {
	return tagValue(tag, "column:")
}

func parseGormType(tag string) string {
	return tagValue(tag, "type:")
}

func tagValue(tag, prefix string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, prefix) {
			return strings.TrimPrefix(p, prefix)
		}
	}
	return ""
}
