package checks

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"park-sync/core/database"

	"gorm.io/gorm"
)

// Tabler is a gorm model with an explicit table name.
type Tabler interface {
	TableName() string
}

// SchemaReport is the result of a schema check over one or more models.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckSchema compares each model's gorm column tags with the live table.
// Only fields carrying a column tag are checked; a type tag adds a loose
// type comparison. A table that cannot be inspected is reported in Errors
// and the remaining models are still checked.
func CheckSchema(ctx context.Context, db *gorm.DB, models ...Tabler) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range models {
		tableName := model.TableName()
		val := reflect.TypeOf(model)
		if val.Kind() == reflect.Ptr {
			val = val.Elem()
		}
		if val.Kind() != reflect.Struct {
			return nil, fmt.Errorf("model for %s is not a struct", tableName)
		}

		actualCols, err := database.GetTableColumns(ctx, db, tableName)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
			report.Matched = false
			continue
		}

		actualMap := make(map[string]database.ColumnInfo, len(actualCols))
		for _, col := range actualCols {
			actualMap[col.Field] = col
		}

		tblReport := TableReport{
			MissingColumns: []string{},
			TypeMismatches: []string{},
			Status:         "ok",
		}

		for i := 0; i < val.NumField(); i++ {
			gormTag := val.Field(i).Tag.Get("gorm")
			colName := parseGormColumn(gormTag)
			if colName == "" {
				continue
			}

			actCol, exists := actualMap[strings.ToLower(colName)]
			if !exists {
				tblReport.MissingColumns = append(tblReport.MissingColumns, colName)
				tblReport.Status = "error"
				report.Matched = false
				continue
			}

			expType := strings.ToLower(parseGormType(gormTag))
			if expType == "" {
				continue
			}
			// MySQL reports booleans as tinyint(1)
			if expType == "bool" || expType == "boolean" {
				expType = "tinyint"
			}
			if !strings.Contains(actCol.Type, expType) {
				mismatch := fmt.Sprintf("%s: expected %s, got %s", colName, expType, actCol.Type)
				tblReport.TypeMismatches = append(tblReport.TypeMismatches, mismatch)
				tblReport.Status = "error"
				report.Matched = false
			}
		}

		report.Tables[tableName] = tblReport
	}

	return report, nil
}

func parseGormColumn(tag string) string {
	return gormSetting(tag, "column:")
}

func parseGormType(tag string) string {
	return gormSetting(tag, "type:")
}

func gormSetting(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, key) {
			return strings.TrimPrefix(p, key)
		}
	}
	return ""
}
