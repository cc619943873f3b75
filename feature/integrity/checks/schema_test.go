package checks

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"park-sync/feature/park/source"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func columnRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(context.Background(), nil, source.ShowScheduleRow{})
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_Matched(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := columnRows().
		AddRow("id", "int(10) unsigned", "NO", "PRI", nil, "auto_increment").
		AddRow("park_id", "varchar(64)", "NO", "MUL", nil, "").
		AddRow("performance_name", "varchar(255)", "NO", "", nil, "").
		AddRow("show_time", "varchar(32)", "YES", "", nil, "").
		AddRow("is_full", "tinyint(1)", "NO", "", "0", "").
		AddRow("is_cancelled", "tinyint(1)", "NO", "", "0", "").
		AddRow("closed", "tinyint(1)", "NO", "", "0", "")
	mock.ExpectQuery("SHOW COLUMNS FROM `show_schedules`").WillReturnRows(rows)

	report, err := CheckSchema(context.Background(), db, source.ShowScheduleRow{})
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, "ok", report.Tables["show_schedules"].Status)
	assert.Empty(t, report.Tables["show_schedules"].MissingColumns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckSchema_MissingAndMismatched(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := columnRows().
		AddRow("id", "int(11)", "NO", "PRI", nil, "auto_increment").
		AddRow("park_id", "int(11)", "NO", "", nil, "").
		AddRow("performance_name", "varchar(255)", "NO", "", nil, "").
		AddRow("show_time", "varchar(32)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `show_schedules`").WillReturnRows(rows)

	report, err := CheckSchema(context.Background(), db, source.ShowScheduleRow{})
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables["show_schedules"]
	assert.Equal(t, "error", tbl.Status)
	assert.Equal(t, []string{"is_full", "is_cancelled", "closed"}, tbl.MissingColumns)
	assert.Equal(t, []string{"park_id: expected varchar, got int(11)"}, tbl.TypeMismatches)
}

func TestCheckSchema_InspectFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `show_schedules`").WillReturnError(errors.New("table doesn't exist"))

	report, err := CheckSchema(context.Background(), db, source.ShowScheduleRow{})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "show_schedules")
	assert.NotContains(t, report.Tables, "show_schedules")
}

func TestParseGormTags(t *testing.T) {
	tag := "column:park_id;type:varchar(64);index"
	assert.Equal(t, "park_id", parseGormColumn(tag))
	assert.Equal(t, "varchar(64)", parseGormType(tag))
	assert.Equal(t, "", parseGormType("column:id;primaryKey"))
}
