package source

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"park-sync/core/database"
	"park-sync/feature/park/models"
)

// ShowScheduleRow is one row of the show_schedules table.
type ShowScheduleRow struct {
	ID              uint   `gorm:"column:id;primaryKey;type:int"`
	ParkID          string `gorm:"column:park_id;type:varchar"`
	PerformanceName string `gorm:"column:performance_name;type:varchar"`
	ShowTime        string `gorm:"column:show_time;type:varchar"`
	IsFull          bool   `gorm:"column:is_full;type:tinyint"`
	IsCancelled     bool   `gorm:"column:is_cancelled;type:tinyint"`
	Closed          bool   `gorm:"column:closed;type:tinyint"`
}

// TableName overrides the gorm table name.
func (ShowScheduleRow) TableName() string {
	return "show_schedules"
}

var scheduleColumns = []string{"id", "park_id", "performance_name", "show_time", "is_full", "is_cancelled", "closed"}

// DatabaseSchedules reads show schedules from a MySQL table.
type DatabaseSchedules struct {
	db *gorm.DB
}

// NewDatabaseSchedules creates a schedule source over db.
func NewDatabaseSchedules(db *gorm.DB) *DatabaseSchedules {
	return &DatabaseSchedules{db: db}
}

// Verify checks that the schedule table has the expected columns.
func (d *DatabaseSchedules) Verify(ctx context.Context) error {
	missing, err := database.MissingColumns(ctx, d.db, ShowScheduleRow{}.TableName(), scheduleColumns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns: %s", ShowScheduleRow{}.TableName(), strings.Join(missing, ", "))
	}
	return nil
}

// FetchSchedules implements ScheduleSource. Rows are grouped by performance
// name in order of first appearance. A row flagged closed closes the whole
// performance; rows with an empty show time carry no slot.
func (d *DatabaseSchedules) FetchSchedules(ctx context.Context, parkID string) ([]models.ScheduleRecord, error) {
	var rows []ShowScheduleRow
	err := d.db.WithContext(ctx).
		Where("park_id = ?", parkID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying show schedules: %w", err)
	}

	var records []models.ScheduleRecord
	index := make(map[string]int)
	for _, row := range rows {
		name := strings.TrimSpace(row.PerformanceName)
		i, ok := index[name]
		if !ok {
			i = len(records)
			index[name] = i
			records = append(records, models.ScheduleRecord{Name: name})
		}
		if row.Closed {
			records[i].Closed = true
		}
		if strings.TrimSpace(row.ShowTime) == "" {
			continue
		}
		records[i].ShowTimes = append(records[i].ShowTimes, models.RawShowTime{
			Time:      row.ShowTime,
			Full:      row.IsFull,
			Cancelled: row.IsCancelled,
		})
	}
	return records, nil
}
