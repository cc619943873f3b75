package source

import (
	"context"
	"errors"

	"park-sync/feature/park/models"
)

// ErrNotConfigured is returned when a source's backend is not available.
var ErrNotConfigured = errors.New("source not configured")

// BasicDataSource delivers a park's attraction and performance catalog.
type BasicDataSource interface {
	FetchBasic(ctx context.Context, parkID string) (models.BasicData, error)
}

// WaitTimeSource delivers current wait times, identified by name.
type WaitTimeSource interface {
	FetchWaitTimes(ctx context.Context, parkID string) ([]models.WaitTimeRecord, error)
}

// ScheduleSource delivers today's show schedules, identified by name.
type ScheduleSource interface {
	FetchSchedules(ctx context.Context, parkID string) ([]models.ScheduleRecord, error)
}

// Set bundles one source of each kind.
type Set struct {
	Basic     BasicDataSource
	WaitTimes WaitTimeSource
	Schedules ScheduleSource
}
