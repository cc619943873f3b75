package normalize

import (
	"fmt"
	"strings"
	"time"

	"park-sync/core/utils"
	"park-sync/feature/park/models"
)

// ClosedWait is the upstream sentinel for a closed attraction. Any negative
// wait is treated the same way.
const ClosedWait = -1

// QueueState is the interpreted queue information of one attraction record.
type QueueState struct {
	// Minutes is nil when the wait is unknown or the attraction is closed.
	Minutes *int
	Status  models.Status
}

// Closed reports whether the state is closed.
func (q QueueState) Closed() bool {
	return q.Status == models.StatusClosed
}

// ClassifyWait interprets a raw wait value together with the record's closed
// flag and status text. Numbers, numeric strings, status words and null are
// read as such; other text leaves the wait unknown. Values of the wrong kind
// (booleans, lists, objects) are malformed records.
func ClassifyWait(raw any, closed bool, statusText string) (QueueState, error) {
	textStatus := models.ParseStatus(statusText)
	if closed || textStatus == models.StatusClosed {
		return QueueState{Status: models.StatusClosed}, nil
	}

	switch v := raw.(type) {
	case nil:
		return QueueState{Status: textStatus}, nil
	case bool:
		return QueueState{}, fmt.Errorf("%w: boolean wait time %v", ErrMalformedRecord, v)
	case string:
		if strings.TrimSpace(v) == "" {
			return QueueState{Status: textStatus}, nil
		}
		if _, numeric := utils.ParseInt(v); numeric {
			break
		}
		switch models.ParseStatus(v) {
		case models.StatusClosed:
			return QueueState{Status: models.StatusClosed}, nil
		case models.StatusOpen:
			return QueueState{Status: models.StatusOpen}, nil
		}
		// Free text such as "N/A" or "维护中" carries no minutes.
		return QueueState{Status: textStatus}, nil
	}

	minutes, ok := utils.ParseInt(raw)
	if !ok {
		return QueueState{}, fmt.Errorf("%w: wait time %v", ErrMalformedRecord, raw)
	}
	if minutes <= ClosedWait {
		return QueueState{Status: models.StatusClosed}, nil
	}
	return QueueState{Minutes: &minutes, Status: models.StatusOpen}, nil
}

// ApplyTo overwrites the queue fields of e. Identity fields are untouched.
func (q QueueState) ApplyTo(e *models.AttractionEntry, at time.Time) {
	switch {
	case q.Closed():
		e.QueueTime = 0
		e.WaitTime = models.WaitLabel(models.LabelClosed)
		e.WaitUnit = models.UnitStatus
	case q.Minutes == nil:
		e.QueueTime = 0
		e.WaitTime = models.WaitLabel(models.LabelUnknown)
		e.WaitUnit = models.UnitStatus
	default:
		e.QueueTime = *q.Minutes
		e.WaitTime = models.WaitMinutes(*q.Minutes)
		e.WaitUnit = models.UnitMinutes
	}
	e.Status = q.Status
	e.ColorTheme = AttractionColor(q.Minutes, q.Closed())
	e.UpdateTime = at
}
