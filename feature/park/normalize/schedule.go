package normalize

import (
	"fmt"
	"strings"
	"time"

	"park-sync/feature/park/models"
)

// Layouts accepted for show times, tried in order. Date-bearing layouts are
// converted to the park's location before taking the clock time.
var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Slot is a parsed show time.
type Slot struct {
	models.ShowTime
	// Minute is the slot's park-local minute of day.
	Minute int
}

// ParseSlot parses one raw show time in loc.
func ParseSlot(raw models.RawShowTime, loc *time.Location) (Slot, error) {
	clock := strings.TrimSpace(raw.Time)
	if clock == "" {
		return Slot{}, fmt.Errorf("%w: empty show time", ErrMalformedRecord)
	}

	var parsed time.Time
	var err error
	for _, layout := range clockLayouts {
		parsed, err = time.ParseInLocation(layout, clock, loc)
		if err == nil {
			break
		}
	}
	if err != nil {
		return Slot{}, fmt.Errorf("%w: show time %q", ErrMalformedRecord, raw.Time)
	}
	parsed = parsed.In(loc)

	status := strings.ToLower(strings.TrimSpace(raw.Status))
	cancelled := raw.Cancelled || status == "cancelled" || status == "canceled" || status == "已取消" || status == "取消"
	full := raw.Full || status == "full" || status == "sold out" || status == "已满" || status == "满座"

	return Slot{
		ShowTime: models.ShowTime{
			Time:  parsed.Format("15:04"),
			Full:  full,
			Valid: !cancelled,
		},
		Minute: parsed.Hour()*60 + parsed.Minute(),
	}, nil
}

// ParseSlots parses every show time, failing on the first malformed one.
func ParseSlots(raws []models.RawShowTime, loc *time.Location) ([]Slot, error) {
	slots := make([]Slot, 0, len(raws))
	for _, raw := range raws {
		slot, err := ParseSlot(raw, loc)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// slotsFromShowTimes rebuilds slots from stored show times.
func slotsFromShowTimes(shows []models.ShowTime, loc *time.Location) []Slot {
	slots := make([]Slot, 0, len(shows))
	for _, show := range shows {
		slot, err := ParseSlot(models.RawShowTime{Time: show.Time}, loc)
		if err != nil {
			continue
		}
		slot.Full = show.Full
		slot.Valid = show.Valid
		slots = append(slots, slot)
	}
	return slots
}

// ScheduleState is the interpreted schedule of one performance record.
type ScheduleState struct {
	Status models.Status
	Slots  []Slot
}

// ClassifySchedule combines the closed flag, status text and parsed slots.
// A performance that is not closed is open.
func ClassifySchedule(closed bool, statusText string, slots []Slot) ScheduleState {
	if closed || models.ParseStatus(statusText) == models.StatusClosed {
		return ScheduleState{Status: models.StatusClosed}
	}
	return ScheduleState{Status: models.StatusOpen, Slots: slots}
}

// ApplyTo overwrites the schedule fields of e as seen at now.
//
// Closed performances get no show times and no next show. Open performances
// take as next show the first slot, in upstream order, that starts strictly
// after now and is neither full nor cancelled.
func (s ScheduleState) ApplyTo(e *models.PerformanceEntry, now time.Time) {
	e.Status = s.Status
	e.UpdateTime = now

	if s.Status == models.StatusClosed {
		e.ShowTimes = []models.ShowTime{}
		e.NextShow = nil
		e.NextShowTime = nil
		e.TimeToNext = models.WaitLabel(models.LabelClosed)
		e.TimeUnit = models.UnitStatus
		e.ColorTheme = models.ColorGray
		return
	}

	nowMinute := now.Hour()*60 + now.Minute()
	shows := make([]models.ShowTime, 0, len(s.Slots))
	var next *Slot
	for i := range s.Slots {
		slot := s.Slots[i]
		until := slot.Minute - nowMinute
		slot.ColorTheme = ShowTimeColor(slot.Full, until)
		shows = append(shows, slot.ShowTime)

		if next == nil && until > 0 && slot.Valid && !slot.Full {
			next = &slot
		}
	}
	e.ShowTimes = shows

	if next == nil {
		e.NextShow = nil
		e.NextShowTime = nil
		e.TimeToNext = models.WaitLabel(models.LabelEndedForToday)
		e.TimeUnit = models.UnitStatus
		e.ColorTheme = models.ColorGray
		return
	}

	until := next.Minute - nowMinute
	nextShow := next.Time
	nextShowTime := next.Time
	e.NextShow = &nextShow
	e.NextShowTime = &nextShowTime
	e.TimeToNext = models.WaitMinutes(until)
	e.TimeUnit = models.UnitMinutes
	e.ColorTheme = CountdownColor(until)
}

// HasScheduleInfo reports whether a record says anything about today's
// schedule: at least one show, the closed flag or a recognised status.
// Records without it leave a performance unknown rather than open.
func HasScheduleInfo(shows int, closed bool, statusText string) bool {
	return shows > 0 || closed || models.ParseStatus(statusText) != models.StatusUnknown
}

// UnknownSchedule initializes a performance that has no schedule information yet.
func UnknownSchedule(e *models.PerformanceEntry, now time.Time) {
	e.Status = models.StatusUnknown
	e.ShowTimes = []models.ShowTime{}
	e.NextShow = nil
	e.NextShowTime = nil
	e.TimeToNext = models.WaitLabel(models.LabelUnknown)
	e.TimeUnit = models.UnitStatus
	e.ColorTheme = models.ColorGray
	e.UpdateTime = now
}
