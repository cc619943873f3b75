package models

import (
	"encoding/json"
	"time"
)

// WaitTime is either a number of minutes or a status label such as "closed".
type WaitTime struct {
	Minutes int
	Label   string
}

// WaitMinutes builds a numeric WaitTime.
func WaitMinutes(minutes int) WaitTime {
	return WaitTime{Minutes: minutes}
}

// WaitLabel builds a label WaitTime.
func WaitLabel(label string) WaitTime {
	return WaitTime{Label: label}
}

// IsLabel reports whether the value is a status label rather than minutes.
func (w WaitTime) IsLabel() bool {
	return w.Label != ""
}

// MarshalJSON renders minutes as a number and labels as a string.
func (w WaitTime) MarshalJSON() ([]byte, error) {
	if w.IsLabel() {
		return json.Marshal(w.Label)
	}
	return json.Marshal(w.Minutes)
}

// UnmarshalJSON accepts either representation.
func (w *WaitTime) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		*w = WaitLabel(label)
		return nil
	}
	var minutes int
	if err := json.Unmarshal(data, &minutes); err != nil {
		return err
	}
	*w = WaitMinutes(minutes)
	return nil
}

// Countdown is the time until the next show: minutes, or a terminal label.
type Countdown = WaitTime

// AttractionEntry is the canonical queue-time cache record for one attraction.
type AttractionEntry struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	QueueTime  int       `json:"queueTime"`
	WaitTime   WaitTime  `json:"waitTime"`
	WaitUnit   string    `json:"waitUnit"`
	Status     Status    `json:"status"`
	ColorTheme Color     `json:"colorTheme"`
	UpdateTime time.Time `json:"updateTime"`
}

// ShowTime is one scheduled performance slot.
type ShowTime struct {
	// Time is the park-local clock time, formatted HH:MM.
	Time string `json:"time"`
	// Full marks a fully booked slot.
	Full bool `json:"full"`
	// Valid is false for cancelled slots.
	Valid bool `json:"valid"`
	// ColorTheme is the slot's bucket at the time it was computed.
	ColorTheme Color `json:"colorTheme"`
}

// PerformanceEntry is the canonical performance-time cache record for one show.
type PerformanceEntry struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Status       Status     `json:"status"`
	ShowTimes    []ShowTime `json:"showTimes"`
	NextShow     *string    `json:"nextShow"`
	NextShowTime *string    `json:"nextShowTime"`
	TimeToNext   Countdown  `json:"timeToNext"`
	TimeUnit     string     `json:"timeUnit"`
	ColorTheme   Color      `json:"colorTheme"`
	UpdateTime   time.Time  `json:"updateTime"`
}

// Clone returns a deep copy safe to hand to readers.
func (p PerformanceEntry) Clone() PerformanceEntry {
	out := p
	if p.ShowTimes != nil {
		out.ShowTimes = append([]ShowTime(nil), p.ShowTimes...)
	}
	if p.NextShow != nil {
		v := *p.NextShow
		out.NextShow = &v
	}
	if p.NextShowTime != nil {
		v := *p.NextShowTime
		out.NextShowTime = &v
	}
	return out
}
