package models

import "strings"

// Status is the canonical operating state of an attraction or performance.
type Status string

const (
	StatusOpen    Status = "open"
	StatusClosed  Status = "closed"
	StatusUnknown Status = "unknown"
)

// Color is the severity bucket shown next to a wait or a countdown.
type Color string

const (
	ColorGray   Color = "gray"
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
)

// Display units.
const (
	// UnitMinutes marks a numeric value in minutes.
	UnitMinutes = "minutes"
	// UnitStatus marks a value that is a status label rather than a number.
	UnitStatus = "status"
)

// Labels used when a wait or countdown is not a number.
const (
	LabelClosed        = "closed"
	LabelUnknown       = "unknown"
	LabelEndedForToday = "ended for today"
)

// ParseStatus maps upstream status text in any supported language to a Status.
func ParseStatus(text string) Status {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "closed", "close", "closed_today", "down", "refurbishment", "已关闭", "关闭", "暂停开放", "今日关闭":
		return StatusClosed
	case "open", "opened", "operating", "running", "开放中", "开放", "运营中":
		return StatusOpen
	default:
		return StatusUnknown
	}
}
