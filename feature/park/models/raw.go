package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"park-sync/core/utils"
)

// Field aliases used by the different upstream sources for the same concept.
var (
	idFields        = []string{"id", "itemId", "item_id", "attractionId", "attraction_id", "performanceId", "performance_id"}
	nameFields      = []string{"name", "title", "displayName", "display_name", "nameZh", "name_zh"}
	waitFields      = []string{"waitTime", "waitMinutes", "wait_time", "wait_minutes", "queueTime", "queue_time"}
	closedFields    = []string{"closed", "closedFlag", "closed_flag", "isClosed", "is_closed"}
	statusFields    = []string{"status", "state", "operatingStatus"}
	showTimeFields  = []string{"showTimes", "showTimeList", "show_times", "times", "schedule"}
	clockFields     = []string{"time", "showTime", "show_time", "startTime", "start_time"}
	fullFields      = []string{"full", "isFull", "is_full", "soldOut", "sold_out"}
	cancelledFields = []string{"cancelled", "canceled", "isCancelled", "is_cancelled"}
)

// RawAttraction is an attraction as delivered by the basic-data source.
// Wait carries the untouched upstream value; the normalizer interprets it.
type RawAttraction struct {
	ID     string
	Name   string
	Wait   any
	Closed bool
	Status string
}

// RawPerformance is a performance as delivered by the basic-data source.
type RawPerformance struct {
	ID        string
	Name      string
	Closed    bool
	Status    string
	ShowTimes []RawShowTime
}

// WaitTimeRecord is one row of the wait-time source, identified by name only.
type WaitTimeRecord struct {
	Name   string
	Wait   any
	Closed bool
	Status string
}

// ScheduleRecord is one row of the schedule source, identified by name only.
type ScheduleRecord struct {
	Name      string
	Closed    bool
	Status    string
	ShowTimes []RawShowTime
}

// RawShowTime is one slot of a schedule. Upstream may send a bare clock string
// or an object with flags.
type RawShowTime struct {
	Time      string
	Full      bool
	Cancelled bool
	Status    string
}

// BasicData is the payload of the basic-data source.
type BasicData struct {
	Attractions  []RawAttraction  `json:"attractions"`
	Performances []RawPerformance `json:"performances"`
}

// Empty reports whether the payload carries no records at all.
func (b BasicData) Empty() bool {
	return len(b.Attractions) == 0 && len(b.Performances) == 0
}

type fields map[string]any

func decodeFields(data []byte) (fields, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var f fields
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	return f, nil
}

// pick returns the first present, non-null alias.
func (f fields) pick(keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := f[k]; ok && v != nil {
			if n, isNum := v.(json.Number); isNum {
				if i, err := n.Int64(); err == nil {
					return int(i), true
				}
				fl, err := n.Float64()
				if err != nil {
					return n.String(), true
				}
				if fl == math.Trunc(fl) {
					// Integral but beyond int64: keep the digits so distinct ids stay distinct.
					if fl < math.MinInt64 || fl >= math.MaxInt64 {
						return n.String(), true
					}
					return int(fl), true
				}
				return fl, true
			}
			return v, true
		}
	}
	return nil, false
}

func (f fields) str(keys []string) string {
	v, _ := f.pick(keys)
	return utils.ToKey(v)
}

func (f fields) flag(keys []string) bool {
	v, _ := f.pick(keys)
	return utils.ToBool(v)
}

func (f fields) showTimes() ([]RawShowTime, error) {
	v, ok := f.pick(showTimeFields)
	if !ok {
		return nil, nil
	}
	// Re-encode the nested value so RawShowTime's own decoder handles each element.
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out []RawShowTime
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("show time list: %w", err)
	}
	return out, nil
}

// UnmarshalJSON decodes any supported attraction shape.
func (r *RawAttraction) UnmarshalJSON(data []byte) error {
	f, err := decodeFields(data)
	if err != nil {
		return err
	}
	wait, _ := f.pick(waitFields)
	*r = RawAttraction{
		ID:     f.str(idFields),
		Name:   f.str(nameFields),
		Wait:   wait,
		Closed: f.flag(closedFields),
		Status: f.str(statusFields),
	}
	return nil
}

// UnmarshalJSON decodes any supported performance shape.
func (r *RawPerformance) UnmarshalJSON(data []byte) error {
	f, err := decodeFields(data)
	if err != nil {
		return err
	}
	shows, err := f.showTimes()
	if err != nil {
		return err
	}
	*r = RawPerformance{
		ID:        f.str(idFields),
		Name:      f.str(nameFields),
		Closed:    f.flag(closedFields),
		Status:    f.str(statusFields),
		ShowTimes: shows,
	}
	return nil
}

// UnmarshalJSON decodes any supported wait-time shape.
func (r *WaitTimeRecord) UnmarshalJSON(data []byte) error {
	f, err := decodeFields(data)
	if err != nil {
		return err
	}
	wait, _ := f.pick(waitFields)
	*r = WaitTimeRecord{
		Name:   f.str(nameFields),
		Wait:   wait,
		Closed: f.flag(closedFields),
		Status: f.str(statusFields),
	}
	return nil
}

// UnmarshalJSON decodes any supported schedule shape.
func (r *ScheduleRecord) UnmarshalJSON(data []byte) error {
	f, err := decodeFields(data)
	if err != nil {
		return err
	}
	shows, err := f.showTimes()
	if err != nil {
		return err
	}
	*r = ScheduleRecord{
		Name:      f.str(nameFields),
		Closed:    f.flag(closedFields),
		Status:    f.str(statusFields),
		ShowTimes: shows,
	}
	return nil
}

// UnmarshalJSON decodes a bare clock string or a flagged object.
func (r *RawShowTime) UnmarshalJSON(data []byte) error {
	var clock string
	if err := json.Unmarshal(data, &clock); err == nil {
		*r = RawShowTime{Time: clock}
		return nil
	}
	f, err := decodeFields(data)
	if err != nil {
		return err
	}
	*r = RawShowTime{
		Time:      f.str(clockFields),
		Full:      f.flag(fullFields),
		Cancelled: f.flag(cancelledFields),
		Status:    f.str(statusFields),
	}
	return nil
}

// UnmarshalJSON accepts the list names used by the different catalog formats.
func (b *BasicData) UnmarshalJSON(data []byte) error {
	var aux struct {
		Attractions     []RawAttraction  `json:"attractions"`
		AttractionList  []RawAttraction  `json:"attractionList"`
		Performances    []RawPerformance `json:"performances"`
		PerformanceList []RawPerformance `json:"performanceList"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	b.Attractions = append(aux.Attractions, aux.AttractionList...)
	b.Performances = append(aux.Performances, aux.PerformanceList...)
	return nil
}
