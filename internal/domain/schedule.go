package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

var (
	// ErrMissingWeekday is returned when a weekly schedule lacks one of the seven weekdays
	ErrMissingWeekday = errors.New("weekly schedule: missing weekday")

	// ErrPartialSchedule is returned when only one of open/close is set for a day
	ErrPartialSchedule = errors.New("weekly schedule: open and close must both be set or both be null")

	// ErrUnknownWeekday is returned for keys other than monday..sunday
	ErrUnknownWeekday = errors.New("weekly schedule: unknown weekday")
)

// WeekdayKeys maps time.Weekday (0=Sunday..6=Saturday) to schedule keys
var WeekdayKeys = [7]string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

// WeekdayKey returns the schedule key for a weekday
func WeekdayKey(d time.Weekday) string {
	return WeekdayKeys[d]
}

// DaySchedule is the opening window of a business for one weekday.
// Nil Open/Close means closed all day.
type DaySchedule struct {
	Open  *types.TimeOfDay `json:"open"`
	Close *types.TimeOfDay `json:"close"`
}

// IsOpen returns true if both open and close are set
func (d DaySchedule) IsOpen() bool {
	return d.Open != nil && d.Close != nil
}

// IsPartial returns true if exactly one of open/close is set
func (d DaySchedule) IsPartial() bool {
	return (d.Open == nil) != (d.Close == nil)
}

// WeeklySchedule maps weekday key (monday..sunday) to its DaySchedule.
// Stored as JSONB in businesses.working_hours.
type WeeklySchedule map[string]DaySchedule

// Validate checks that all seven weekdays are present and none is partial
func (w WeeklySchedule) Validate() error {
	known := make(map[string]struct{}, len(WeekdayKeys))
	for _, key := range WeekdayKeys {
		known[key] = struct{}{}
		day, ok := w[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingWeekday, key)
		}
		if day.IsPartial() {
			return fmt.Errorf("%w: %s", ErrPartialSchedule, key)
		}
	}

	for key := range w {
		if _, ok := known[key]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownWeekday, key)
		}
	}

	return nil
}

// Scan implements sql.Scanner for a JSONB column
func (w *WeeklySchedule) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*w = nil
		return nil
	default:
		return fmt.Errorf("weekly schedule: unsupported type %T", src)
	}

	schedule := make(WeeklySchedule, len(WeekdayKeys))
	if err := json.Unmarshal(data, &schedule); err != nil {
		return fmt.Errorf("weekly schedule: decode: %w", err)
	}
	*w = schedule
	return nil
}

// Value implements driver.Valuer
func (w WeeklySchedule) Value() (driver.Value, error) {
	if w == nil {
		return nil, nil
	}
	data, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("weekly schedule: encode: %w", err)
	}
	// строкой: lib/pq кодирует []byte как bytea
	return string(data), nil
}
