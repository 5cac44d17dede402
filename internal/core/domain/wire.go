package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wall-clock date format used in query strings and bodies.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component, carried as yyyy-MM-dd on
// the wire.
type Date struct {
	t time.Time
}

// NewDate truncates t to its date part in t's location.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

func (d Date) Time() time.Time { return d.t }

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) String() string { return d.t.Format(DateLayout) }

func (d Date) Equal(other Date) bool { return d.String() == other.String() }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.t = t
	return nil
}

// TimeOfDay is a wall-clock time within a day, carried as HH:MM:SS on the
// wire. Optional fields use *TimeOfDay.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*t = TimeOfDay{}
		return nil
	}
	var parsed TimeOfDay
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &parsed.Hour, &parsed.Minute, &parsed.Second); err != nil {
		// The backend omits seconds for on-the-hour values in some responses.
		if _, err2 := fmt.Sscanf(s, "%d:%d", &parsed.Hour, &parsed.Minute); err2 != nil {
			return fmt.Errorf("parse time of day %q: %w", s, err)
		}
	}
	*t = parsed
	return nil
}

// DayOfWeek is the backend's upper-case English weekday name.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)
