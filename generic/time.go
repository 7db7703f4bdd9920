package generic

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// TIME POINT - Calendar date used for birth, employment and milestone dates
// =============================================================================

// DateLayout is the wire format for dates (HTML date inputs, JSON, CLI flags).
const DateLayout = "2006-01-02"

// TimePoint is a calendar date at UTC midnight. The zero value means "unset".
//
// Arithmetic delegates to time.Time.AddDate, so day overflow normalizes into
// the following month (Feb 29 + 1 year = Mar 1, Aug 31 + 18 months = Mar 3
// when February is short).
type TimePoint struct {
	Time time.Time
}

// Constructors
func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseTimePoint parses a YYYY-MM-DD string. Surrounding whitespace is ignored.
func ParseTimePoint(s string) (TimePoint, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return TimePoint{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return TimePoint{Time: t}, nil
}

// Comparison
func (tp TimePoint) Before(other TimePoint) bool { return tp.Time.Before(other.Time) }
func (tp TimePoint) Equal(other TimePoint) bool  { return tp.Time.Equal(other.Time) }
func (tp TimePoint) After(other TimePoint) bool  { return tp.Time.After(other.Time) }

// Arithmetic
func (tp TimePoint) AddMonths(n int) TimePoint { return TimePoint{Time: tp.Time.AddDate(0, n, 0)} }
func (tp TimePoint) AddYears(n int) TimePoint  { return TimePoint{Time: tp.Time.AddDate(n, 0, 0)} }

// Since returns the elapsed time from earlier to tp. Negative when earlier is after tp.
func (tp TimePoint) Since(earlier TimePoint) time.Duration { return tp.Time.Sub(earlier.Time) }

// Properties
func (tp TimePoint) Year() int         { return tp.Time.Year() }
func (tp TimePoint) Month() time.Month { return tp.Time.Month() }
func (tp TimePoint) Day() int          { return tp.Time.Day() }
func (tp TimePoint) IsZero() bool      { return tp.Time.IsZero() }

func (tp TimePoint) String() string {
	return tp.Time.Format(DateLayout)
}

// Format renders the date with a Go reference layout, e.g. "January 2, 2006".
func (tp TimePoint) Format(layout string) string {
	return tp.Time.Format(layout)
}

// MarshalText implements encoding.TextMarshaler so dates travel as YYYY-MM-DD.
func (tp TimePoint) MarshalText() ([]byte, error) {
	if tp.IsZero() {
		return []byte{}, nil
	}
	return []byte(tp.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty string leaves tp unset.
func (tp *TimePoint) UnmarshalText(data []byte) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		*tp = TimePoint{}
		return nil
	}
	parsed, err := ParseTimePoint(string(data))
	if err != nil {
		return err
	}
	*tp = parsed
	return nil
}
