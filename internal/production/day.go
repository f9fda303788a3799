package production

import (
	"fmt"
	"time"
)

// Day is a calendar date without a time-of-day. Pickup aggregation and order
// sequencing both partition on it.
type Day struct {
	Year  int
	Month time.Month
	Dom   int
}

// DayOf extracts the calendar date of t in t's own location. Callers normalize
// timestamps to shop-local time before handing them to the core.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Dom: d}
}

// ParseDay parses a "YYYY-MM-DD" value.
func ParseDay(value string) (Day, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return DayOf(t), nil
}

// String renders the day as "YYYY-MM-DD".
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Dom)
}

// Start returns midnight of the day in the given location.
func (d Day) Start(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Dom, 0, 0, 0, 0, loc)
}

// Next returns the following calendar day.
func (d Day) Next() Day {
	return DayOf(d.Start(time.UTC).AddDate(0, 0, 1))
}

// IsZero reports whether the day is unset.
func (d Day) IsZero() bool {
	return d == Day{}
}
