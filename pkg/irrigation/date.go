package irrigation

import (
	"fmt"
	"time"
)

// Date is a calendar day in UTC.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const dateLayout = "2006-01-02"

func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Start is 00:00:00 UTC of the day.
func (d Date) Start() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// End is 23:59:59.999 UTC of the day.
func (d Date) End() time.Time {
	return d.Start().AddDate(0, 0, 1).Add(-time.Millisecond)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Start().AddDate(0, 0, n))
}

func (d Date) Before(o Date) bool {
	return d.Start().Before(o.Start())
}

func (d Date) String() string {
	return d.Start().Format(dateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// NormalizeWindow widens [start, end] to whole UTC calendar days.
func NormalizeWindow(start, end time.Time) (time.Time, time.Time) {
	return DateOf(start).Start(), DateOf(end).End()
}
