package core

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

const monthLayout = "2006-01"

// Month identifies one calendar month, the key of every monthly report.
type Month struct {
	Year int
	Mon  time.Month
}

// ParseMonth parses the "YYYY-MM" format used by the report endpoints.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, errors.Wrapf(err, "parsing month %q", s)
	}
	return Month{Year: t.Year(), Mon: t.Month()}, nil
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Mon: t.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Mon))
}

func (m Month) IsZero() bool {
	return m.Year == 0 && m.Mon == 0
}

// Range returns the inclusive [firstDay, lastDay] of the month, in UTC.
func (m Month) Range() (first, last time.Time) {
	first = time.Date(m.Year, m.Mon, 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last
}

// Prev returns the calendar month before m.
func (m Month) Prev() Month {
	first, _ := m.Range()
	prev := first.AddDate(0, -1, 0)
	return Month{Year: prev.Year(), Mon: prev.Month()}
}

// Contains reports whether t falls within the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Mon
}

func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

func (m *Month) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errors.Errorf("invalid month %s", s)
	}
	parsed, err := ParseMonth(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
