package types

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// DayFormat is the calendar date layout used across the service
const DayFormat = "2006-01-02"

// Day identifies a calendar date at day granularity (YYYY-MM-DD).
// All scheduling decisions key on this value.
type Day string

// NewDay truncates t to its calendar date in t's location
func NewDay(t time.Time) Day {
	return Day(t.Format(DayFormat))
}

// ParseDay parses a YYYY-MM-DD string into a Day
func ParseDay(s string) (Day, error) {
	day := Day(s)
	if err := day.Validate(); err != nil {
		return "", err
	}
	return day, nil
}

// Validate checks that the day is a well-formed calendar date
func (d Day) Validate() error {
	if d == "" {
		return goerr.New("day is empty")
	}
	if _, err := time.Parse(DayFormat, string(d)); err != nil {
		return goerr.Wrap(err, "invalid day format", goerr.V("day", string(d)))
	}
	return nil
}

// String returns the string representation of the day
func (d Day) String() string {
	return string(d)
}
