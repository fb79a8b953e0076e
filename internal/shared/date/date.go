package date

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the wire format for calendar dates
const Layout = "2006-01-02"

// Date is a calendar date carried as YYYY-MM-DD in JSON and query strings
type Date struct {
	time.Time
}

func Parse(s string) (Date, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("date %q must be YYYY-MM-DD: %w", s, err)
	}
	return Date{Time: t}, nil
}

// Of truncates t to its calendar day in UTC
func Of(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// FromPtr converts an optional timestamp; nil stays nil
func FromPtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := Of(*t)
	return &d
}

// TimePtr returns the date as a UTC midnight timestamp, or nil for a nil date
func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func (d Date) String() string {
	return d.Format(Layout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalParam lets gin bind dates from query and form values
func (d *Date) UnmarshalParam(param string) error {
	parsed, err := Parse(param)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
