package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateLayout is the calendar-date form used on the wire and in storage.
const DateLayout = "2006-01-02"

// Date is a calendar date kept in its YYYY-MM-DD text form. The raw text is
// preserved so breakdowns that work on its components see exactly what was
// stored.
type Date string

// DateOf formats t as a Date.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// Time parses the date at midnight UTC.
func (d Date) Time() (time.Time, error) {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", string(d), err)
	}
	return t, nil
}

// Valid reports whether d is a real calendar date in YYYY-MM-DD form.
func (d Date) Valid() bool {
	_, err := d.Time()
	return err == nil
}

// Month returns the YYYY-MM prefix, or "" when the date is too short.
func (d Date) Month() string {
	if len(d) < 7 {
		return ""
	}
	return string(d[:7])
}

// Scan implements sql.Scanner. Postgres and sqlite both hand back DATE
// columns as time.Time; text values are kept verbatim.
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = DateOf(v.UTC())
	case string:
		*d = Date(v)
	case []byte:
		*d = Date(v)
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return string(d), nil
}
