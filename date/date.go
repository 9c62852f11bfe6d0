// Package date handles day granularity dates, as printed in tax documents.
package date

import (
	"fmt"
	"os"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// TXFFormat is the date format used in TXF files.
const TXFFormat = "01/02/2006"

// EnvTestingNow overrides the current time, in "2006-01-02 15:04:05" format.
// It is used by documentation tests to get stable outputs.
const EnvTestingNow = "MSSB_TESTING_NOW"

// Date represent a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
//
// It honors the EnvTestingNow environment variable.
func Today() Date {
	if v := os.Getenv(EnvTestingNow); v != "" {
		t, err := time.Parse("2006-01-02 15:04:05", v)
		if err != nil {
			panic(fmt.Sprintf("invalid %s=%q: %v", EnvTestingNow, v, err))
		}
		return New(t.Date())
	}
	return New(time.Now().Date())
}

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// TXF formats the date as MM/DD/YYYY.
func (d Date) TXF() string { return d.time().Format(TXFFormat) }

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// ParseTXF parses a date in the TXF MM/DD/YYYY format. Single digit month
// and day are accepted.
func ParseTXF(str string) (Date, error) {
	on, err := time.Parse("1/2/2006", str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, TXFFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
