package commission

import (
	"strconv"
	"time"
)

// isoDateLayout is the date format used throughout the FJC export.
const isoDateLayout = "2006-01-02"

// yearOf extracts the calendar year from a date string in "YYYY-MM-DD" form.
// A handful of historical rows carry malformed dates; for those the first
// four characters are read as an integer year. Anything else yields nil,
// never an error: an unparseable date degrades to "no year".
func yearOf(date string) *int {
	if date == "" {
		return nil
	}
	if t, err := time.Parse(isoDateLayout, date); err == nil {
		y := t.Year()
		return &y
	}
	if len(date) >= 4 {
		if y, err := strconv.Atoi(date[:4]); err == nil {
			return &y
		}
	}
	return nil
}

// startYear resolves the service start year of a record: the commission date
// year, falling back to the recess appointment date when no commission date
// exists. The second return is false when both source fields are blank, i.e.
// the row is a nomination that was never commissioned.
func startYear(rec Record) (*int, bool) {
	date := rec.CommissionDate
	if date == "" {
		date = rec.RecessDate
	}
	if date == "" {
		return nil, false
	}
	return yearOf(date), true
}
