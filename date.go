// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import "time"

// Date represents a day in the proleptic Gregorian calendar. The fields
// are stored relative to Default so that the zero value is Default and
// hence valid. Date values may be compared using ==.
type Date struct {
	year  int // year - 2000
	month int // month - 1
	day   int // day - 1
}

const (
	defaultYear = 2000
)

var (
	// Default is the date used in place of invalid input, January 1, 2000.
	// It is also the zero value of Date.
	Default = Date{}

	// Earliest is the earliest representable date, January 1, year 0.
	Earliest = newDate(1, 1, 0)
)

// newDate assumes that month, day and year are valid.
func newDate(month, day, year int) Date {
	return Date{year: year - defaultYear, month: month - 1, day: day - 1}
}

func (d Date) mdy() (month, day, year int) {
	return d.month + 1, d.day + 1, d.year + defaultYear
}

// New returns the Date for the specified month, day and year. If the
// combination is not valid a diagnostic is logged and Default is
// returned instead.
func New(month, day, year int) Date {
	d, _ := Fallback.New(month, day, year)
	return d
}

// Make is like New except that invalid input results in an error
// that wraps ErrInvalidDate.
func Make(month, day, year int) (Date, error) {
	return Strict.New(month, day, year)
}

// Month returns the month, 1-12.
func (d Date) Month() int {
	return d.month + 1
}

// Day returns the day of the month, starting at 1.
func (d Date) Day() int {
	return d.day + 1
}

// Year returns the year.
func (d Date) Year() int {
	return d.year + defaultYear
}

// SetMonth sets the month if the resulting date is valid. Otherwise
// a diagnostic is logged, d is left unchanged and an *InvalidDateError
// is returned.
func (d *Date) SetMonth(month int) error {
	_, day, year := d.mdy()
	if !IsValid(month, day, year) {
		reportRejected("month", month, day, year)
		return newInvalidDateError(month, day, year)
	}
	d.month = month - 1
	return nil
}

// SetDay is like SetMonth but for the day of the month.
func (d *Date) SetDay(day int) error {
	month, _, year := d.mdy()
	if !IsValid(month, day, year) {
		reportRejected("day", month, day, year)
		return newInvalidDateError(month, day, year)
	}
	d.day = day - 1
	return nil
}

// SetYear is like SetMonth but for the year. Note that setting
// a non-leap year for February 29 is rejected.
func (d *Date) SetYear(year int) error {
	month, day, _ := d.mdy()
	if !IsValid(month, day, year) {
		reportRejected("year", month, day, year)
		return newInvalidDateError(month, day, year)
	}
	d.year = year - defaultYear
	return nil
}

// DaysInMonth returns the number of days in the month of d.
func (d Date) DaysInMonth() int {
	month, _, year := d.mdy()
	return monthLength(month, year)
}

// DayOfYear returns the day of the year, 1-365 for common years
// and 1-366 for leap years.
func (d Date) DayOfYear() int {
	month, day, year := d.mdy()
	n := dayOfYear[month-1] + day
	if month > 2 && IsLeap(year) {
		n++
	}
	return n
}

// ordinal returns the number of days since January 1, year 0.
func (d Date) ordinal() int {
	year := d.Year()
	return year*365 + leapYearsBefore(year) + d.DayOfYear() - 1
}

// DaysSince returns the number of days from o to d, which is negative
// if d is before o.
func (d Date) DaysSince(o Date) int {
	return d.ordinal() - o.ordinal()
}

// Weekday returns the day of the week for d. January 1, year 0 is
// a Saturday in the proleptic Gregorian calendar.
func (d Date) Weekday() time.Weekday {
	return time.Weekday((int(time.Saturday) + d.ordinal()) % 7)
}
