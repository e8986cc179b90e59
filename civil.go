// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"time"

	"cloud.google.com/go/civil"
)

// FromCivil returns the Date for cd, or an error if cd is not valid
// or precedes Earliest.
func FromCivil(cd civil.Date) (Date, error) {
	return Make(int(cd.Month), cd.Day, cd.Year)
}

// Civil returns d as a civil.Date.
func (d Date) Civil() civil.Date {
	month, day, year := d.mdy()
	return civil.Date{Year: year, Month: time.Month(month), Day: day}
}

// FromTime returns the Date of t in t's location. An error is returned
// for times before January 1, year 0.
func FromTime(t time.Time) (Date, error) {
	year, month, day := t.Date()
	return Make(int(month), day, year)
}

// In returns midnight at the start of d in the specified location.
func (d Date) In(loc *time.Location) time.Time {
	month, day, year := d.mdy()
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}

// Today returns the current date in the specified location.
func Today(loc *time.Location) Date {
	d, _ := FromTime(time.Now().In(loc))
	return d
}
