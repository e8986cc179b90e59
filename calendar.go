// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

// daysInMonth is indexed by month-1 and is never modified.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// dayOfYear holds the cumulative number of days preceding each month
// in a common year.
var dayOfYear = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

const (
	daysPer400Years = 146097
	yearsPerCycle   = 400
)

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month for the given
// year, or 0 if month is not in the range 1-12.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return monthLength(month, year)
}

func monthLength(month, year int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// IsValid returns true if month, day and year form a valid date in the
// proleptic Gregorian calendar with a year of zero or later.
func IsValid(month, day, year int) bool {
	if year < 0 || month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= monthLength(month, year)
}

// leapYearsBefore returns the number of leap years in [0, year).
func leapYearsBefore(year int) int {
	return (year+3)/4 - (year+99)/100 + (year+399)/400
}
