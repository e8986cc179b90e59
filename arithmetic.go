// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import "math"

// AddDays returns the date n days after d. A negative n is equivalent
// to SubtractDays(-n).
//
// Whole 400 year cycles are applied directly to the year, the remaining
// days are added to the day of the month and then, while the day exceeds
// the length of the current month, that length is subtracted and the month
// advanced, wrapping December to January of the following year.
func (d Date) AddDays(n int) Date {
	if n < 0 {
		if n == math.MinInt {
			reportSaturated(n, d)
			return Earliest
		}
		return d.SubtractDays(-n)
	}
	month, day, year := d.mdy()
	year += yearsPerCycle * (n / daysPer400Years)
	day += n % daysPer400Years
	for day > monthLength(month, year) {
		day -= monthLength(month, year)
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	return newDate(month, day, year)
}

// SubtractDays returns the date n days before d. A negative n is
// equivalent to AddDays(-n). Results that would precede Earliest are
// replaced by Earliest and a diagnostic is logged.
//
// While the day of the month is less than one the month is moved back,
// wrapping January to December of the preceding year, and the length of
// the month moved back to, for its own year, is added to the day.
func (d Date) SubtractDays(n int) Date {
	if n < 0 {
		if n == math.MinInt {
			return d.AddDays(math.MaxInt)
		}
		return d.AddDays(-n)
	}
	month, day, year := d.mdy()
	year -= yearsPerCycle * (n / daysPer400Years)
	day -= n % daysPer400Years
	for day < 1 {
		month--
		if month < 1 {
			month = 12
			year--
		}
		day += monthLength(month, year)
	}
	if year < 0 {
		reportSaturated(-n, d)
		return Earliest
	}
	return newDate(month, day, year)
}

// Add returns d.AddDays(n).
func Add(n int, d Date) Date {
	return d.AddDays(n)
}

// Subtract returns d.SubtractDays(n).
func Subtract(n int, d Date) Date {
	return d.SubtractDays(n)
}

// Increment advances d by one day and returns the new value.
func (d *Date) Increment() Date {
	*d = d.AddDays(1)
	return *d
}

// PostIncrement advances d by one day and returns the value
// prior to being advanced.
func (d *Date) PostIncrement() Date {
	prev := *d
	*d = d.AddDays(1)
	return prev
}

// Decrement moves d back by one day and returns the new value.
func (d *Date) Decrement() Date {
	*d = d.SubtractDays(1)
	return *d
}

// PostDecrement moves d back by one day and returns the value
// prior to being moved.
func (d *Date) PostDecrement() Date {
	prev := *d
	*d = d.SubtractDays(1)
	return prev
}
