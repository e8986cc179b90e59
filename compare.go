// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import "cmp"

// Equal returns true if d and o have the same year, month and day.
func (d Date) Equal(o Date) bool {
	return d == o
}

// Compare returns -1 if d is before o, 0 if they are equal and +1
// if d is after o. The year is compared first, then the month and
// finally the day.
func (d Date) Compare(o Date) int {
	if c := cmp.Compare(d.year, o.year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.month, o.month); c != 0 {
		return c
	}
	return cmp.Compare(d.day, o.day)
}

// Compare returns a.Compare(b) and is intended for use with slices.SortFunc
// and similar.
func Compare(a, b Date) int {
	return a.Compare(b)
}

// Before returns true if d is strictly before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// OnOrBefore returns true if d is before or equal to o.
func (d Date) OnOrBefore(o Date) bool {
	return d.Before(o) || d.Equal(o)
}

// After returns true if d is strictly after o.
func (d Date) After(o Date) bool {
	return !d.OnOrBefore(o)
}

// OnOrAfter returns true if d is after or equal to o.
func (d Date) OnOrAfter(o Date) bool {
	return !d.Before(o)
}
