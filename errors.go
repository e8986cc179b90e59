// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"errors"
	"fmt"
)

// ErrInvalidDate is the sentinel for all invalid month/day/year combinations.
var ErrInvalidDate = errors.New("invalid date")

// InvalidDateError records the offending month, day and year.
type InvalidDateError struct {
	Month, Day, Year int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%v: month %d, day %d, year %d", ErrInvalidDate, e.Month, e.Day, e.Year)
}

// Is supports errors.Is(err, ErrInvalidDate).
func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

func newInvalidDateError(month, day, year int) error {
	return &InvalidDateError{Month: month, Day: day, Year: year}
}
