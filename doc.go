// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package gregorian provides a calendar date value type for the proleptic
// Gregorian calendar from year 0 onwards, without time of day or time zone.
//
// A Date is always valid. Invalid input to New, Read and fmt style scanning
// is replaced by Default (January 1, 2000) and a diagnostic is logged,
// whereas invalid input to the setters leaves the Date unchanged:
//
//	d := gregorian.New(2, 30, 2023) // logs a warning, d is 2000-01-01
//	if err := d.SetDay(31); err != nil {
//		// d is still 2000-01-01
//	}
//
// Callers that prefer errors to substitution can use Make, ParseMDY,
// ParseISO or the Strict Policy, and IsValid may be used to check input
// ahead of time. Diagnostics are written using log/slog to the logger set
// via SetLogger.
//
// Arithmetic is in whole days:
//
//	d := gregorian.New(2, 28, 2024)
//	d = d.AddDays(1)  // 2024-02-29
//	d.Increment()     // 2024-03-01
//	fmt.Println(d)    // 2024-03-01
package gregorian
