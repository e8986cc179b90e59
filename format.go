// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// String returns d formatted as YYYY-MM-DD. Years are zero padded to
// four digits.
func (d Date) String() string {
	month, day, year := d.mdy()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

var isoDateRe = regexp.MustCompile(`^([0-9]{4,})-([0-9]{2})-([0-9]{2})$`)

// ParseISO parses a date in the YYYY-MM-DD format produced by String.
// An invalid date results in an error that wraps ErrInvalidDate.
func ParseISO(val string) (Date, error) {
	parts := isoDateRe.FindStringSubmatch(val)
	if len(parts) != 4 {
		return Default, fmt.Errorf("invalid date %q, expected format YYYY-MM-DD", val)
	}
	var fields [3]int
	for i, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Default, fmt.Errorf("invalid date %q: %w", val, err)
		}
		fields[i] = n
	}
	return Make(fields[1], fields[2], fields[0])
}

// ParseMDY parses a date as three whitespace separated integers,
// "month day year", returning an error for invalid dates.
func ParseMDY(val string) (Date, error) {
	return Strict.ParseMDY(val)
}

// ParseMDY parses a date as three whitespace separated integers,
// "month day year". Malformed input always results in an error, an
// invalid date is handled according to the policy.
func (p Policy) ParseMDY(val string) (Date, error) {
	parts := strings.Fields(val)
	if len(parts) != 3 {
		return Default, fmt.Errorf("invalid date %q, expected 'month day year'", val)
	}
	var fields [3]int
	for i, f := range parts {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Default, fmt.Errorf("invalid date %q: %w", val, err)
		}
		fields[i] = n
	}
	return p.New(fields[0], fields[1], fields[2])
}

// Read reads a date as three whitespace separated integers, month,
// day and year, from r using the Fallback policy.
func Read(r io.Reader) (Date, error) {
	return Fallback.Read(r)
}

// Read reads a date as three whitespace separated integers, month, day
// and year, from r. Read and integer syntax errors are returned as is, an
// invalid date is handled according to the policy. As with fmt.Fscan, r
// should implement io.RuneScanner if more input is to be read from it
// subsequently.
func (p Policy) Read(r io.Reader) (Date, error) {
	var month, day, year int
	if _, err := fmt.Fscan(r, &month, &day, &year); err != nil {
		return Default, err
	}
	return p.New(month, day, year)
}

func isIntegerRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == '+'
}

// Scan implements fmt.Scanner. It reads three whitespace separated
// integers, month, day and year. Invalid dates are replaced by Default
// and a diagnostic is logged. If the input cannot be read, or is not
// an integer, an error is returned and d is left unchanged. Note that
// fmt reports running out of input as io.ErrUnexpectedEOF.
func (d *Date) Scan(state fmt.ScanState, _ rune) error {
	var fields [3]int
	for i := range fields {
		tok, err := state.Token(true, isIntegerRune)
		if err != nil {
			return err
		}
		if len(tok) == 0 {
			return io.ErrUnexpectedEOF
		}
		n, err := strconv.Atoi(string(tok))
		if err != nil {
			return fmt.Errorf("invalid date field %q: %w", tok, err)
		}
		fields[i] = n
	}
	*d, _ = Fallback.New(fields[0], fields[1], fields[2])
	return nil
}

// MarshalText implements encoding.TextMarshaler using the YYYY-MM-DD
// format.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, it uses ParseISO
// and hence returns an error for invalid dates.
func (d *Date) UnmarshalText(text []byte) error {
	nd, err := ParseISO(string(text))
	if err != nil {
		return err
	}
	*d = nd
	return nil
}
