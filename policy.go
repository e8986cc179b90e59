// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"fmt"
	"strings"
)

// Policy determines how invalid input is handled when creating or
// parsing a Date.
type Policy int

const (
	// Fallback replaces invalid input with Default and logs a diagnostic.
	// No error is returned for invalid dates.
	Fallback Policy = iota
	// Strict returns an error that wraps ErrInvalidDate.
	Strict
)

func (p Policy) String() string {
	switch p {
	case Fallback:
		return "fallback"
	case Strict:
		return "strict"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses "fallback" or "strict" in any case.
func ParsePolicy(val string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "fallback", "":
		return Fallback, nil
	case "strict":
		return Strict, nil
	}
	return Fallback, fmt.Errorf("unrecognised policy %q, expected fallback or strict", val)
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	np, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = np
	return nil
}

// New returns the Date for month, day and year. Invalid input is handled
// according to the policy.
func (p Policy) New(month, day, year int) (Date, error) {
	if IsValid(month, day, year) {
		return newDate(month, day, year), nil
	}
	return p.invalid(month, day, year)
}

func (p Policy) invalid(month, day, year int) (Date, error) {
	if p == Strict {
		return Default, newInvalidDateError(month, day, year)
	}
	reportFallback(month, day, year)
	return Default, nil
}
