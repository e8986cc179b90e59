// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian_test

import (
	"errors"
	"testing"

	"cloudeng.io/gregorian"
)

func TestParseDays(t *testing.T) {
	for _, tc := range []struct {
		dur  string
		days int
	}{
		{"0", 0},
		{"10", 10},
		{"-3", -3},
		{"P1D", 1},
		{"P10D", 10},
		{"P2W", 14},
		{"P1W3D", 10},
		{"-P1W", -7},
		{"P0D", 0},
	} {
		days, err := gregorian.ParseDays(tc.dur)
		if err != nil {
			t.Errorf("%v: %v", tc.dur, err)
			continue
		}
		if got, want := days, tc.days; got != want {
			t.Errorf("%v: got %v, want %v", tc.dur, got, want)
		}
	}

	for _, tc := range []string{
		"",
		"P",
		"-P",
		"D",
		"1D",
		"PD",
		"P1Y",
		"P1M",
		"PT1H",
		"P1.5D",
		"P1D1D",
		"P1X",
	} {
		if _, err := gregorian.ParseDays(tc); !errors.Is(err, gregorian.ErrInvalidISO8601Duration) {
			t.Errorf("%q: unexpected or missing error: %v", tc, err)
		}
	}
}
