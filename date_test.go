// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"cloudeng.io/gregorian"
)

func TestNewValid(t *testing.T) {
	buf := captureDiagnostics(t)
	for _, year := range []int{0, 1, 400, 1900, 2000, 2023, 2024, 9999} {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= gregorian.DaysInMonth(year, month); day++ {
				d := gregorian.New(month, day, year)
				if got, want := d.Month(), month; got != want {
					t.Errorf("%v/%v/%v: got %v, want %v", month, day, year, got, want)
				}
				if got, want := d.Day(), day; got != want {
					t.Errorf("%v/%v/%v: got %v, want %v", month, day, year, got, want)
				}
				if got, want := d.Year(), year; got != want {
					t.Errorf("%v/%v/%v: got %v, want %v", month, day, year, got, want)
				}
			}
		}
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected diagnostics: %s", buf.String())
	}
}

func TestNewFallback(t *testing.T) {
	for _, tc := range [][3]int{
		{2, 30, 2023},
		{2, 29, 2023},
		{13, 1, 2024},
		{0, 1, 2024},
		{1, 0, 2024},
		{1, 1, -5},
	} {
		buf := captureDiagnostics(t)
		d := gregorian.New(tc[0], tc[1], tc[2])
		if got, want := d, gregorian.Default; got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
		if got, want := d.String(), "2000-01-01"; got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
		if !strings.Contains(buf.String(), "invalid date, using default") {
			t.Errorf("%v: missing diagnostic: %q", tc, buf.String())
		}
	}
}

func TestZeroValue(t *testing.T) {
	var d gregorian.Date
	if got, want := d, gregorian.New(1, 1, 2000); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.String(), "2000-01-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMake(t *testing.T) {
	buf := captureDiagnostics(t)
	d, err := gregorian.Make(7, 28, 2024)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.String(), "2024-07-28"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	_, err = gregorian.Make(2, 30, 2023)
	if !errors.Is(err, gregorian.ErrInvalidDate) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	var ide *gregorian.InvalidDateError
	if !errors.As(err, &ide) {
		t.Fatalf("wrong error type: %T", err)
	}
	if got, want := *ide, (gregorian.InvalidDateError{Month: 2, Day: 30, Year: 2023}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if buf.Len() != 0 {
		t.Errorf("strict construction should not log: %s", buf.String())
	}
}

func TestSetters(t *testing.T) {
	buf := captureDiagnostics(t)
	d := gregorian.New(1, 31, 2024)

	if err := d.SetMonth(2); !errors.Is(err, gregorian.ErrInvalidDate) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if got, want := d.String(), "2024-01-31"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !strings.Contains(buf.String(), "invalid month value") {
		t.Errorf("missing diagnostic: %q", buf.String())
	}

	if err := d.SetDay(29); err != nil {
		t.Fatal(err)
	}
	if err := d.SetMonth(2); err != nil {
		t.Fatal(err)
	}
	if got, want := d.String(), "2024-02-29"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	buf.Reset()
	if err := d.SetYear(2023); !errors.Is(err, gregorian.ErrInvalidDate) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if !strings.Contains(buf.String(), "invalid year value") {
		t.Errorf("missing diagnostic: %q", buf.String())
	}
	if err := d.SetYear(2028); err != nil {
		t.Fatal(err)
	}
	if got, want := d.String(), "2028-02-29"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	buf.Reset()
	if err := d.SetDay(30); !errors.Is(err, gregorian.ErrInvalidDate) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if !strings.Contains(buf.String(), "invalid day value") {
		t.Errorf("missing diagnostic: %q", buf.String())
	}
	if err := d.SetYear(-1); err == nil {
		t.Errorf("expected an error")
	}
	if got, want := d.String(), "2028-02-29"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDayOfYear(t *testing.T) {
	nd := gregorian.New
	for _, tc := range []struct {
		d   gregorian.Date
		day int
	}{
		{nd(1, 1, 2023), 1},
		{nd(2, 2, 2023), 31 + 2},
		{nd(3, 1, 2023), 31 + 28 + 1},
		{nd(3, 1, 2024), 31 + 29 + 1},
		{nd(2, 29, 2024), 31 + 29},
		{nd(12, 31, 2023), 365},
		{nd(12, 31, 2024), 366},
	} {
		if got, want := tc.d.DayOfYear(), tc.day; got != want {
			t.Errorf("%v: got %v, want %v", tc.d, got, want)
		}
	}
	if got, want := nd(2, 1, 2024).DaysInMonth(), 29; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWeekdayAndDaysSince(t *testing.T) {
	start := gregorian.Earliest
	startTime := start.In(time.UTC)
	for _, year := range []int{0, 1, 99, 1582, 1752, 1900, 1970, 2000, 2024} {
		for month := 1; month <= 12; month++ {
			d := gregorian.New(month, 15, year)
			tm := d.In(time.UTC)
			if got, want := d.Weekday(), tm.Weekday(); got != want {
				t.Errorf("%v: got %v, want %v", d, got, want)
			}
			days := int((tm.Unix() - startTime.Unix()) / (24 * 60 * 60))
			if got, want := d.DaysSince(start), days; got != want {
				t.Errorf("%v: got %v, want %v", d, got, want)
			}
			if got, want := start.DaysSince(d), -days; got != want {
				t.Errorf("%v: got %v, want %v", d, got, want)
			}
		}
	}
	if got, want := gregorian.New(7, 28, 2024).Weekday(), time.Sunday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
