// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"

	"cloudeng.io/errors"
	"cloudeng.io/gregorian"
)

// parseDate parses a yyyy-mm-dd date. Well formed but invalid dates,
// such as 2023-02-29, are handled according to policy.
func parseDate(policy gregorian.Policy, val string) (gregorian.Date, error) {
	d, err := gregorian.ParseISO(val)
	if err == nil {
		return d, nil
	}
	var ide *gregorian.InvalidDateError
	if errors.As(err, &ide) {
		return policy.New(ide.Month, ide.Day, ide.Year)
	}
	return d, err
}

func parseInts(args []string) ([]int, error) {
	ints := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", a, err)
		}
		ints[i] = n
	}
	return ints, nil
}

func validDate(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*CommonFlags)
	_, policy, done, err := cl.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	mdy, err := parseInts(args)
	if err != nil {
		return err
	}
	if gregorian.IsValid(mdy[0], mdy[1], mdy[2]) {
		fmt.Fprintf(stdout, "%v: valid\n", gregorian.New(mdy[0], mdy[1], mdy[2]))
		return nil
	}
	d, err := policy.New(mdy[0], mdy[1], mdy[2])
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%d %d %d: invalid, using %v\n", mdy[0], mdy[1], mdy[2], d)
	return nil
}

func leapYears(ctx context.Context, values interface{}, args []string) error {
	years, err := parseInts(args)
	if err != nil {
		return err
	}
	for _, y := range years {
		kind := "common"
		if gregorian.IsLeap(y) {
			kind = "leap"
		}
		fmt.Fprintf(stdout, "%d: %s\n", y, kind)
	}
	return nil
}

func dateAndDays(ctx context.Context, values interface{}, args []string, op func(gregorian.Date, int) gregorian.Date) error {
	cl := values.(*CommonFlags)
	_, policy, done, err := cl.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	d, err := parseDate(policy, args[0])
	if err != nil {
		return err
	}
	days, err := gregorian.ParseDays(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, op(d, days))
	return nil
}

func addDays(ctx context.Context, values interface{}, args []string) error {
	return dateAndDays(ctx, values, args, gregorian.Date.AddDays)
}

func subtractDays(ctx context.Context, values interface{}, args []string) error {
	return dateAndDays(ctx, values, args, gregorian.Date.SubtractDays)
}

func twoDates(ctx context.Context, values interface{}, args []string) (gregorian.Date, gregorian.Date, func(), error) {
	cl := values.(*CommonFlags)
	_, policy, done, err := cl.setup(ctx)
	if err != nil {
		return gregorian.Default, gregorian.Default, nil, err
	}
	var errs errors.M
	a, err := parseDate(policy, args[0])
	errs.Append(err)
	b, err := parseDate(policy, args[1])
	errs.Append(err)
	if err := errs.Err(); err != nil {
		done()
		return gregorian.Default, gregorian.Default, nil, err
	}
	return a, b, done, nil
}

func compareDates(ctx context.Context, values interface{}, args []string) error {
	a, b, done, err := twoDates(ctx, values, args)
	if err != nil {
		return err
	}
	defer done()
	switch gregorian.Compare(a, b) {
	case -1:
		fmt.Fprintf(stdout, "%v < %v\n", a, b)
	case 0:
		fmt.Fprintf(stdout, "%v = %v\n", a, b)
	default:
		fmt.Fprintf(stdout, "%v > %v\n", a, b)
	}
	return nil
}

func diffDates(ctx context.Context, values interface{}, args []string) error {
	a, b, done, err := twoDates(ctx, values, args)
	if err != nil {
		return err
	}
	defer done()
	fmt.Fprintln(stdout, b.DaysSince(a))
	return nil
}

func listRange(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*CommonFlags)
	_, _, done, err := cl.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	var r gregorian.Range
	if err := r.Parse(args[0]); err != nil {
		return err
	}
	for d := range r.Dates() {
		fmt.Fprintln(stdout, d)
	}
	return nil
}
