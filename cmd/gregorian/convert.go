// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"cloudeng.io/errors"
	"cloudeng.io/file"
	"cloudeng.io/gregorian"
	"cloudeng.io/logging/ctxlog"
)

func convertDates(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*CommonFlags)
	ctx, policy, done, err := cl.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	name, rd := "stdin", stdin
	if len(args) == 1 {
		f, err := file.FSOpen(ctx, args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		name, rd = args[0], f
	}
	return convert(ctx, policy, name, rd, stdout)
}

// convert writes each 'month day year' line read from rd to out in
// yyyy-mm-dd form. All lines are processed and the errors encountered
// returned together.
func convert(ctx context.Context, policy gregorian.Policy, name string, rd io.Reader, out io.Writer) error {
	var errs errors.M
	sc := bufio.NewScanner(rd)
	lineno, converted := 0, 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		d, err := policy.ParseMDY(line)
		if err != nil {
			errs.Append(fmt.Errorf("%v:%d: %w", name, lineno, err))
			continue
		}
		fmt.Fprintln(out, d)
		converted++
	}
	errs.Append(sc.Err())
	ctxlog.Logger(ctx).Info("convert", "input", name, "lines", lineno, "converted", converted, "policy", policy.String())
	return errs.Err()
}
