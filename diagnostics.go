// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"log/slog"
	"os"
	"sync/atomic"
)

var diagnostics atomic.Pointer[slog.Logger]

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func init() {
	diagnostics.Store(defaultLogger())
}

// SetLogger sets the logger used to report invalid input that was
// replaced by Default or rejected by a setter. It returns the previously
// installed logger. A nil logger restores the default, which writes
// text formatted records to os.Stderr.
func SetLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = defaultLogger()
	}
	return diagnostics.Swap(logger)
}

func logger() *slog.Logger {
	return diagnostics.Load()
}

func reportFallback(month, day, year int) {
	logger().Warn("invalid date, using default",
		"month", month, "day", day, "year", year, "default", Default.String())
}

func reportRejected(field string, month, day, year int) {
	logger().Warn("invalid "+field+" value, date unchanged",
		"month", month, "day", day, "year", year)
}

func reportSaturated(n int, from Date) {
	logger().Warn("date arithmetic underflow, using earliest date",
		"date", from.String(), "days", n, "earliest", Earliest.String())
}
