// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"fmt"
	"iter"
	"strings"
)

// Range represents an inclusive range of dates.
type Range struct {
	from, to Date
}

// NewRange returns a Range for the from/to dates. If the from date is
// later than the to date then they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{from: from, to: to}
}

// From returns the first date in the range.
func (r Range) From() Date {
	return r.from
}

// To returns the last date in the range.
func (r Range) To() Date {
	return r.to
}

// Len returns the number of days in the range.
func (r Range) Len() int {
	return r.to.DaysSince(r.from) + 1
}

// Include returns true if d is within the range.
func (r Range) Include(d Date) bool {
	return d.OnOrAfter(r.from) && d.OnOrBefore(r.to)
}

// OnOrAfter returns a new Range with the from date set to on
// or after the specified date. It returns false if the resulting
// range is empty.
func (r Range) OnOrAfter(start Date) (Range, bool) {
	if r.from.OnOrAfter(start) {
		return r, true
	}
	if start.After(r.to) {
		return Range{}, false
	}
	return Range{from: start, to: r.to}, true
}

// OnOrBefore returns a new Range with the to date set to on
// or before the specified date. It returns false if the resulting
// range is empty.
func (r Range) OnOrBefore(end Date) (Range, bool) {
	if r.to.OnOrBefore(end) {
		return r, true
	}
	if end.Before(r.from) {
		return Range{}, false
	}
	return Range{from: r.from, to: end}, true
}

// Dates returns an iterator that yields each Date in the range.
func (r Range) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.from; d.OnOrBefore(r.to); d = d.AddDays(1) {
			if !yield(d) {
				return
			}
		}
	}
}

func (r Range) String() string {
	return fmt.Sprintf("%s - %s", r.from, r.to)
}

// Parse parses a range in the format 'YYYY-MM-DD:YYYY-MM-DD'. The start
// date must not be after the end date.
func (r *Range) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, %q expected '<from>:<to>'", val)
	}
	from, err := ParseISO(parts[0])
	if err != nil {
		return fmt.Errorf("invalid from: %s: %w", parts[0], err)
	}
	to, err := ParseISO(parts[1])
	if err != nil {
		return fmt.Errorf("invalid to: %s: %w", parts[1], err)
	}
	if to.Before(from) {
		return fmt.Errorf("from is later than to: %s %s", from, to)
	}
	*r = Range{from: from, to: to}
	return nil
}
