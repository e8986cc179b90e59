// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrInvalidISO8601Duration = errors.New("invalid ISO8601 duration")

func consumeN(dur string) (int, byte, int, error) {
	for i := range dur {
		c := dur[i]
		if c >= '0' && c <= '9' {
			continue
		}
		switch c {
		case 'W', 'D':
			n, err := strconv.Atoi(dur[:i])
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", dur[:i], dur, ErrInvalidISO8601Duration)
			}
			return n, c, i + 1, nil
		case 'Y', 'M', 'T', 'H', 'S':
			return 0, 0, 0, fmt.Errorf("duration designator %c is not a whole number of days: %s: %w", c, dur, ErrInvalidISO8601Duration)
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or duration designator: %s: %w", dur, ErrInvalidISO8601Duration)
}

// ParseDays parses an ISO8601 duration that is restricted to weeks and
// days, ie. [-]PnWnD, and returns the number of days it represents.
// Years, months and time components are rejected since they do not
// correspond to a fixed number of days. For convenience a plain
// integer is also accepted.
func ParseDays(dur string) (int, error) {
	if n, err := strconv.Atoi(dur); err == nil {
		return n, nil
	}
	nl := len(dur)
	hasP, hasNP := (nl > 0 && dur[0] == 'P'), (nl > 1 && dur[0] == '-' && dur[1] == 'P')
	if !hasP && !hasNP {
		return 0, fmt.Errorf("duration must start with P or -P: %s: %w", dur, ErrInvalidISO8601Duration)
	}
	dur = dur[1:]
	if hasNP {
		dur = dur[1:]
	}
	if len(dur) == 0 {
		return 0, fmt.Errorf("empty duration: %w", ErrInvalidISO8601Duration)
	}
	var days int
	seen := map[byte]bool{}
	for len(dur) > 0 {
		n, designator, idx, err := consumeN(dur)
		if err != nil {
			return 0, err
		}
		if seen[designator] {
			return 0, fmt.Errorf("duplicate duration designator: %c: %w", designator, ErrInvalidISO8601Duration)
		}
		seen[designator] = true
		dur = dur[idx:]
		switch designator {
		case 'W':
			days += n * 7
		case 'D':
			days += n
		}
	}
	if hasNP {
		days = -days
	}
	return days, nil
}
