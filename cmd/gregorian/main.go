// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command gregorian provides command line access to the date arithmetic,
// validation and conversion supported by cloudeng.io/gregorian.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

var (
	cmdSet *subcmd.CommandSet

	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

func init() {
	validCmd := subcmd.NewCommand("valid",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		validDate, subcmd.ExactlyNumArguments(3))
	validCmd.Document(`report whether <month> <day> <year> is a valid date.`)

	leapCmd := subcmd.NewCommand("leap",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		leapYears, subcmd.AtLeastNArguments(1))
	leapCmd.Document(`report whether each of the specified years is a leap year.`)

	addCmd := subcmd.NewCommand("add",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		addDays, subcmd.ExactlyNumArguments(2))
	addCmd.Document(`add days to a date. The number of days may be an integer or an ISO 8601 duration of weeks and days, eg. P1W3D. Use -- before a negative number of days.`)

	subCmd := subcmd.NewCommand("sub",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		subtractDays, subcmd.ExactlyNumArguments(2))
	subCmd.Document(`subtract days from a date, stopping at 0000-01-01.`)

	cmpCmd := subcmd.NewCommand("cmp",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		compareDates, subcmd.ExactlyNumArguments(2))
	cmpCmd.Document(`compare two dates and print <, = or >.`)

	diffCmd := subcmd.NewCommand("diff",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		diffDates, subcmd.ExactlyNumArguments(2))
	diffCmd.Document(`print the number of days from the first date to the second.`)

	rangeCmd := subcmd.NewCommand("range",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		listRange, subcmd.ExactlyNumArguments(1))
	rangeCmd.Document(`print every date in an inclusive range.`)

	convertCmd := subcmd.NewCommand("convert",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		convertDates, subcmd.OptionalSingleArgument())
	convertCmd.Document(`convert lines of '<month> <day> <year>' read from a file, or stdin, to yyyy-mm-dd. Blank lines and lines starting with # are ignored.`)

	cmdSet = subcmd.NewCommandSet(validCmd, leapCmd, addCmd, subCmd,
		cmpCmd, diffCmd, rangeCmd, convertCmd)
	cmdSet.Document(`validate, compare and perform arithmetic on gregorian calendar dates.

Invalid dates are handled according to the -policy flag, or the policy
set in the file specified by -config. The fallback policy substitutes
2000-01-01 for an invalid date and logs a warning, use -log-level=1 to
see these warnings. The strict policy treats an invalid date as an error.

A configuration file has the form:

  policy: strict
  logging:
    level: 1
    format: text
`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}
