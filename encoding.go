// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"database/sql/driver"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Dates may be specified
// in either YYYY-MM-DD or 'month day year' format.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a date, got a yaml node of kind %v", value.Line, value.Kind)
	}
	nd, err := ParseISO(value.Value)
	if err != nil {
		var merr error
		if nd, merr = ParseMDY(value.Value); merr != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
	}
	*d = nd
	return nil
}

// Value implements driver.Valuer, dates are stored as YYYY-MM-DD strings.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// NullDate represents a Date that may be null and implements
// sql.Scanner and driver.Valuer.
type NullDate struct {
	Date  Date
	Valid bool // Valid is true if Date is not NULL
}

// Scan implements sql.Scanner. It accepts YYYY-MM-DD strings and byte
// slices as well as time.Time values.
func (nd *NullDate) Scan(src any) error {
	if src == nil {
		nd.Date, nd.Valid = Default, false
		return nil
	}
	var (
		d   Date
		err error
	)
	switch v := src.(type) {
	case string:
		d, err = ParseISO(v)
	case []byte:
		d, err = ParseISO(string(v))
	case time.Time:
		d, err = FromTime(v)
	default:
		err = fmt.Errorf("cannot scan %T into a gregorian.NullDate", src)
	}
	if err != nil {
		return err
	}
	nd.Date, nd.Valid = d, true
	return nil
}

// Value implements driver.Valuer.
func (nd NullDate) Value() (driver.Value, error) {
	if !nd.Valid {
		return nil, nil
	}
	return nd.Date.Value()
}
