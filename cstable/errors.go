// seehuhn.de/go/scatter - electron scattering tables for Monte Carlo simulation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cstable

import (
	"errors"
	"fmt"
)

// SyntaxError reports a value which cannot be parsed.
type SyntaxError struct {
	// Attr is the name of the XML attribute holding the value, if known.
	Attr  string
	Value string
	Err   error
}

func (err *SyntaxError) Error() string {
	if err.Attr != "" {
		return fmt.Sprintf("cstable: %s=%q: %v", err.Attr, err.Value, err.Err)
	}
	return fmt.Sprintf("cstable: %q: %v", err.Value, err.Err)
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

// DimensionError reports a quantity with unexpected units.
type DimensionError struct {
	Got  Dim
	Want Dim
}

func (err *DimensionError) Error() string {
	return fmt.Sprintf("wrong dimension %s, expected %s", err.Got, err.Want)
}

// UnknownUnitError reports an unsupported unit name.
type UnknownUnitError struct {
	Name string
}

func (err *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", err.Name)
}

var (
	// ErrUnknownKind is returned when a table has an unsupported type.
	ErrUnknownKind = errors.New("cstable: unknown table type")

	// ErrMissingAttr is returned when a required XML attribute is absent.
	ErrMissingAttr = errors.New("cstable: missing attribute")
)
