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

package archive

import (
	"errors"
	"strconv"
)

// Error records a failed read or write, together with the byte offset
// at which the failing value starts.
type Error struct {
	Pos int64
	Op  string
	Err error
}

func (err *Error) Error() string {
	return "archive: " + err.Op + " at byte " + strconv.FormatInt(err.Pos, 10) + ": " + err.Err.Error()
}

func (err *Error) Unwrap() error {
	return err.Err
}

var (
	errInvalidBool   = errors.New("invalid boolean value")
	errStringTooLong = errors.New("string too long")
)
