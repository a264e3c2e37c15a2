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

// Package archive reads and writes sequences of typed values in a compact
// binary format.
//
// Values are written in the order the caller chooses, without padding or
// type tags, so reader and writer must agree on the sequence of calls.
// All numbers are little endian.
//
//	string     uint32 length, followed by the bytes
//	float64    IEEE 754 binary64
//	uint32     4 bytes
//	bool       1 byte, 0 or 1
//	optional   bool presence flag, followed by a float64 if present
package archive

import (
	"encoding/binary"
	"io"
	"math"

	"seehuhn.de/go/scatter/optional"
)

// Writer writes typed values to an underlying io.Writer.
type Writer struct {
	w   io.Writer
	n   int64
	buf [8]byte
}

// NewWriter returns a Writer which writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Count returns the number of bytes written so far.
func (w *Writer) Count() int64 {
	return w.n
}

// PutString writes a length-prefixed string.
func (w *Writer) PutString(s string) error {
	if uint64(len(s)) > math.MaxUint32 {
		return &Error{Pos: w.n, Op: "write", Err: errStringTooLong}
	}
	err := w.PutUint32(uint32(len(s)))
	if err != nil {
		return err
	}
	return w.write([]byte(s))
}

// PutFloat64 writes a 64-bit floating point number.
func (w *Writer) PutFloat64(x float64) error {
	binary.LittleEndian.PutUint64(w.buf[:8], math.Float64bits(x))
	return w.write(w.buf[:8])
}

// PutUint32 writes a 32-bit unsigned integer.
func (w *Writer) PutUint32(x uint32) error {
	binary.LittleEndian.PutUint32(w.buf[:4], x)
	return w.write(w.buf[:4])
}

// PutBool writes a boolean as a single byte.
func (w *Writer) PutBool(b bool) error {
	w.buf[0] = 0
	if b {
		w.buf[0] = 1
	}
	return w.write(w.buf[:1])
}

// PutOptional writes a presence flag, followed by the value if it is set.
func (w *Writer) PutOptional(x optional.Float64) error {
	val, ok := x.Get()
	err := w.PutBool(ok)
	if err != nil || !ok {
		return err
	}
	return w.PutFloat64(val)
}

func (w *Writer) write(p []byte) error {
	n, err := w.w.Write(p)
	pos := w.n
	w.n += int64(n)
	if err != nil {
		return &Error{Pos: pos, Op: "write", Err: err}
	}
	return nil
}
