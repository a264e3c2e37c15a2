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
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"seehuhn.de/go/scatter/optional"
)

// Reader reads typed values from an underlying io.Reader.
type Reader struct {
	r   io.Reader
	pos int64
	buf [8]byte
}

// NewReader returns a Reader which reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Pos returns the number of bytes consumed so far.
func (r *Reader) Pos() int64 {
	return r.pos
}

// GetString reads a length-prefixed string.
func (r *Reader) GetString() (string, error) {
	n, err := r.GetUint32()
	if err != nil {
		return "", err
	}

	// n comes from the input and may be arbitrarily large.
	start := r.pos
	buf := &bytes.Buffer{}
	k, err := io.Copy(buf, io.LimitReader(r.r, int64(n)))
	r.pos += k
	if err == nil && k < int64(n) {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return "", &Error{Pos: start, Op: "read", Err: err}
	}
	return buf.String(), nil
}

// GetFloat64 reads a 64-bit floating point number.
func (r *Reader) GetFloat64() (float64, error) {
	err := r.read(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(r.buf[:8])), nil
}

// GetUint32 reads a 32-bit unsigned integer.
func (r *Reader) GetUint32() (uint32, error) {
	err := r.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.buf[:4]), nil
}

// GetBool reads a boolean.  Bytes other than 0 and 1 are rejected.
func (r *Reader) GetBool() (bool, error) {
	err := r.read(1)
	if err != nil {
		return false, err
	}
	switch r.buf[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &Error{Pos: r.pos - 1, Op: "read", Err: errInvalidBool}
	}
}

// GetOptional reads a presence flag, followed by the value if it is set.
func (r *Reader) GetOptional() (optional.Float64, error) {
	var res optional.Float64
	ok, err := r.GetBool()
	if err != nil || !ok {
		return res, err
	}
	val, err := r.GetFloat64()
	if err != nil {
		return res, err
	}
	res.Set(val)
	return res, nil
}

func (r *Reader) read(n int) error {
	k, err := io.ReadFull(r.r, r.buf[:n])
	pos := r.pos
	r.pos += int64(k)
	if err == io.EOF && n > 0 {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return &Error{Pos: pos, Op: "read", Err: err}
	}
	return nil
}
