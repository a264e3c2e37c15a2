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
	"errors"
	"io"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/scatter/optional"
)

func TestRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	for _, err := range []error{
		w.PutString("silicon"),
		w.PutFloat64(7.83),
		w.PutUint32(42),
		w.PutBool(true),
		w.PutOptional(optional.Float64{}),
		w.PutOptional(optional.NewFloat64(1.12)),
		w.PutFloat64(math.Inf(-1)),
		w.PutString(""),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}
	if w.Count() != int64(buf.Len()) {
		t.Errorf("Count() = %d, but %d bytes were written", w.Count(), buf.Len())
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	name, err := r.GetString()
	if err != nil || name != "silicon" {
		t.Errorf("GetString() = %q, %v", name, err)
	}
	x, err := r.GetFloat64()
	if err != nil || x != 7.83 {
		t.Errorf("GetFloat64() = %g, %v", x, err)
	}
	n, err := r.GetUint32()
	if err != nil || n != 42 {
		t.Errorf("GetUint32() = %d, %v", n, err)
	}
	b, err := r.GetBool()
	if err != nil || !b {
		t.Errorf("GetBool() = %t, %v", b, err)
	}
	opt, err := r.GetOptional()
	if err != nil || opt.IsSet() {
		t.Errorf("GetOptional() = %v, %v", opt, err)
	}
	opt, err = r.GetOptional()
	if err != nil || !opt.Equal(optional.NewFloat64(1.12)) {
		t.Errorf("GetOptional() = %v, %v", opt, err)
	}
	x, err = r.GetFloat64()
	if err != nil || !math.IsInf(x, -1) {
		t.Errorf("GetFloat64() = %g, %v", x, err)
	}
	name, err = r.GetString()
	if err != nil || name != "" {
		t.Errorf("GetString() = %q, %v", name, err)
	}

	if r.Pos() != int64(buf.Len()) {
		t.Errorf("Pos() = %d, want %d", r.Pos(), buf.Len())
	}
	_, err = r.GetUint32()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("reading past the end: got %v", err)
	}
}

func TestLayout(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	_ = w.PutString("ab")
	_ = w.PutUint32(0x01020304)
	_ = w.PutOptional(optional.NewFloat64(1))

	want := []byte{
		2, 0, 0, 0, 'a', 'b',
		4, 3, 2, 1,
		1,
		0, 0, 0, 0, 0, 0, 0xf0, 0x3f,
	}
	if d := cmp.Diff(want, buf.Bytes()); d != "" {
		t.Errorf("unexpected encoding (-want +got):\n%s", d)
	}
}

func TestInvalidBool(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{7}))
	_, err := r.GetBool()
	var archiveErr *Error
	if !errors.As(err, &archiveErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if archiveErr.Pos != 0 {
		t.Errorf("error position %d, want 0", archiveErr.Pos)
	}
}

func TestTruncatedString(t *testing.T) {
	// declares 1000 bytes, provides 3
	data := []byte{0xe8, 0x03, 0, 0, 'a', 'b', 'c'}
	r := NewReader(bytes.NewReader(data))
	_, err := r.GetString()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("got %v, want unexpected EOF", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errBroken
}

var errBroken = errors.New("broken pipe")

func TestWriteError(t *testing.T) {
	w := NewWriter(failingWriter{})
	err := w.PutFloat64(1)
	if !errors.Is(err, errBroken) {
		t.Errorf("got %v, want %v", err, errBroken)
	}
}
