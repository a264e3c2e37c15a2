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

package optional

import "testing"

func TestFloat64ZeroValue(t *testing.T) {
	var x Float64
	_, ok := x.Get()
	if ok {
		t.Error("zero value should not be set")
	}
	if x.IsSet() {
		t.Error("IsSet should be false for the zero value")
	}
}

func TestFloat64SetZero(t *testing.T) {
	x := NewFloat64(0)
	v, ok := x.Get()
	if !ok {
		t.Error("should be set")
	}
	if v != 0 {
		t.Errorf("got %g, want 0", v)
	}
}

func TestFloat64Clear(t *testing.T) {
	x := NewFloat64(1.12)
	x.Clear()
	_, ok := x.Get()
	if ok {
		t.Error("should not be set after clear")
	}
}

func TestFloat64Equal(t *testing.T) {
	var unset1, unset2 Float64
	zero := NewFloat64(0)
	gap1 := NewFloat64(1.12)
	gap2 := NewFloat64(1.12)
	other := NewFloat64(5.5)

	if !unset1.Equal(unset2) {
		t.Error("two unset values should be equal")
	}
	if !gap1.Equal(gap2) {
		t.Error("two equal values should be equal")
	}
	if unset1.Equal(zero) {
		t.Error("unset and zero should not be equal")
	}
	if gap1.Equal(other) {
		t.Error("different values should not be equal")
	}
}

func TestFloat64SetOverwrite(t *testing.T) {
	x := NewFloat64(1)
	x.Set(2)
	v, ok := x.Get()
	if !ok || v != 2 {
		t.Errorf("got (%g, %t), want (2, true)", v, ok)
	}
}
