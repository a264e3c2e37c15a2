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

// Float64 represents an optional floating point value.
//
// This is used for material constants which only exist for some materials.
// An example is the band gap, which is present for insulators and
// semiconductors, but absent (not zero) for metals.
type Float64 struct {
	isSet bool
	val   float64
}

// NewFloat64 creates a new Float64 with the given value.
func NewFloat64(v float64) Float64 {
	var x Float64
	x.Set(v)
	return x
}

// Get returns the value and whether it is set.
func (x Float64) Get() (float64, bool) {
	return x.val, x.isSet
}

// IsSet reports whether a value is present.
func (x Float64) IsSet() bool {
	return x.isSet
}

// Set sets the value.
func (x *Float64) Set(v float64) {
	x.isSet = true
	x.val = v
}

// Clear clears the value.
func (x *Float64) Clear() {
	x.isSet = false
	x.val = 0
}

// Equal compares two Float64s for equality.
func (x Float64) Equal(other Float64) bool {
	return x.isSet == other.isSet && x.val == other.val
}
