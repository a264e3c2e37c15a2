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

package table

import (
	"iter"
	"math"
	"slices"
)

// Curve is a function tabulated at strictly increasing abscissae.
//
// The zero value is an empty curve, ready to use.
type Curve struct {
	X []float64
	Y []float64
}

// Len returns the number of tabulated points.
func (c *Curve) Len() int {
	if c == nil {
		return 0
	}
	return len(c.X)
}

// Set stores the value y at x.  An existing value at x is replaced.
func (c *Curve) Set(x, y float64) {
	i, found := slices.BinarySearch(c.X, x)
	if found {
		c.Y[i] = y
		return
	}
	c.X = slices.Insert(c.X, i, x)
	c.Y = slices.Insert(c.Y, i, y)
}

// Get returns the value stored at exactly x.
func (c *Curve) Get(x float64) (float64, bool) {
	if c == nil {
		return 0, false
	}
	i, found := slices.BinarySearch(c.X, x)
	if !found {
		return 0, false
	}
	return c.Y[i], true
}

// Clear removes all points from the curve.
func (c *Curve) Clear() {
	c.X = c.X[:0]
	c.Y = c.Y[:0]
}

// Clone returns an independent copy of the curve.
func (c *Curve) Clone() *Curve {
	if c == nil {
		return nil
	}
	return &Curve{
		X: slices.Clone(c.X),
		Y: slices.Clone(c.Y),
	}
}

// All iterates over the points of the curve in increasing order of x.
func (c *Curve) All() iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		for i := range c.Len() {
			if !yield(c.X[i], c.Y[i]) {
				return
			}
		}
	}
}

// Eval evaluates the curve at x, using linear interpolation between the
// neighbouring points.  Outside the tabulated range, the first or last value
// is returned.  An empty curve evaluates to 0.
func (c *Curve) Eval(x float64) float64 {
	if c.Len() == 0 {
		return 0
	}
	i0, i1, w := bracket(c.X, x)
	return lerp(c.Y[i0], c.Y[i1], w)
}

// bracket locates x within the increasing slice xs, which must be non-empty.
// The value at x is (1-w)*v[i0] + w*v[i1].
func bracket(xs []float64, x float64) (i0, i1 int, w float64) {
	n := len(xs)
	switch {
	case math.IsNaN(x):
		return 0, 0, x
	case n == 1 || x <= xs[0]:
		return 0, 0, 0
	case x >= xs[n-1]:
		return n - 1, n - 1, 0
	}

	i, found := slices.BinarySearch(xs, x)
	if found {
		return i, i, 0
	}
	xMin, xMax := xs[i-1], xs[i]
	if xMax <= xMin {
		return i - 1, i - 1, 0
	}
	return i - 1, i, (x - xMin) / (xMax - xMin)
}

func lerp(a, b, w float64) float64 {
	if w == 0 {
		return a
	}
	return a + w*(b-a)
}
