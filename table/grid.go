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
	"slices"
)

// Grid maps strictly increasing keys to curves.
//
// Grids are used for two-level tables, for example a cumulative
// distribution for every tabulated energy.
type Grid struct {
	Keys []float64
	Rows []*Curve
}

// Len returns the number of rows.
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Keys)
}

// Row returns the curve stored for key, or nil if there is none.
func (g *Grid) Row(key float64) *Curve {
	if g == nil {
		return nil
	}
	i, found := slices.BinarySearch(g.Keys, key)
	if !found {
		return nil
	}
	return g.Rows[i]
}

// Put stores row under key.  An existing row for the same key is replaced.
func (g *Grid) Put(key float64, row *Curve) {
	if row == nil {
		row = &Curve{}
	}
	i, found := slices.BinarySearch(g.Keys, key)
	if found {
		g.Rows[i] = row
		return
	}
	g.Keys = slices.Insert(g.Keys, i, key)
	g.Rows = slices.Insert(g.Rows, i, row)
}

// Clear removes all rows.
func (g *Grid) Clear() {
	clear(g.Rows)
	g.Keys = g.Keys[:0]
	g.Rows = g.Rows[:0]
}

// All iterates over the rows in increasing order of key.
func (g *Grid) All() iter.Seq2[float64, *Curve] {
	return func(yield func(float64, *Curve) bool) {
		for i := range g.Len() {
			if !yield(g.Keys[i], g.Rows[i]) {
				return
			}
		}
	}
}

// Eval interpolates the table at (key, x).
//
// The two rows bracketing key are each evaluated at x, and the results are
// linearly interpolated in key.  Keys outside the tabulated range use the
// first or last row.  An empty grid evaluates to 0.
func (g *Grid) Eval(key, x float64) float64 {
	if g.Len() == 0 {
		return 0
	}
	i0, i1, w := bracket(g.Keys, key)
	y0 := g.Rows[i0].Eval(x)
	if i1 == i0 {
		return lerp(y0, y0, w)
	}
	y1 := g.Rows[i1].Eval(x)
	return lerp(y0, y1, w)
}
