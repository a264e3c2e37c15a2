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

package scatter

import (
	"math"

	"seehuhn.de/go/scatter/spline"
	"seehuhn.de/go/scatter/table"
)

// cumulate integrates a normalized density over its full domain.
//
// The density is given at the strictly increasing points xs, where the first
// and last point are the domain boundaries.  The function returns the total
// cross section, and a table which maps the cumulative probability at each
// point to the point.  If the total is not positive and finite, ok is false.
//
// Points with equal cumulative probability share a single table entry,
// holding the largest of the points.
func cumulate(xs, density []float64) (tcs float64, icdf *table.Curve, ok bool) {
	curve, err := spline.Linear(xs, density)
	if err != nil {
		return 0, nil, false
	}
	lo, hi := curve.Domain()
	cumulative := curve.Integrate(lo)

	tcs = cumulative.Eval(hi)
	if !(tcs > 0) || math.IsInf(tcs, 0) {
		return 0, nil, false
	}

	icdf = &table.Curve{}
	for i, c := range cumulative.Knots() {
		icdf.Set(c/tcs, xs[i])
	}
	return tcs, icdf, true
}
