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
	"slices"

	"golang.org/x/exp/maps"
	"seehuhn.de/go/scatter/table"
)

// normalizeElastic selects the samples of an elastic DCS with an angle in
// (0, π) and a positive value, and converts them to a density per unit angle
// by multiplying with 2π sin θ.  The result is bracketed by zero points at 0
// and π.  If no sample is valid, nil slices are returned.
func normalizeElastic(dcs map[float64]float64) (theta, density []float64) {
	return normalize(dcs, 0, math.Pi, func(theta, dcs float64) float64 {
		return dcs * 2 * math.Pi * math.Sin(theta)
	})
}

// normalizeInelastic selects the samples of an inelastic DCS with an energy
// loss in (0, K) and a positive value.  The result is bracketed by zero
// points at 0 and K.  If no sample is valid, nil slices are returned.
func normalizeInelastic(K float64, dcs map[float64]float64) (omega0, density []float64) {
	return normalize(dcs, 0, K, func(_, dcs float64) float64 {
		return dcs
	})
}

func normalize(dcs map[float64]float64, lo, hi float64, weight func(x, y float64) float64) ([]float64, []float64) {
	xs := []float64{lo}
	ys := []float64{0}
	keys := maps.Keys(dcs)
	slices.Sort(keys)
	for _, x := range keys {
		y := dcs[x]
		if x > lo && x < hi && y > 0 {
			xs = append(xs, x)
			ys = append(ys, weight(x, y))
		}
	}
	if len(xs) == 1 {
		return nil, nil
	}
	xs = append(xs, hi)
	ys = append(ys, 0)
	return xs, ys
}

// normalizeIonization converts the total ionization cross sections of a
// shell with binding energy B to a log-log table.  Only energies above B
// with a positive cross section are used.  If no sample is valid, nil is
// returned.
func normalizeIonization(B float64, tcs map[float64]float64) *table.Curve {
	res := &table.Curve{}
	for K, sigma := range tcs {
		if K > B && sigma > 0 {
			res.Set(math.Log(K), math.Log(sigma))
		}
	}
	if res.Len() == 0 {
		return nil
	}
	return res
}
