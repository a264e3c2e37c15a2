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

	"seehuhn.de/go/scatter/table"
)

// ElasticTCS returns the total elastic cross section at primary energy K.
//
// The value is interpolated linearly in log(K) and log(TCS).  Energies
// outside the tabulated range use the nearest tabulated energy.  If no
// elastic data are present, 0 is returned.
func (m *Material) ElasticTCS(K float64) float64 {
	return logLog(&m.elasticTCS, K)
}

// ElasticICDF samples the scattering angle of an elastic event at primary
// energy K, for the cumulative probability P in [0, 1].
//
// The angle is interpolated linearly in P and log(K).  Energies outside the
// tabulated range use the nearest tabulated energy, and probabilities
// outside [0, 1] are clamped.  If no elastic data are present, 0 is
// returned.
func (m *Material) ElasticICDF(K, P float64) float64 {
	return m.elasticICDF.Eval(math.Log(K), P)
}

// InelasticTCS returns the total inelastic cross section at primary energy K.
// Interpolation and extrapolation are as for [Material.ElasticTCS].
func (m *Material) InelasticTCS(K float64) float64 {
	return logLog(&m.inelasticTCS, K)
}

// InelasticICDF samples the energy loss ω₀ of an inelastic event at primary
// energy K, for the cumulative probability P in [0, 1].
// Interpolation and extrapolation are as for [Material.ElasticICDF].
func (m *Material) InelasticICDF(K, P float64) float64 {
	return m.inelasticICDF.Eval(math.Log(K), P)
}

// logLog evaluates a table of log(TCS) over log(K).
func logLog(c *table.Curve, K float64) float64 {
	if c.Len() == 0 {
		return 0
	}
	return math.Exp(c.Eval(math.Log(K)))
}
