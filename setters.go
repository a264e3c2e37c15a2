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
)

// SetElasticData adds the elastic cross section for primary energy K.
//
// The map dcs gives the differential cross section per unit solid angle as a
// function of the scattering angle.  Only angles strictly between 0 and π
// with positive cross section are used.  The method stores the total cross
// section and the inverse cumulative distribution of the scattering angle
// for K, replacing earlier data for the same energy.
//
// If no sample is usable, or if the integrated cross section is not
// positive and finite, the Material is left unchanged and false is
// returned.
func (m *Material) SetElasticData(K float64, dcs map[float64]float64) bool {
	if !isEnergy(K) {
		return false
	}
	theta, density := normalizeElastic(dcs)
	if theta == nil {
		return false
	}
	tcs, icdf, ok := cumulate(theta, density)
	if !ok {
		return false
	}

	logK := math.Log(K)
	m.elasticTCS.Set(logK, math.Log(tcs))
	m.elasticICDF.Put(logK, icdf)
	return true
}

// SetInelasticData adds the inelastic cross section for primary energy K.
//
// The map dcs gives the differential cross section per unit energy loss as a
// function of the energy loss ω₀.  Only values of ω₀ strictly between 0 and
// K with positive cross section are used.  The method stores the total
// cross section and the inverse cumulative distribution of the energy loss
// for K, replacing earlier data for the same energy.
//
// If no sample is usable, or if the integrated cross section is not
// positive and finite, the Material is left unchanged and false is
// returned.
func (m *Material) SetInelasticData(K float64, dcs map[float64]float64) bool {
	if !isEnergy(K) {
		return false
	}
	omega0, density := normalizeInelastic(K, dcs)
	if omega0 == nil {
		return false
	}
	tcs, icdf, ok := cumulate(omega0, density)
	if !ok {
		return false
	}

	logK := math.Log(K)
	m.inelasticTCS.Set(logK, math.Log(tcs))
	m.inelasticICDF.Put(logK, icdf)
	return true
}

// SetIonizationData sets the ionization cross section of the shell with
// binding energy B.
//
// The map tcs gives the total cross section for ionizing the shell as a
// function of the primary energy.  Only energies above B with positive cross
// section are used, and B must be positive and finite.  Data stored earlier
// for the same B are replaced.  If no sample is usable, the Material is left
// unchanged and false is returned.
func (m *Material) SetIonizationData(B float64, tcs map[float64]float64) bool {
	if !isEnergy(B) {
		return false
	}
	shell := normalizeIonization(B, tcs)
	if shell == nil {
		return false
	}
	m.ionizationTCS.Put(B, shell)
	return true
}

func isEnergy(K float64) bool {
	return K > 0 && !math.IsInf(K, 1)
}
