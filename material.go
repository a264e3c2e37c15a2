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
	"seehuhn.de/go/scatter/optional"
	"seehuhn.de/go/scatter/table"
)

// Material describes one physical substance and the scattering tables
// derived for it.
type Material struct {
	name    string
	fermi   float64
	barrier float64
	bandGap optional.Float64
	density float64

	// log(K) -> log(TCS)
	elasticTCS table.Curve
	// log(K) -> (P -> theta)
	elasticICDF table.Grid

	// log(K) -> log(TCS)
	inelasticTCS table.Curve
	// log(K) -> (P -> omega0)
	inelasticICDF table.Grid

	// B -> (log(K) -> log(TCS))
	ionizationTCS table.Grid
}

// New allocates a Material without a band gap, as used for metals.
//
// The name is used for display only.  The Fermi energy and the barrier,
// the minimum energy an electron needs to escape from the material, are
// energies.  The density is the number density of the material.
func New(name string, fermi, barrier, density float64) *Material {
	return &Material{
		name:    name,
		fermi:   fermi,
		barrier: barrier,
		density: density,
	}
}

// NewWithBandGap allocates a Material for an insulator or semiconductor.
// The band gap is the energy gap between the valence band and the
// conduction band.
func NewWithBandGap(name string, fermi, barrier, bandGap, density float64) *Material {
	m := New(name, fermi, barrier, density)
	m.bandGap.Set(bandGap)
	return m
}

// Name returns the human readable name of the material.
func (m *Material) Name() string {
	return m.name
}

// Fermi returns the Fermi energy.
func (m *Material) Fermi() float64 {
	return m.fermi
}

// Barrier returns the minimum energy required to escape from the material.
func (m *Material) Barrier() float64 {
	return m.barrier
}

// BandGap returns the band gap and whether the material has one.
func (m *Material) BandGap() (float64, bool) {
	return m.bandGap.Get()
}

// Density returns the number density of the material.
func (m *Material) Density() float64 {
	return m.density
}
