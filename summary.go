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

	"seehuhn.de/go/scatter/optional"
	"seehuhn.de/go/scatter/table"
)

// Summary describes the contents of a Material.
type Summary struct {
	Name    string
	Fermi   float64
	Barrier float64
	BandGap optional.Float64
	Density float64

	Elastic    Channel
	Inelastic  Channel
	Ionization Channel

	// Shells lists the binding energies of the ionization shells.
	Shells []float64
}

// Channel describes the tables of one interaction channel.
type Channel struct {
	// Energies is the number of tabulated primary energies.
	// For the ionization channel, this counts the distinct energies
	// over all shells.
	Energies int

	// MinEnergy and MaxEnergy give the range of tabulated primary energies.
	// Both are zero if no energies are tabulated.
	MinEnergy float64
	MaxEnergy float64

	// Points is the total number of table entries.
	Points int
}

// Summary returns a description of the contents of m.
func (m *Material) Summary() *Summary {
	s := &Summary{
		Name:    m.name,
		Fermi:   m.fermi,
		Barrier: m.barrier,
		BandGap: m.bandGap,
		Density: m.density,
		Shells:  m.Shells(),
	}
	s.Elastic = summarizeChannel(&m.elasticTCS, &m.elasticICDF)
	s.Inelastic = summarizeChannel(&m.inelasticTCS, &m.inelasticICDF)

	var energies table.Curve
	for _, shell := range m.ionizationTCS.All() {
		for logK := range shell.All() {
			energies.Set(logK, 0)
		}
		s.Ionization.Points += shell.Len()
	}
	s.Ionization.Energies = energies.Len()
	s.Ionization.MinEnergy, s.Ionization.MaxEnergy = energyRange(&energies)
	return s
}

func summarizeChannel(tcs *table.Curve, icdf *table.Grid) Channel {
	c := Channel{
		Energies: tcs.Len(),
		Points:   tcs.Len(),
	}
	for _, row := range icdf.All() {
		c.Points += row.Len()
	}
	c.MinEnergy, c.MaxEnergy = energyRange(tcs)
	return c
}

// energyRange returns the primary energy range of a table keyed by log(K).
func energyRange(c *table.Curve) (float64, float64) {
	n := c.Len()
	if n == 0 {
		return 0, 0
	}
	return math.Exp(c.X[0]), math.Exp(c.X[n-1])
}
