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

import "slices"

// IonizationEnergy selects the shell ionized by a primary electron of energy
// K and returns its binding energy.
//
// Only shells with binding energy below K take part.  Their cross sections
// at K are accumulated in order of increasing binding energy, and the first
// shell at which the running sum reaches P times the total is selected.
// P should be uniformly distributed on [0, 1).  If no shell qualifies, 0 is
// returned.
//
// A shell which does not increase the running sum replaces the shell
// selected before it.
func (m *Material) IonizationEnergy(K, P float64) float64 {
	total := m.IonizationTCS(K)
	threshold := P * total

	var sum, selected float64
	found := false
	for B, shell := range m.ionizationTCS.All() {
		if !(K > B) {
			continue
		}
		next := sum + logLog(shell, K)
		if found && next != sum {
			break
		}
		sum = next
		if threshold <= sum {
			found = true
			selected = B
		}
	}
	if !found {
		return 0
	}
	return selected
}

// IonizationTCS returns the sum of the ionization cross sections at primary
// energy K, over all shells with binding energy below K.
func (m *Material) IonizationTCS(K float64) float64 {
	var total float64
	for B, shell := range m.ionizationTCS.All() {
		if K > B {
			total += logLog(shell, K)
		}
	}
	return total
}

// Shells returns the binding energies of all shells with ionization data,
// in increasing order.
func (m *Material) Shells() []float64 {
	return slices.Clone(m.ionizationTCS.Keys)
}
