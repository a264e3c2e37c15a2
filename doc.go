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

// Package scatter converts tabulated electron scattering cross sections into
// tables for Monte Carlo sampling.
//
// A [Material] holds the scalar constants of a substance together with
// tables derived from differential cross sections (DCS):
//
//   - total cross sections (TCS), interpolated in log-log space, which
//     decide whether and which interaction occurs, and
//   - inverse cumulative distribution functions (ICDF), which map a
//     uniform random number to a scattering angle or an energy loss.
//
// Tables are filled offline, one primary energy at a time:
//
//	m := scatter.NewWithBandGap("silicon", 7.83, 12.44, 1.12, 49.94)
//	for _, K := range energies {
//	    m.SetElasticData(K, elasticDCS[K])
//	    m.SetInelasticData(K, inelasticDCS[K])
//	}
//	for _, B := range bindingEnergies {
//	    m.SetIonizationData(B, ionizationTCS[B])
//	}
//
// Data which do not contain a single valid sample are ignored.  Once all
// tables are filled, the query methods (ElasticTCS, ElasticICDF, ...) do
// not modify the Material and may be called from several goroutines at
// once.  Setters must not run concurrently with any other method on the
// same Material.
//
// The complete Material, including all tables, can be stored in a compact
// binary format using [Material.Encode] and restored using [Read] or
// [Material.Decode].
package scatter
