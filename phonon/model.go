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

// Package phonon computes elastic cross sections for the scattering of
// slow electrons on acoustic phonons.
//
// The model follows Schreiber and Fitting: a low-energy form, valid well
// below the Brillouin-zone edge energy E_BZ, and a high-energy form, valid
// above it.  Between E_BZ/4 and E_BZ the two are joined by a linear blend,
// so that the resulting cross section is continuous in the electron energy.
package phonon

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"seehuhn.de/go/scatter/cstable"
)

// Physical constants in SI units.
const (
	h    = 6.62607015e-34
	hBar = h / (2 * math.Pi)
	kB   = 1.380649e-23
	mE   = 9.1093837015e-31
	eV   = 1.602176634e-19
	nA   = 6.02214076e23

	tRoom = 300
)

// Params describes the material.
type Params struct {
	EpsAc float64 // acoustic deformation potential [eV]
	Cs    float64 // speed of sound [m/s]
	M     float64 // molar mass [kg/mol]
	RhoM  float64 // mass density [kg/m^3]

	// Either the lattice constant A [m] or the Brillouin-zone energy
	// EBZ [eV] must be given.  If both are set, EBZ takes precedence for
	// the zone energy.
	A   float64
	EBZ float64

	T float64 // temperature [K], 0 means 300 K
}

var (
	// ErrNoZone is returned by [New] if neither the lattice constant nor the
	// Brillouin-zone energy is set.
	ErrNoZone = errors.New("phonon: either lattice constant or Brillouin-zone energy required")
)

// Model is a ready-to-use phonon cross-section model.
type Model struct {
	eBZ    float64 // [J]
	a      float64 // 5 E_BZ [J]
	nBZ    float64
	hwBZ   float64 // [J]
	kT     float64 // [J]
	prefac float64 // sigma_ac / (4 pi) [m^2]
}

// New validates the parameters and precomputes the model constants.
func New(p *Params) (*Model, error) {
	for _, v := range []struct {
		name string
		x    float64
	}{
		{"eps_ac", p.EpsAc},
		{"c_s", p.Cs},
		{"M", p.M},
		{"rho_m", p.RhoM},
	} {
		if !(v.x > 0) || math.IsInf(v.x, 0) {
			return nil, fmt.Errorf("phonon: invalid %s %g", v.name, v.x)
		}
	}
	if p.A < 0 || p.EBZ < 0 || p.T < 0 {
		return nil, errors.New("phonon: negative parameter")
	}

	var eBZ, lattice float64
	switch {
	case p.EBZ > 0:
		eBZ = p.EBZ * eV
		lattice = p.A
		if lattice == 0 {
			lattice = h / math.Sqrt(2*mE*eBZ)
		}
	case p.A > 0:
		lattice = p.A
		eBZ = h * h / (2 * mE * lattice * lattice)
	default:
		return nil, ErrNoZone
	}

	temp := p.T
	if temp == 0 {
		temp = tRoom
	}
	kT := kB * temp

	rhoN := nA / p.M * p.RhoM
	epsAc := p.EpsAc * eV
	hwBZ := h * p.Cs / lattice
	sigmaAc := mE * mE * epsAc * epsAc * kT /
		(math.Pi * math.Pow(hBar, 4) * p.Cs * p.Cs * p.RhoM * rhoN)
	sigmaAc *= math.Pi

	m := &Model{
		eBZ:    eBZ,
		a:      5 * eBZ,
		nBZ:    1 / math.Expm1(hwBZ/kT),
		hwBZ:   hwBZ,
		kT:     kT,
		prefac: sigmaAc / (4 * math.Pi),
	}
	return m, nil
}

// ZoneEnergy returns the Brillouin-zone edge energy in eV.
func (m *Model) ZoneEnergy() float64 {
	return m.eBZ / eV
}

// DCS returns the differential cross section in m^2/sr for scattering
// angle theta (radians) and electron energy E (eV).
func (m *Model) DCS(theta, E float64) float64 {
	E *= eV
	lo, hi := m.eBZ/4, m.eBZ
	switch {
	case E < lo:
		return m.dcsLow(theta, E)
	case E > hi:
		return m.dcsHigh(theta, E)
	default:
		w := (E - lo) / (hi - lo)
		return (1-w)*m.dcsLow(theta, lo) + w*m.dcsHigh(theta, hi)
	}
}

func (m *Model) dcsLow(theta, E float64) float64 {
	q := (1 - math.Cos(theta)) / 2 * E / m.a
	return m.prefac / ((1 + q) * (1 + q))
}

func (m *Model) dcsHigh(theta, E float64) float64 {
	q := (1 - math.Cos(theta)) / 2 * E / m.a
	return m.prefac * (m.nBZ + 0.5) *
		4 * m.a * m.hwBZ / (m.kT * m.eBZ) *
		q / ((1 + q) * (1 + q))
}

// Table tabulates the model as an elastic cross-section table.  Energies
// are in eV and angles in radians; the stored values are in nm^2/sr.
func (m *Model) Table(energies, angles []float64) *cstable.Table {
	t := &cstable.Table{Kind: cstable.Elastic}
	for _, E := range energies {
		sec := &cstable.Section{
			Key:    E,
			Values: make(map[float64]float64, len(angles)),
		}
		for _, theta := range angles {
			sec.Values[theta] = m.DCS(theta, E) * 1e18
		}
		t.Sections = append(t.Sections, sec)
	}
	return t
}

// DefaultEnergies returns 100 logarithmically spaced energies from
// 0.01 eV to 1000 eV.
func DefaultEnergies() []float64 {
	return floats.LogSpan(make([]float64, 100), 0.01, 1000)
}

// DefaultAngles returns 100 equally spaced angles from 0 to pi.
func DefaultAngles() []float64 {
	return floats.Span(make([]float64, 100), 0, math.Pi)
}
