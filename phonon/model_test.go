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

package phonon

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/scatter/cstable"
)

// silicon returns parameters roughly matching crystalline silicon.
func silicon() *Params {
	return &Params{
		EpsAc: 9.2,
		Cs:    9000,
		M:     0.028085,
		RhoM:  2329,
		A:     5.43e-10,
	}
}

func TestNewErrors(t *testing.T) {
	p := silicon()
	p.A = 0
	if _, err := New(p); !errors.Is(err, ErrNoZone) {
		t.Errorf("expected ErrNoZone, got %v", err)
	}

	p = silicon()
	p.Cs = -1
	if _, err := New(p); err == nil {
		t.Error("negative speed of sound accepted")
	}

	p = silicon()
	p.RhoM = math.Inf(1)
	if _, err := New(p); err == nil {
		t.Error("infinite density accepted")
	}
}

func TestZoneEnergy(t *testing.T) {
	m1, err := New(silicon())
	if err != nil {
		t.Fatal(err)
	}
	eBZ := m1.ZoneEnergy()
	if eBZ < 4 || eBZ > 6 {
		t.Errorf("unexpected zone energy %g eV", eBZ)
	}

	p := silicon()
	p.A = 0
	p.EBZ = eBZ
	m2, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	approx := cmpopts.EquateApprox(1e-9, 0)
	for _, E := range []float64{0.1, eBZ / 2, 100} {
		for _, theta := range []float64{0.1, 1, 3} {
			a, b := m1.DCS(theta, E), m2.DCS(theta, E)
			if !cmp.Equal(a, b, approx) {
				t.Errorf("DCS(%g, %g): %g != %g", theta, E, a, b)
			}
		}
	}
}

func TestPositive(t *testing.T) {
	m, err := New(silicon())
	if err != nil {
		t.Fatal(err)
	}
	angles := DefaultAngles()
	for _, E := range DefaultEnergies() {
		for _, theta := range angles[1:] {
			x := m.DCS(theta, E)
			if !(x > 0) || math.IsInf(x, 0) {
				t.Fatalf("DCS(%g, %g) = %g", theta, E, x)
			}
		}
	}
}

func TestBlendContinuity(t *testing.T) {
	m, err := New(silicon())
	if err != nil {
		t.Fatal(err)
	}
	approx := cmpopts.EquateApprox(1e-6, 0)
	for _, edge := range []float64{m.ZoneEnergy() / 4, m.ZoneEnergy()} {
		for _, theta := range []float64{0.5, 1.5, 3} {
			below := m.DCS(theta, edge*(1-1e-9))
			above := m.DCS(theta, edge*(1+1e-9))
			if !cmp.Equal(below, above, approx) {
				t.Errorf("jump at E=%g, theta=%g: %g vs %g", edge, theta, below, above)
			}
		}
	}
}

func TestTable(t *testing.T) {
	m, err := New(silicon())
	if err != nil {
		t.Fatal(err)
	}
	energies := []float64{1, 10, 100}
	angles := []float64{0.5, 1, 2}
	tab := m.Table(energies, angles)
	if tab.Kind != cstable.Elastic {
		t.Errorf("wrong kind %v", tab.Kind)
	}
	if len(tab.Sections) != len(energies) {
		t.Fatalf("got %d sections", len(tab.Sections))
	}
	for i, sec := range tab.Sections {
		if sec.Key != energies[i] {
			t.Errorf("section %d: energy %g", i, sec.Key)
		}
		if len(sec.Values) != len(angles) {
			t.Errorf("section %d: %d values", i, len(sec.Values))
		}
		got := sec.Values[1]
		want := m.DCS(1, sec.Key) * 1e18
		if got != want {
			t.Errorf("section %d: %g != %g", i, got, want)
		}
	}
}

func TestDefaultGrids(t *testing.T) {
	E := DefaultEnergies()
	theta := DefaultAngles()
	if len(E) != 100 || len(theta) != 100 {
		t.Fatalf("unexpected grid sizes %d, %d", len(E), len(theta))
	}
	approx := cmpopts.EquateApprox(1e-12, 0)
	ends := []float64{E[0], E[99], theta[0], theta[99]}
	if d := cmp.Diff([]float64{0.01, 1000, 0, math.Pi}, ends, approx); d != "" {
		t.Errorf("unexpected grid ends (-want +got):\n%s", d)
	}
}
