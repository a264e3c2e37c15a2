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
	"testing"
)

// triangle returns an inelastic DCS whose total cross section is K/2.
func triangle(K float64) map[float64]float64 {
	return map[float64]float64{K / 2: 1}
}

func TestTCSLogLog(t *testing.T) {
	m := New("test", 1, 2, 3)
	m.SetInelasticData(10, triangle(10))
	m.SetInelasticData(1000, triangle(1000))

	type testCase struct {
		K, tcs float64
	}
	testCases := []testCase{
		{10, 5},
		{1000, 500},
		{100, 50},
		{1, 5},
		{1e5, 500},
	}
	for _, tc := range testCases {
		got := m.InelasticTCS(tc.K)
		if math.Abs(got-tc.tcs) > 1e-9*tc.tcs {
			t.Errorf("InelasticTCS(%g) = %g, want %g", tc.K, got, tc.tcs)
		}
	}
}

func TestQueriesWithoutData(t *testing.T) {
	m := New("empty", 1, 2, 3)
	for _, K := range []float64{1, 100, 1e4} {
		if v := m.ElasticTCS(K); v != 0 {
			t.Errorf("ElasticTCS(%g) = %g", K, v)
		}
		if v := m.InelasticTCS(K); v != 0 {
			t.Errorf("InelasticTCS(%g) = %g", K, v)
		}
		if v := m.ElasticICDF(K, 0.5); v != 0 {
			t.Errorf("ElasticICDF(%g, 0.5) = %g", K, v)
		}
		if v := m.InelasticICDF(K, 0.5); v != 0 {
			t.Errorf("InelasticICDF(%g, 0.5) = %g", K, v)
		}
		if v := m.IonizationEnergy(K, 0.5); v != 0 {
			t.Errorf("IonizationEnergy(%g, 0.5) = %g", K, v)
		}
	}
}

func TestICDFInterpolation(t *testing.T) {
	m := New("test", 1, 2, 3)
	m.SetInelasticData(10, triangle(10))
	m.SetInelasticData(1000, triangle(1000))

	type testCase struct {
		K, P, omega0 float64
	}
	testCases := []testCase{
		{10, 0, 0},
		{10, 0.5, 5},
		{10, 1, 10},
		{1000, 1, 1000},
		{100, 1, 505},
		{100, 0.5, 252.5},
		{1, 1, 10},
		{1e6, 0.5, 500},
		{10, 2, 10},
		{10, -1, 0},
	}
	for _, tc := range testCases {
		got := m.InelasticICDF(tc.K, tc.P)
		if math.Abs(got-tc.omega0) > 1e-9*math.Max(1, tc.omega0) {
			t.Errorf("InelasticICDF(%g, %g) = %g, want %g", tc.K, tc.P, got, tc.omega0)
		}
	}
}

func TestElasticICDFEdges(t *testing.T) {
	m := New("test", 1, 2, 3)
	for _, K := range []float64{10, 100, 1000} {
		m.SetElasticData(K, map[float64]float64{
			0.2: 1 / K,
			1.0: 2,
			2.5: 0.5,
		})
	}
	for _, K := range []float64{5, 10, 31.6, 100, 500, 1000, 2000} {
		if theta := m.ElasticICDF(K, 0); theta != 0 {
			t.Errorf("ElasticICDF(%g, 0) = %g, want 0", K, theta)
		}
		if theta := m.ElasticICDF(K, 1); math.Abs(theta-math.Pi) > 1e-12 {
			t.Errorf("ElasticICDF(%g, 1) = %g, want π", K, theta)
		}
		prev := -1.0
		for i := 0; i <= 20; i++ {
			theta := m.ElasticICDF(K, float64(i)/20)
			if theta < prev {
				t.Errorf("ElasticICDF(%g, ·) decreases at step %d", K, i)
			}
			prev = theta
		}
	}
}
