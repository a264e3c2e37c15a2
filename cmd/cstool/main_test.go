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

package main

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seehuhn.de/go/scatter"
	"seehuhn.de/go/scatter/cstable"
)

func TestQuantityFlag(t *testing.T) {
	q := &quantity{dim: cstable.Dim{Length: 1}}
	if err := q.Set("5.43*A"); err != nil {
		t.Fatal(err)
	}
	if q.x < 0.5429 || q.x > 0.5431 {
		t.Errorf("got %g", q.x)
	}
	if err := q.Set("1*eV"); err == nil {
		t.Error("wrong dimension accepted")
	}
}

func TestWriteSummary(t *testing.T) {
	m := scatter.New("test", 7, 12, 50)
	m.SetIonizationData(10, map[float64]float64{100: 1, 1000: 2})
	m.SetIonizationData(20, map[float64]float64{100: 1, 1000: 2})
	m.SetIonizationData(30, map[float64]float64{100: 1, 1000: 2})

	p := message.NewPrinter(language.English)
	buf := &bytes.Buffer{}
	writeSummary(buf, p, "test.mat", m.Summary(), 0)
	out := buf.String()
	for _, want := range []string{
		`test.mat: "test"`,
		"band gap      none",
		"elastic       no data",
		"ionization    2 energies from 100 eV to ",
		"eV, 6 values",
		"shells        10, 20, 30 eV",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}

	buf.Reset()
	writeSummary(buf, p, "test.mat", m.Summary(), 24)
	if !strings.Contains(buf.String(), "...") {
		t.Errorf("shell list not shortened:\n%s", buf.String())
	}
}
