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

package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestModes(t *testing.T) {
	for _, mode := range []string{"", "dev", "Prod", "off"} {
		l, err := New(mode)
		if err != nil {
			t.Errorf("%q: %v", mode, err)
			continue
		}
		l.Debug("test", "mode", mode)
	}
	if _, err := New("verbose"); err == nil {
		t.Error("unknown mode accepted")
	}
}

func TestWith(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{s: zap.New(core).Sugar()}

	l.With("material", "Si").Info("built", "bytes", 42)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["material"] != "Si" || ctx["bytes"] != int64(42) {
		t.Errorf("unexpected context %v", ctx)
	}
}
