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

// Package build turns material definitions into material files.
package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/scatter"
	"seehuhn.de/go/scatter/cstable"
	"seehuhn.de/go/scatter/internal/config"
	"seehuhn.de/go/scatter/internal/logger"
	"seehuhn.de/go/scatter/phonon"
)

// Options control a call to [Run].
type Options struct {
	// Jobs is the maximal number of materials built concurrently.
	// Values smaller than 1 mean one job.
	Jobs int
}

// KindError is returned when a cross-section file has the wrong kind for
// the list it appears in.
type KindError struct {
	File string
	Got  cstable.Kind
	Want cstable.Kind
}

func (err *KindError) Error() string {
	return fmt.Sprintf("%s: expected %s table, got %s", err.File, err.Want, err.Got)
}

// Material builds the material described by def.
//
// The phonon model, if any, is applied first; sections from cross-section
// files are applied afterwards in the order given, so that a later section
// for the same energy replaces an earlier one.  Sections which leave the
// material unchanged are logged and skipped.
func Material(def *config.Material, log *logger.Logger) (*scatter.Material, error) {
	var m *scatter.Material
	if def.BandGap != nil {
		m = scatter.NewWithBandGap(def.Name, float64(def.Fermi), float64(def.Barrier),
			float64(*def.BandGap), float64(def.Density))
	} else {
		m = scatter.New(def.Name, float64(def.Fermi), float64(def.Barrier),
			float64(def.Density))
	}
	log = log.With("material", def.Name)

	if def.Phonon != nil {
		model, err := phonon.New(def.Phonon.Params())
		if err != nil {
			return nil, err
		}
		t := model.Table(phonon.DefaultEnergies(), phonon.DefaultAngles())
		apply(m, t, log.With("source", "phonon"))
	}

	lists := []struct {
		files []string
		kind  cstable.Kind
	}{
		{def.Elastic, cstable.Elastic},
		{def.Inelastic, cstable.Inelastic},
		{def.Ionization, cstable.Ionization},
	}
	for _, list := range lists {
		for _, name := range list.files {
			t, err := cstable.ReadFile(name)
			if err != nil {
				return nil, err
			}
			if t.Kind != list.kind {
				return nil, &KindError{File: name, Got: t.Kind, Want: list.kind}
			}
			apply(m, t, log.With("source", name))
		}
	}
	return m, nil
}

// apply feeds all sections of t into m and returns the number of sections
// which changed m.
func apply(m *scatter.Material, t *cstable.Table, log *logger.Logger) int {
	n := 0
	for _, s := range t.Sections {
		var ok bool
		switch t.Kind {
		case cstable.Elastic:
			ok = m.SetElasticData(s.Key, s.Values)
		case cstable.Inelastic:
			ok = m.SetInelasticData(s.Key, s.Values)
		case cstable.Ionization:
			ok = m.SetIonizationData(s.Key, s.Values)
		}
		if ok {
			n++
		} else {
			log.Debug("skipped section", "kind", t.Kind.String(), "key", s.Key)
		}
	}
	log.Debug("applied table", "kind", t.Kind.String(),
		"sections", len(t.Sections), "used", n)
	return n
}

// Run builds all materials in defs and writes each to its output file.
// The first error cancels the remaining work.
func Run(ctx context.Context, log *logger.Logger, defs []*config.Material, opts *Options) error {
	jobs := 1
	if opts != nil && opts.Jobs > 1 {
		jobs = opts.Jobs
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, def := range defs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			m, err := Material(def, log)
			if err != nil {
				return fmt.Errorf("material %q: %w", def.Name, err)
			}

			err = os.MkdirAll(filepath.Dir(def.Output), 0o755)
			if err != nil {
				return err
			}
			err = m.WriteFile(def.Output)
			if err != nil {
				return err
			}

			s := m.Summary()
			log.Info("wrote material",
				"material", def.Name,
				"file", def.Output,
				"elastic", s.Elastic.Energies,
				"inelastic", s.Inelastic.Energies,
				"shells", len(s.Shells),
				"elapsed", time.Since(start))
			return nil
		})
	}
	return g.Wait()
}
