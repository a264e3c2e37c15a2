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

// Package config reads the YAML material definitions used by cstool.
//
// A definition file lists one or more materials:
//
//	materials:
//	  - name: silicon
//	    fermi: 7.83*eV
//	    barrier: 12.44*eV
//	    band_gap: 1.12*eV
//	    density: 5e28*m^-3
//	    output: silicon.mat
//	    elastic: [si_elastic.xml]
//	    inelastic: [si_inelastic.xml]
//	    ionization: [si_ionization.xml]
//	    phonon:
//	      eps_ac: 9.2*eV
//	      c_s: 9000
//	      M: 0.028085
//	      rho_m: 2329
//	      a: 5.43*A
//
// Material names are converted to Unicode normal form C.
// Quantities are either plain numbers, taken to be in eV and nm, or strings
// with explicit units.  Relative file names are resolved against the
// directory of the definition file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/scatter/cstable"
	"seehuhn.de/go/scatter/phonon"
)

// File is the contents of a material definition file.
type File struct {
	Materials []*Material `yaml:"materials"`
}

// Material describes how to build one material file.
type Material struct {
	Name    string  `yaml:"name"`
	Fermi   Energy  `yaml:"fermi"`
	Barrier Energy  `yaml:"barrier"`
	BandGap *Energy `yaml:"band_gap"`
	Density Density `yaml:"density"`

	// Output is the name of the material file to write.  The default is the
	// material name with extension ".mat".
	Output string `yaml:"output"`

	Elastic    []string `yaml:"elastic"`
	Inelastic  []string `yaml:"inelastic"`
	Ionization []string `yaml:"ionization"`

	Phonon *Phonon `yaml:"phonon"`
}

// Phonon holds the parameters of the acoustic phonon model.
// Only c_s (m/s), M (kg/mol), rho_m (kg/m^3) and T (K) are plain numbers.
type Phonon struct {
	EpsAc Energy  `yaml:"eps_ac"`
	Cs    float64 `yaml:"c_s"`
	M     float64 `yaml:"M"`
	RhoM  float64 `yaml:"rho_m"`
	A     Length  `yaml:"a"`
	EBZ   Energy  `yaml:"e_bz"`
	T     float64 `yaml:"T"`
}

// Params converts p to the parameters of the phonon model.
func (p *Phonon) Params() *phonon.Params {
	return &phonon.Params{
		EpsAc: float64(p.EpsAc),
		Cs:    p.Cs,
		M:     p.M,
		RhoM:  p.RhoM,
		A:     float64(p.A) * 1e-9,
		EBZ:   float64(p.EBZ),
		T:     p.T,
	}
}

// ValidationError describes an invalid material definition.
type ValidationError struct {
	Material string
	Field    string
	Msg      string
}

func (err *ValidationError) Error() string {
	if err.Material == "" {
		return fmt.Sprintf("config: %s: %s", err.Field, err.Msg)
	}
	return fmt.Sprintf("config: material %q: %s: %s", err.Material, err.Field, err.Msg)
}

// ErrNoMaterials is returned if a definition file lists no materials.
var ErrNoMaterials = errors.New("config: no materials defined")

// Load reads and validates a definition file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.resolve(filepath.Dir(path))
	return f, nil
}

// Parse decodes and validates a definition.  File names are not resolved.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	f := &File{}
	err := dec.Decode(f)
	if err == io.EOF {
		return nil, ErrNoMaterials
	} else if err != nil {
		return nil, err
	}

	err = f.validate()
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) resolve(dir string) {
	abs := func(name string) string {
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(dir, name)
	}
	for _, m := range f.Materials {
		m.Output = abs(m.Output)
		for _, list := range [][]string{m.Elastic, m.Inelastic, m.Ionization} {
			for i, name := range list {
				list[i] = abs(name)
			}
		}
	}
}

func (f *File) validate() error {
	if len(f.Materials) == 0 {
		return ErrNoMaterials
	}

	names := make(map[string]bool)
	outputs := make(map[string]bool)
	for i, m := range f.Materials {
		if m == nil {
			return &ValidationError{
				Field: fmt.Sprintf("materials[%d]", i),
				Msg:   "empty entry",
			}
		}
		m.Name = norm.NFC.String(m.Name)
		if m.Name == "" {
			return &ValidationError{
				Field: fmt.Sprintf("materials[%d].name", i),
				Msg:   "missing",
			}
		}
		if names[m.Name] {
			return &ValidationError{Material: m.Name, Field: "name", Msg: "duplicate"}
		}
		names[m.Name] = true

		if m.Output == "" {
			m.Output = m.Name + ".mat"
		}
		if outputs[m.Output] {
			return &ValidationError{Material: m.Name, Field: "output", Msg: "duplicate " + m.Output}
		}
		outputs[m.Output] = true

		if !finite(float64(m.Fermi)) || !finite(float64(m.Barrier)) {
			return &ValidationError{Material: m.Name, Field: "fermi/barrier", Msg: "not finite"}
		}
		if m.BandGap != nil && !(*m.BandGap >= 0 && finite(float64(*m.BandGap))) {
			return &ValidationError{Material: m.Name, Field: "band_gap", Msg: "must be non-negative"}
		}
		if !(m.Density > 0) || !finite(float64(m.Density)) {
			return &ValidationError{Material: m.Name, Field: "density", Msg: "must be positive"}
		}

		if m.Phonon != nil {
			_, err := phonon.New(m.Phonon.Params())
			if err != nil {
				return &ValidationError{Material: m.Name, Field: "phonon", Msg: err.Error()}
			}
		}
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Energy is an energy in eV.
type Energy float64

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (e *Energy) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalQuantity(value, (*float64)(e), cstable.Energy)
}

// Density is a number density in nm^-3.
type Density float64

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (d *Density) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalQuantity(value, (*float64)(d), cstable.NumberDensity)
}

// Length is a length in nm.
type Length float64

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (l *Length) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalQuantity(value, (*float64)(l), cstable.Dim{Length: 1})
}

func unmarshalQuantity(value *yaml.Node, x *float64, want cstable.Dim) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a quantity", value.Line)
	}
	v, err := cstable.ParseQuantity(value.Value, want)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*x = v
	return nil
}
