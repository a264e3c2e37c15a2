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
	"errors"
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/scatter/archive"
	"seehuhn.de/go/scatter/table"
)

// Encode writes the complete Material, including all tables, to w.
//
// The fields are written in the following order: name, Fermi energy,
// barrier, band gap (presence flag and value), density, elastic TCS,
// elastic ICDF, inelastic TCS, inelastic ICDF, ionization TCS.
// See package archive for the encoding of the individual values.  Tables
// are written as a uint32 count followed by the entries in increasing key
// order; nested tables write a float64 key followed by the inner table.
func (m *Material) Encode(w io.Writer) error {
	a := archive.NewWriter(w)

	err := a.PutString(m.name)
	if err != nil {
		return err
	}
	err = a.PutFloat64(m.fermi)
	if err != nil {
		return err
	}
	err = a.PutFloat64(m.barrier)
	if err != nil {
		return err
	}
	err = a.PutOptional(m.bandGap)
	if err != nil {
		return err
	}
	err = a.PutFloat64(m.density)
	if err != nil {
		return err
	}

	err = putCurve(a, &m.elasticTCS)
	if err != nil {
		return err
	}
	err = putGrid(a, &m.elasticICDF)
	if err != nil {
		return err
	}
	err = putCurve(a, &m.inelasticTCS)
	if err != nil {
		return err
	}
	err = putGrid(a, &m.inelasticICDF)
	if err != nil {
		return err
	}
	return putGrid(a, &m.ionizationTCS)
}

// Read reads a Material in the format written by [Material.Encode].
func Read(r io.Reader) (*Material, error) {
	m := &Material{}
	err := m.Decode(r)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Decode replaces the contents of m with a Material read from r, in the
// format written by [Material.Encode].
//
// If an error occurs, m is left in a partially decoded state and should be
// discarded.
func (m *Material) Decode(r io.Reader) error {
	a := archive.NewReader(r)
	var err error

	m.name, err = a.GetString()
	if err != nil {
		return &DecodeError{Field: "name", Err: err}
	}
	m.fermi, err = a.GetFloat64()
	if err != nil {
		return &DecodeError{Field: "fermi", Err: err}
	}
	m.barrier, err = a.GetFloat64()
	if err != nil {
		return &DecodeError{Field: "barrier", Err: err}
	}
	m.bandGap, err = a.GetOptional()
	if err != nil {
		return &DecodeError{Field: "band gap", Err: err}
	}
	m.density, err = a.GetFloat64()
	if err != nil {
		return &DecodeError{Field: "density", Err: err}
	}

	err = getCurve(a, &m.elasticTCS)
	if err != nil {
		return &DecodeError{Field: "elastic TCS", Err: err}
	}
	err = getGrid(a, &m.elasticICDF)
	if err != nil {
		return &DecodeError{Field: "elastic ICDF", Err: err}
	}
	err = getCurve(a, &m.inelasticTCS)
	if err != nil {
		return &DecodeError{Field: "inelastic TCS", Err: err}
	}
	err = getGrid(a, &m.inelasticICDF)
	if err != nil {
		return &DecodeError{Field: "inelastic ICDF", Err: err}
	}
	err = getGrid(a, &m.ionizationTCS)
	if err != nil {
		return &DecodeError{Field: "ionization TCS", Err: err}
	}
	return nil
}

func putCurve(a *archive.Writer, c *table.Curve) error {
	n := c.Len()
	if uint64(n) > math.MaxUint32 {
		return errTableTooLarge
	}
	err := a.PutUint32(uint32(n))
	if err != nil {
		return err
	}
	for x, y := range c.All() {
		err = a.PutFloat64(x)
		if err != nil {
			return err
		}
		err = a.PutFloat64(y)
		if err != nil {
			return err
		}
	}
	return nil
}

func putGrid(a *archive.Writer, g *table.Grid) error {
	n := g.Len()
	if uint64(n) > math.MaxUint32 {
		return errTableTooLarge
	}
	err := a.PutUint32(uint32(n))
	if err != nil {
		return err
	}
	for key, row := range g.All() {
		err = a.PutFloat64(key)
		if err != nil {
			return err
		}
		err = putCurve(a, row)
		if err != nil {
			return err
		}
	}
	return nil
}

func getCurve(a *archive.Reader, c *table.Curve) error {
	c.Clear()
	n, err := a.GetUint32()
	if err != nil {
		return err
	}
	for range n {
		x, err := a.GetFloat64()
		if err != nil {
			return err
		}
		y, err := a.GetFloat64()
		if err != nil {
			return err
		}
		c.Set(x, y)
	}
	return nil
}

func getGrid(a *archive.Reader, g *table.Grid) error {
	g.Clear()
	n, err := a.GetUint32()
	if err != nil {
		return err
	}
	for range n {
		key, err := a.GetFloat64()
		if err != nil {
			return err
		}
		row := &table.Curve{}
		err = getCurve(a, row)
		if err != nil {
			return err
		}
		g.Put(key, row)
	}
	return nil
}

// DecodeError is returned by [Material.Decode] if a field cannot be read.
type DecodeError struct {
	Field string
	Err   error
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf("scatter: cannot decode %s: %v", err.Field, err.Err)
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}

var errTableTooLarge = errors.New("scatter: table too large to encode")
