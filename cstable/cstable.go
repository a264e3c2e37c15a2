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

// Package cstable reads and writes cross-section tables in XML format.
//
// Elastic and inelastic tables list the differential cross section for a
// number of primary energies:
//
//	<cstable type="elastic">
//		<cross-section energy="100*eV">
//			<insert angle="0.5" dcs="1.3e-20*m^2/sr"/>
//			...
//		</cross-section>
//		...
//	</cstable>
//
// Inelastic tables use the attribute omega0 (energy loss) instead of angle,
// and a dcs per unit energy.  Ionization tables list the total cross
// section of each shell as a function of the primary energy:
//
//	<cstable type="ionization">
//		<shell binding="99.2*eV">
//			<insert energy="150*eV" tcs="1e-24*m^2"/>
//		</shell>
//	</cstable>
//
// Values may carry units, see [ParseQuantity].  In memory, all energies are
// in eV, all areas in nm² and all angles in radians.
package cstable

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/exp/maps"
)

// Kind identifies the interaction channel described by a table.
type Kind int

// These are the supported table kinds.
const (
	Elastic Kind = iota + 1
	Inelastic
	Ionization
)

func (k Kind) String() string {
	switch k {
	case Elastic:
		return "elastic"
	case Inelastic:
		return "inelastic"
	case Ionization:
		return "ionization"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts the value of the XML type attribute to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "elastic":
		return Elastic, nil
	case "inelastic":
		return Inelastic, nil
	case "ionization":
		return Ionization, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownKind, s)
	}
}

// Table is a cross-section table.
type Table struct {
	Kind     Kind
	Sections []*Section
}

// Section holds the data for one primary energy (elastic and inelastic
// tables) or one shell (ionization tables).
type Section struct {
	// Key is the primary energy, or the binding energy of the shell.
	Key float64

	// Values maps the scattering angle, the energy loss, or the primary
	// energy to the differential or total cross section.
	Values map[float64]float64
}

// layout describes the attributes used by one kind of table.
type layout struct {
	section string
	key     string
	x       string
	xDim    Dim
	y       string
	yDim    Dim
}

func (k Kind) layout() *layout {
	switch k {
	case Elastic:
		return &layout{"cross-section", "energy", "angle", Dimensionless, "dcs", Area}
	case Inelastic:
		return &layout{"cross-section", "energy", "omega0", Energy, "dcs", AreaPerEnergy}
	case Ionization:
		return &layout{"shell", "binding", "energy", Energy, "tcs", Area}
	default:
		return nil
	}
}

type xmlTable struct {
	XMLName  xml.Name     `xml:"cstable"`
	Type     string       `xml:"type,attr"`
	Sections []xmlSection `xml:"cross-section"`
	Shells   []xmlSection `xml:"shell"`
}

type xmlSection struct {
	Attrs   []xml.Attr  `xml:",any,attr"`
	Inserts []xmlInsert `xml:"insert"`
}

type xmlInsert struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

// Read reads a table in XML format.
func Read(r io.Reader) (*Table, error) {
	var raw xmlTable
	err := xml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, err
	}

	kind, err := ParseKind(raw.Type)
	if err != nil {
		return nil, err
	}
	l := kind.layout()
	sections := raw.Sections
	if kind == Ionization {
		sections = raw.Shells
	}

	t := &Table{Kind: kind}
	for _, rs := range sections {
		key, err := getQuantity(rs.Attrs, l.key, Energy)
		if err != nil {
			return nil, err
		}
		s := &Section{
			Key:    key,
			Values: make(map[float64]float64, len(rs.Inserts)),
		}
		for _, ins := range rs.Inserts {
			x, err := getQuantity(ins.Attrs, l.x, l.xDim)
			if err != nil {
				return nil, err
			}
			y, err := getQuantity(ins.Attrs, l.y, l.yDim)
			if err != nil {
				return nil, err
			}
			s.Values[x] = y
		}
		t.Sections = append(t.Sections, s)
	}
	return t, nil
}

// ReadFile reads a table from the named XML file.
func ReadFile(name string) (*Table, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	t, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

// Write writes the table in XML format.  Values are written in increasing
// order, with explicit units.
func (t *Table) Write(w io.Writer) error {
	l := t.Kind.layout()
	if l == nil {
		return fmt.Errorf("%w %q", ErrUnknownKind, t.Kind)
	}

	raw := &xmlTable{Type: t.Kind.String()}
	for _, s := range t.Sections {
		rs := xmlSection{
			Attrs: []xml.Attr{attr(l.key, s.Key, Energy)},
		}
		keys := maps.Keys(s.Values)
		slices.Sort(keys)
		for _, x := range keys {
			rs.Inserts = append(rs.Inserts, xmlInsert{
				Attrs: []xml.Attr{
					attr(l.x, x, l.xDim),
					attr(l.y, s.Values[x], l.yDim),
				},
			})
		}
		if t.Kind == Ionization {
			raw.Shells = append(raw.Shells, rs)
		} else {
			raw.Sections = append(raw.Sections, rs)
		}
	}

	_, err := io.WriteString(w, xml.Header)
	if err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	err = enc.Encode(raw)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func attr(name string, x float64, d Dim) xml.Attr {
	return xml.Attr{
		Name:  xml.Name{Local: name},
		Value: FormatQuantity(x, d),
	}
}

func getQuantity(attrs []xml.Attr, name string, want Dim) (float64, error) {
	for _, a := range attrs {
		if a.Name.Local != name {
			continue
		}
		x, err := ParseQuantity(a.Value, want)
		if err != nil {
			if se, ok := err.(*SyntaxError); ok {
				se.Attr = name
			}
			return 0, err
		}
		return x, nil
	}
	return 0, fmt.Errorf("%w %q", ErrMissingAttr, name)
}
