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

package cstable

import (
	"errors"
	"strconv"
	"strings"
)

// Dim gives the physical dimension of a quantity as powers of energy and
// length.  Angles and solid angles are dimensionless.
type Dim struct {
	Energy int
	Length int
}

// Dimensions used in cross-section tables.
var (
	Dimensionless = Dim{}
	Energy        = Dim{Energy: 1}
	Area          = Dim{Length: 2}
	AreaPerEnergy = Dim{Energy: -1, Length: 2}
	NumberDensity = Dim{Length: -3}
)

func (d Dim) String() string {
	if d == Dimensionless {
		return "1"
	}
	var parts []string
	add := func(name string, exp int) {
		switch {
		case exp == 0:
		case exp == 1:
			parts = append(parts, name)
		default:
			parts = append(parts, name+"^"+strconv.Itoa(exp))
		}
	}
	add("eV", d.Energy)
	add("nm", d.Length)
	return strings.Join(parts, "*")
}

type unit struct {
	factor float64
	dim    Dim
}

// Quantities are converted to eV for energies and nm for lengths.
var units = map[string]unit{
	"eV":  {1, Energy},
	"meV": {1e-3, Energy},
	"keV": {1e3, Energy},
	"MeV": {1e6, Energy},
	"J":   {1 / 1.602176634e-19, Energy},

	"m":  {1e9, Dim{Length: 1}},
	"cm": {1e7, Dim{Length: 1}},
	"mm": {1e6, Dim{Length: 1}},
	"um": {1e3, Dim{Length: 1}},
	"nm": {1, Dim{Length: 1}},
	"A":  {0.1, Dim{Length: 1}},
	"Å":  {0.1, Dim{Length: 1}},

	"sr":  {1, Dimensionless},
	"rad": {1, Dimensionless},
}

// ParseQuantity parses a value of the form "number" or "number*units",
// for example "12.5*eV" or "1.3e-20*m^2/sr".  Unit expressions combine
// unit names with "*", "/" and integer powers "^n".
//
// The value is returned in eV and nm.  Numbers without units are assumed
// to be given in these units already.  If units are given, their dimension
// must match want.
func ParseQuantity(s string, want Dim) (float64, error) {
	s = strings.TrimSpace(s)
	num, expr, hasUnits := strings.Cut(s, "*")
	x, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, &SyntaxError{Value: s, Err: errInvalidNumber}
	}
	if !hasUnits {
		return x, nil
	}

	factor, dim, err := parseUnits(expr)
	if err != nil {
		return 0, &SyntaxError{Value: s, Err: err}
	}
	if dim != want {
		return 0, &SyntaxError{Value: s, Err: &DimensionError{Got: dim, Want: want}}
	}
	return x * factor, nil
}

// FormatQuantity formats x, given in eV and nm, with units of dimension d.
// The result can be read back by [ParseQuantity].
func FormatQuantity(x float64, d Dim) string {
	res := strconv.FormatFloat(x, 'g', -1, 64)
	if d == Dimensionless {
		return res
	}
	var num, den []string
	add := func(name string, exp int) {
		switch {
		case exp == 1:
			num = append(num, name)
		case exp > 1:
			num = append(num, name+"^"+strconv.Itoa(exp))
		case exp == -1:
			den = append(den, name)
		case exp < -1:
			den = append(den, name+"^"+strconv.Itoa(-exp))
		}
	}
	add("nm", d.Length)
	add("eV", d.Energy)
	if len(num) == 0 {
		num = append(num, "1")
	}
	res += "*" + strings.Join(num, "*")
	for _, name := range den {
		res += "/" + name
	}
	return res
}

func parseUnits(expr string) (float64, Dim, error) {
	if strings.TrimSpace(expr) == "" {
		return 0, Dim{}, errMissingUnit
	}

	factor := 1.0
	var dim Dim
	sign := 1
	for expr != "" {
		k := strings.IndexAny(expr, "*/")
		if k < 0 {
			k = len(expr)
		}
		term := strings.TrimSpace(expr[:k])

		name, expStr, hasExp := strings.Cut(term, "^")
		exp := 1
		if hasExp {
			var err error
			exp, err = strconv.Atoi(expStr)
			if err != nil || abs(exp) > maxExponent {
				return 0, Dim{}, errInvalidExponent
			}
		}
		exp *= sign

		if name != "1" || hasExp {
			u, ok := units[name]
			if !ok {
				return 0, Dim{}, &UnknownUnitError{Name: name}
			}
			for range abs(exp) {
				if exp > 0 {
					factor *= u.factor
				} else {
					factor /= u.factor
				}
			}
			dim.Energy += exp * u.dim.Energy
			dim.Length += exp * u.dim.Length
		}

		if k == len(expr) {
			break
		}
		if expr[k] == '/' {
			sign = -1
		} else {
			sign = 1
		}
		expr = expr[k+1:]
		if expr == "" {
			return 0, Dim{}, errMissingUnit
		}
	}
	return factor, dim, nil
}

const maxExponent = 16

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

var (
	errInvalidNumber   = errors.New("invalid number")
	errInvalidExponent = errors.New("invalid exponent")
	errMissingUnit     = errors.New("missing unit")
)
