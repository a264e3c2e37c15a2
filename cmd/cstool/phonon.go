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
	"bufio"
	"os"

	"seehuhn.de/go/scatter/cstable"
	"seehuhn.de/go/scatter/phonon"
)

// quantity is a flag.Value which accepts numbers with optional units.
type quantity struct {
	x   float64
	dim cstable.Dim
}

func (q *quantity) String() string {
	if q == nil || q.x == 0 {
		return ""
	}
	return cstable.FormatQuantity(q.x, q.dim)
}

func (q *quantity) Set(s string) error {
	x, err := cstable.ParseQuantity(s, q.dim)
	if err != nil {
		return err
	}
	q.x = x
	return nil
}

func runPhonon(args []string) error {
	fs := newFlagSet("phonon", "[options] > phonon.xml",
		"tabulate acoustic phonon cross sections")
	epsAc := &quantity{dim: cstable.Energy}
	lattice := &quantity{dim: cstable.Dim{Length: 1}}
	eBZ := &quantity{dim: cstable.Energy}
	fs.Var(epsAc, "eps_ac", "acoustic deformation potential (default unit eV)")
	cs := fs.Float64("c_s", 0, "speed of sound in m/s")
	molar := fs.Float64("M", 0, "molar mass in kg/mol")
	rhoM := fs.Float64("rho_m", 0, "mass density in kg/m^3")
	fs.Var(lattice, "a", "lattice constant (default unit nm)")
	fs.Var(eBZ, "e_bz", "Brillouin-zone energy (default unit eV), derived from -a if unset")
	temp := fs.Float64("T", 300, "temperature in K")
	out := fs.String("o", "", "write the table to `file` instead of standard output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return errUsage
	}

	model, err := phonon.New(&phonon.Params{
		EpsAc: epsAc.x,
		Cs:    *cs,
		M:     *molar,
		RhoM:  *rhoM,
		A:     lattice.x * 1e-9,
		EBZ:   eBZ.x,
		T:     *temp,
	})
	if err != nil {
		return err
	}
	t := model.Table(phonon.DefaultEnergies(), phonon.DefaultAngles())

	w := os.Stdout
	if *out != "" {
		w, err = os.Create(*out)
		if err != nil {
			return err
		}
	}
	buf := bufio.NewWriter(w)
	err = t.Write(buf)
	if err == nil {
		err = buf.Flush()
	}
	if *out != "" {
		if err2 := w.Close(); err == nil {
			err = err2
		}
	}
	return err
}
