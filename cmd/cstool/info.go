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
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seehuhn.de/go/scatter"
)

func runInfo(args []string) error {
	fs := newFlagSet("info", "file.mat...", "describe the contents of material files")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return errUsage
	}

	width := 0
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}
	p := message.NewPrinter(userLanguage())

	for i, name := range fs.Args() {
		m, err := scatter.ReadFile(name)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Println()
		}
		writeSummary(os.Stdout, p, name, m.Summary(), width)
	}
	return nil
}

// userLanguage determines the language for number formatting from the
// usual environment variables.
func userLanguage() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		val := os.Getenv(key)
		if val == "" {
			continue
		}
		val, _, _ = strings.Cut(val, ".")
		val = strings.ReplaceAll(val, "_", "-")
		tag, err := language.Parse(val)
		if err == nil {
			return tag
		}
	}
	return language.English
}

// writeSummary prints s.  If width is positive, the list of shells is
// shortened to fit into the given number of columns.
func writeSummary(w io.Writer, p *message.Printer, fname string, s *scatter.Summary, width int) {
	p.Fprintf(w, "%s: %q\n", fname, s.Name)
	p.Fprintf(w, "  Fermi energy  %.4g eV\n", s.Fermi)
	p.Fprintf(w, "  barrier       %.4g eV\n", s.Barrier)
	if gap, ok := s.BandGap.Get(); ok {
		p.Fprintf(w, "  band gap      %.4g eV\n", gap)
	} else {
		p.Fprintf(w, "  band gap      none\n")
	}
	p.Fprintf(w, "  density       %.4g nm^-3\n", s.Density)

	channels := []struct {
		name string
		c    scatter.Channel
	}{
		{"elastic", s.Elastic},
		{"inelastic", s.Inelastic},
		{"ionization", s.Ionization},
	}
	for _, ch := range channels {
		if ch.c.Energies == 0 {
			p.Fprintf(w, "  %-12s  no data\n", ch.name)
			continue
		}
		p.Fprintf(w, "  %-12s  %d energies from %.4g eV to %.4g eV, %d values\n",
			ch.name, ch.c.Energies, ch.c.MinEnergy, ch.c.MaxEnergy, ch.c.Points)
	}

	if len(s.Shells) == 0 {
		return
	}
	const prefix = "  shells        "
	line := prefix
	for i, B := range s.Shells {
		item := p.Sprintf("%.4g", B)
		if i < len(s.Shells)-1 {
			item += ","
		}
		if width > 0 && len(line)+len(item)+5 > width {
			line += " ..."
			break
		}
		if i > 0 {
			line += " "
		}
		line += item
	}
	fmt.Fprintln(w, line+" eV")
}
