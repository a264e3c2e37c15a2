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
	"bufio"
	"os"
)

// ReadFile reads a Material from the named file.
func ReadFile(name string) (*Material, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	return Read(bufio.NewReader(fd))
}

// WriteFile writes the Material to the named file, replacing any existing
// file.
func (m *Material) WriteFile(name string) error {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(fd)
	err = m.Encode(w)
	if err == nil {
		err = w.Flush()
	}
	err2 := fd.Close()
	if err == nil {
		err = err2
	}
	return err
}
