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
	"os"
	"runtime"
	"runtime/pprof"
)

// withProfile runs f, optionally recording a CPU profile while f runs and
// a memory profile after it has finished.  Empty file names disable the
// corresponding profile.
func withProfile(cpuFile, memFile string, f func() error) error {
	if cpuFile != "" {
		out, err := os.Create(cpuFile)
		if err != nil {
			return fmt.Errorf("cpu profile: %w", err)
		}
		defer out.Close()
		err = pprof.StartCPUProfile(out)
		if err != nil {
			return fmt.Errorf("cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	err := f()

	if memFile != "" {
		runtime.GC()
		out, err2 := os.Create(memFile)
		if err2 == nil {
			err2 = pprof.Lookup("allocs").WriteTo(out, 0)
			if err3 := out.Close(); err2 == nil {
				err2 = err3
			}
		}
		if err == nil && err2 != nil {
			err = fmt.Errorf("memory profile: %w", err2)
		}
	}
	return err
}
