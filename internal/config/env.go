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

package config

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Environment variables which override the command-line defaults.
const (
	EnvJobs = "CSTOOL_JOBS"
	EnvLog  = "CSTOOL_LOG"
)

// Jobs returns the default number of materials to build in parallel.
func Jobs() int {
	n := runtime.GOMAXPROCS(0)
	if v := strings.TrimSpace(os.Getenv(EnvJobs)); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			n = parsed
		}
	}
	return n
}

// LogMode returns the default logger mode.
func LogMode() string {
	if v := strings.TrimSpace(os.Getenv(EnvLog)); v != "" {
		return v
	}
	return "dev"
}
