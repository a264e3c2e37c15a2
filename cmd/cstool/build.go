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
	"context"
	"os"
	"os/signal"

	"seehuhn.de/go/scatter/internal/build"
	"seehuhn.de/go/scatter/internal/config"
	"seehuhn.de/go/scatter/internal/logger"
)

func runBuild(args []string) error {
	fs := newFlagSet("build", "[options] materials.yaml",
		"build material files from a YAML definition")
	jobs := fs.Int("j", config.Jobs(), "number of materials to build in parallel (env "+config.EnvJobs+")")
	logMode := fs.String("log", config.LogMode(), "log `mode`: dev, prod or off (env "+config.EnvLog+")")
	cpuprofile := fs.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile := fs.String("memprofile", "", "write memory profile to `file`")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	log, err := logger.New(*logMode)
	if err != nil {
		return err
	}
	defer log.Sync()

	def, err := config.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return withProfile(*cpuprofile, *memprofile, func() error {
		log.Info("building materials", "count", len(def.Materials), "jobs", *jobs)
		return build.Run(ctx, log, def.Materials, &build.Options{Jobs: *jobs})
	})
}
