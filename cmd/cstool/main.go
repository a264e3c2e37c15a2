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

// Command cstool builds and inspects material files for electron scattering
// simulations.
//
// Usage:
//
//	cstool build [options] materials.yaml
//	cstool info file.mat...
//	cstool phonon [options] > phonon.xml
//	cstool version
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
)

type command struct {
	name  string
	short string
	run   func(args []string) error
}

var commands = []*command{
	{"build", "build material files from a YAML definition", runBuild},
	{"info", "describe the contents of material files", runInfo},
	{"phonon", "tabulate acoustic phonon cross sections", runPhonon},
	{"version", "print version information", runVersion},
}

// errUsage signals that the usage message has already been printed.
var errUsage = errors.New("usage error")

func usage() {
	fmt.Fprintf(os.Stderr, "cstool - electron scattering tables\n")
	fmt.Fprintf(os.Stderr, "%s\n\n", version())
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  cstool <command> [arguments]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", c.name, c.short)
	}
	fmt.Fprintf(os.Stderr, "\nUse \"cstool <command> -h\" for more information about a command.\n")
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	name := flag.Arg(0)
	for _, c := range commands {
		if c.name != name {
			continue
		}
		err := c.run(flag.Args()[1:])
		switch {
		case errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp):
			os.Exit(2)
		case err != nil:
			fmt.Fprintln(os.Stderr, "cstool:", err)
			os.Exit(1)
		}
		return
	}

	fmt.Fprintf(os.Stderr, "cstool: unknown command %q\n\n", name)
	usage()
	os.Exit(2)
}

// newFlagSet returns a flag set for a sub-command, with a usage message
// listing the arguments and options.
func newFlagSet(name, args, desc string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "cstool %s - %s\n\n", name, desc)
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  cstool %s %s\n", name, args)
		hasFlags := false
		fs.VisitAll(func(*flag.Flag) { hasFlags = true })
		if hasFlags {
			fmt.Fprintf(os.Stderr, "\nOptions:\n")
			fs.PrintDefaults()
		}
	}
	return fs
}

func runVersion(args []string) error {
	fs := newFlagSet("version", "[-deps]", "print version information")
	deps := fs.Bool("deps", false, "also list the module dependencies")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Println(version())
	if !*deps {
		return nil
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	fmt.Println(info.GoVersion)
	for _, m := range info.Deps {
		fmt.Printf("  %s %s\n", m.Path, m.Version)
	}
	return nil
}

// version returns a one-line description of the running binary.
func version() string {
	const tool = "cstool"
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return tool
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return fmt.Sprintf("%s (%s %s)", tool, info.Main.Path, v)
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	rev := settings["vcs.revision"]
	if rev == "" {
		return tool
	}
	rev = rev[:min(len(rev), 8)]
	if settings["vcs.modified"] == "true" {
		rev += "+dirty"
	}
	return fmt.Sprintf("%s (%s %s)", tool, info.Main.Path, rev)
}
