// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package main implements vindata, a self-test for the VIN validator.
//
// It runs a fixed table of sample VINs through the validator and prints
// each verdict next to the expected one with a PASS/FAIL marker, then
// demonstrates extraction over a fixed paragraph. It does not read VINs
// from the command line.
//
// Usage:
//
//	vindata                 Run the self-test
//	vindata --json          Print the report as JSON
//	vindata --verbose       Log computed and actual check digits
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	flag "github.com/spf13/pflag"

	"github.com/AScotM/vindata/internal/errors"
	"github.com/AScotM/vindata/internal/metrics"
	"github.com/AScotM/vindata/internal/output"
	"github.com/AScotM/vindata/internal/ui"
)

// Version information (set via ldflags during build)
var (
	version = "dev"     // Version string
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the self-test and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vindata", flag.ContinueOnError)
	fs.SetOutput(stderr)
	jsonOutput := fs.Bool("json", false, "Output the report as JSON")
	compact := fs.Bool("compact", false, "With --json, print the report on a single line")
	noColor := fs.Bool("no-color", false, "Disable colored output")
	verbose := fs.BoolP("verbose", "v", false, "Log computed and actual check digits")
	showVersion := fs.Bool("version", false, "Show version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `vindata - VIN validator self-test

Usage:
  vindata [options]

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errors.ExitSuccess
		}
		return errors.Report(stderr, errors.NewInputError(
			"Invalid flags", err.Error(), "Run 'vindata --help' for usage", err,
		), *jsonOutput)
	}
	if fs.NArg() > 0 {
		return errors.Report(stderr, errors.NewInputError(
			"Unexpected arguments",
			fmt.Sprintf("vindata takes no arguments, got %q", fs.Args()),
			"Use pkg/vin from Go code to validate your own VINs",
			nil,
		), *jsonOutput)
	}

	if *showVersion {
		fmt.Fprintf(stdout, "vindata version %s\n", version)
		fmt.Fprintf(stdout, "commit: %s\n", commit)
		fmt.Fprintf(stdout, "built: %s\n", date)
		return errors.ExitSuccess
	}

	ui.InitColors(*noColor || os.Getenv("NO_COLOR") != "")
	ui.Out = stdout

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	set, err := loadSamples(embeddedSamples)
	if err != nil {
		return errors.Report(stderr, errors.NewConfigError(
			"Cannot load sample VINs",
			"The embedded samples.yaml is malformed",
			"This is a build problem; rebuild from a clean checkout",
			err,
		), *jsonOutput)
	}
	logger.Debug("loaded samples", "samples", len(set.Samples))

	report := runSelfTest(set, metrics.NewCollector(prometheus.NewRegistry()), logger)

	if *jsonOutput {
		if err := output.Write(stdout, report, *compact); err != nil {
			return errors.Report(stderr, errors.NewInternalError(
				"Cannot write report", err.Error(), "This is a bug. Please report it", err,
			), true)
		}
	} else {
		printReport(report)
	}

	return errors.Report(stderr, report.Err(), *jsonOutput)
}
