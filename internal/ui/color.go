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

// Package ui provides terminal output helpers for the vindata CLI.
//
// Colors respect the --no-color flag and the NO_COLOR environment
// variable, and are disabled automatically when output is not a TTY.
//
// Color usage guidelines:
//   - Red: FAIL markers, errors
//   - Green: PASS markers, success
//   - Cyan: Info, counts
//   - Bold: Headers, labels
//   - Dim: Secondary details such as expected values
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Pre-configured color instances for consistent CLI output.
var (
	// Red is used for failures.
	Red = color.New(color.FgRed)

	// Green is used for passes and success messages.
	Green = color.New(color.FgGreen)

	// Cyan is used for informational messages.
	Cyan = color.New(color.FgCyan)

	// Bold is used for headers and important labels.
	Bold = color.New(color.Bold)

	// Dim is used for less important details.
	Dim = color.New(color.Faint)
)

// Out is where the printing helpers write. It defaults to color.Output,
// which handles Windows consoles; tests may replace it.
var Out io.Writer = color.Output

// InitColors configures global color output based on the noColor flag.
//
// Call it early in main() after parsing flags.
func InitColors(noColor bool) {
	color.NoColor = noColor
}

// Success prints a green success message with a checkmark prefix.
func Success(msg string) {
	_, _ = Green.Fprintln(Out, "✓ "+msg)
}

// Error prints a red error message with an X prefix.
func Error(msg string) {
	_, _ = Red.Fprintln(Out, "✗ "+msg)
}

// Infof prints a formatted cyan informational message with an info symbol prefix.
func Infof(format string, args ...any) {
	_, _ = Cyan.Fprintf(Out, "ℹ "+format+"\n", args...)
}

// Header prints a bold header with an underline separator.
//
// Example output:
//
//	VIN Self-Test
//	=============
func Header(text string) {
	_, _ = Bold.Fprintln(Out, text)
	fmt.Fprintln(Out, strings.Repeat("=", len(text)))
}

// Label returns a bold-formatted label string for inline use.
func Label(text string) string {
	return Bold.Sprint(text)
}

// DimText returns a dim-formatted string for less important text.
func DimText(text string) string {
	return Dim.Sprint(text)
}

// CountText returns a cyan-formatted count value for statistics display.
func CountText(count int) string {
	return Cyan.Sprint(count)
}

// YesNo renders a verdict as YES or NO.
func YesNo(ok bool) string {
	if ok {
		return "YES"
	}
	return "NO"
}

// Verdict returns a green PASS or a red FAIL marker.
func Verdict(pass bool) string {
	if pass {
		return Green.Sprint("PASS")
	}
	return Red.Sprint("FAIL")
}
