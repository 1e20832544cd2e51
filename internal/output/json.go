// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package output provides JSON encoding for the vindata CLI's --json mode.
//
// It complements the ui package (human-readable output) and the errors
// package (error reporting).
//
// # Usage
//
//	report := &Report{Passed: 5}
//	if err := output.JSONTo(stdout, report); err != nil {
//	    errors.FatalError(err, true)
//	}
//
// For single-line output (--compact):
//
//	if err := output.JSONCompactTo(stdout, report); err != nil {
//	    errors.FatalError(err, true)
//	}
package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONTo writes data as pretty-printed JSON with 2-space indentation.
//
// Returns an error if JSON encoding fails (e.g., for unencodable types
// like channels or functions).
func JSONTo(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}

// JSONCompactTo writes data as compact single-line JSON.
func JSONCompactTo(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}

// Write picks JSONCompactTo or JSONTo depending on compact.
func Write(w io.Writer, data any, compact bool) error {
	if compact {
		return JSONCompactTo(w, data)
	}
	return JSONTo(w, data)
}
