// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/AScotM/vindata/internal/errors"
	"github.com/AScotM/vindata/internal/metrics"
	"github.com/AScotM/vindata/internal/ui"
	"github.com/AScotM/vindata/pkg/vin"
)

// SampleResult is the outcome of validating one sample.
type SampleResult struct {
	VIN      string     `json:"vin"`
	Valid    bool       `json:"valid"`
	Expected bool       `json:"expected"`
	Pass     bool       `json:"pass"`
	Reason   vin.Reason `json:"reason"`
	Note     string     `json:"note,omitempty"`
}

// Candidate is one VIN-shaped string found in the extraction text.
type Candidate struct {
	VIN   string `json:"vin"`
	Valid bool   `json:"valid"`
}

// Report is the full self-test result, printed as text or JSON.
type Report struct {
	Samples        []SampleResult   `json:"samples"`
	Extracted      []Candidate      `json:"extracted"`
	ExtractionPass bool             `json:"extraction_pass"`
	Passed         int              `json:"passed"`
	Failed         int              `json:"failed"`
	Metrics        metrics.Snapshot `json:"metrics"`
}

// digit renders a check digit for logging; zero means there was none.
func digit(b byte) string {
	if b == 0 {
		return "-"
	}
	return string(b)
}

// runSelfTest validates every sample and scans the extraction text.
func runSelfTest(set *SampleSet, c *metrics.Collector, logger *slog.Logger) *Report {
	report := &Report{
		Samples:   make([]SampleResult, 0, len(set.Samples)),
		Extracted: []Candidate{},
	}

	for _, s := range set.Samples {
		valid := c.Validate(s.VIN)
		in := vin.Inspect(s.VIN)
		logger.Debug("checked sample",
			"vin", in.Normalized,
			"computed", digit(in.Expected),
			"actual", digit(in.Actual),
			"reason", in.Reason,
		)

		r := SampleResult{
			VIN:      s.VIN,
			Valid:    valid,
			Expected: s.Valid,
			Pass:     valid == s.Valid,
			Reason:   in.Reason,
			Note:     s.Note,
		}
		if r.Pass {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Samples = append(report.Samples, r)
	}

	found := c.Extract(set.Extraction.Text)
	for _, f := range found {
		report.Extracted = append(report.Extracted, Candidate{VIN: f, Valid: c.Validate(f)})
	}
	report.ExtractionPass = slices.Equal(found, set.Extraction.Expect)
	if report.ExtractionPass {
		report.Passed++
	} else {
		report.Failed++
		logger.Debug("extraction mismatch", "got", found, "want", set.Extraction.Expect)
	}

	report.Metrics = c.Snapshot()
	return report
}

// Err converts a failing report into a UserError. It returns nil when
// every check passed.
func (r *Report) Err() error {
	if r.Failed == 0 {
		return nil
	}

	var causes []string
	for _, s := range r.Samples {
		if !s.Pass {
			causes = append(causes, fmt.Sprintf("%s: got %s, want %s",
				strings.TrimSpace(s.VIN), ui.YesNo(s.Valid), ui.YesNo(s.Expected)))
		}
	}
	if !r.ExtractionPass {
		causes = append(causes, "extraction did not return the expected candidates")
	}

	return errors.NewSelfTestError(
		fmt.Sprintf("%d of %d checks failed", r.Failed, r.Passed+r.Failed),
		strings.Join(causes, "; "),
		"Re-run with --verbose to see computed check digits",
	)
}

// printReport renders the report for a terminal.
func printReport(r *Report) {
	ui.Header("VIN Self-Test")
	for _, s := range r.Samples {
		fmt.Fprintf(ui.Out, "VIN: %s | Valid: %s | Expected: %s | %s\n",
			s.VIN, ui.YesNo(s.Valid), ui.YesNo(s.Expected), ui.Verdict(s.Pass))
	}

	fmt.Fprintln(ui.Out)
	ui.Header("Extraction")
	ui.Infof("%s candidates found", ui.CountText(len(r.Extracted)))
	for _, c := range r.Extracted {
		fmt.Fprintf(ui.Out, "  %s - %s\n", c.VIN, validText(c.Valid))
	}
	fmt.Fprintf(ui.Out, "%s %s\n", ui.Label("Extraction:"), ui.Verdict(r.ExtractionPass))

	fmt.Fprintln(ui.Out)
	fmt.Fprintf(ui.Out, "%s %s valid, %s invalid\n", ui.Label("Validations:"),
		ui.CountText(r.Metrics.Valid), ui.CountText(r.Metrics.Invalid))
	if r.Failed == 0 {
		ui.Success(fmt.Sprintf("All %d checks passed", r.Passed))
	} else {
		ui.Error(fmt.Sprintf("%d of %d checks failed", r.Failed, r.Passed+r.Failed))
	}
}

func validText(ok bool) string {
	if ok {
		return "Valid"
	}
	return ui.DimText("Invalid")
}
