// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package vin

import (
	"regexp"
	"strings"
)

// candidatePattern matches a standalone run of exactly 17 VIN characters.
// \b is the ASCII word boundary, so runs embedded in longer alphanumeric or
// underscore tokens are not matched.
var candidatePattern = regexp.MustCompile(`\b[A-HJ-NPR-Z0-9]{17}\b`)

// Extract returns every VIN-shaped candidate in text, upper-cased, in order
// of appearance. Candidates are not checksum-validated. The result is
// never nil.
func Extract(text string) []string {
	matches := candidatePattern.FindAllString(strings.ToUpper(text), -1)
	if matches == nil {
		return []string{}
	}
	return matches
}

// ExtractValid returns the candidates from Extract whose check digit is
// correct, preserving order.
func ExtractValid(text string) []string {
	candidates := Extract(text)
	valid := candidates[:0]
	for _, c := range candidates {
		if IsValid(c) {
			valid = append(valid, c)
		}
	}
	return valid
}
