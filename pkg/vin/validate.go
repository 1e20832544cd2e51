// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package vin

import (
	"regexp"
	"strings"
)

// excludedPattern matches the letters that never appear in a VIN.
var excludedPattern = regexp.MustCompile(`[IOQ]`)

// Normalize trims surrounding whitespace and upper-cases input.
func Normalize(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}

// IsValid reports whether input is a VIN with a correct check digit.
//
// Input is normalized first, so case and surrounding whitespace are
// ignored. Any input that is not exactly 17 legal characters, or whose
// check digit does not match, yields false.
func IsValid(input string) bool {
	v := Normalize(input)
	if len(v) != Length || excludedPattern.MatchString(v) {
		return false
	}
	return validCheckDigit(v)
}
