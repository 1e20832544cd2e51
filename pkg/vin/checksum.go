// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package vin

import "strconv"

// weightedSum returns the transliterated, weighted sum of v. The boolean is
// false when any character of v has no transliteration. v must be Length
// bytes long.
func weightedSum(v string) (int, bool) {
	total := 0
	for i := 0; i < Length; i++ {
		value, ok := transliteration[v[i]]
		if !ok {
			return 0, false
		}
		// The check digit itself is multiplied by zero.
		total += value * weights[i]
	}
	return total, true
}

// checkDigitFor renders a modulo-11 remainder as a check digit character.
func checkDigitFor(remainder int) string {
	if remainder == 10 {
		return "X"
	}
	return strconv.Itoa(remainder)
}

// validCheckDigit reports whether the character at CheckDigitIndex matches
// the check digit implied by the rest of v. v must be Length bytes long.
// Characters outside the transliteration table fail closed.
func validCheckDigit(v string) bool {
	total, ok := weightedSum(v)
	if !ok {
		return false
	}
	return v[CheckDigitIndex:CheckDigitIndex+1] == checkDigitFor(total%11)
}

// CheckDigit computes the check digit that the other sixteen characters of
// v imply. v is expected to be normalized already (see Normalize). The
// boolean is false when v is not Length bytes long or contains a character
// outside the VIN alphabet. The character currently at CheckDigitIndex is
// ignored, though it must still be a legal VIN character.
func CheckDigit(v string) (byte, bool) {
	if len(v) != Length {
		return 0, false
	}
	total, ok := weightedSum(v)
	if !ok {
		return 0, false
	}
	return checkDigitFor(total % 11)[0], true
}
