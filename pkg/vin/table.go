// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package vin

const (
	// Length is the number of characters in a VIN.
	Length = 17

	// CheckDigitIndex is the zero-based position of the check digit.
	CheckDigitIndex = 8
)

// transliteration maps every legal VIN character to its checksum value.
// I, O and Q have no entry: a lookup miss means the character is illegal.
var transliteration = map[byte]int{
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 7, 'R': 9,
	'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
}

// weights holds the positional multipliers. Position 8 is the check digit
// and carries weight 0.
var weights = [Length]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// Transliterate returns the checksum value of c. The boolean is false when
// c is not a legal VIN character, including I, O and Q.
func Transliterate(c byte) (int, bool) {
	v, ok := transliteration[c]
	return v, ok
}

// Weights returns a copy of the positional weight sequence.
func Weights() [Length]int {
	return weights
}
