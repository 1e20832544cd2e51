// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package testing

import (
	"hash/fnv"
	"math/rand/v2"
	"testing"
)

// Alphabet lists every legal VIN character.
const Alphabet = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"

// ReferenceValue returns the transliteration of c computed arithmetically:
// A-I count 1-9, J-R count 1-9 and S-Z count 2-9. I, O and Q are rejected.
func ReferenceValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c == 'I' || c == 'O' || c == 'Q':
		return 0, false
	case c >= 'A' && c <= 'I':
		return int(c-'A') + 1, true
	case c >= 'J' && c <= 'R':
		return int(c-'J') + 1, true
	case c >= 'S' && c <= 'Z':
		return int(c-'S') + 2, true
	}
	return 0, false
}

var referenceWeights = [17]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// ReferenceCheckDigit returns the check digit for a 17-character v.
func ReferenceCheckDigit(v string) (byte, bool) {
	if len(v) != 17 {
		return 0, false
	}
	sum := 0
	for i := 0; i < len(v); i++ {
		n, ok := ReferenceValue(v[i])
		if !ok {
			return 0, false
		}
		sum += n * referenceWeights[i]
	}
	if r := sum % 11; r < 10 {
		return byte('0' + r), true
	}
	return 'X', true
}

// NewRand returns a deterministic random source seeded from the test name,
// so failures reproduce.
func NewRand(t *testing.T) *rand.Rand {
	t.Helper()
	h := fnv.New64a()
	_, _ = h.Write([]byte(t.Name()))
	seed := h.Sum64()
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomCandidate returns 17 random characters from Alphabet. The check
// digit is not fixed up.
func RandomCandidate(r *rand.Rand) string {
	b := make([]byte, 17)
	for i := range b {
		b[i] = Alphabet[r.IntN(len(Alphabet))]
	}
	return string(b)
}

// WithCheckDigit returns v with position 8 replaced by its correct check
// digit. v must be 17 legal VIN characters.
func WithCheckDigit(t *testing.T, v string) string {
	t.Helper()
	d, ok := ReferenceCheckDigit(v)
	if !ok {
		t.Fatalf("cannot compute check digit for %q", v)
	}
	return v[:8] + string(d) + v[9:]
}

// WithWrongCheckDigit returns v with position 8 replaced by a check digit
// character that does not match.
func WithWrongCheckDigit(t *testing.T, v string) string {
	t.Helper()
	d, ok := ReferenceCheckDigit(v)
	if !ok {
		t.Fatalf("cannot compute check digit for %q", v)
	}
	wrong := byte('0')
	if d == '0' {
		wrong = '1'
	}
	return v[:8] + string(wrong) + v[9:]
}
