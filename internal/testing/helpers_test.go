// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package testing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReferenceValue checks the arithmetic table against the published one.
func TestReferenceValue(t *testing.T) {
	published := map[byte]int{
		'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
		'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 7, 'R': 9,
		'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
	}
	for c, want := range published {
		got, ok := ReferenceValue(c)
		require.True(t, ok, "character %q", c)
		assert.Equal(t, want, got, "character %q", c)
	}

	for _, c := range []byte("IOQ-_ a") {
		_, ok := ReferenceValue(c)
		assert.False(t, ok, "character %q should be rejected", c)
	}
}

func TestReferenceCheckDigit(t *testing.T) {
	tests := []struct {
		vin  string
		want byte
	}{
		{"1HGCM82633A004352", '3'},
		{"1M8GDM9AXKP042788", 'X'},
		{"JH4TB2H26CC000000", '6'},
		{"11111111111111111", '1'},
	}
	for _, tt := range tests {
		t.Run(tt.vin, func(t *testing.T) {
			got, ok := ReferenceCheckDigit(tt.vin)
			require.True(t, ok)
			assert.Equal(t, string(tt.want), string(got))
		})
	}

	_, ok := ReferenceCheckDigit("SHORT")
	assert.False(t, ok)
}

func TestRandomCandidate(t *testing.T) {
	r := NewRand(t)
	for i := 0; i < 100; i++ {
		c := RandomCandidate(r)
		require.Len(t, c, 17)
		for _, ch := range c {
			assert.True(t, strings.ContainsRune(Alphabet, ch), "unexpected %q in %q", ch, c)
		}
	}
}

func TestNewRand_Deterministic(t *testing.T) {
	a := RandomCandidate(NewRand(t))
	b := RandomCandidate(NewRand(t))
	assert.Equal(t, a, b)
}

func TestWithCheckDigit(t *testing.T) {
	got := WithCheckDigit(t, "1HGCM826Z3A004352")
	assert.Equal(t, "1HGCM82633A004352", got)

	wrong := WithWrongCheckDigit(t, got)
	assert.NotEqual(t, got[8], wrong[8])
	assert.Equal(t, got[:8], wrong[:8])
	assert.Equal(t, got[9:], wrong[9:])
}
