// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package vin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vintest "github.com/AScotM/vindata/internal/testing"
)

func TestTransliteration_Size(t *testing.T) {
	assert.Len(t, transliteration, 33)
}

// TestTransliteration_ExcludedLetters verifies I, O and Q are absent rather
// than mapped to zero.
func TestTransliteration_ExcludedLetters(t *testing.T) {
	for _, c := range []byte("IOQ") {
		_, ok := Transliterate(c)
		assert.False(t, ok, "%q must not be in the table", c)
	}
}

func TestTransliteration_MatchesReference(t *testing.T) {
	for i := 0; i < len(vintest.Alphabet); i++ {
		c := vintest.Alphabet[i]
		want, ok := vintest.ReferenceValue(c)
		require.True(t, ok)

		got, ok := Transliterate(c)
		require.True(t, ok, "%q should be in the table", c)
		assert.Equal(t, want, got, "value of %q", c)
	}
}

func TestTransliteration_RejectsOtherBytes(t *testing.T) {
	for _, c := range []byte("abcxyz -_.*\x00\xff") {
		_, ok := Transliterate(c)
		assert.False(t, ok, "%q must not be in the table", c)
	}
}

func TestWeights(t *testing.T) {
	w := Weights()
	assert.Equal(t, [Length]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}, w)
	assert.Zero(t, w[CheckDigitIndex])

	// Weights returns a copy.
	w[0] = 99
	assert.Equal(t, 8, Weights()[0])
}
