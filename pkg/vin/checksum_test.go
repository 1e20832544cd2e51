// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package vin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vintest "github.com/AScotM/vindata/internal/testing"
)

func TestValidCheckDigit(t *testing.T) {
	tests := []struct {
		name string
		vin  string
		want bool
	}{
		{"remainder 3", "1HGCM82633A004352", true},
		{"remainder 10 as X", "1M8GDM9AXKP042788", true},
		{"remainder 6", "JH4TB2H26CC000000", true},
		{"remainder 0", "00000000000000000", true},
		{"remainder 10 as X required", "1G1YY22GX65104470", true},
		{"remainder 10 with digit", "1G1YY22G965104470", false},
		{"mismatch", "1HGCM82633A123455", false},
		{"lowercase x is not X", "1M8GDM9AxKP042788", false},
		{"letter at check position", "1HGCM826A3A004352", false},
		{"excluded letter fails closed", "1HGCM82633A00435Q", false},
		{"punctuation fails closed", "1HGCM82633A-04352", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validCheckDigit(tt.vin))
		})
	}
}

func TestCheckDigit(t *testing.T) {
	tests := []struct {
		vin    string
		want   byte
		wantOK bool
	}{
		{"1HGCM82633A004352", '3', true},
		{"1HGCM82633A123455", '5', true},
		{"1G1YY22G965104470", 'X', true},
		{"00000000000000000", '0', true},
		{"1HGCM82633A00435", 0, false},
		{"1HGCM82633A0043520", 0, false},
		{"1HGCM82633A00I352", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.vin, func(t *testing.T) {
			got, ok := CheckDigit(tt.vin)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, string(tt.want), string(got))
		})
	}
}

// TestCheckDigit_MatchesReference compares against the arithmetic oracle
// over random candidates.
func TestCheckDigit_MatchesReference(t *testing.T) {
	r := vintest.NewRand(t)
	for i := 0; i < 2000; i++ {
		c := vintest.RandomCandidate(r)
		want, ok := vintest.ReferenceCheckDigit(c)
		require.True(t, ok)

		got, ok := CheckDigit(c)
		require.True(t, ok, c)
		require.Equal(t, string(want), string(got), c)
	}
}

// TestCheckDigit_IgnoresCheckPosition verifies the character at position 8
// never feeds the sum.
func TestCheckDigit_IgnoresCheckPosition(t *testing.T) {
	base := "1HGCM82633A004352"
	want, ok := CheckDigit(base)
	require.True(t, ok)

	for i := 0; i < len(vintest.Alphabet); i++ {
		v := base[:CheckDigitIndex] + string(vintest.Alphabet[i]) + base[CheckDigitIndex+1:]
		got, ok := CheckDigit(v)
		require.True(t, ok)
		assert.Equal(t, want, got, v)
	}
}
