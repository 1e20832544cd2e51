// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package vin

// Reason explains the outcome of Inspect.
type Reason string

const (
	// ReasonOK means the VIN is valid.
	ReasonOK Reason = "ok"

	// ReasonLength means the normalized input is not 17 characters long.
	ReasonLength Reason = "length"

	// ReasonExcluded means the input contains I, O or Q.
	ReasonExcluded Reason = "excluded-character"

	// ReasonCharacter means the input contains a character that is not a
	// digit or letter, e.g. punctuation, inner whitespace or non-ASCII.
	ReasonCharacter Reason = "invalid-character"

	// ReasonCheckDigit means the check digit does not match.
	ReasonCheckDigit Reason = "check-digit"
)

// Inspection is the detailed outcome of validating one input.
type Inspection struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
	Valid      bool   `json:"valid"`
	Reason     Reason `json:"reason"`

	// Expected is the computed check digit; zero unless the input got as far
	// as the checksum.
	Expected byte `json:"-"`

	// Actual is the character found at CheckDigitIndex; zero when the
	// normalized input is too short to have one.
	Actual byte `json:"-"`
}

// Inspect validates input like IsValid and reports why it passed or failed.
// Inspect(x).Valid == IsValid(x) for every x.
func Inspect(input string) Inspection {
	v := Normalize(input)
	in := Inspection{Input: input, Normalized: v}
	if len(v) > CheckDigitIndex {
		in.Actual = v[CheckDigitIndex]
	}

	if len(v) != Length {
		in.Reason = ReasonLength
		return in
	}
	if excludedPattern.MatchString(v) {
		in.Reason = ReasonExcluded
		return in
	}

	expected, ok := CheckDigit(v)
	if !ok {
		in.Reason = ReasonCharacter
		return in
	}
	in.Expected = expected
	if in.Actual != expected {
		in.Reason = ReasonCheckDigit
		return in
	}

	in.Valid = true
	in.Reason = ReasonOK
	return in
}
