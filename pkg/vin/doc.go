// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package vin validates Vehicle Identification Numbers and extracts
// VIN-shaped substrings from free text.
//
// A VIN is 17 characters drawn from the digits and the uppercase letters
// A-Z without I, O and Q. The ninth character is a check digit computed
// from the other sixteen: each character is transliterated to a number,
// multiplied by a positional weight, and the weighted sum is reduced
// modulo 11. A remainder of 10 is written as 'X'.
//
// # Validation
//
// IsValid is total: every input yields true or false, never an error.
// Input is trimmed and upper-cased before it is checked:
//
//	vin.IsValid("1HGCM82633A004352")     // true
//	vin.IsValid("  1hgcm82633a004352 ")  // true
//	vin.IsValid("1HGCM82633A123455")     // false, check digit mismatch
//
// Inspect returns the same verdict together with the reason and the
// expected and actual check digits, which is useful for diagnostics:
//
//	in := vin.Inspect("1HGCM82633A123455")
//	fmt.Println(in.Reason, string(in.Expected), string(in.Actual))
//
// # Extraction
//
// Extract finds every standalone 17-character run of valid VIN characters
// in a text, in order of appearance. It does not check the check digit;
// use ExtractValid, or call IsValid on each candidate:
//
//	for _, candidate := range vin.Extract(text) {
//	    if vin.IsValid(candidate) {
//	        // ...
//	    }
//	}
//
// # Concurrency
//
// All functions in this package are pure and read only immutable
// package-level tables, so they are safe for concurrent use.
package vin
