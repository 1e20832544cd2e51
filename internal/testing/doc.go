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

// Package testing provides test helpers for vindata tests.
//
// The helpers compute check digits with an arithmetic formula that is
// independent of the lookup table in pkg/vin, so tests can use them as an
// oracle rather than re-asserting the implementation against itself.
//
// # Quick Start
//
//	import vintest "github.com/AScotM/vindata/internal/testing"
//
//	func TestMyFeature(t *testing.T) {
//	    r := vintest.NewRand(t)
//	    v := vintest.WithCheckDigit(t, vintest.RandomCandidate(r))
//	    require.True(t, vin.IsValid(v))
//	}
//
// # Helpers
//
//   - Alphabet: the 33 legal VIN characters
//   - ReferenceValue / ReferenceCheckDigit: the arithmetic oracle
//   - RandomCandidate: a random 17-character string over Alphabet
//   - WithCheckDigit / WithWrongCheckDigit: fix or break position 8
//   - NewRand: a deterministic source seeded from the test name
package testing
