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

// Package metrics counts VIN validations and extractions with Prometheus.
//
// The pkg/vin functions are pure and keep no state; Collector wraps them
// and records each call on counters registered with a caller-supplied
// prometheus.Registerer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/AScotM/vindata/pkg/vin"
)

// Collector holds Prometheus counters for VIN operations.
type Collector struct {
	validations *prometheus.CounterVec
	extractions prometheus.Counter
	candidates  prometheus.Counter
}

// NewCollector creates the counters and registers them with reg. A nil reg
// leaves the counters unregistered.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vindata_validations_total",
			Help: "VIN validations by result",
		}, []string{"result"}),
		extractions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vindata_extractions_total",
			Help: "Texts scanned for VIN candidates",
		}),
		candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vindata_extracted_candidates_total",
			Help: "VIN candidates found in scanned texts",
		}),
	}
	if reg != nil {
		reg.MustRegister(c.validations, c.extractions, c.candidates)
	}
	return c
}

// Validate calls vin.IsValid and records the result.
func (c *Collector) Validate(input string) bool {
	ok := vin.IsValid(input)
	result := "invalid"
	if ok {
		result = "valid"
	}
	c.validations.WithLabelValues(result).Inc()
	return ok
}

// Extract calls vin.Extract and records the number of candidates.
func (c *Collector) Extract(text string) []string {
	found := vin.Extract(text)
	c.extractions.Inc()
	c.candidates.Add(float64(len(found)))
	return found
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Valid      int `json:"valid"`
	Invalid    int `json:"invalid"`
	Texts      int `json:"texts"`
	Candidates int `json:"candidates"`
}

// Snapshot reads the current counter values.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		Valid:      int(counterValue(c.validations.WithLabelValues("valid"))),
		Invalid:    int(counterValue(c.validations.WithLabelValues("invalid"))),
		Texts:      int(counterValue(c.extractions)),
		Candidates: int(counterValue(c.candidates)),
	}
}
