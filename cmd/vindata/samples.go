// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed samples.yaml
var embeddedSamples []byte

// Sample is one VIN with the verdict IsValid must return.
type Sample struct {
	VIN   string `yaml:"vin"`
	Valid bool   `yaml:"valid"`
	Note  string `yaml:"note,omitempty"`
}

// Extraction is a block of text and the candidates Extract must find in it.
type Extraction struct {
	Text   string   `yaml:"text"`
	Expect []string `yaml:"expect"`
}

// SampleSet is the decoded samples.yaml document.
type SampleSet struct {
	Samples    []Sample   `yaml:"samples"`
	Extraction Extraction `yaml:"extraction"`
}

// loadSamples decodes and sanity-checks a sample set.
func loadSamples(data []byte) (*SampleSet, error) {
	var set SampleSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("decode samples: %w", err)
	}
	if len(set.Samples) == 0 {
		return nil, fmt.Errorf("decode samples: no samples defined")
	}
	for i, s := range set.Samples {
		if strings.TrimSpace(s.VIN) == "" {
			return nil, fmt.Errorf("decode samples: sample %d has no vin", i)
		}
	}
	return &set, nil
}
