package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-stability/measure/stability"
)

type caseFile struct {
	Cases []caseEntry `yaml:"cases"`
}

type caseEntry struct {
	Points    int     `yaml:"points"`
	Length    float64 `yaml:"length"`
	Viscosity float64 `yaml:"viscosity"`
	Modes     int     `yaml:"modes"`
}

// loadCaseFile reads a sweep definition. Unknown YAML fields are
// rejected so a typo fails loudly instead of running a default case.
func loadCaseFile(path string) ([]stability.Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var cf caseFile
	if err := decoder.Decode(&cf); err != nil {
		return nil, fmt.Errorf("parse case file: %w", err)
	}

	if len(cf.Cases) == 0 {
		return nil, fmt.Errorf("case file %s has no cases", path)
	}

	cases := make([]stability.Case, len(cf.Cases))
	for i, c := range cf.Cases {
		cases[i] = stability.Case{
			Points:    c.Points,
			Length:    c.Length,
			Viscosity: c.Viscosity,
			Modes:     c.Modes,
		}
	}

	return cases, nil
}
