package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-stability/measure/stability"
)

// readSamples loads a probe record with one sample per line. Blank
// lines and # comments are skipped.
func readSamples(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open probe file: %w", err)
	}
	defer f.Close()

	var samples []float64

	scanner := bufio.NewScanner(f)
	line := 0

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("probe file %s line %d: %w", path, line, err)
		}

		samples = append(samples, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read probe file: %w", err)
	}

	return samples, nil
}

// printModes renders the spectrum worst mode first. The library keeps
// solver order; the report wants the most dangerous mode on top.
func printModes(w io.Writer, modes []stability.Mode) error {
	sorted := slices.Clone(modes)
	slices.SortStableFunc(sorted, func(a, b stability.Mode) int {
		switch {
		case a.GrowthRate() > b.GrowthRate():
			return -1
		case a.GrowthRate() < b.GrowthRate():
			return 1
		}
		return 0
	})

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Mode\tGrowth [1/s]\tFrequency [rad/s]\tLabel\n")
	fmt.Fprintf(tw, "----\t------------\t-----------------\t-----\n")

	for _, m := range sorted {
		fmt.Fprintf(tw, "%d\t%.6e\t%.6e\t%s\n", m.Index, m.GrowthRate(), m.Frequency(), m.Label)
	}

	return tw.Flush()
}

// verdict reduces per-mode labels to a configuration verdict: one
// non-decaying mode makes the whole configuration unstable.
func verdict(modes []stability.Mode) stability.Classification {
	for _, m := range modes {
		if m.Label == stability.Unstable {
			return stability.Unstable
		}
	}

	return stability.Stable
}
