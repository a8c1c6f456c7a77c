package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-stability/measure/stability"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoadCaseFile(t *testing.T) {
	path := writeTempFile(t, "cases.yaml", `cases:
  - points: 200
    length: 1.0
    viscosity: 1.0e-3
    modes: 4
  - points: 50
    length: 2.0
    viscosity: 5.0e-4
    modes: 3
`)

	cases, err := loadCaseFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(cases) != 2 {
		t.Fatalf("cases: got %d, want 2", len(cases))
	}

	want := stability.Case{Points: 200, Length: 1.0, Viscosity: 1e-3, Modes: 4}
	if cases[0] != want {
		t.Fatalf("case 0: got %+v, want %+v", cases[0], want)
	}
}

func TestLoadCaseFile_RejectsUnknownFields(t *testing.T) {
	path := writeTempFile(t, "cases.yaml", `cases:
  - points: 200
    lenght: 1.0
    viscosity: 1.0e-3
    modes: 4
`)

	_, err := loadCaseFile(path)
	if err == nil {
		t.Fatal("expected error for misspelled field")
	}
}

func TestLoadCaseFile_Empty(t *testing.T) {
	path := writeTempFile(t, "cases.yaml", "cases: []\n")

	_, err := loadCaseFile(path)
	if err == nil || !strings.Contains(err.Error(), "no cases") {
		t.Fatalf("got %v, want no-cases error", err)
	}
}

func TestReadSamples(t *testing.T) {
	path := writeTempFile(t, "probe.txt", `# probe at (0.5, 0.5)
0.25
-1.5e-3

0.75
`)

	samples, err := readSamples(path)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{0.25, -1.5e-3, 0.75}
	if len(samples) != len(want) {
		t.Fatalf("samples: got %d, want %d", len(samples), len(want))
	}

	for i := range want {
		if samples[i] != want[i] {
			t.Fatalf("sample %d: got %v, want %v", i, samples[i], want[i])
		}
	}
}

func TestReadSamples_BadLine(t *testing.T) {
	path := writeTempFile(t, "probe.txt", "0.25\nnot-a-number\n")

	_, err := readSamples(path)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("got %v, want line-numbered parse error", err)
	}
}

func TestVerdict(t *testing.T) {
	stable := []stability.Mode{
		{Eigenvalue: complex(-1, 0), Label: stability.Stable},
		{Eigenvalue: complex(-2, 0), Label: stability.Stable},
	}

	if v := verdict(stable); v != stability.Stable {
		t.Fatalf("got %v, want STABLE", v)
	}

	mixed := append(stable, stability.Mode{Eigenvalue: complex(0.1, 0), Label: stability.Unstable})
	if v := verdict(mixed); v != stability.Unstable {
		t.Fatalf("got %v, want UNSTABLE", v)
	}

	if v := verdict(nil); v != stability.Stable {
		t.Fatalf("empty: got %v, want STABLE", v)
	}
}

func TestWorstGrowth(t *testing.T) {
	modes := []stability.Mode{
		{Eigenvalue: complex(-3, 0)},
		{Eigenvalue: complex(-1, 2)},
		{Eigenvalue: complex(-2, 0)},
	}

	growth, ok := worstGrowth(modes)
	if !ok || growth != -1 {
		t.Fatalf("got (%v, %v), want (-1, true)", growth, ok)
	}

	if _, ok := worstGrowth(nil); ok {
		t.Fatal("empty mode list should report no growth")
	}
}
