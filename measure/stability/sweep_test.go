package stability

import (
	"context"
	"errors"
	"testing"

	"github.com/cwbudde/algo-stability/operator"
)

func TestSweep_PreservesCaseOrder(t *testing.T) {
	cases := []Case{
		{Points: 50, Length: 1.0, Viscosity: 1e-3, Modes: 3},
		{Points: 2, Length: 1.0, Viscosity: 1e-3, Modes: 1},
		{Points: 80, Length: 2.0, Viscosity: 5e-4, Modes: 4},
	}

	results := Sweep(context.Background(), cases, 2)

	if len(results) != len(cases) {
		t.Fatalf("results: got %d, want %d", len(results), len(cases))
	}

	for i, r := range results {
		if r.Case != cases[i] {
			t.Fatalf("result %d: case %+v, want %+v", i, r.Case, cases[i])
		}
	}

	if results[0].Err != nil {
		t.Fatalf("case 0: unexpected error %v", results[0].Err)
	}

	if !errors.Is(results[1].Err, operator.ErrInvalidGrid) {
		t.Fatalf("case 1: got %v, want ErrInvalidGrid", results[1].Err)
	}

	if results[2].Err != nil {
		t.Fatalf("case 2: unexpected error %v", results[2].Err)
	}
}

func TestSweep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cases := []Case{
		{Points: 50, Length: 1.0, Viscosity: 1e-3, Modes: 3},
		{Points: 60, Length: 1.0, Viscosity: 1e-3, Modes: 3},
	}

	results := Sweep(ctx, cases, 1)

	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Fatalf("case %d: got %v, want context.Canceled", i, r.Err)
		}
	}
}

func TestSweep_ParallelMatchesSerial(t *testing.T) {
	cases := []Case{
		{Points: 40, Length: 1.0, Viscosity: 1e-3, Modes: 3},
		{Points: 60, Length: 1.5, Viscosity: 2e-3, Modes: 4},
		{Points: 80, Length: 1.0, Viscosity: 5e-4, Modes: 3},
		{Points: 30, Length: 0.5, Viscosity: 1e-2, Modes: 2},
	}

	parallel := Sweep(context.Background(), cases, 4)

	for i, c := range cases {
		serial, err := Analyze(c)
		if err != nil {
			t.Fatal(err)
		}

		if parallel[i].Err != nil {
			t.Fatalf("case %d: unexpected error %v", i, parallel[i].Err)
		}

		got := parallel[i].Result.Modes
		if len(got) != len(serial.Modes) {
			t.Fatalf("case %d: mode counts differ: %d vs %d", i, len(got), len(serial.Modes))
		}

		for j := range got {
			if got[j].Eigenvalue != serial.Modes[j].Eigenvalue {
				t.Fatalf("case %d mode %d: %v vs %v", i, j, got[j].Eigenvalue, serial.Modes[j].Eigenvalue)
			}
		}
	}
}

func TestSweep_Empty(t *testing.T) {
	results := Sweep(context.Background(), nil, 4)

	if len(results) != 0 {
		t.Fatalf("results: got %d, want 0", len(results))
	}
}
