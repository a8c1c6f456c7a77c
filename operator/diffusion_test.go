package operator

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-stability/internal/testutil"
)

func TestDiffusion_InteriorRowsSumToZero(t *testing.T) {
	cases := []struct {
		name      string
		points    int
		length    float64
		viscosity float64
	}{
		{"minimal", 3, 1.0, 1.0},
		{"canonical", 200, 1.0, 1e-3},
		{"long domain", 50, 12.5, 0.7},
		{"zero viscosity", 20, 1.0, 0},
		{"negative viscosity", 20, 2.0, -0.3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			op, err := Diffusion(tc.points, tc.length, tc.viscosity)
			if err != nil {
				t.Fatal(err)
			}

			scale := math.Abs(tc.viscosity) / (op.Dx * op.Dx)
			eps := 1e-12 * (1 + scale)

			for i := 1; i < tc.points-1; i++ {
				if s := op.RowSum(i); math.Abs(s) > eps {
					t.Fatalf("row %d: sum %v, want 0 (eps %v)", i, s, eps)
				}
			}
		})
	}
}

func TestDiffusion_StencilEntries(t *testing.T) {
	// n=5, L=1, nu=1: dx=0.25, nu/dx² = 16 exactly.
	op, err := Diffusion(5, 1.0, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNear(t, op.At(2, 1), 16, 0)
	testutil.RequireNear(t, op.At(2, 2), -32, 0)
	testutil.RequireNear(t, op.At(2, 3), 16, 0)
	testutil.RequireNear(t, op.At(2, 0), 0, 0)
	testutil.RequireNear(t, op.At(2, 4), 0, 0)

	// Boundary rows carry physical coefficients before enforcement.
	testutil.RequireNear(t, op.At(0, 0), -32, 0)
	testutil.RequireNear(t, op.At(0, 1), 16, 0)
	testutil.RequireNear(t, op.At(4, 3), 16, 0)
	testutil.RequireNear(t, op.At(4, 4), -32, 0)

	if nnz := op.NonZeros(); nnz != 3*5-2 {
		t.Fatalf("stored entries: got %d, want %d", nnz, 3*5-2)
	}
}

func TestDiffusion_InvalidGrid(t *testing.T) {
	cases := []struct {
		name      string
		points    int
		length    float64
		viscosity float64
	}{
		{"too few points", 2, 1.0, 1.0},
		{"zero length", 10, 0, 1.0},
		{"negative length", 10, -1.0, 1.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			op, err := Diffusion(tc.points, tc.length, tc.viscosity)
			if !errors.Is(err, ErrInvalidGrid) {
				t.Fatalf("error: got %v, want ErrInvalidGrid", err)
			}

			if op != nil {
				t.Fatal("expected nil matrix on error")
			}
		})
	}
}

func TestDiffusion_ViscositySign(t *testing.T) {
	pos, err := Diffusion(10, 1.0, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	neg, err := Diffusion(10, 1.0, -0.5)
	if err != nil {
		t.Fatal(err)
	}

	zero, err := Diffusion(10, 1.0, 0)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNear(t, neg.At(4, 4), -pos.At(4, 4), 0)
	testutil.RequireNear(t, zero.At(4, 4), 0, 0)
}

func TestDiffusion_Metadata(t *testing.T) {
	op, err := Diffusion(101, 2.5, 3e-4)
	if err != nil {
		t.Fatal(err)
	}

	if op.Dim() != 101 {
		t.Fatalf("dim: got %d, want 101", op.Dim())
	}

	testutil.RequireNear(t, op.Length, 2.5, 0)
	testutil.RequireNear(t, op.Viscosity, 3e-4, 0)
	testutil.RequireNear(t, op.Dx, 2.5/100, 1e-15)
}
