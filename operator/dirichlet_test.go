package operator

import (
	"testing"

	"github.com/cwbudde/algo-stability/internal/testutil"
)

// denseOf collects the full matrix content row-major for comparison.
func denseOf(m *Matrix) []float64 {
	n := m.Dim()
	out := make([]float64, 0, n*n)

	for i := range n {
		for j := range n {
			out = append(out, m.At(i, j))
		}
	}

	return out
}

func TestApplyDirichlet_UnitRows(t *testing.T) {
	for _, nu := range []float64{1.0, 1e-3, 0, -2.5} {
		op, err := Diffusion(7, 1.0, nu)
		if err != nil {
			t.Fatal(err)
		}

		op.ApplyDirichlet()

		n := op.Dim()
		for j := range n {
			wantFirst := 0.0
			if j == 0 {
				wantFirst = 1
			}

			wantLast := 0.0
			if j == n-1 {
				wantLast = 1
			}

			testutil.RequireNear(t, op.At(0, j), wantFirst, 0)
			testutil.RequireNear(t, op.At(n-1, j), wantLast, 0)
		}
	}
}

func TestApplyDirichlet_PreservesInterior(t *testing.T) {
	op, err := Diffusion(9, 2.0, 0.125)
	if err != nil {
		t.Fatal(err)
	}

	before := denseOf(op)
	op.ApplyDirichlet()
	after := denseOf(op)

	n := op.Dim()
	for i := 1; i < n-1; i++ {
		testutil.RequireSliceNearlyEqual(t, after[i*n:(i+1)*n], before[i*n:(i+1)*n], 0)
	}
}

func TestApplyDirichlet_Idempotent(t *testing.T) {
	op, err := Diffusion(12, 1.0, 0.01)
	if err != nil {
		t.Fatal(err)
	}

	op.ApplyDirichlet()
	once := denseOf(op)

	op.ApplyDirichlet()
	twice := denseOf(op)

	testutil.RequireSliceNearlyEqual(t, twice, once, 0)
}

func TestApplyDirichlet_InsertsMissingDiagonal(t *testing.T) {
	// Off-diagonal permutation: neither boundary row stores its diagonal.
	m, err := FromDense([][]float64{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})
	if err != nil {
		t.Fatal(err)
	}

	m.ApplyDirichlet()

	testutil.RequireSliceNearlyEqual(t, denseOf(m), []float64{
		1, 0, 0,
		1, 0, 1,
		0, 0, 1,
	}, 0)

	if nnz := m.NonZeros(); nnz != 6 {
		t.Fatalf("stored entries: got %d, want 6", nnz)
	}
}

func TestApplyDirichlet_MulVec(t *testing.T) {
	// n=3, L=1, nu=1: enforced rows [1,0,0], [4,-8,4], [0,0,1].
	op, err := Diffusion(3, 1.0, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	op.ApplyDirichlet()

	dst := make([]float64, 3)
	op.MulVec(dst, []float64{1, 2, 3})

	testutil.RequireSliceNearlyEqual(t, dst, []float64{1, 0, 3}, 1e-12)
}
