package operator

import (
	"errors"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// ErrBadShape is returned when a dense source matrix is empty, ragged, or
// not square.
var ErrBadShape = errors.New("operator: matrix must be square and non-empty")

// Matrix is a square sparse matrix in compressed sparse row (CSR) form.
// Entries within a row are stored in ascending column order. Rewriting a
// boundary row keeps the stored pattern and overwrites values, so explicit
// zeros may remain after [Matrix.ApplyDirichlet]; NonZeros reports stored
// entries, not nonzero values.
type Matrix struct {
	n      int
	rowPtr []int
	colIdx []int
	data   []float64

	// Discretization provenance, stamped by Diffusion. Zero for matrices
	// built any other way.
	Length    float64
	Viscosity float64
	Dx        float64
}

// FromDense builds a sparse matrix from a dense row-major source, dropping
// zero entries. Intended for small operators and tests; large operators
// should be assembled directly.
func FromDense(a [][]float64) (*Matrix, error) {
	n := len(a)
	if n == 0 {
		return nil, ErrBadShape
	}

	rowPtr := make([]int, n+1)
	colIdx := make([]int, 0, n)
	data := make([]float64, 0, n)

	for i, row := range a {
		if len(row) != n {
			return nil, ErrBadShape
		}

		for j, v := range row {
			if v == 0 {
				continue
			}

			colIdx = append(colIdx, j)
			data = append(data, v)
		}

		rowPtr[i+1] = len(colIdx)
	}

	return &Matrix{n: n, rowPtr: rowPtr, colIdx: colIdx, data: data}, nil
}

// Dim returns the operator dimension n.
func (m *Matrix) Dim() int {
	return m.n
}

// NonZeros returns the number of stored entries.
func (m *Matrix) NonZeros() int {
	return len(m.data)
}

// At returns the entry at row i, column j. Missing entries are zero.
// It panics if the indices are out of range.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic("operator: index out of range")
	}

	for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
		if m.colIdx[k] == j {
			return m.data[k]
		}
	}

	return 0
}

// RowSum returns the sum of the stored entries of row i. For the assembled
// diffusion operator the interior rows sum to zero up to roundoff.
// It panics if i is out of range.
func (m *Matrix) RowSum(i int) float64 {
	if i < 0 || i >= m.n {
		panic("operator: index out of range")
	}

	return vecmath.Sum(m.data[m.rowPtr[i]:m.rowPtr[i+1]])
}

// MulVec computes dst = M*x. It panics if either slice does not have
// length Dim.
func (m *Matrix) MulVec(dst, x []float64) {
	if len(dst) != m.n || len(x) != m.n {
		panic("operator: dimension mismatch")
	}

	for i := range m.n {
		sum := 0.0
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			sum += m.data[k] * x[m.colIdx[k]]
		}

		dst[i] = sum
	}
}
