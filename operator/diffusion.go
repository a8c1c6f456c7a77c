package operator

import (
	"errors"
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// minPoints is the smallest grid able to hold two boundary nodes plus one
// interior unknown.
const minPoints = 3

// ErrInvalidGrid is returned for malformed discretization parameters.
var ErrInvalidGrid = errors.New("operator: invalid grid")

// Diffusion assembles the discrete diffusion operator nu * d²/dx² on a
// uniform grid of points over [0, length]. The stencil places +1 on the
// sub- and superdiagonal and -2 on the main diagonal, all scaled by
// nu/dx² with dx = length/(points-1).
//
// The viscosity nu may be zero or negative; both are physically
// meaningful (no diffusion, destabilizing anti-diffusion) and accepted.
// The returned matrix carries no boundary conditions yet; call
// [Matrix.ApplyDirichlet] before solving for the spectrum.
func Diffusion(points int, length, viscosity float64) (*Matrix, error) {
	if points < minPoints {
		return nil, fmt.Errorf("%w: need at least %d grid points, got %d", ErrInvalidGrid, minPoints, points)
	}

	if length <= 0 {
		return nil, fmt.Errorf("%w: domain length must be positive, got %g", ErrInvalidGrid, length)
	}

	n := points
	dx := length / float64(n-1)

	rowPtr := make([]int, n+1)
	colIdx := make([]int, 0, 3*n-2)
	data := make([]float64, 0, 3*n-2)

	for i := range n {
		if i > 0 {
			colIdx = append(colIdx, i-1)
			data = append(data, 1)
		}

		colIdx = append(colIdx, i)
		data = append(data, -2)

		if i < n-1 {
			colIdx = append(colIdx, i+1)
			data = append(data, 1)
		}

		rowPtr[i+1] = len(colIdx)
	}

	vecmath.ScaleBlockInPlace(data, viscosity/(dx*dx))

	return &Matrix{
		n:      n,
		rowPtr: rowPtr,
		colIdx: colIdx,
		data:   data,

		Length:    length,
		Viscosity: viscosity,
		Dx:        dx,
	}, nil
}
