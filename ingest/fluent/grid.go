package fluent

import "fmt"

// Grid is a scalar field resampled onto a structured uniform grid.
// Values are stored row-major with x varying fastest.
type Grid struct {
	NX, NY         int
	X0, X1, Y0, Y1 float64
	Values         []float64
}

// At returns the value at column ix, row iy.
func (g *Grid) At(ix, iy int) float64 {
	if ix < 0 || ix >= g.NX || iy < 0 || iy >= g.NY {
		panic("fluent: index out of range")
	}

	return g.Values[iy*g.NX+ix]
}

// X returns the coordinate of column ix.
func (g *Grid) X(ix int) float64 {
	return g.X0 + (g.X1-g.X0)*float64(ix)/float64(g.NX-1)
}

// Y returns the coordinate of row iy.
func (g *Grid) Y(iy int) float64 {
	return g.Y0 + (g.Y1-g.Y0)*float64(iy)/float64(g.NY-1)
}

// Resample maps the field onto an nx-by-ny uniform grid spanning the
// mesh bounding box. Grid points are filled by inverse-distance
// weighting over all nodes; a grid point that coincides with a node
// takes that node's value exactly.
func (f *Field) Resample(nx, ny int) (*Grid, error) {
	if nx < 2 || ny < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadGrid, nx, ny)
	}

	if len(f.Nodes) == 0 {
		return nil, ErrNoNodes
	}

	x0, x1, y0, y1 := f.Bounds()

	g := &Grid{
		NX: nx, NY: ny,
		X0: x0, X1: x1,
		Y0: y0, Y1: y1,
		Values: make([]float64, nx*ny),
	}

	for iy := range ny {
		y := g.Y(iy)

		for ix := range nx {
			g.Values[iy*nx+ix] = f.idw(g.X(ix), y)
		}
	}

	return g, nil
}

// idw evaluates inverse-distance weighting with power 2.
func (f *Field) idw(x, y float64) float64 {
	var num, den float64

	for _, n := range f.Nodes {
		dx := x - n.X
		dy := y - n.Y

		d2 := dx*dx + dy*dy
		if d2 == 0 {
			return n.Value
		}

		w := 1 / d2
		num += w * n.Value
		den += w
	}

	return num / den
}
