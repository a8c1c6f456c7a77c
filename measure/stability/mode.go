package stability

import (
	"math"

	"github.com/cwbudde/algo-stability/eigen"
)

// ArtifactTolerance bounds how far an eigenvalue may sit from the Dirichlet
// artifact value 1.0 and still be discarded as non-physical.
const ArtifactTolerance = 1e-4

// Classification labels a physical mode by the sign of its growth rate.
type Classification uint8

const (
	Unclassified Classification = iota
	Stable
	Unstable
)

func (c Classification) String() string {
	switch c {
	case Stable:
		return "STABLE"
	case Unstable:
		return "UNSTABLE"
	default:
		return "UNCLASSIFIED"
	}
}

// Mode is one eigenvalue of the constrained operator. The eigenvalue splits
// into a growth rate (real part) and an angular frequency (imaginary part).
type Mode struct {
	// Index is the position in the solver's return order, counting
	// filtered artifact modes, so it identifies the raw solver slot the
	// mode came from.
	Index int

	Eigenvalue complex128

	// Valid is false for boundary-condition artifacts. Artifact modes
	// never appear in a Result.
	Valid bool

	Label Classification
}

// GrowthRate returns the real part of the eigenvalue.
func (m Mode) GrowthRate() float64 { return real(m.Eigenvalue) }

// Frequency returns the imaginary part of the eigenvalue.
func (m Mode) Frequency() float64 { return imag(m.Eigenvalue) }

// IsArtifact reports whether ev is a boundary-condition artifact: the
// Dirichlet unit rows contribute eigenvalues exactly 1.0, recognized within
// ArtifactTolerance on the real part with vanishing imaginary part.
func IsArtifact(ev complex128) bool {
	return math.Abs(real(ev)-1) <= ArtifactTolerance && math.Abs(imag(ev)) <= ArtifactTolerance
}

// classify turns raw solver output into physical modes, dropping artifacts.
// The growth-rate threshold sits at zero, zero classified Unstable.
func classify(values []eigen.Ritz) ([]Mode, int) {
	modes := make([]Mode, 0, len(values))
	filtered := 0

	for i, r := range values {
		if IsArtifact(r.Value) {
			filtered++
			continue
		}

		label := Unstable
		if real(r.Value) < 0 {
			label = Stable
		}

		modes = append(modes, Mode{
			Index:      i,
			Eigenvalue: r.Value,
			Valid:      true,
			Label:      label,
		})
	}

	return modes, filtered
}
