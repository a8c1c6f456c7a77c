package shedding

import (
	"errors"
	"fmt"
)

// ErrInvalidFlow reports non-physical flow scales.
var ErrInvalidFlow = errors.New("shedding: flow scales must be positive")

// Shear-layer vortex shedding band in Strouhal number.
const (
	strouhalLower = 0.0
	strouhalUpper = 1.0
)

// Flow holds the scales that nondimensionalize the shedding frequency.
type Flow struct {
	Length   float64 // characteristic length in m
	Velocity float64 // mean velocity in m/s
}

// Validate checks that the flow scales are physical.
func (f Flow) Validate() error {
	if f.Length <= 0 {
		return fmt.Errorf("%w: length %g", ErrInvalidFlow, f.Length)
	}

	if f.Velocity <= 0 {
		return fmt.Errorf("%w: velocity %g", ErrInvalidFlow, f.Velocity)
	}

	return nil
}

// Result summarizes a shedding assessment.
type Result struct {
	PeakFreq  float64 // dominant non-DC frequency in Hz
	PeakPower float64 // power density at the peak
	Strouhal  float64 // PeakFreq nondimensionalized by the flow scales
	Shedding  bool    // Strouhal falls in the shear-layer band
	Spectrum  *Spectrum
}

// Strouhal nondimensionalizes a frequency with a length and velocity scale.
// Velocity must be nonzero.
func Strouhal(freqHz, length, velocity float64) float64 {
	return freqHz * length / velocity
}

// Analyze estimates the spectrum of a probe record and assesses whether
// its dominant peak is consistent with shear-layer vortex shedding.
func Analyze(data []float64, cfg Config, flow Flow) (Result, error) {
	err := flow.Validate()
	if err != nil {
		return Result{}, err
	}

	spec, err := Welch(data, cfg)
	if err != nil {
		return Result{}, err
	}

	freq, power := spec.Peak()
	st := Strouhal(freq, flow.Length, flow.Velocity)

	return Result{
		PeakFreq:  freq,
		PeakPower: power,
		Strouhal:  st,
		Shedding:  st > strouhalLower && st < strouhalUpper,
		Spectrum:  spec,
	}, nil
}
