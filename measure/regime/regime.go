package regime

import (
	"errors"
	"fmt"
)

// Errors returned by regime functions.
var (
	ErrInvalidChannel  = errors.New("regime: channel dimensions must be positive")
	ErrInvalidFluid    = errors.New("regime: fluid properties must be positive")
	ErrInvalidFlowRate = errors.New("regime: flow rate must be positive")
)

// Dripping-to-jetting transition for T-junctions, after Anna et al. (2003).
const drippingCaLimit = 0.1

// Unit conversions. Channel dimensions are given in micrometers and pump
// rates in microliters per minute, matching how soft lithography masks
// and syringe pumps are specified.
const (
	micronToMeter   = 1e-6
	uLPerMinToM3PerS = 1e-9 / 60.0
)

// Channel is a rectangular microchannel cross-section in micrometers.
type Channel struct {
	Width  float64 // µm
	Height float64 // µm
}

// Validate checks that the cross-section is physical.
func (c Channel) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %gx%g um", ErrInvalidChannel, c.Width, c.Height)
	}

	return nil
}

// Area returns the cross-sectional area in m².
func (c Channel) Area() float64 {
	return c.Width * micronToMeter * c.Height * micronToMeter
}

// HydraulicDiameter returns 2WH/(W+H) in meters.
func (c Channel) HydraulicDiameter() float64 {
	return 2 * c.Width * c.Height / (c.Width + c.Height) * micronToMeter
}

// Fluid holds continuous phase properties in SI units.
type Fluid struct {
	Viscosity float64 // Pa·s
	Density   float64 // kg/m³
	Tension   float64 // N/m, interfacial tension against the dispersed phase
}

// Validate checks that the fluid properties are physical. Zero or
// negative interfacial tension usually means a missing surfactant value.
func (f Fluid) Validate() error {
	if f.Viscosity <= 0 {
		return fmt.Errorf("%w: viscosity %g", ErrInvalidFluid, f.Viscosity)
	}

	if f.Density <= 0 {
		return fmt.Errorf("%w: density %g", ErrInvalidFluid, f.Density)
	}

	if f.Tension <= 0 {
		return fmt.Errorf("%w: interfacial tension %g", ErrInvalidFluid, f.Tension)
	}

	return nil
}

// Regime labels the droplet formation mode of an operating point.
type Regime uint8

const (
	Undetermined Regime = iota
	Dripping
	Jetting
)

// String returns the label in the conventional uppercase form.
func (r Regime) String() string {
	switch r {
	case Dripping:
		return "DRIPPING"
	case Jetting:
		return "JETTING"
	default:
		return "UNDETERMINED"
	}
}

// Numbers holds the dimensionless groups for one operating point.
type Numbers struct {
	FlowRate  float64 // µL/min, as given
	Velocity  float64 // mean velocity in m/s
	Capillary float64
	Weber     float64
	Regime    Regime
}

// MeanVelocity converts a syringe pump flow rate in µL/min to the mean
// velocity in m/s for the given cross-section.
func MeanVelocity(flowRate float64, ch Channel) (float64, error) {
	if flowRate <= 0 {
		return 0, fmt.Errorf("%w: got %g uL/min", ErrInvalidFlowRate, flowRate)
	}

	err := ch.Validate()
	if err != nil {
		return 0, err
	}

	return flowRate * uLPerMinToM3PerS / ch.Area(), nil
}

// Evaluate computes the dimensionless numbers and regime label for one
// flow rate.
func Evaluate(flowRate float64, ch Channel, f Fluid) (Numbers, error) {
	err := f.Validate()
	if err != nil {
		return Numbers{}, err
	}

	velocity, err := MeanVelocity(flowRate, ch)
	if err != nil {
		return Numbers{}, err
	}

	ca := f.Viscosity * velocity / f.Tension
	we := f.Density * velocity * velocity * ch.HydraulicDiameter() / f.Tension

	return Numbers{
		FlowRate:  flowRate,
		Velocity:  velocity,
		Capillary: ca,
		Weber:     we,
		Regime:    classify(ca),
	}, nil
}

// Sweep evaluates a series of flow rates against one channel and fluid.
// The first invalid rate aborts the sweep.
func Sweep(flowRates []float64, ch Channel, f Fluid) ([]Numbers, error) {
	points := make([]Numbers, 0, len(flowRates))

	for _, q := range flowRates {
		n, err := Evaluate(q, ch, f)
		if err != nil {
			return nil, err
		}

		points = append(points, n)
	}

	return points, nil
}

func classify(ca float64) Regime {
	if ca < drippingCaLimit {
		return Dripping
	}

	return Jetting
}
