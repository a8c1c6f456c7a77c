package regime

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-stability/internal/testutil"
)

// Mineral oil with Span 80, a standard continuous phase for PDMS devices.
var oil = Fluid{Viscosity: 0.028, Density: 850, Tension: 0.005}

var channel = Channel{Width: 100, Height: 50}

func TestMeanVelocity(t *testing.T) {
	// 5 uL/min through a 100x50 um cross-section: (5e-9/60) / 5e-9 m/s.
	v, err := MeanVelocity(5, channel)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireRelNear(t, v, 1.0/60.0, 1e-12)
}

func TestChannel_HydraulicDiameter(t *testing.T) {
	testutil.RequireRelNear(t, channel.HydraulicDiameter(), 200.0/3.0*1e-6, 1e-12)
}

func TestEvaluate_DrippingPoint(t *testing.T) {
	n, err := Evaluate(5, channel, oil)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireRelNear(t, n.Capillary, 7.0/75.0, 1e-12)

	if n.Regime != Dripping {
		t.Fatalf("regime: got %v, want DRIPPING", n.Regime)
	}

	if n.Weber <= 0 {
		t.Fatalf("weber: got %v, want positive", n.Weber)
	}
}

func TestEvaluate_JettingPoint(t *testing.T) {
	n, err := Evaluate(20, channel, oil)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireRelNear(t, n.Capillary, 28.0/75.0, 1e-12)

	if n.Regime != Jetting {
		t.Fatalf("regime: got %v, want JETTING", n.Regime)
	}
}

func TestClassify_Boundary(t *testing.T) {
	if classify(0.0999) != Dripping {
		t.Fatal("Ca just below limit should drip")
	}

	if classify(0.1) != Jetting {
		t.Fatal("Ca at limit should jet")
	}

	if classify(1.8) != Jetting {
		t.Fatal("large Ca should jet")
	}
}

func TestRegimeString(t *testing.T) {
	cases := []struct {
		r    Regime
		want string
	}{
		{Dripping, "DRIPPING"},
		{Jetting, "JETTING"},
		{Undetermined, "UNDETERMINED"},
	}

	for _, tc := range cases {
		if got := tc.r.String(); got != tc.want {
			t.Fatalf("String(%d): got %q, want %q", tc.r, got, tc.want)
		}
	}
}

func TestSweep_RegimeTransition(t *testing.T) {
	points, err := Sweep([]float64{5, 20, 100}, channel, oil)
	if err != nil {
		t.Fatal(err)
	}

	if len(points) != 3 {
		t.Fatalf("points: got %d, want 3", len(points))
	}

	if points[0].Regime != Dripping || points[1].Regime != Jetting || points[2].Regime != Jetting {
		t.Fatalf("regimes: got %v %v %v", points[0].Regime, points[1].Regime, points[2].Regime)
	}

	for i := 1; i < len(points); i++ {
		if points[i].Capillary <= points[i-1].Capillary {
			t.Fatalf("capillary not increasing at point %d", i)
		}
	}
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name string
		run  func() error
		want error
	}{
		{"zero width", func() error {
			_, err := MeanVelocity(5, Channel{Width: 0, Height: 50})
			return err
		}, ErrInvalidChannel},
		{"negative height", func() error {
			_, err := MeanVelocity(5, Channel{Width: 100, Height: -1})
			return err
		}, ErrInvalidChannel},
		{"zero flow", func() error {
			_, err := MeanVelocity(0, channel)
			return err
		}, ErrInvalidFlowRate},
		{"zero tension", func() error {
			_, err := Evaluate(5, channel, Fluid{Viscosity: 0.028, Density: 850, Tension: 0})
			return err
		}, ErrInvalidFluid},
		{"zero viscosity", func() error {
			_, err := Evaluate(5, channel, Fluid{Viscosity: 0, Density: 850, Tension: 0.005})
			return err
		}, ErrInvalidFluid},
		{"sweep propagates", func() error {
			_, err := Sweep([]float64{5, -1}, channel, oil)
			return err
		}, ErrInvalidFlowRate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}
