package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-stability/measure/shedding"
)

var sheddingFlags struct {
	rate       float64
	segment    int
	charLength float64
	velocity   float64
}

var sheddingCmd = &cobra.Command{
	Use:   "shedding [probe-file]",
	Short: "Check a velocity probe record for vortex shedding",
	Long: `Estimate the Welch spectrum of a probe record and report whether its
dominant frequency is consistent with shear-layer vortex shedding.

Usage:
  stab shedding probe.txt -r 5000 -L 100e-6 -U 0.33

The probe file holds one sample per line; blank lines and lines starting
with # are ignored. The Strouhal number f*L/U is computed from the peak
frequency and the given scales.`,
	Args: cobra.ExactArgs(1),
	RunE: runShedding,
}

func init() {
	f := sheddingCmd.Flags()
	f.Float64VarP(&sheddingFlags.rate, "rate", "r", 0, "sampling rate in Hz (required)")
	f.IntVar(&sheddingFlags.segment, "segment", 0, "Welch segment size (0 = default)")
	f.Float64VarP(&sheddingFlags.charLength, "char-length", "L", 0, "characteristic length in m (required)")
	f.Float64VarP(&sheddingFlags.velocity, "velocity", "U", 0, "mean velocity in m/s (required)")
}

func runShedding(cmd *cobra.Command, args []string) error {
	samples, err := readSamples(args[0])
	if err != nil {
		return err
	}

	res, err := shedding.Analyze(samples, shedding.Config{
		SampleRate:  sheddingFlags.rate,
		SegmentSize: sheddingFlags.segment,
	}, shedding.Flow{
		Length:   sheddingFlags.charLength,
		Velocity: sheddingFlags.velocity,
	})
	if err != nil {
		return err
	}

	if res.Spectrum.LowRate {
		fmt.Fprintf(cmd.ErrOrStderr(),
			"warning: sampling rate %g Hz is low, spectral resolution will be poor\n",
			sheddingFlags.rate)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "samples: %d (%d segments of %d)\n",
		len(samples), res.Spectrum.Segments, res.Spectrum.SegmentSize)
	fmt.Fprintf(out, "peak: %.6g Hz (power %.6g)\n", res.PeakFreq, res.PeakPower)
	fmt.Fprintf(out, "Strouhal: %.4f\n", res.Strouhal)

	if res.Shedding {
		fmt.Fprintln(out, "St in (0,1): consistent with shear-layer vortex shedding")
	} else {
		fmt.Fprintln(out, "St outside (0,1): no shear-layer shedding signature")
	}

	return nil
}
