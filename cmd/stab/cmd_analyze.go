package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-stability/measure/stability"
)

var analyzeFlags struct {
	points      int
	length      float64
	viscosity   float64
	modes       int
	tol         float64
	subspace    int
	maxRestarts int
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Solve the leading spectrum of one configuration",
	Long: `Assemble the diffusion operator for one grid, enforce wall boundary
conditions, and solve for the leading eigenvalues.

Usage:
  stab analyze -n 200 -l 1.0 --viscosity 1e-3 -k 4

Boundary artifact modes (eigenvalue 1.0 from the unit rows) are filtered
from the output and reported as a count. The verdict is UNSTABLE when any
remaining mode has a non-negative growth rate.`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.IntVarP(&analyzeFlags.points, "points", "n", 200, "grid points including boundaries")
	f.Float64VarP(&analyzeFlags.length, "length", "l", 1.0, "domain length in m")
	f.Float64Var(&analyzeFlags.viscosity, "viscosity", 1e-3, "kinematic viscosity in m²/s")
	f.IntVarP(&analyzeFlags.modes, "modes", "k", 4, "eigenvalues to request")
	f.Float64Var(&analyzeFlags.tol, "tol", 0, "residual tolerance (0 = solver default)")
	f.IntVar(&analyzeFlags.subspace, "subspace", 0, "Krylov subspace dimension (0 = solver default)")
	f.IntVar(&analyzeFlags.maxRestarts, "max-restarts", 0, "restart budget (0 = solver default)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	res, err := stability.Analyze(stability.Case{
		Points:    analyzeFlags.points,
		Length:    analyzeFlags.length,
		Viscosity: analyzeFlags.viscosity,
		Modes:     analyzeFlags.modes,
	}, analyzeOptions()...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "filtered %d boundary artifact mode(s)\n\n", res.Filtered)

	if len(res.Modes) == 0 {
		fmt.Fprintln(out, "no valid modes in the requested window")
		return nil
	}

	if err := printModes(out, res.Modes); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nverdict: %s\n", verdict(res.Modes))

	return nil
}

func analyzeOptions() []stability.Option {
	var opts []stability.Option

	if analyzeFlags.tol > 0 {
		opts = append(opts, stability.WithTolerance(analyzeFlags.tol))
	}

	if analyzeFlags.subspace > 0 {
		opts = append(opts, stability.WithSubspace(analyzeFlags.subspace))
	}

	if analyzeFlags.maxRestarts > 0 {
		opts = append(opts, stability.WithMaxRestarts(analyzeFlags.maxRestarts))
	}

	return opts
}
