package main

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-stability/measure/stability"
)

var sweepFlags struct {
	file     string
	parallel int
}

var sweepCmd = &cobra.Command{
	Use:   "sweep [case-file]",
	Short: "Run a batch of stability cases from a YAML file",
	Long: `Run every case in a YAML file and print a summary row per case.

Usage:
  stab sweep cases.yaml
  stab sweep -f cases.yaml -p 4

The case file lists grid and fluid parameters:

  cases:
    - points: 200
      length: 1.0
      viscosity: 1.0e-3
      modes: 4

Cases run concurrently up to the --parallel limit. A failing case does
not stop the batch; its error appears in the summary and the command
exits nonzero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSweep,
}

func init() {
	f := sweepCmd.Flags()
	f.StringVarP(&sweepFlags.file, "file", "f", "", "YAML case file (or positional argument)")
	f.IntVarP(&sweepFlags.parallel, "parallel", "p", runtime.NumCPU(), "concurrent cases")
}

func runSweep(cmd *cobra.Command, args []string) error {
	path := sweepFlags.file
	if path == "" && len(args) > 0 {
		path = args[0]
	}

	if path == "" {
		return fmt.Errorf("case file is required\n\nUsage: stab sweep cases.yaml")
	}

	cases, err := loadCaseFile(path)
	if err != nil {
		return err
	}

	results := stability.Sweep(cmd.Context(), cases, sweepFlags.parallel)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Points\tLength\tViscosity\tModes\tWorst growth\tVerdict\n")
	fmt.Fprintf(tw, "------\t------\t---------\t-----\t------------\t-------\n")

	failures := 0

	for _, r := range results {
		c := r.Case

		if r.Err != nil {
			failures++
			fmt.Fprintf(tw, "%d\t%g\t%g\t-\t-\terror: %v\n", c.Points, c.Length, c.Viscosity, r.Err)

			continue
		}

		growth, ok := worstGrowth(r.Result.Modes)
		growthCol := "-"
		if ok {
			growthCol = fmt.Sprintf("%.6e", growth)
		}

		fmt.Fprintf(tw, "%d\t%g\t%g\t%d\t%s\t%s\n",
			c.Points, c.Length, c.Viscosity, len(r.Result.Modes), growthCol, verdict(r.Result.Modes))
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d cases failed", failures, len(results))
	}

	return nil
}

// worstGrowth returns the largest growth rate among valid modes.
func worstGrowth(modes []stability.Mode) (float64, bool) {
	if len(modes) == 0 {
		return 0, false
	}

	growth := modes[0].GrowthRate()
	for _, m := range modes[1:] {
		growth = max(growth, m.GrowthRate())
	}

	return growth, true
}
