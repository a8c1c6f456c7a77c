package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-stability/measure/regime"
)

var regimeFlags struct {
	width     float64
	height    float64
	viscosity float64
	density   float64
	tension   float64
	rates     []float64
}

var regimeCmd = &cobra.Command{
	Use:   "regime",
	Short: "Map syringe pump rates to droplet formation regimes",
	Long: `Evaluate capillary and Weber numbers for a set of flow rates and label
each operating point DRIPPING or JETTING.

Usage:
  stab regime
  stab regime -W 100 -H 50 -q 5,20,100

Defaults describe a standard soft lithography channel running mineral
oil with Span 80.`,
	Args: cobra.NoArgs,
	RunE: runRegime,
}

func init() {
	f := regimeCmd.Flags()
	f.Float64VarP(&regimeFlags.width, "width", "W", 100, "channel width in um")
	f.Float64VarP(&regimeFlags.height, "height", "H", 50, "channel height in um")
	f.Float64Var(&regimeFlags.viscosity, "viscosity", 0.028, "continuous phase viscosity in Pa·s")
	f.Float64Var(&regimeFlags.density, "density", 850, "continuous phase density in kg/m³")
	f.Float64Var(&regimeFlags.tension, "tension", 0.005, "interfacial tension in N/m")
	f.Float64SliceVarP(&regimeFlags.rates, "rates", "q", []float64{5, 20, 100}, "flow rates in uL/min")
}

func runRegime(cmd *cobra.Command, args []string) error {
	ch := regime.Channel{Width: regimeFlags.width, Height: regimeFlags.height}
	fluid := regime.Fluid{
		Viscosity: regimeFlags.viscosity,
		Density:   regimeFlags.density,
		Tension:   regimeFlags.tension,
	}

	points, err := regime.Sweep(regimeFlags.rates, ch, fluid)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "channel %gx%g um, hydraulic diameter %.1f um\n\n",
		ch.Width, ch.Height, ch.HydraulicDiameter()*1e6)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Q [uL/min]\tU [m/s]\tCa\tWe\tRegime\n")
	fmt.Fprintf(tw, "----------\t-------\t--\t--\t------\n")

	for _, p := range points {
		fmt.Fprintf(tw, "%g\t%.4f\t%.4f\t%.4g\t%s\n",
			p.FlowRate, p.Velocity, p.Capillary, p.Weber, p.Regime)
	}

	return tw.Flush()
}
