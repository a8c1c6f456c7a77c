package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "stab",
	Short: "Linear stability and wake diagnostics for channel flows",
	Long: "Stab assembles one-dimensional diffusion operators, solves their\n" +
		"leading eigenvalues, and classifies flow stability. It also covers the\n" +
		"surrounding workflow: probe spectra, shedding checks, droplet regime\n" +
		"maps, and solver export resampling.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(sheddingCmd)
	rootCmd.AddCommand(regimeCmd)
	rootCmd.AddCommand(resampleCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
