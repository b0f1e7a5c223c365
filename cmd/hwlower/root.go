// Command hwlower drives the LTL→Core and HW→BTOR2 lowering passes over
// named in-memory fixtures (spec.md §6 excludes textual HW-IR parsing, so
// fixtures stand in for the files a real build would read). Cobra command
// wiring follows vovakirdan-surge/cmd/surge's shape: a root command with
// persistent flags read by each subcommand via cmd.Root().
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hwlower/internal/config"
	"hwlower/internal/trace"
)

var (
	flagColor   bool
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "hwlower",
	Short: "Lower clocked LTL assertions to BTOR2 transition systems",
	Long: "hwlower runs the LTL->Core and HW->BTOR2 lowering passes over\n" +
		"Go-constructed HW-IR fixtures and prints the result.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// --color, when given, overrides the config file's emit.color.
		useColor := flagColor
		if !cmd.Flags().Changed("color") {
			useColor = loadConfig().Emit.Color
		}
		color.NoColor = !useColor
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagColor, "color", true, "colorize diagnostics")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a hwlower.toml config file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "raise the trace level to debug")
}

// loadConfig reads --config (if given) layered over config.Default, exactly
// as SPEC_FULL.md's Configuration section describes.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: reading config: %v", err))
		os.Exit(1)
	}
	return cfg
}

// newTracer builds the tracer the CLI wires into both passes, honoring
// --verbose (SPEC_FULL.md "Logging / tracing").
func newTracer() *trace.Tracer {
	level := trace.Info
	if flagVerbose {
		level = trace.Debug
	}
	return trace.New(level)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}
