package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hwlower/internal/ir"
	"hwlower/internal/ltlcore"
)

var ltl2coreCmd = &cobra.Command{
	Use:   "ltl2core <fixture>",
	Short: "Run the LTL->Core lowering pass over a fixture and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := lookupFixture(args[0])
		if err != nil {
			return err
		}
		cfg := loadConfig()
		tr := newTracer()

		diags := ltlcore.Run(m, cfg.Pass.KeepUnreferencedLTL, tr)
		printDiagnostics(diags)
		fmt.Print(ir.Dump(m))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ltl2coreCmd)
}
