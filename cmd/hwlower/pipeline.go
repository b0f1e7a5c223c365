package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hwlower/internal/btor2emit"
	"hwlower/internal/ltlcore"
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline <fixture>",
	Short: "Run LTL->Core then HW->BTOR2 over a fixture, matching a full build",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := lookupFixture(args[0])
		if err != nil {
			return err
		}
		cfg := loadConfig()
		tr := newTracer()

		// LTL->Core runs first (spec.md §2): BTOR2 emission has no notion
		// of LTL/Verif ops, so any clocked assertion must already be RTL
		// by the time it walks the module.
		diags := ltlcore.Run(m, cfg.Pass.KeepUnreferencedLTL, tr)
		printDiagnostics(diags)

		text, emitDiags := btor2emit.Emit(m, tr)
		printDiagnostics(emitDiags)
		fmt.Print(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pipelineCmd)
}
