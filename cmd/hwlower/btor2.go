package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hwlower/internal/btor2emit"
)

var btor2Cmd = &cobra.Command{
	Use:   "btor2 <fixture>",
	Short: "Run HW->BTOR2 emission over a fixture and print the BTOR2 text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := lookupFixture(args[0])
		if err != nil {
			return err
		}
		tr := newTracer()

		text, diags := btor2emit.Emit(m, tr)
		printDiagnostics(diags)
		fmt.Print(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(btor2Cmd)
}
