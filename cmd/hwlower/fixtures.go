package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hwlower/internal/fixtures"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "List the registered in-memory HW-IR fixtures",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range fixtures.Names() {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
}
