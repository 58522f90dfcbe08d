package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Compare the master's programs",
		Long:  `Display a side-by-side comparison of all programs in the catalog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := initAdvisor(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Print(engine.Compare())
			return nil
		},
	}
}
