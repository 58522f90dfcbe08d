package main

import (
	"github.com/spf13/cobra"

	"github.com/openabit/advisor/internal/tui"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive advisor session",
		Long: `Start a full-screen interactive session: browse program comparisons,
curricula, career paths and admission info, or describe your background
to get personal course recommendations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := initAdvisor(cmd.Context())
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(), engine)
		},
	}
}
