package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openabit/advisor/internal/cli"
	"github.com/openabit/advisor/internal/common"
)

func careersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "careers <program>",
		Short: "Show career paths for a program",
		Long:  `Display the typical roles, salary ranges and employers for program graduates.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := initAdvisor(cmd.Context())
			if err != nil {
				return err
			}

			report, err := engine.CareerPaths(strings.Join(args, " "))
			if errors.Is(err, common.ErrProgramNotFound) {
				fmt.Println(cli.ErrorStyle.Render("❌ Программа не найдена"))
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Println(report)
			return nil
		},
	}
}
