package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openabit/advisor/internal/cli"
	"github.com/openabit/advisor/internal/common"
)

func admissionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "admission <program>",
		Short: "Show admission routes for a program",
		Long:  `Display the ways to get admitted, tuition cost and dormitory availability.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := initAdvisor(cmd.Context())
			if err != nil {
				return err
			}

			report, err := engine.AdmissionInfo(strings.Join(args, " "))
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
