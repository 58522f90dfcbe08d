package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openabit/advisor/internal/cli"
	"github.com/openabit/advisor/internal/common"
)

func detailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detail <program>",
		Short: "Show a program's curriculum",
		Long: `Display one program's description and its courses grouped by semester
and category. The program is matched by case-insensitive substring, so
"detail ai" or "detail продукт" both work.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := initAdvisor(cmd.Context())
			if err != nil {
				return err
			}

			report, err := engine.Detail(strings.Join(args, " "))
			if errors.Is(err, common.ErrProgramNotFound) {
				fmt.Println(cli.ErrorStyle.Render("❌ Программа не найдена"))
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Print(report)
			return nil
		},
	}
}
