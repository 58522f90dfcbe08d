package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/openabit/advisor/internal/cli"
	"github.com/openabit/advisor/internal/model"
)

func recommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend [self-description]",
		Short: "Recommend programs and courses for a background",
		Long: `Analyze a free-text self-description (skills, education, work
experience, career goals) and recommend the program that fits it, plus
the best-matching elective courses of every program. Reads the
description from stdin when no argument is given.

Example:
  advisor recommend "знаю Python, изучал статистику, хочу стать ML-инженером"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := initAdvisor(cmd.Context())
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading self-description from stdin: %w", err)
				}
				text = string(data)
			}
			top, _ := cmd.Flags().GetInt("top")

			fmt.Print(engine.Recommend(text))

			profile := engine.ExtractProfile(text)
			fmt.Println("\n📚 С чего начать:")
			fmt.Print(engine.ClusterGuidance(profile))

			for _, p := range engine.Programs() {
				recs := engine.RankCourses(p, profile)
				if len(recs) > top {
					recs = recs[:top]
				}

				fmt.Printf("\n🎯 %s — подходящие дисциплины:\n", p.Name)
				for _, rec := range recs {
					fmt.Printf("   %s (%.1f/10, %d семестр)\n",
						priorityStyle(rec.Priority).Render(rec.Course.Name), rec.Score, rec.Course.Semester)
					fmt.Printf("      %s\n", rec.Reason)
					fmt.Printf("      %s\n", cli.SubtleStyle.Render(rec.LearningPath))
				}
			}

			return nil
		},
	}

	cmd.Flags().Int("top", 5, "how many courses to show per program")
	return cmd
}

func priorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return cli.PriorityHighStyle
	case model.PriorityMedium:
		return cli.PriorityMediumStyle
	default:
		return cli.PriorityLowStyle
	}
}
