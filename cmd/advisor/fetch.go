package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openabit/advisor/internal/catalog"
	"github.com/openabit/advisor/internal/cli"
	"github.com/openabit/advisor/internal/common"
)

func fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the program catalog",
		Long: `Download both program pages from the admissions site, parse them, and
cache the catalog locally. Pages that cannot be fetched fall back to the
built-in static data, so fetch always produces a complete catalog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			offline, _ := cmd.Flags().GetBool("offline")

			programs := catalog.Static()
			if !offline {
				bar := progressbar.NewOptions(len(programs),
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionEnableColorCodes(true),
					progressbar.OptionShowCount(),
					progressbar.OptionSetWidth(40),
					progressbar.OptionSetDescription("[cyan][bold]Fetching program pages...[reset]"),
					progressbar.OptionOnCompletion(func() {
						fmt.Fprintln(os.Stderr)
					}),
				)

				fetcher := catalog.NewFetcher(
					catalog.WithHTTPClient(&http.Client{Timeout: viper.GetDuration("http.timeout")}),
					catalog.WithRetryOptions(common.RetryOptions{
						MaxAttempts:  viper.GetInt("http.retries"),
						InitialDelay: time.Second,
					}),
					catalog.WithProgress(func(string) {
						if err := bar.Add(1); err != nil {
							slog.Warn("Failed to update progress bar", "error", err)
						}
					}),
				)

				fetched, err := fetcher.Fetch(ctx)
				if err != nil {
					slog.Warn("Some pages fell back to static data", "error", err)
				}
				programs = fetched
			}

			store, err := initStorage()
			if err != nil {
				return common.NewUserError("не удалось открыть кэш каталога", err)
			}
			defer func() {
				if err := store.Close(); err != nil {
					slog.Warn("Failed to close catalog cache", "error", err)
				}
			}()

			if err := store.SaveCatalog(ctx, programs); err != nil {
				return common.NewUserError("не удалось сохранить каталог", err)
			}

			common.LogInfo("Catalog cached", common.Fields{"programs": len(programs)})
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Cached %d programs", len(programs))))
			return nil
		},
	}

	cmd.Flags().Bool("offline", false, "skip the network and cache the static catalog")
	return cmd
}
