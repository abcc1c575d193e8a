package main

import (
	"fmt"

	"limitbook/internal/batch"
	"limitbook/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "limitbook",
		Short: "Run a price-time priority limit order book against CSV order feeds",
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var outputDir string
	var concurrency int
	var logLevel string

	cmd := &cobra.Command{
		Use:   "run [input.csv...]",
		Short: "Match orders from one or more CSV files, one book per file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (runErr error) {
			defer func() {
				if r := recover(); r != nil {
					runErr = fmt.Errorf("invariant violation: %v", r)
				}
			}()

			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			zerolog.SetGlobalLevel(level)

			settings := config.Settings{
				Inputs:      args,
				OutputDir:   outputDir,
				Concurrency: concurrency,
				LogLevel:    logLevel,
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			jobs := make([]batch.Job, len(settings.Inputs))
			for i, in := range settings.Inputs {
				jobs[i] = batch.Job{InputPath: in, OutputPath: settings.OutputPathFor(in)}
			}

			log.Info().Int("files", len(jobs)).Int("concurrency", settings.Concurrency).Msg("starting run")

			results := batch.NewPool(settings.Concurrency).Submit(jobs)

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					log.Error().Err(r.Err).Str("input", r.Job.InputPath).Msg("file failed")
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for result CSVs (default: alongside each input)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of files to process concurrently")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}
