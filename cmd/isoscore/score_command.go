// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/isoscore/channelfile"
	"github.com/katalvlaran/isoscore/isolation"
)

type scoringFlags struct {
	lambda  float64
	speed   int
	workers int
	json    bool
}

func addScoringFlags(cmd *cobra.Command, flags *scoringFlags) {
	cmd.Flags().Float64Var(&flags.lambda, "lambda", 0, "Kernel sensitivity (default from config, 10)")
	cmd.Flags().IntVar(&flags.speed, "speed", 0, "Keep every n-th waveform (default from config, 1)")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "Worker bound (default from config, all cores)")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Emit JSON instead of a table")
}

func newScoreCommand(ctx *commandContext) *cobra.Command {
	var flags scoringFlags

	cmd := &cobra.Command{
		Use:   "score <channel-file>",
		Short: "Score every unit of a channel file (.yaml, .yml, .json)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := channelfile.Load(args[0])
			if err != nil {
				return err
			}
			return runScoring(cmd, ctx, ch.Name, ch.Units, flags)
		},
	}
	addScoringFlags(cmd, &flags)

	return cmd
}

// runScoring merges flags over config, scores units and renders the report.
func runScoring(cmd *cobra.Command, ctx *commandContext, name string, units []isolation.Unit, flags scoringFlags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	lambda, speed, workers := cfg.Scoring.Lambda, cfg.Scoring.Speed, cfg.Scoring.Workers
	if cmd.Flags().Changed("lambda") {
		lambda = flags.lambda
	}
	if cmd.Flags().Changed("speed") {
		speed = flags.speed
	}
	if cmd.Flags().Changed("workers") {
		workers = flags.workers
	}

	logger = logger.With("channel", name)
	logger.Info("scoring channel", "units", len(units), "lambda", lambda, "speed", speed)
	start := time.Now()

	rep, err := isolation.ScoreChannel(units,
		isolation.WithContext(cmd.Context()),
		isolation.WithLambda(lambda),
		isolation.WithSpeed(speed),
		isolation.WithWorkers(workers),
		isolation.WithLogger(logger),
	)
	if err != nil {
		if errors.Is(err, isolation.ErrInsufficientUnits) {
			logger.Warn("channel not computable", "error", err)
			return fmt.Errorf("channel %s is not computable: %w", name, err)
		}
		return err
	}

	logger.Info("scoring complete",
		"status", rep.Status().String(),
		"elapsed", time.Since(start).Round(time.Millisecond))
	for _, s := range rep.Scores {
		if s.State == isolation.StatePartial || s.State == isolation.StateUndefined {
			logger.Warn("unit degraded", "unit", s.Index, "label", s.Label, "state", s.State.String(), "error", s.Err)
		}
	}

	if flags.json {
		return writeJSON(cmd, newReportView(name, rep))
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderReport(name, rep))
	return err
}
