// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/isoscore/isolation"
	"github.com/katalvlaran/isoscore/synth"
)

func newDemoCommand(ctx *commandContext) *cobra.Command {
	var flags scoringFlags
	params := synth.Params{Units: 3, Spikes: 100, Dim: 32, Separation: 4, Spread: 1, Seed: synth.DefaultSeed}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Score a synthetic channel of Gaussian clusters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := synth.Channel(params)
			if err != nil {
				return err
			}
			units := make([]isolation.Unit, len(sets))
			for i, set := range sets {
				units[i] = isolation.Unit{Label: fmt.Sprintf("unit-%d", i), Waveforms: set}
			}
			return runScoring(cmd, ctx, "demo", units, flags)
		},
	}

	cmd.Flags().IntVar(&params.Units, "units", params.Units, "Number of clusters")
	cmd.Flags().IntVar(&params.Spikes, "spikes", params.Spikes, "Waveforms per cluster")
	cmd.Flags().IntVar(&params.Dim, "dim", params.Dim, "Samples per waveform")
	cmd.Flags().Float64Var(&params.Separation, "separation", params.Separation, "Distance between neighbouring cluster centres")
	cmd.Flags().Float64Var(&params.Spread, "spread", params.Spread, "Per-sample noise deviation")
	cmd.Flags().Int64Var(&params.Seed, "seed", params.Seed, "Random seed")
	addScoringFlags(cmd, &flags)

	return cmd
}
