// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/isoscore/isolation"
)

type unitView struct {
	Index    int      `json:"index"`
	Label    string   `json:"label"`
	Class    string   `json:"class"`
	State    string   `json:"state"`
	Score    *float64 `json:"score"` // null when undefined
	D0       float64  `json:"d0,omitempty"`
	Spikes   int      `json:"spikes"`
	Excluded int      `json:"excluded"`
	Error    string   `json:"error,omitempty"`
}

type reportView struct {
	Channel string     `json:"channel"`
	Status  string     `json:"status"`
	Lambda  float64    `json:"lambda"`
	Speed   int        `json:"speed"`
	Workers int        `json:"workers"`
	Units   []unitView `json:"units"`
}

func newReportView(name string, rep *isolation.Report) reportView {
	view := reportView{
		Channel: name,
		Status:  rep.Status().String(),
		Lambda:  rep.Lambda,
		Speed:   rep.Speed,
		Workers: rep.Workers,
		Units:   make([]unitView, 0, len(rep.Scores)),
	}
	for _, s := range rep.Scores {
		u := unitView{
			Index:    s.Index,
			Label:    s.Label,
			Class:    s.Class.String(),
			State:    s.State.String(),
			D0:       s.D0,
			Spikes:   s.Spikes,
			Excluded: s.Excluded,
		}
		if !math.IsNaN(s.Score) {
			score := s.Score
			u.Score = &score
		}
		if s.Err != nil {
			u.Error = s.Err.Error()
		}
		view.Units = append(view.Units, u)
	}
	return view
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
