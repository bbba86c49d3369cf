// SPDX-License-Identifier: MIT

// Package isolation scores how well each spike-sorted unit of a channel is
// separated from the other units of that channel.
//
// 🚀 What is an isolation score?
//
//	For every spike s of a unit U the kernel sim(x, y) = exp(-‖x−y‖·λ/d0[U])
//	splits the spike's similarity mass into the part owed to U itself and
//	the total over every non-noise unit of the channel. The unit score is
//	the mean of own/total over U's spikes: values near 1 mean a well
//	isolated unit, values near 1/k mean heavy overlap with k−1 other units.
//
// ✨ Key features:
//   - explicit two-phase pipeline: every d0 is frozen in a d0.Table before
//     any score sum starts
//   - per-unit batches run on a bounded dispatch.Pool; results are
//     reduced in a fixed order, so reruns are bitwise identical
//   - tagged results: StateScored, StatePartial (some spikes excluded),
//     StateUndefined, plus zero sentinel slots for unclassified and noise
//     units
//   - Speed subsampling trades accuracy for a quadratic cut in work
//
// ⚙️ Usage:
//
//	rep, err := isolation.ScoreChannel(units,
//	  isolation.WithLambda(10),
//	  isolation.WithSpeed(2),
//	  isolation.WithContext(ctx),
//	)
//	if errors.Is(err, isolation.ErrInsufficientUnits) {
//	  // not computable
//	}
//	fmt.Println(rep.Vector(), rep.Status())
//
// Unclassified units never receive a score, yet their waveforms are part of
// every other unit's total mass.
package isolation
