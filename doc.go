// SPDX-License-Identifier: MIT

// Package isoscore measures how well the units of a spike-sorted channel are
// separated from one another.
//
// 🚀 What is isoscore?
//
//	Given one recording channel's units (clusters of equal-length spike
//	waveforms, each tagged normal, noise or unclassified), isoscore returns
//	one isolation score per unit: the average fraction of each spike's
//	similarity mass that belongs to its own unit.
//
// Under the hood, everything is organized under small subpackages:
//
//	kernel/      — Euclidean distance and exp(-‖x−y‖·λ/d0) similarity
//	d0/          — per-unit mean pairwise distance + immutable d0 table
//	isolation/   — two-phase channel scoring with tagged per-unit results
//	dispatch/    — bounded, ordered, cancellable batch execution
//	synth/       — deterministic Gaussian clusters for tests and demos
//	channelfile/ — YAML/JSON channel documents
//	config/      — TOML settings
//	logging/     — slog construction
//	cmd/isoscore — command-line front end
//
//	go install github.com/katalvlaran/isoscore/cmd/isoscore@latest
package isoscore
