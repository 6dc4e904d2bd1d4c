// Package necklace is a small algebra of musical scales seen as step
// patterns round a twelve-tone necklace.
//
// 🚀 What is necklace?
//
//	A scale is a cyclic sequence of half (1), whole (2) and augmented (3)
//	steps that adds up to the octave. necklace:
//		• Generates every pattern a three-symbol grammar allows (136 for 12)
//		• Classifies them by augmented seconds and consecutive half steps
//		• Samples them with a bias towards or away from either property
//		• Finds the scales one note-move (swap, split, merge) away
//		• Walks and searches the resulting scale graph
//
// Under the hood:
//
//	steps/     — Step and Pattern values, parsing and validation
//	grammar/   — the memoised pattern generator and the immutable Set
//	classify/  — predicates, probabilities and the four-class partition
//	sample/    — the two-stage weighted sampler
//	adjacency/ — swap / split / merge under rotation
//	network/   — the adjacency graph: BFS distances, paths, random walks
//	pitch/     — pattern → pitch classes and note names
//	midifile/  — scale export as a Standard MIDI File
//	render/    — terminal necklace, tables and partition grid
//	config/    — YAML + environment configuration for the CLI
//	cmd/       — the necklace command
//
// Quick ASCII example, A natural minor (2-1-2-2-1-2-2 from A):
//
//	 C   ·   D   ·   E   F   ·   G   ·  [A]  ·   B
//
//	go install github.com/katalvlaran/necklace/cmd/necklace@latest
package necklace
