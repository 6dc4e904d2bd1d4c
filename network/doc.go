// Package network treats the adjacency relation as an undirected graph over
// a pattern set and answers reachability questions on it.
//
// 🚀 What is it for?
//
//	The necklace UI offers "random adjacent scale": move from the current
//	scale to a neighbour one edit away. Repeating that is a random walk on
//	this graph, and the fewest-edit route between two scales is a BFS path.
//
// ✨ Key features:
//   - Build: one adjacency pass over the distinct patterns of a set,
//     cancellable through a context between rows.
//   - Distances: breadth-first search returning visit order, depth and
//     parent links, with optional depth limit.
//   - Path: fewest-edit route between two patterns.
//   - Walk: a biased random walk driven by a sample.Sampler.
//
// Vertices are indices into Graph.Set(), which holds each sequence once.
// Self-adjacency is recorded by Graph.SelfAdjacent but never stored as a
// loop, so Neighbors never contains the vertex itself.
//
// Complexity:
//
//	Build:     O(V² · L³) for V patterns of length ≤ L
//	Distances: O(V + E)
package network
