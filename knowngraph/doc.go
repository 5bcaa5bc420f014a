// Package knowngraph builds and holds the KnownGraph of spec.md §3/§4.2: two
// directed multigraphs over transactions — A (session order ∪ writes-read,
// later joined by folded write-write and proven session-order edges) and B
// (anti-dependency, read-write) — plus a ReadFrom side index recording, for
// each writes-read edge, the key that was read.
//
// KnownGraph is built once by New from a frozen history.History, then
// mutated only by prune.Run, which folds proven constraint.SIEdge values
// into A or B via PutEdge. Edges are never removed: the graph grows
// monotonically (spec.md §8 property 6).
//
// Parallel edges between the same two transactions are common (e.g. two
// keys both written by the same pair) and are stored as a collection, not
// collapsed (spec.md §9 "Parallel edges").
package knowngraph
