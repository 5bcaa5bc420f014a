// Package simatrix implements MatrixGraph, the bitmap reachability engine
// of spec.md §4.3: a directed graph whose node set is fixed at construction
// and whose edges are stored as one sparse bitmap per source row.
//
// A MatrixGraph is built from any Source (typically a knowngraph.KnownGraph
// side, via FromA/FromB) by computing, where possible, a topological
// node↔index bijection so that edges run from lower to higher indices;
// Composition and Union combine two MatrixGraphs that share a bijection
// into a third; Reachability computes the reflexive-transitive closure,
// using reverse-topological dynamic programming when the current edge set
// admits a topological order and falling back to per-node BFS otherwise
// (spec.md §4.3). ReduceEdges thins a graph's rows without changing
// reachability, exploiting that session order is a total order per session
// (spec.md §4.4).
//
// All operations are deterministic and do not mutate their receivers or
// arguments (spec.md §4.3 "Numeric semantics").
package simatrix
