// Package solver implements the SI solver of spec.md §4.7: it decides the
// constraints the pruner could not discharge by search, asserting that the
// known precedence graph plus one committed orientation per constraint
// stays acyclic.
//
// spec.md §4.7/§9 describes this as a SAT solver with a graph-theory
// extension (fresh literals per edge, a monotone directed-graph theory
// asserting acyclicity under assumptions, decision-hint control). No such
// engine — or any SAT/SMT library — exists anywhere in this project's
// dependency corpus, so this package is a deliberately bespoke replacement:
// a backtracking search over constraint orientations, using
// simatrix.MatrixGraph's reachability/HasLoops as its acyclicity oracle in
// place of a graph-theory-capable SAT core. Branching happens only on the
// WW orientation per conflicting pair, mirroring §4.7's decision-literal
// hint ("only the WW orientation literals are decision-enabled").
package solver
