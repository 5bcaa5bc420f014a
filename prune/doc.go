// Package prune implements the pruning loop of spec.md §4.6: it repeatedly
// builds bitmap reachability over the known precedence graph, tests each
// residual constraint's two sides against it, and folds the side that
// cannot be contradicted back into the KnownGraph — discharging the
// constraint without ever invoking the SAT solver.
//
// A self-loop in A∘B during any round is an early cycle (spec.md §4.11):
// the history already violates SI and Run returns immediately, skipping
// both the rest of the round and the solver entirely.
package prune
