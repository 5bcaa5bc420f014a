// Package verdict defines the SI checker's output type (spec.md §6) and
// builds it from each possible stopping point of the pipeline: an internal
// inconsistency, an early pruner cycle, or a solver UNSAT/SAT result.
package verdict
