// Package polysigo checks whether a transactional history is explainable
// by Snapshot Isolation.
//
// A history is a set of sessions, each a sequence of committed
// transactions, each a sequence of reads and writes over string keys. Given
// such a history, this module decides Accept/Reject and, on reject,
// produces a witness: a cycle or an unsatisfiable constraint set
// proving no SI-consistent ordering exists.
//
// The pipeline lives across a chain of subpackages, each independently
// testable:
//
//	history       — the transaction/session/event data model
//	consistency   — per-key internal-consistency check (spec §4.1)
//	knowngraph    — known SO/WR/WW/RW edges as a multigraph
//	simatrix      — bitmap-backed reachability over the known graph
//	constraint    — disjunctive WW/RW constraint generation
//	prune         — reachability-driven constraint discharge
//	solver        — backtracking search over the remaining constraints
//	verdict       — Accept/Reject classification and witness shape
//	sicheck       — the orchestrator tying the above into one call
//
// loader/*, transform/serializable, render/*, and profiler supply history
// ingestion, an SI-to-Serializable rewrite, witness rendering, and
// profiling respectively; cmd/sicheck wires all of it into a CLI.
package polysigo
