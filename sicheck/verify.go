package sicheck

import (
	"github.com/tsunaou/polysi-go/consistency"
	"github.com/tsunaou/polysi-go/constraint"
	"github.com/tsunaou/polysi-go/history"
	"github.com/tsunaou/polysi-go/knowngraph"
	"github.com/tsunaou/polysi-go/profiler"
	"github.com/tsunaou/polysi-go/prune"
	"github.com/tsunaou/polysi-go/simatrix"
	"github.com/tsunaou/polysi-go/solver"
	"github.com/tsunaou/polysi-go/verdict"
)

// Stats carries pipeline metadata a driver may want to log alongside a
// Verdict (spec.md §4.16's zap fields); it carries no decision weight and
// is never consulted by Verify itself.
type Stats struct {
	Transactions int
	Constraints  int
	PruneRounds  int
}

// Verify decides whether h satisfies Snapshot Isolation (spec.md §2's
// pipeline end to end). h must already be frozen (spec.md §3 "History is
// immutable after load").
func Verify(h *history.History, opts ...Option) verdict.Verdict {
	v, _ := VerifyWithStats(h, opts...)
	return v
}

// VerifyWithStats runs the same pipeline as Verify, additionally returning
// Stats for driver-side logging.
func VerifyWithStats(h *history.History, opts ...Option) (verdict.Verdict, Stats) {
	cfg := newConfig(opts...)
	stats := Stats{Transactions: h.Len()}

	tick := profiler.Start("consistency")
	err := consistency.Check(h)
	profiler.End(tick)
	if err != nil {
		return verdict.InternalInconsistency(err.Error()), stats
	}

	tick = profiler.Start("knowngraph")
	g := knowngraph.New(h)
	profiler.End(tick)

	tick = profiler.Start("constraint")
	constraints := constraint.Generate(g, h, constraint.WithCoalescing(cfg.Coalesce))
	profiler.End(tick)
	stats.Constraints = len(constraints)

	residual := constraints
	if cfg.Prune {
		tick = profiler.Start("prune")
		pos := simatrix.SessionPositions(h)
		res, err := prune.Run(g, constraints, pos, prune.WithStopThreshold(cfg.StopThreshold))
		profiler.End(tick)
		stats.PruneRounds = res.Rounds
		if err != nil {
			return verdict.InvalidHistory(err.Error()), stats
		}
		if res.Cycle {
			return verdict.EarlyCycle(res.WitnessEdges), stats
		}
		residual = res.Remaining
	}

	tick = profiler.Start("solver")
	sat, conflict := solver.Solve(g, residual)
	profiler.End(tick)

	if !sat {
		return verdict.SolverUNSAT(conflict.Edges, conflict.Constraints), stats
	}
	return verdict.Accepted(), stats
}
