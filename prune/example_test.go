package prune_test

import (
	"fmt"

	"github.com/tsunaou/polysi-go/constraint"
	"github.com/tsunaou/polysi-go/history"
	"github.com/tsunaou/polysi-go/knowngraph"
	"github.com/tsunaou/polysi-go/prune"
	"github.com/tsunaou/polysi-go/simatrix"
)

// ExampleRun demonstrates the write-skew scenario of spec.md §8: the
// pruner alone finds the anti-dependency cycle, without ever calling a
// SAT solver.
func ExampleRun() {
	h := history.NewHistory()

	sInit, _ := h.AddSession(0)
	t0, _ := h.AddTransaction(sInit, 0)
	_ = t0.Write("x", "0")
	_ = t0.Write("y", "0")
	t0.Commit()

	s1, _ := h.AddSession(1)
	t1, _ := h.AddTransaction(s1, 1)
	_ = t1.Read("x", "0")
	_ = t1.Write("y", "1")
	t1.Commit()

	s2, _ := h.AddSession(2)
	t2, _ := h.AddTransaction(s2, 2)
	_ = t2.Read("y", "0")
	_ = t2.Write("x", "1")
	t2.Commit()

	_ = h.Freeze()
	g := knowngraph.New(h)
	cs := constraint.Generate(g, h)

	res, _ := prune.Run(g, cs, simatrix.SessionPositions(h))
	fmt.Println("cycle:", res.Cycle)

	// Output:
	// cycle: true
}
