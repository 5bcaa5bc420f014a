package constraint_test

import (
	"fmt"

	"github.com/tsunaou/polysi-go/constraint"
	"github.com/tsunaou/polysi-go/history"
	"github.com/tsunaou/polysi-go/knowngraph"
)

// ExampleGenerate demonstrates the lost-update scenario of spec.md §8: two
// sessions both write x with no reads, so a single WW constraint results.
func ExampleGenerate() {
	h := history.NewHistory()
	s1, _ := h.AddSession(1)
	t1, _ := h.AddTransaction(s1, 1)
	_ = t1.Write("x", "1")
	t1.Commit()

	s2, _ := h.AddSession(2)
	t2, _ := h.AddTransaction(s2, 2)
	_ = t2.Write("x", "2")
	t2.Commit()

	_ = h.Freeze()
	g := knowngraph.New(h)

	cs := constraint.Generate(g, h)
	fmt.Println(len(cs), "constraint(s)")
	fmt.Println(cs[0].Edges1[0])
	fmt.Println(cs[0].Edges2[0])

	// Output:
	// 1 constraint(s)
	// 1 -WW,x-> 2
	// 2 -WW,x-> 1
}
