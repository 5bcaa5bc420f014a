package constraint

import (
	"fmt"

	"github.com/tsunaou/polysi-go/knowngraph"
)

// SIEdge is one candidate edge inside a constraint side: only WW and RW
// types are legal here (spec.md §3 "SIEdge").
type SIEdge struct {
	From int
	To   int
	Type knowngraph.EdgeType
	Key  string
}

// String renders an SIEdge the same way knowngraph.Edge does.
func (e SIEdge) String() string {
	return knowngraph.Edge{From: e.From, To: e.To, Type: e.Type, Key: e.Key}.String()
}

// SIConstraint is a disjunction between two candidate edge sets: exactly
// one of Edges1, Edges2 must hold for the history to satisfy SI
// (spec.md §3 "SIConstraint"). WriteTxn1/WriteTxn2 are the conflicting
// pair's transaction IDs, WriteTxn1 < WriteTxn2.
type SIConstraint struct {
	ID        int
	WriteTxn1 int
	WriteTxn2 int
	Edges1    []SIEdge
	Edges2    []SIEdge
}

// String renders a constraint for logs and witness text.
func (c SIConstraint) String() string {
	return fmt.Sprintf("C%d{%d,%d}: %v | %v", c.ID, c.WriteTxn1, c.WriteTxn2, c.Edges1, c.Edges2)
}
