// Package plain renders a verdict.Verdict as indented plain text
// (spec.md §4.14): always available, no rendering library, since the
// output targets a fixed witness shape rather than any document format a
// pack library addresses.
package plain

import (
	"fmt"
	"strings"

	"github.com/tsunaou/polysi-go/constraint"
	"github.com/tsunaou/polysi-go/verdict"
)

// Format renders v as human-readable text: "ACCEPT: history satisfies
// snapshot isolation" for a YES verdict, or
// "REJECT: <reason>" followed by the witness's known edges (grouped by
// endpoint pair) and residual constraints (both disjunction sides).
func Format(v verdict.Verdict) string {
	if v.Accept {
		return "ACCEPT: history satisfies snapshot isolation\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "REJECT: %s\n", v.Rejection.Reason)

	if len(v.Rejection.Edges) > 0 {
		fmt.Fprintf(&b, "known edges (%d pairs):\n", len(v.Rejection.Edges))
		for _, g := range v.Rejection.Edges {
			fmt.Fprintf(&b, "  %d -> %d:\n", g.From, g.To)
			for _, e := range g.Edges {
				fmt.Fprintf(&b, "    %s\n", e)
			}
		}
	}

	if len(v.Rejection.Constraints) > 0 {
		fmt.Fprintf(&b, "conflicting constraints (%d):\n", len(v.Rejection.Constraints))
		for _, c := range v.Rejection.Constraints {
			fmt.Fprintf(&b, "  C%d {%d, %d}:\n", c.ID, c.WriteTxn1, c.WriteTxn2)
			fmt.Fprintf(&b, "    side 1: %s\n", formatSide(c.Edges1))
			fmt.Fprintf(&b, "    side 2: %s\n", formatSide(c.Edges2))
		}
	}

	return b.String()
}

func formatSide(edges []constraint.SIEdge) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
