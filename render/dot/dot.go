// Package dot renders a verdict.Verdict as a Graphviz graph using
// github.com/emicklei/dot (spec.md §1 "dot/legacy conflict rendering",
// §4.14). Known edges render as solid arrows labeled by type and key;
// un-discharged constraint sides render as dashed, differently colored
// arrows grouped into a constraint subgraph, so a human can tell
// "this ordering is certain" from "this ordering is one of the disjuncts
// the solver could not pick between" at a glance.
package dot

import (
	"fmt"
	"strconv"

	gv "github.com/emicklei/dot"

	"github.com/tsunaou/polysi-go/constraint"
	"github.com/tsunaou/polysi-go/verdict"
)

// Render builds a Graphviz graph for v. An accepted verdict renders a
// single-node graph labeled "SI holds"; a rejection renders every known
// edge and every residual constraint's two sides.
func Render(v verdict.Verdict) *gv.Graph {
	g := gv.NewGraph(gv.Directed)

	if v.Accept {
		g.Node("accept").Label("SI holds").Attr("shape", "box")
		return g
	}

	g.Attr("label", v.Rejection.Reason)
	nodes := make(map[int]gv.Node)
	node := func(id int) gv.Node {
		if n, ok := nodes[id]; ok {
			return n
		}
		n := g.Node(strconv.Itoa(id)).Label(strconv.Itoa(id))
		nodes[id] = n
		return n
	}

	for _, group := range v.Rejection.Edges {
		for _, e := range group.Edges {
			g.Edge(node(e.From), node(e.To)).Label(fmt.Sprintf("%s,%s", e.Type, e.Key)).Attr("style", "solid")
		}
	}

	if len(v.Rejection.Constraints) > 0 {
		sub := g.Subgraph("constraints", gv.ClusterOption())
		for _, c := range v.Rejection.Constraints {
			renderSide(sub, node, c, c.Edges1, "red")
			renderSide(sub, node, c, c.Edges2, "blue")
		}
	}

	return g
}

func renderSide(g *gv.Graph, node func(int) gv.Node, c constraint.SIConstraint, side []constraint.SIEdge, color string) {
	for _, e := range side {
		g.Edge(node(e.From), node(e.To)).
			Label(fmt.Sprintf("C%d:%s,%s", c.ID, e.Type, e.Key)).
			Attr("style", "dashed").
			Attr("color", color)
	}
}

// String renders v directly to a dot-format string.
func String(v verdict.Verdict) string {
	return Render(v).String()
}
