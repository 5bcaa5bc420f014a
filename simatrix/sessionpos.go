package simatrix

import "github.com/tsunaou/polysi-go/history"

// SessionPositions builds the per-transaction SessionPos map ReduceEdges
// needs, directly from a frozen history.History.
func SessionPositions(h *history.History) map[int]SessionPos {
	out := make(map[int]SessionPos)
	for _, s := range h.Sessions() {
		for _, t := range s.Transactions {
			out[t.ID] = SessionPos{Session: s.ID, Pos: t.Index}
		}
	}
	return out
}
