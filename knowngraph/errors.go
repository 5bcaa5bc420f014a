package knowngraph

import "errors"

var (
	// ErrUnknownNode indicates an edge referenced a transaction ID absent
	// from the KnownGraph's node set.
	ErrUnknownNode = errors.New("knowngraph: unknown transaction node")

	// ErrWrongEdgeType indicates PutEdge was asked to route a type neither
	// A (SO, WR, WW) nor B (RW) recognizes.
	ErrWrongEdgeType = errors.New("knowngraph: edge type must be SO, WR, WW, or RW")
)
