package simatrix

import "errors"

var (
	// ErrBijectionMismatch indicates Composition or Union was called with
	// two MatrixGraphs that do not share the same node↔index bijection
	// (spec.md §4.3 "Both graphs must share the node↔index bijection").
	ErrBijectionMismatch = errors.New("simatrix: node/index bijection mismatch")

	// ErrUnknownNode indicates a query referenced a node not present in
	// the MatrixGraph's fixed node set.
	ErrUnknownNode = errors.New("simatrix: unknown node")
)
