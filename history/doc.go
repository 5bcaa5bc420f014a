// Package history defines the shared transactional history model consumed
// by the SI checker: sessions of ordered transactions, each a sequence of
// READ/WRITE events over string keys and values.
//
// A History is built incrementally by a loader (see the sibling loader/*
// packages) via History.AddTransaction / Transaction.Read / Transaction.Write,
// then frozen with Freeze once every transaction has been committed. Readers
// downstream of a loader (consistency, knowngraph, ...) only ever see frozen
// histories and must treat them as immutable.
//
// This file declares the package; Vertex-equivalent entities and their
// methods live in types.go, builder.go and lookup.go.
package history
