// Package constraint implements the SI constraint generator of spec.md
// §4.5: for every unordered pair of distinct transactions that write a
// common key, it produces one SIConstraint describing the two possible
// commit orderings that SI would require between them.
//
// The coalesced form (default) groups every key the pair shares, plus
// every RW edge induced by a third transaction reading one writer's
// value, into a single constraint per pair. The un-coalesced form keeps
// one constraint per (writer, writer, key) or (writer, reader, writer,
// key) tuple instead; it is semantically equivalent but larger, and exists
// mainly for comparison against the coalesced default.
package constraint
