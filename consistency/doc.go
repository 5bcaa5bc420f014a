// Package consistency implements the internal-consistency check of
// spec.md §4.1: every READ must observe either the latest prior write of
// its key within its own transaction, or the unique external write that
// produced the (key, value) pair it read.
//
// This runs before knowngraph is built: a history failing this check is a
// fatal NO (spec.md §4.11, §7 error kind 2) and never reaches the graph
// stage.
package consistency
