// Package sicheck orchestrates the full SI decision pipeline of spec.md
// §2: internal-consistency check, KnownGraph construction, constraint
// generation, pruning, and the solver, producing a verdict.Verdict. This
// is the one entry point external loaders and the CLI call; everything
// else in the module is a stage it wires together.
package sicheck
