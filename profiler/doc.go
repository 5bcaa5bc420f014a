// Package profiler wraps a process-wide profiling sink around the
// pipeline's named stages (spec.md §9 "Global singletons"). It is a
// passive, driver-owned sink: the core only calls Start/End around a tick;
// Start and End never configure or tear down the underlying profiler (that
// is what Configure and the stop function it returns do, for a driver to
// call), and nothing here is process state the core depends on for
// correctness.
//
// When PYROSCOPE_SERVER_ADDRESS is unset, Start/End are no-ops, so core
// packages can call them unconditionally without a build tag or a nil
// check at every call site.
package profiler
