package profiler

import (
	"context"
	"os"
	"runtime/pprof"

	"github.com/grafana/pyroscope-go"
)

var enabled = os.Getenv("PYROSCOPE_SERVER_ADDRESS") != ""

// Tick is an in-flight profiling span opened by Start; pass it to End to
// close it. A nil Tick (profiling disabled) is always safe to End.
type Tick struct{}

// Start tags the current goroutine with tick for the duration of the
// pipeline stage it brackets (spec.md §9: the core "only calls
// start/end(tick)"). A no-op when profiling is disabled.
func Start(tick string) *Tick {
	if !enabled {
		return nil
	}
	pprof.SetGoroutineLabels(pprof.WithLabels(context.Background(), pprof.Labels("tick", tick)))
	return &Tick{}
}

// End closes a Tick opened by Start, restoring unlabeled goroutine state.
func End(t *Tick) {
	if t == nil {
		return
	}
	pprof.SetGoroutineLabels(context.Background())
}

// Configure starts the process-wide pyroscope sink for appName against
// serverAddress. This is the driver's responsibility, never the core's
// (spec.md §9 "Global singletons" — init-on-first-use and no teardown is
// the library's own model; Configure just performs the one-time init).
func Configure(appName, serverAddress string) (stop func(), err error) {
	p, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: appName,
		ServerAddress:   serverAddress,
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
		},
	})
	if err != nil {
		return nil, err
	}
	return func() { _ = p.Stop() }, nil
}
