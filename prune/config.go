package prune

// Option customizes Run's behavior by mutating a config before pruning
// begins, following the teacher's functional-options idiom.
type Option func(*config)

type config struct {
	stopThreshold float64
}

// WithStopThreshold overrides the default 0.01 stop fraction (spec.md §4.6,
// §6 "stopThreshold"): a round that discharges fewer than
// stopThreshold·totalConstraints constraints ends the loop.
func WithStopThreshold(f float64) Option {
	return func(c *config) {
		c.stopThreshold = f
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{stopThreshold: 0.01}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
