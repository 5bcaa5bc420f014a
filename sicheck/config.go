package sicheck

// Config carries the tunables spec.md §6 recognizes. Fields are exported
// so Config doubles as the unmarshal target for cmd/sicheck's TOML
// configuration file; Option is the in-process way to set them.
type Config struct {
	Coalesce      bool    `toml:"coalesce_constraints"`
	Prune         bool    `toml:"enable_pruning"`
	StopThreshold float64 `toml:"stop_threshold"`
	DotOutput     bool    `toml:"dot_output"`
}

// DefaultConfig returns spec.md §6's defaults: coalesce, prune, 0.01
// threshold, plain-text witnesses.
func DefaultConfig() Config {
	return Config{Coalesce: true, Prune: true, StopThreshold: 0.01, DotOutput: false}
}

// Option customizes a Config by mutation, following the teacher's
// functional-options idiom.
type Option func(*Config)

// WithCoalescing toggles the coalesced constraint-generation form
// (spec.md §4.5).
func WithCoalescing(enabled bool) Option {
	return func(c *Config) { c.Coalesce = enabled }
}

// WithPruning toggles the pruning stage (spec.md §4.6); disabling it hands
// every constraint straight to the solver.
func WithPruning(enabled bool) Option {
	return func(c *Config) { c.Prune = enabled }
}

// WithStopThreshold overrides the pruner's stop fraction (spec.md §4.6).
func WithStopThreshold(f float64) Option {
	return func(c *Config) { c.StopThreshold = f }
}

// WithDotOutput marks that the driver should render witnesses as dot
// instead of plain text; the core itself never renders (spec.md §6).
func WithDotOutput(enabled bool) Option {
	return func(c *Config) { c.DotOutput = enabled }
}

func newConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
