package constraint

// GenOption customizes Generate's behavior by mutating a genConfig before
// generation begins, following the teacher's functional-options idiom.
type GenOption func(*genConfig)

type genConfig struct {
	coalesce bool
}

// WithCoalescing toggles the coalesced generator form (spec.md §4.5,
// default true). Passing false produces the larger, semantically
// equivalent un-coalesced form.
func WithCoalescing(enabled bool) GenOption {
	return func(c *genConfig) {
		c.coalesce = enabled
	}
}

func newGenConfig(opts ...GenOption) *genConfig {
	cfg := &genConfig{coalesce: true}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
