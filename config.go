package subledger

import "github.com/tindandelion/subledger/internal/tlog"

// Config holds configuration for EncodeWithPolicy, built up via functional
// options in the same shape as the rest of this ecosystem's compressors.
type Config struct {
	Logger tlog.Logger
}

// Option is a functional option for configuring an encode call.
type Option func(*Config)

// WithLogger enables Debug-level trace output for merge decisions and
// cleanup-evicted carries during induction, and for each dictionary
// reference emitted during encoding. By default no logger is
// configured and the core does no I/O.
func WithLogger(logger tlog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func newConfig(opts ...Option) Config {
	cfg := Config{Logger: tlog.Nop}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
