package options

import (
	"log/slog"
	"os"

	"github.com/robbyt/go-polycompile/engines/types"
)

// DefaultConfig initializes a Config for engineType with the default log handler
func DefaultConfig(engineType types.Type) *Config {
	cfg := &Config{}
	cfg.SetEngineType(engineType)
	cfg.SetHandler(DefaultHandler())
	return cfg
}

// DefaultHandler returns the default logging handler
func DefaultHandler() slog.Handler {
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
}

// WithDefaults applies default values to any config properties that are nil
func WithDefaults() Option {
	return func(c *Config) error {
		if c.handler == nil {
			c.handler = DefaultHandler()
		}
		return nil
	}
}

// Apply builds a Config for engineType from opts, fills defaults and validates it.
func Apply(engineType types.Type, opts ...Option) (*Config, error) {
	cfg := DefaultConfig(engineType)
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := WithDefaults()(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
