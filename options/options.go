// Package options configures the engine compilers built by the root package.
package options

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/robbyt/go-polycompile/engines/types"
)

// Config holds all configuration for creating an engine compiler
type Config struct {
	// Log handler passed to the engine
	handler slog.Handler
	// Type of engine to use (starlark, risor, extism)
	engineType types.Type
	// Extra global names known to Starlark and Risor compilers
	globals []string
	// Function every Extism module must export
	entryPoint string
}

// Option is a function that modifies Config
type Option func(*Config) error

// WithLogHandler sets the log handler for the engine. A nil handler is ignored.
func WithLogHandler(handler slog.Handler) Option {
	return func(c *Config) error {
		if handler != nil {
			c.handler = handler
		}
		return nil
	}
}

// WithGlobals adds global names the script may reference. Ignored by Extism.
func WithGlobals(globals ...string) Option {
	return func(c *Config) error {
		for _, g := range globals {
			if g == "" {
				return fmt.Errorf("global name cannot be empty")
			}
		}
		c.globals = append(c.globals, globals...)
		return nil
	}
}

// WithEntryPoint sets the Extism entry point. Ignored by the other engines.
func WithEntryPoint(entryPoint string) Option {
	return func(c *Config) error {
		if entryPoint == "" {
			return fmt.Errorf("entry point cannot be empty")
		}
		c.entryPoint = entryPoint
		return nil
	}
}

// Validate performs basic validation on the configuration
func (c *Config) Validate() error {
	if c.engineType == "" {
		return fmt.Errorf("no engine type specified")
	}
	if !slices.Contains(types.All(), c.engineType) {
		return fmt.Errorf("%w: %q", types.ErrUnknownType, c.engineType)
	}
	if c.handler == nil {
		return fmt.Errorf("no log handler specified")
	}
	return nil
}

// GetHandler returns the configured log handler
func (c *Config) GetHandler() slog.Handler {
	return c.handler
}

// SetHandler sets the log handler
func (c *Config) SetHandler(handler slog.Handler) {
	c.handler = handler
}

// GetEngineType returns the configured engine type
func (c *Config) GetEngineType() types.Type {
	return c.engineType
}

// SetEngineType sets the engine type
func (c *Config) SetEngineType(engineType types.Type) {
	c.engineType = engineType
}

// GetGlobals returns a copy of the configured global names
func (c *Config) GetGlobals() []string {
	return append([]string(nil), c.globals...)
}

// GetEntryPoint returns the configured Extism entry point, empty for the engine default
func (c *Config) GetEntryPoint() string {
	return c.entryPoint
}
