package compiler

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	extismSDK "github.com/extism/go-sdk"
	"github.com/robbyt/go-polycompile/internal/helpers"
	"github.com/tetratelabs/wazero"
)

const defaultEntryPoint = "main"

// FunctionalOption is a function that configures a Compiler instance
type FunctionalOption func(*Compiler) error

// WithEntryPoint sets the function every compiled module must export
func WithEntryPoint(entryPoint string) FunctionalOption {
	return func(c *Compiler) error {
		if entryPoint == "" {
			return fmt.Errorf("entry point cannot be empty")
		}
		c.entryPointName = entryPoint
		return nil
	}
}

// WithLogHandler creates an option to set the log handler for Extism compiler.
// This is the preferred option for logging configuration as it provides
// more flexibility through the slog.Handler interface.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(c *Compiler) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		c.logHandler = handler
		c.logger = nil
		return nil
	}
}

// WithLogger creates an option to set a specific logger for Extism compiler.
func WithLogger(logger *slog.Logger) FunctionalOption {
	return func(c *Compiler) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.logger = logger
		c.logHandler = nil
		return nil
	}
}

// WithWASIEnabled creates an option to enable or disable WASI support
func WithWASIEnabled(enabled bool) FunctionalOption {
	return func(c *Compiler) error {
		c.options.EnableWASI = enabled
		return nil
	}
}

// WithRuntimeConfig creates an option to set a custom wazero runtime configuration
func WithRuntimeConfig(config wazero.RuntimeConfig) FunctionalOption {
	return func(c *Compiler) error {
		if config == nil {
			return fmt.Errorf("runtime config cannot be nil")
		}
		c.options.RuntimeConfig = config
		return nil
	}
}

// WithHostFunctions creates an option to set additional host functions
func WithHostFunctions(funcs []extismSDK.HostFunction) FunctionalOption {
	return func(c *Compiler) error {
		c.options.HostFunctions = funcs
		return nil
	}
}

// WithContext sets the context used for plugin compilation and validation
func WithContext(ctx context.Context) FunctionalOption {
	return func(c *Compiler) error {
		if ctx == nil {
			return fmt.Errorf("context cannot be nil")
		}
		c.ctx = ctx
		return nil
	}
}

func (c *Compiler) setupLogger() {
	if c.logger != nil {
		c.logHandler = c.logger.Handler()
	} else {
		c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "extism", "Compiler")
	}
}

func (c *Compiler) applyDefaults() {
	if c.logHandler == nil && c.logger == nil {
		c.logHandler = slog.NewTextHandler(os.Stderr, nil)
	}

	if c.entryPointName == "" {
		c.entryPointName = defaultEntryPoint
	}

	if c.ctx == nil {
		c.ctx = context.Background()
	}

	c.options.EnableWASI = true

	if c.options.RuntimeConfig == nil {
		c.options.RuntimeConfig = wazero.NewRuntimeConfig()
	}

	if c.options.HostFunctions == nil {
		c.options.HostFunctions = []extismSDK.HostFunction{}
	}
}

func (c *Compiler) validate() error {
	if c.logHandler == nil && c.logger == nil {
		return fmt.Errorf("either log handler or logger must be specified")
	}

	if c.entryPointName == "" {
		return fmt.Errorf("entry point must be specified")
	}

	if c.options.RuntimeConfig == nil {
		return fmt.Errorf("runtime config cannot be nil")
	}

	return nil
}
