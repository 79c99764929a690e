package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger builds the handler and logger used by an engine component.
// A nil handler falls back to a text handler on stderr, grouped under the engine name,
// and a warning is emitted so the missing configuration is visible.
//
// Parameters:
//   - handler: The slog.Handler to use, or nil for defaults
//   - engine: The engine name (e.g., "starlark", "risor", "extism")
//   - component: Optional group name for the component within the engine
//
// Returns:
//   - The configured handler
//   - A logger created from the handler
func SetupLogger(handler slog.Handler, engine string, component string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, nil).WithGroup(engine)
		slog.New(handler).Warn("Handler is nil, using the default logger configuration.")
	}

	if component == "" {
		return handler, slog.New(handler)
	}
	return handler, slog.New(handler.WithGroup(component))
}
