//go:build js && wasm

package main

import (
	"log/slog"
	"os"

	"github.com/robbyt/go-polycompile"
	"github.com/robbyt/go-polycompile/options"
	"github.com/robbyt/go-polycompile/platform/host/jshost"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	host := jshost.New()

	if err := polycompile.RegisterAll(host, options.WithLogHandler(handler)); err != nil {
		slog.New(handler).Error("failed to register compile functions", "error", err)
		os.Exit(1)
	}
	host.SetValue("polycompile_version", version)

	// wait indefinitely so that Go does not terminate execution
	// and the functions remain available
	<-make(chan struct{})
}
