package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "polycompile",
		Short:         "Check scripts with embeddable compilers",
		Long:          `polycompile runs the compile step of Starlark, Risor and Extism WASM engines and reports the errors they find.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|always|never)")
	rootCmd.PersistentFlags().String("log-level", "", "engine log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("config", "", "path to a TOML config file")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newSymbolsCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLogHandler returns a stderr handler at the named level. Empty means warn.
func newLogHandler(level string) (slog.Handler, error) {
	lvl := slog.LevelWarn
	if level != "" {
		if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}), nil
}
