package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/robbyt/go-polycompile"
	"github.com/robbyt/go-polycompile/engines/types"
	"github.com/robbyt/go-polycompile/options"
	"github.com/robbyt/go-polycompile/platform/binding"
	"github.com/robbyt/go-polycompile/platform/script/loader"
)

// errDiagnosticsFound makes the process exit non-zero after results were printed.
var errDiagnosticsFound = errors.New("errors reported")

const inlineLabel = "<inline>"

func newCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check [flags] <file|file://url|source>...",
		Short: "Compile inputs and report the errors the engine finds",
		Long: `Compile each input with the selected engine and print the reported errors in input order.
The engine is inferred from the file extension when --engine is not set (.star/.bzl Starlark,
.risor/.rsr Risor, .wasm Extism). A path-like input naming a missing file is reported as a failure; other inputs that
are not existing files are compiled as inline source.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}

	checkCmd.Flags().String("engine", "", "engine to use (starlark|risor|extism); inferred when empty")
	checkCmd.Flags().String("format", formatText, "output format (text|json|yaml)")
	checkCmd.Flags().Int("jobs", 0, "max parallel compiles (0=GOMAXPROCS)")
	checkCmd.Flags().StringSlice("global", nil, "extra global names known to Starlark and Risor scripts")
	checkCmd.Flags().String("entry-point", "", "function Extism modules must export (default main)")
	checkCmd.Flags().String("cache-dir", "", "directory for the on-disk result cache (disabled when empty)")
	return checkCmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := resolveCheckConfig(cmd)
	if err != nil {
		return err
	}

	handler, err := newLogHandler(cfg.logLevel)
	if err != nil {
		return err
	}

	reg, err := newRegistry(cfg, handler)
	if err != nil {
		return err
	}

	cache, err := openResultCache(cfg.cacheDir)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}

	c := &checker{
		cfg:    cfg,
		reg:    reg,
		cache:  cache,
		logger: slog.New(handler).WithGroup("check"),
	}
	results, err := c.run(cmd.Context(), args)
	if err != nil {
		return err
	}

	if err := renderResults(cmd.OutOrStdout(), cfg.format, cfg.color, results); err != nil {
		return err
	}

	for _, r := range results {
		if r.failed() {
			return errDiagnosticsFound
		}
	}
	return nil
}

// newRegistry registers every engine, configured from cfg, in a fresh Registry.
func newRegistry(cfg *checkConfig, handler slog.Handler) (*binding.Registry, error) {
	opts := []options.Option{options.WithLogHandler(handler)}
	if len(cfg.globals) > 0 {
		opts = append(opts, options.WithGlobals(cfg.globals...))
	}
	if cfg.entryPoint != "" {
		opts = append(opts, options.WithEntryPoint(cfg.entryPoint))
	}

	reg := binding.NewRegistry()
	if err := polycompile.RegisterAll(reg, opts...); err != nil {
		return nil, err
	}
	return reg, nil
}

// checker compiles inputs through the registry for one check run.
type checker struct {
	cfg    *checkConfig
	reg    *binding.Registry
	cache  *resultCache
	logger *slog.Logger
}

// run compiles every input concurrently, bounded by cfg.jobs. Results keep input order.
// Per-input failures are recorded in the result, not returned.
func (c *checker) run(ctx context.Context, inputs []string) ([]checkResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]checkResult, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(c.cfg.jobs, len(inputs))))

	for i, input := range inputs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = c.check(input)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *checker) check(input string) checkResult {
	l, err := loader.InferLoader(input)
	if err != nil {
		engine := selectEngine(c.cfg.engine, filepath.Ext(input))
		return checkResult{Input: input, Engine: engine.String(), Failure: err.Error()}
	}

	label := inlineLabel
	ext := ""
	if disk, ok := l.(*loader.FromDisk); ok {
		label = input
		ext = filepath.Ext(disk.Path())
	}

	engine := selectEngine(c.cfg.engine, ext)
	result := checkResult{Input: label, Engine: engine.String()}

	content, err := loader.ReadBytes(l)
	if err != nil {
		result.Failure = err.Error()
		return result
	}
	if engine == types.Extism {
		if err := loader.CheckWasm(content); err != nil {
			result.Failure = err.Error()
			return result
		}
	}
	source := polycompile.SourceFor(engine, content)

	key := cacheKey(c.cfg, engine.String(), source)
	var cached cachePayload
	if hit, err := c.cache.Get(key, &cached); err != nil {
		c.logger.Debug("Cache read failed", "input", label, "error", err)
	} else if hit {
		result.Errors = cached.Errors
		result.Cached = true
		return result
	}

	errs, err := c.reg.Call(polycompile.SymbolFor(engine), source)
	if err != nil {
		result.Failure = err.Error()
		return result
	}
	result.Errors = errs

	if err := c.cache.Put(key, &cachePayload{Engine: engine.String(), Errors: errs}); err != nil {
		c.logger.Warn("Failed to cache result", "input", label, "error", err)
	}
	return result
}

// selectEngine prefers the configured engine, then the file extension, then the default.
func selectEngine(configured types.Type, ext string) types.Type {
	if configured != "" {
		return configured
	}
	if t, ok := types.FromExtension(ext); ok {
		return t
	}
	return polycompile.DefaultEngine
}
