package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/robbyt/go-polycompile/engines/types"
)

// fileConfig is the TOML config file layout. Every key is optional.
type fileConfig struct {
	Engine     string   `toml:"engine"`
	Format     string   `toml:"format"`
	Jobs       int      `toml:"jobs"`
	Globals    []string `toml:"globals"`
	EntryPoint string   `toml:"entry_point"`
	LogLevel   string   `toml:"log_level"`
	CacheDir   string   `toml:"cache_dir"`
	Color      string   `toml:"color"`
}

// checkConfig is the resolved configuration for one check run.
type checkConfig struct {
	engine     types.Type
	format     string
	jobs       int
	globals    []string
	entryPoint string
	logLevel   string
	cacheDir   string
	color      string
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fileConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// resolveCheckConfig merges the config file with flags; flags that were set win.
func resolveCheckConfig(cmd *cobra.Command) (*checkConfig, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	file, err := loadFileConfig(path)
	if err != nil {
		return nil, err
	}

	cfg := &checkConfig{
		format:     "text",
		jobs:       file.Jobs,
		globals:    file.Globals,
		entryPoint: file.EntryPoint,
		logLevel:   file.LogLevel,
		cacheDir:   file.CacheDir,
		color:      "auto",
	}
	engine := file.Engine
	if file.Format != "" {
		cfg.format = file.Format
	}
	if file.Color != "" {
		cfg.color = file.Color
	}

	flags := cmd.Flags()
	stringFlags := map[string]*string{
		"engine":      &engine,
		"format":      &cfg.format,
		"entry-point": &cfg.entryPoint,
		"log-level":   &cfg.logLevel,
		"cache-dir":   &cfg.cacheDir,
		"color":       &cfg.color,
	}
	for name, dst := range stringFlags {
		if !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetString(name); err != nil {
			return nil, err
		}
	}
	if flags.Changed("jobs") {
		if cfg.jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("global") {
		if cfg.globals, err = flags.GetStringSlice("global"); err != nil {
			return nil, err
		}
	}

	if engine != "" {
		if cfg.engine, err = types.Parse(engine); err != nil {
			return nil, err
		}
	}

	cfg.format = strings.ToLower(cfg.format)
	switch cfg.format {
	case formatText, formatJSON, formatYAML:
	default:
		return nil, fmt.Errorf("unsupported format %q (must be text, json or yaml)", cfg.format)
	}

	if cfg.color, err = parseColorMode(cfg.color); err != nil {
		return nil, err
	}

	if cfg.jobs <= 0 {
		cfg.jobs = runtime.GOMAXPROCS(0)
	}
	return cfg, nil
}
