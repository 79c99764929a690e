package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/robbyt/go-polycompile/internal/helpers"
)

// Current schema version - increment when cachePayload format changes
const cacheSchemaVersion uint16 = 1

// resultCache stores compile results on disk, keyed by everything that affects them.
// A nil *resultCache is a disabled cache.
type resultCache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema uint16
	Engine string
	Errors []string
}

func openResultCache(dir string) (*resultCache, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &resultCache{dir: dir}, nil
}

func cacheKey(cfg *checkConfig, engine, source string) string {
	return helpers.SHA256Parts(
		engine,
		cfg.entryPoint,
		strings.Join(cfg.globals, ","),
		version,
		source,
	)
}

func (c *resultCache) pathFor(key string) string {
	return filepath.Join(c.dir, "results", key+".mp")
}

// Put serializes and writes a result to the cache.
func (c *resultCache) Put(key string, payload *cachePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(f.Name()) }()

	payload.Schema = cacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a cached result. A missing entry or an entry from another schema is a miss.
func (c *resultCache) Get(key string, out *cachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	if out.Errors == nil {
		out.Errors = []string{}
	}
	return true, nil
}
