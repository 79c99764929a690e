package polycompile

import (
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/robbyt/go-polycompile/engines/extism/wasmdata"
	"github.com/robbyt/go-polycompile/engines/mocks"
	"github.com/robbyt/go-polycompile/engines/types"
	"github.com/robbyt/go-polycompile/options"
	"github.com/robbyt/go-polycompile/platform/binding"
	"github.com/robbyt/go-polycompile/platform/diagnostics"
	"github.com/robbyt/go-polycompile/platform/script/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quiet() options.Option {
	return options.WithLogHandler(slog.NewTextHandler(io.Discard, nil))
}

func TestCompile(t *testing.T) {
	t.Parallel()

	t.Run("copies diagnostics", func(t *testing.T) {
		c := new(mocks.Compiler)
		c.On("Compile", "src").Return(diagnostics.NewList("a", "b"), nil)

		errs, err := Compile(c, "src")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, errs)
		c.AssertExpectations(t)
	})

	t.Run("returns compiler error unchanged", func(t *testing.T) {
		failure := errors.New("backend down")
		c := new(mocks.Compiler)
		c.On("Compile", "").Return(nil, failure)

		errs, err := Compile(c, "")
		assert.Same(t, failure, err)
		assert.Nil(t, errs)
	})
}

func TestNewCompiler(t *testing.T) {
	t.Parallel()

	for _, engineType := range types.All() {
		t.Run(engineType.String(), func(t *testing.T) {
			c, err := NewCompiler(engineType, quiet())
			require.NoError(t, err)
			require.NotNil(t, c)
			assert.Contains(t, c.(interface{ String() string }).String(), engineType.String())
		})
	}

	t.Run("unknown engine", func(t *testing.T) {
		c, err := NewCompiler(types.Type("lua"), quiet())
		require.ErrorIs(t, err, types.ErrUnknownType)
		assert.Nil(t, c)
	})
}

func TestCompileString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		engine     types.Type
		source     string
		opts       []options.Option
		wantErrors int
		contains   string
	}{
		{name: "starlark valid", engine: types.Starlark, source: "x = 1\n"},
		{name: "starlark empty", engine: types.Starlark, source: ""},
		{name: "starlark ctx", engine: types.Starlark, source: "print(ctx)\n"},
		{
			name:       "starlark undefined",
			engine:     types.Starlark,
			source:     "print(a)\nprint(b)\n",
			wantErrors: 2,
			contains:   "undefined: a",
		},
		{
			name:   "starlark globals",
			engine: types.Starlark,
			source: "print(request)\n",
			opts:   []options.Option{options.WithGlobals("request")},
		},
		{name: "risor valid", engine: types.Risor, source: "x := 1\nprint(x)\n"},
		{
			name:       "risor empty",
			engine:     types.Risor,
			source:     "",
			wantErrors: 1,
			contains:   "script contains no instructions",
		},
		{
			name:   "risor globals",
			engine: types.Risor,
			source: `print(request, ctx)`,
			opts:   []options.Option{options.WithGlobals("request")},
		},
		{
			name:   "extism valid",
			engine: types.Extism,
			source: base64.StdEncoding.EncodeToString(wasmdata.TestModule),
		},
		{
			name:       "extism entry point",
			engine:     types.Extism,
			source:     base64.StdEncoding.EncodeToString(wasmdata.TestModule),
			opts:       []options.Option{options.WithEntryPoint("greet")},
			wantErrors: 1,
			contains:   "exported functions: main, run",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, err := CompileString(tt.engine, tt.source, append([]options.Option{quiet()}, tt.opts...)...)
			require.NoError(t, err)
			require.NotNil(t, errs)
			require.Len(t, errs, tt.wantErrors, "errors: %v", errs)
			if tt.contains != "" {
				assert.Contains(t, errs[0], tt.contains)
			}
		})
	}

	t.Run("invalid options", func(t *testing.T) {
		_, err := CompileString(types.Extism, "", options.WithEntryPoint(""))
		require.Error(t, err)
	})
}

func TestCompileLoader(t *testing.T) {
	t.Parallel()

	t.Run("raw wasm is encoded", func(t *testing.T) {
		l, err := loader.NewFromBytes(wasmdata.TestModule)
		require.NoError(t, err)

		errs, err := CompileLoader(types.Extism, l, quiet())
		require.NoError(t, err)
		assert.Empty(t, errs)
	})

	t.Run("non-wasm binary rejected for extism", func(t *testing.T) {
		l, err := loader.NewFromBytes([]byte{0x7f, 'E', 'L', 'F', 0x02})
		require.NoError(t, err)

		_, err = CompileLoader(types.Extism, l, quiet())
		require.ErrorIs(t, err, loader.ErrNotWasm)
	})

	t.Run("text source", func(t *testing.T) {
		l, err := loader.NewFromString("def f(:\n")
		require.NoError(t, err)

		errs, err := CompileLoader(types.Starlark, l, quiet())
		require.NoError(t, err)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "script.star:1:")
	})

	t.Run("loader failure", func(t *testing.T) {
		l := new(loader.MockLoader)
		l.On("GetReader").Return(nil, errors.New("gone"))

		_, err := CompileLoader(types.Starlark, l, quiet())
		require.ErrorIs(t, err, loader.ErrScriptNotAvailable)
	})
}

func TestSourceFor(t *testing.T) {
	t.Parallel()

	encoded := base64.StdEncoding.EncodeToString(wasmdata.TestModule)
	assert.Equal(t, encoded, SourceFor(types.Extism, wasmdata.TestModule))
	assert.Equal(t, encoded, SourceFor(types.Extism, []byte(encoded)))
	assert.Equal(t, "x = 1", SourceFor(types.Starlark, []byte("x = 1")))
	assert.Equal(t, string(wasmdata.TestModule), SourceFor(types.Risor, wasmdata.TestModule))
}

func TestRegisterAll(t *testing.T) {
	t.Parallel()

	reg := binding.NewRegistry()
	require.NoError(t, RegisterAll(reg, quiet()))

	assert.Equal(t, []string{
		"polycompile_compile",
		"polycompile_compile_extism",
		"polycompile_compile_risor",
		"polycompile_compile_starlark",
	}, reg.Names())

	t.Run("default symbol is starlark", func(t *testing.T) {
		errs, err := reg.Call(binding.Symbol, "print(missing)\n")
		require.NoError(t, err)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "undefined: missing")
	})

	t.Run("engine symbols", func(t *testing.T) {
		errs, err := reg.Call(SymbolFor(types.Risor), "")
		require.NoError(t, err)
		assert.Equal(t, []string{"script contains no instructions"}, errs)
	})

	t.Run("register failure", func(t *testing.T) {
		require.Error(t, RegisterAll(reg, options.WithEntryPoint("")))
	})
}
