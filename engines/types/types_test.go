package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Type
	}{
		{"risor", Risor},
		{"Starlark", Starlark},
		{"  EXTISM ", Extism},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := Parse("lua")
		require.ErrorIs(t, err, ErrUnknownType)
		assert.Contains(t, err.Error(), `"lua"`)
	})
}

func TestFromExtension(t *testing.T) {
	t.Parallel()

	for ext, want := range map[string]Type{
		".star":  Starlark,
		".BZL":   Starlark,
		".risor": Risor,
		".rsr":   Risor,
		".wasm":  Extism,
	} {
		got, ok := FromExtension(ext)
		assert.True(t, ok, ext)
		assert.Equal(t, want, got, ext)
	}

	_, ok := FromExtension(".py")
	assert.False(t, ok)
}

func TestAll(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []Type{Starlark, Risor, Extism}, All())
	assert.Equal(t, "risor", Risor.String())
}
