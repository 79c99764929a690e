package loader

import (
	"testing"

	"github.com/robbyt/go-polycompile/engines/extism/wasmdata"
	"github.com/robbyt/go-polycompile/internal/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var elfHeader = []byte{0x7f, 'E', 'L', 'F', 0x02, 0x01}

func TestNewFromBytes(t *testing.T) {
	t.Parallel()

	t.Run("valid content", func(t *testing.T) {
		tests := []struct {
			name     string
			content  []byte
			wantKind string
		}{
			{name: "simple content", content: []byte(simpleContent), wantKind: KindText},
			{name: "multiline content", content: []byte(multilineContent), wantKind: KindText},
			{name: "special characters", content: []byte("x = 2 * π"), wantKind: KindText},
			{name: "wasm module", content: wasmdata.TestModule, wantKind: KindWasm},
			{name: "other binary", content: elfHeader, wantKind: KindBinary},
			{name: "binary with whitespace", content: []byte{0x00, ' ', '\n'}, wantKind: KindBinary},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				l, err := NewFromBytes(tc.content)
				require.NoError(t, err)
				assert.Equal(t, tc.wantKind, l.Kind())

				expectedHash := helpers.SHA256Bytes(tc.content)[:8]
				assert.Equal(t, "bytes://"+tc.wantKind+"/"+expectedHash, l.GetSourceURL().String())

				got, err := ReadBytes(l)
				require.NoError(t, err)
				assert.Equal(t, tc.content, got)
			})
		}
	})

	t.Run("invalid content", func(t *testing.T) {
		for name, content := range map[string][]byte{
			"nil":        nil,
			"empty":      {},
			"whitespace": []byte(" \t\r\n\f\v"),
		} {
			t.Run(name, func(t *testing.T) {
				_, err := NewFromBytes(content)
				require.ErrorIs(t, err, ErrScriptNotAvailable)
			})
		}
	})

	t.Run("string", func(t *testing.T) {
		l, err := NewFromBytes([]byte("abc"))
		require.NoError(t, err)
		assert.Equal(t, "loader.FromBytes{Kind: text, Bytes: 3}", l.String())
	})
}

func TestNewFromWasm(t *testing.T) {
	t.Parallel()

	l, err := NewFromWasm(wasmdata.TestModule)
	require.NoError(t, err)
	assert.Equal(t, KindWasm, l.Kind())

	_, err = NewFromWasm(elfHeader)
	require.ErrorIs(t, err, ErrNotWasm)

	_, err = NewFromWasm([]byte("AGFzbQEAAAA="))
	require.ErrorIs(t, err, ErrNotWasm)

	_, err = NewFromWasm(nil)
	require.ErrorIs(t, err, ErrScriptNotAvailable)
}

func TestCheckWasm(t *testing.T) {
	t.Parallel()

	require.NoError(t, CheckWasm(wasmdata.TestModule))
	require.NoError(t, CheckWasm([]byte("AGFzbQEAAAA=")), "base64 text is left to the engine")
	require.ErrorIs(t, CheckWasm(elfHeader), ErrNotWasm)
	require.ErrorIs(t, CheckWasm(nil), ErrScriptNotAvailable)
}

func TestContentKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindText, ContentKind([]byte("text\n\twith\r\nbreaks")))
	assert.Equal(t, KindBinary, ContentKind([]byte{'a', 0x00}))
	assert.Equal(t, KindBinary, ContentKind([]byte{0x1b}))
	assert.Equal(t, KindWasm, ContentKind(wasmdata.TestModule))
	assert.True(t, IsWasm(wasmdata.TestModule))
	assert.False(t, IsWasm([]byte("asm")))
}
