package helpers

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	emptyDigest      = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	helloWorldDigest = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("forced read error")
}

func TestSHA256(t *testing.T) {
	t.Parallel()

	require.Equal(t, emptyDigest, SHA256(""))
	require.Equal(t, helloWorldDigest, SHA256("hello world"))
	require.Equal(t, SHA256("hello world"), SHA256Bytes([]byte("hello world")))
}

func TestSHA256Reader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   io.Reader
		want    string
		wantErr bool
	}{
		{name: "empty reader", input: strings.NewReader(""), want: emptyDigest},
		{name: "text reader", input: strings.NewReader("hello world"), want: helloWorldDigest},
		{name: "read failure", input: failingReader{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SHA256Reader(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSHA256Parts(t *testing.T) {
	t.Parallel()

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, SHA256Parts("risor", "print(1)"), SHA256Parts("risor", "print(1)"))
	})

	t.Run("boundaries matter", func(t *testing.T) {
		assert.NotEqual(t, SHA256Parts("ab", "c"), SHA256Parts("a", "bc"))
	})

	t.Run("differs from plain digest", func(t *testing.T) {
		assert.NotEqual(t, SHA256("hello world"), SHA256Parts("hello world"))
		assert.Len(t, SHA256Parts(), 64)
	})
}
