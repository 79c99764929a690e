package loader

import (
	"bytes"
	"fmt"
	"io"
	"net/url"

	"github.com/robbyt/go-polycompile/internal/helpers"
)

// Content kinds used as the host of a FromBytes source URL, e.g. bytes://wasm/1a2b3c4d.
const (
	KindText   = "text"
	KindWasm   = "wasm"
	KindBinary = "binary"
)

var wasmMagic = []byte{0x00, 'a', 's', 'm'}

// FromBytes holds in-memory content. Its source URL records what kind of content it is.
type FromBytes struct {
	content   []byte
	kind      string
	sourceURL *url.URL
}

// NewFromBytes accepts text, WASM modules and other binary content. Empty or
// whitespace-only text is rejected.
func NewFromBytes(content []byte) (*FromBytes, error) {
	kind := ContentKind(content)
	if kind == KindText && len(bytes.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf("%w: content is empty or contains only whitespace", ErrScriptNotAvailable)
	}

	u, err := url.Parse(fmt.Sprintf("bytes://%s/%s", kind, helpers.SHA256Bytes(content)[:8]))
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromBytes{
		content:   content,
		kind:      kind,
		sourceURL: u,
	}, nil
}

// NewFromWasm is NewFromBytes restricted to WASM modules.
func NewFromWasm(content []byte) (*FromBytes, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: content is empty", ErrScriptNotAvailable)
	}
	if !IsWasm(content) {
		return nil, fmt.Errorf("%w: missing WASM magic header", ErrNotWasm)
	}
	return NewFromBytes(content)
}

func (l *FromBytes) String() string {
	return fmt.Sprintf("loader.FromBytes{Kind: %s, Bytes: %d}", l.kind, len(l.content))
}

// Kind is one of KindText, KindWasm or KindBinary.
func (l *FromBytes) Kind() string {
	return l.kind
}

func (l *FromBytes) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(l.content)), nil
}

func (l *FromBytes) GetSourceURL() *url.URL {
	return l.sourceURL
}

// IsWasm reports whether content starts with the WASM binary header.
func IsWasm(content []byte) bool {
	return bytes.HasPrefix(content, wasmMagic)
}

// ContentKind classifies content as a WASM module, other binary data or text.
func ContentKind(content []byte) string {
	switch {
	case IsWasm(content):
		return KindWasm
	case hasBinaryCharacters(content):
		return KindBinary
	default:
		return KindText
	}
}

// CheckWasm returns ErrNotWasm for binary content that is not a WASM module. Text is
// allowed through since the Extism engine also takes base64 source.
func CheckWasm(content []byte) error {
	if len(content) == 0 {
		return fmt.Errorf("%w: content is empty", ErrScriptNotAvailable)
	}
	if ContentKind(content) == KindBinary {
		return fmt.Errorf("%w: binary content without WASM header", ErrNotWasm)
	}
	return nil
}

// hasBinaryCharacters reports whether data holds NUL or non-whitespace control bytes.
func hasBinaryCharacters(data []byte) bool {
	for _, b := range data {
		if b == 0 || (b < 32 && b != '\n' && b != '\r' && b != '\t' && b != '\f' && b != '\v') {
			return true
		}
	}
	return false
}
