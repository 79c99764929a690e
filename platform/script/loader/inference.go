package loader

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/robbyt/go-polycompile/engines/types"
)

// InferLoader analyzes the input and returns an appropriate loader based on type inference.
// It supports the following input types:
//   - string: a file:// URL or an existing file path loads from disk. A missing file that
//     looks like a path is an ErrScriptNotAvailable error; anything else is inline source
//   - []byte: Returns FromBytes loader
//   - io.Reader: Returns FromIoReader loader
//   - Loader: Returns as-is
//
// Returns an error if the input type is unsupported or if loader creation fails.
func InferLoader(input any) (Loader, error) {
	switch v := input.(type) {
	case string:
		return inferFromString(v)
	case []byte:
		return NewFromBytes(v)
	case Loader:
		return v, nil
	case io.Reader:
		return NewFromIoReader(v, "inferred")
	default:
		return nil, fmt.Errorf("unsupported input type: %T", input)
	}
}

func inferFromString(input string) (Loader, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty string input", ErrInputEmpty)
	}

	if !strings.ContainsAny(trimmed, "\n\r") {
		if parsed, err := url.Parse(trimmed); err == nil && parsed.Scheme != "" {
			switch parsed.Scheme {
			case "file":
				return NewFromDisk(trimmed)
			case "http", "https":
				return nil, fmt.Errorf("%w: %s", ErrSchemeUnsupported, parsed.Scheme)
			}
		}

		info, err := os.Stat(trimmed)
		switch {
		case err == nil && !info.IsDir():
			return NewFromDisk(trimmed)
		case err != nil && looksLikePath(trimmed):
			return nil, fmt.Errorf("%w: %w", ErrScriptNotAvailable, err)
		}
	}

	return NewFromString(input)
}

// looksLikePath reports whether a single-line input reads as a file name rather than
// source: no whitespace or quoting/call punctuation, and either a path separator or an
// engine file extension.
func looksLikePath(input string) bool {
	if strings.ContainsAny(input, " \t\"'()=,;") {
		return false
	}
	if strings.ContainsRune(input, '/') || strings.ContainsRune(input, filepath.Separator) {
		return true
	}
	_, ok := types.FromExtension(filepath.Ext(input))
	return ok
}
