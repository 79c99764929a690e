// Package loader obtains script source text from strings, bytes, readers and files.
package loader

import (
	"fmt"
	"io"
	"net/url"
)

// Loader is an interface used to obtain the source handed to a compiler.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}

// ReadBytes reads the full content of a loader and closes the reader.
func ReadBytes(l Loader) ([]byte, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: loader is nil", ErrScriptNotAvailable)
	}

	reader, err := l.GetReader()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptNotAvailable, err)
	}

	content, err := io.ReadAll(reader)
	if closeErr := reader.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close reader: %w", closeErr)
	}
	if err != nil {
		return nil, err
	}
	return content, nil
}

// ReadString is ReadBytes returning a string.
func ReadString(l Loader) (string, error) {
	content, err := ReadBytes(l)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
