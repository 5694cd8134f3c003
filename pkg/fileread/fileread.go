/*
Copyright © 2026 SONiC Project
SPDX-License-Identifier: Apache-2.0
*/

// Package fileread provides bounded reads of small state and proc files.
//
// The probes in this repository consume single-line files (kernel cmdline,
// cause markers) that may legitimately be absent. Readers surface a missing
// file as an error satisfying errors.Is(err, fs.ErrNotExist) so callers can
// map it to their documented "no signal" outcome.
package fileread

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Option configures a Reader.
type Option func(*Reader)

// Reader reads small text files with size and encoding guards.
type Reader struct {
	maxSize int
}

// WithMaxSize sets the maximum size (in bytes) of a file the Reader will
// accept. Default is 1MB.
func WithMaxSize(size int) Option {
	return func(r *Reader) {
		r.maxSize = size
	}
}

// NewReader creates a Reader with the provided options.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		maxSize: 1 << 20, // 1MB default
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Contents returns the whole file as a string.
// Returns an error if the path is empty, the file cannot be read, exceeds
// the maximum size, or is not valid UTF-8.
func (r *Reader) Contents(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", path, err)
	}

	if !utf8.Valid(b) {
		return "", fmt.Errorf("content of file %q is not valid UTF-8", path)
	}

	if len(b) > r.maxSize {
		return "", fmt.Errorf("file %q exceeds maximum size of %d bytes", path, r.maxSize)
	}

	return string(b), nil
}

// FirstLine returns the first line of the file with surrounding whitespace
// trimmed. An empty file yields an empty string.
func (r *Reader) FirstLine(path string) (string, error) {
	content, err := r.Contents(path)
	if err != nil {
		return "", err
	}

	line, _, _ := strings.Cut(content, "\n")
	return strings.TrimSpace(line), nil
}
