package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// AtomicSaver writes documents with an atomic rename so a failed or
// interrupted save never leaves a truncated file behind.
type AtomicSaver struct{}

// NewAtomicSaver returns a [DocumentSaver] backed by natefinch/atomic.
func NewAtomicSaver() *AtomicSaver {
	return &AtomicSaver{}
}

func (s *AtomicSaver) Create(ctx context.Context, path string, filter TypeFilter) (Sink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("error creating document: empty path")
	}

	path = filter.Apply(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("error creating document directory: %w", err)
	}

	return &atomicSink{path: path}, nil
}

// atomicSink buffers everything written and replaces the destination on
// Close.
type atomicSink struct {
	path   string
	buf    bytes.Buffer
	closed bool
}

func (s *atomicSink) Path() string {
	return s.path
}

func (s *atomicSink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, os.ErrClosed
	}
	return s.buf.Write(p)
}

func (s *atomicSink) Close() error {
	if s.closed {
		return os.ErrClosed
	}
	s.closed = true

	if err := atomic.WriteFile(s.path, &s.buf); err != nil {
		return fmt.Errorf("error writing document: %w", err)
	}
	return nil
}
