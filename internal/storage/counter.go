package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrCounterCorrupt signals that the counter file exists but does not hold
// an integer. Deliberately fatal while a missing file is not: absence is the
// documented bootstrap state, damaged content means real state was mangled,
// and inventing a value there could reuse an invoice number.
var ErrCounterCorrupt = errors.New("counter file content is not a number")

// CounterStore persists the last issued invoice sequence number.
type CounterStore interface {
	Read(ctx context.Context) (int, error)
	Write(ctx context.Context, n int) error
}

// FileCounterStore keeps the counter in a single-line text file.
type FileCounterStore struct {
	Path string
}

func (s *FileCounterStore) Read(_ context.Context) (int, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read counter file: %w", err)
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q in %s", ErrCounterCorrupt, text, s.Path)
	}
	return n, nil
}

func (s *FileCounterStore) Write(_ context.Context, n int) error {
	if err := os.WriteFile(s.Path, []byte(strconv.Itoa(n)+"\n"), 0o644); err != nil {
		return fmt.Errorf("write counter file: %w", err)
	}
	return nil
}
