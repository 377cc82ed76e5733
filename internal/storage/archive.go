package storage

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/jonabergamo/invoice-generator/internal/core"
)

// Archive reads previously generated invoices back out of the output
// directory. Filenames are the authoritative record: the directory is
// rescanned on every call instead of cached, so manual deletions and
// additions are always seen.
type Archive struct {
	Dir string
}

// Targets returns the periods that already have at least one invoice,
// deduplicated and sorted by year then month. Names that match neither
// filename pattern, or that parse with an impossible month, are skipped.
// A missing directory means nothing was generated yet.
func (a *Archive) Targets(_ context.Context) ([]core.Target, error) {
	parsed, err := a.scan()
	if err != nil {
		return nil, err
	}

	targets := make([]core.Target, 0, len(parsed))
	for _, p := range parsed {
		if p.Month < 1 || p.Month > 12 {
			continue
		}
		targets = append(targets, core.Target{Month: p.Month, Year: p.Year})
	}

	targets = lo.UniqBy(targets, func(t core.Target) string { return t.String() })
	sort.Slice(targets, func(i, j int) bool {
		if targets[i].Year != targets[j].Year {
			return targets[i].Year < targets[j].Year
		}
		return targets[i].Month < targets[j].Month
	})
	return targets, nil
}

// MaxSequence returns the highest sequence number embedded in any parseable
// filename, or 0 when there is none.
func (a *Archive) MaxSequence(_ context.Context) (int, error) {
	parsed, err := a.scan()
	if err != nil {
		return 0, err
	}
	max := 0
	for _, p := range parsed {
		if p.Number > max {
			max = p.Number
		}
	}
	return max, nil
}

// NextSequence reconciles the persisted counter against the filenames on
// disk and returns the number the next invoice must carry. The counter is
// the fast path; filenames win when the counter file was lost, stale, or
// edited, so a number is never reused after a partial failure.
func (a *Archive) NextSequence(ctx context.Context, counter CounterStore) (int, error) {
	last, err := counter.Read(ctx)
	if err != nil {
		return 0, err
	}
	fromFiles, err := a.MaxSequence(ctx)
	if err != nil {
		return 0, err
	}
	if fromFiles > last {
		last = fromFiles
	}
	return last + 1, nil
}

func (a *Archive) scan() ([]core.ParsedFilename, error) {
	entries, err := os.ReadDir(a.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read invoices directory %s: %w", a.Dir, err)
	}

	var out []core.ParsedFilename
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if p, ok := core.ParseFilename(e.Name()); ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// FormatTargets renders discovered periods for terminal display.
func FormatTargets(targets []core.Target) string {
	if len(targets) == 0 {
		return "none yet"
	}
	return strings.Join(lo.Map(targets, func(t core.Target, _ int) string {
		return t.String()
	}), ", ")
}
