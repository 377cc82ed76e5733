// Package prompt reads the billing period to generate from the operator.
// The terminal interaction lives behind the Source interface so the
// generation workflow can be driven by a scripted source in tests.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonabergamo/invoice-generator/internal/core"
)

var (
	ErrEmptyInput = errors.New("no input provided")
	ErrBadFormat  = errors.New("invalid format: use M, MM, MM/YYYY, or YYYY-MM")
)

// Source supplies the billing period for one generation run.
type Source interface {
	ReadTarget(ctx context.Context, defaultYear int) (core.Target, error)
}

// TerminalSource prompts on out and reads a single line from in.
type TerminalSource struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminalSource(in io.Reader, out io.Writer) *TerminalSource {
	return &TerminalSource{in: bufio.NewReader(in), out: out}
}

func (s *TerminalSource) ReadTarget(_ context.Context, defaultYear int) (core.Target, error) {
	fmt.Fprint(s.out, "Which month to generate? (e.g. 2, 02, 02/2026, 2026-02): ")
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return core.Target{}, ErrEmptyInput
		}
		return core.Target{}, fmt.Errorf("read input: %w", err)
	}
	return ParseTarget(strings.TrimSpace(line), defaultYear)
}

var (
	monthOnlyRe = regexp.MustCompile(`^\d{1,2}$`)
	monthYearRe = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)
	yearMonthRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
)

// ParseTarget interprets raw as one of the accepted period forms. A bare one
// or two digit value selects that month in defaultYear.
func ParseTarget(raw string, defaultYear int) (core.Target, error) {
	if raw == "" {
		return core.Target{}, ErrEmptyInput
	}

	var month, year int
	switch {
	case monthOnlyRe.MatchString(raw):
		month, _ = strconv.Atoi(raw)
		year = defaultYear
	case monthYearRe.MatchString(raw):
		m := monthYearRe.FindStringSubmatch(raw)
		month, _ = strconv.Atoi(m[1])
		year, _ = strconv.Atoi(m[2])
	case yearMonthRe.MatchString(raw):
		m := yearMonthRe.FindStringSubmatch(raw)
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
	default:
		return core.Target{}, ErrBadFormat
	}

	return core.NewTarget(month, year)
}
