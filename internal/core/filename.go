package core

import (
	"regexp"
	"strconv"
)

// ParsedFilename is the structured result of parsing an invoice filename.
type ParsedFilename struct {
	Year   int
	Month  int
	Number int
}

type filenameRule struct {
	pattern *regexp.Regexp
	extract func(m []string) ParsedFilename
}

// Two generations of naming are in circulation: the current year-first form
// and the legacy month-first form kept for backward-compatible discovery.
// The field widths make the patterns mutually exclusive, so rule order only
// reflects which format is current.
var filenameRules = []filenameRule{
	{
		// Invoice_YYYY_MM_#N.pdf
		pattern: regexp.MustCompile(`^Invoice_(\d{4})_(\d{2})_#(\d+)\.pdf$`),
		extract: func(m []string) ParsedFilename {
			return ParsedFilename{Year: atoi(m[1]), Month: atoi(m[2]), Number: atoi(m[3])}
		},
	},
	{
		// Invoice_MM_YYYY_#N.pdf (legacy)
		pattern: regexp.MustCompile(`^Invoice_(\d{2})_(\d{4})_#(\d+)\.pdf$`),
		extract: func(m []string) ParsedFilename {
			return ParsedFilename{Year: atoi(m[2]), Month: atoi(m[1]), Number: atoi(m[3])}
		},
	},
}

// ParseFilename recovers (year, month, number) from an invoice filename.
// ok is false when the name matches neither accepted pattern. The function
// is pure: same input, same output, no side effects.
func ParseFilename(name string) (ParsedFilename, bool) {
	for _, rule := range filenameRules {
		if m := rule.pattern.FindStringSubmatch(name); m != nil {
			return rule.extract(m), true
		}
	}
	return ParsedFilename{}, false
}

// atoi is safe here: every argument already matched a digits-only group.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
