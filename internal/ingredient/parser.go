// Package ingredient splits free-text ingredient lines into a quantity and a name.
package ingredient

import (
	"regexp"
	"sort"
	"strings"
)

// Parsed is the result of interpreting one ingredient line.
// Quantity is nil when no leading amount was detected.
type Parsed struct {
	Quantity *string `json:"quantity"`
	Name     string  `json:"name"`
}

// HasQuantity reports whether a leading amount was detected.
func (p Parsed) HasQuantity() bool {
	return p.Quantity != nil
}

// Parser interprets ingredient lines against a fixed unit vocabulary.
// A Parser is immutable and safe for concurrent use.
type Parser struct {
	pattern *regexp.Regexp
	units   []string
}

var defaultParser = NewParser(DefaultUnits...)

// NewParser builds a parser recognizing the given units. Units are matched
// case-insensitively and longer units win over their prefixes ("lbs" over "lb").
func NewParser(units ...string) *Parser {
	seen := make(map[string]struct{}, len(units))
	vocab := make([]string, 0, len(units))
	for _, u := range units {
		u = strings.ToLower(strings.TrimSpace(u))
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		vocab = append(vocab, u)
	}
	sort.SliceStable(vocab, func(i, j int) bool {
		if len(vocab[i]) != len(vocab[j]) {
			return len(vocab[i]) > len(vocab[j])
		}
		return vocab[i] < vocab[j]
	})

	quoted := make([]string, len(vocab))
	for i, u := range vocab {
		quoted[i] = regexp.QuoteMeta(u)
	}

	// amount: a digit followed by digits, spaces, dots or slashes ("1 1/2", "0.5")
	expr := `^(\d[\d\s/.]*`
	if len(quoted) > 0 {
		expr += `\s*(?:` + strings.Join(quoted, "|") + `)?`
	}
	expr += `)\s+(.+)$`

	return &Parser{
		pattern: regexp.MustCompile(`(?i)` + expr),
		units:   vocab,
	}
}

// Units returns the recognized units, longest first.
func (p *Parser) Units() []string {
	out := make([]string, len(p.units))
	copy(out, p.units)
	return out
}

// Parse splits line into a quantity and a name. It never fails: a line
// without a leading amount, or with nothing after it, yields a nil
// quantity and the whole trimmed line as the name.
func (p *Parser) Parse(line string) Parsed {
	trimmed := strings.TrimSpace(line)
	m := p.pattern.FindStringSubmatch(trimmed)
	if m == nil {
		return Parsed{Name: trimmed}
	}

	quantity := strings.TrimSpace(m[1])
	name := strings.TrimSpace(m[2])
	if name == "" {
		return Parsed{Name: trimmed}
	}
	return Parsed{Quantity: &quantity, Name: name}
}

// ParseAll interprets each line independently, preserving order.
func (p *Parser) ParseAll(lines []string) []Parsed {
	out := make([]Parsed, len(lines))
	for i, line := range lines {
		out[i] = p.Parse(line)
	}
	return out
}

// Parse interprets line with the default unit vocabulary.
func Parse(line string) Parsed {
	return defaultParser.Parse(line)
}

// ParseAll interprets lines with the default unit vocabulary.
func ParseAll(lines []string) []Parsed {
	return defaultParser.ParseAll(lines)
}
