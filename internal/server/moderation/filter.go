// Package moderation implements the static disallow-list content filter
// applied to prompts before they reach the generative backend.
package moderation

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// BlockedMessage is the only reason ever reported for a blocked prompt.
const BlockedMessage = "Content blocked: Your query contains inappropriate content. Please keep requests creative and respectful."

// Filter matches text against a fixed term list. A Filter is immutable
// after construction and safe for concurrent use.
type Filter struct {
	terms []string
}

// NewFilter builds a filter over terms. Terms are lower-cased and blank
// entries are skipped.
func NewFilter(terms []string) *Filter {
	f := &Filter{terms: make([]string, 0, len(terms))}
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			f.terms = append(f.terms, t)
		}
	}
	return f
}

// NewDefaultFilter returns a filter over DefaultBlockedTerms.
func NewDefaultFilter() *Filter {
	return NewFilter(DefaultBlockedTerms())
}

// IsBlocked reports whether text contains any disallowed term as a
// case-insensitive substring. The reason is always BlockedMessage and
// never names the matched term.
func (f *Filter) IsBlocked(text string) (bool, string) {
	lower := strings.ToLower(text)
	for _, t := range f.terms {
		if strings.Contains(lower, t) {
			return true, BlockedMessage
		}
	}
	return false, ""
}

// Len returns the number of terms in the filter.
func (f *Filter) Len() int {
	return len(f.terms)
}

// ReadTerms parses a term list, one term per line. Blank lines and lines
// starting with '#' are ignored.
func ReadTerms(r io.Reader) ([]string, error) {
	var terms []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read terms: %w", err)
	}
	return terms, nil
}

// LoadFilter returns the built-in filter when path is empty, otherwise a
// filter over the terms listed in the file at path.
func LoadFilter(path string) (*Filter, error) {
	if path == "" {
		return NewDefaultFilter(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open block list: %w", err)
	}
	defer file.Close()

	terms, err := ReadTerms(file)
	if err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("block list %s is empty", path)
	}
	return NewFilter(terms), nil
}
