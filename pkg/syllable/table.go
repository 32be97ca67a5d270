package syllable

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

// Table holds the compiled pattern sets used by an Estimator.
// A Table is immutable once built and safe to share between goroutines.
type Table struct {
	addition    []*regexp.Regexp
	subtraction []*regexp.Regexp
	cluster     *regexp.Regexp
}

// TableOption configures table construction.
type TableOption func(*tableConfig)

type tableConfig struct {
	addition    []string
	subtraction []string
}

// WithAdditionPatterns appends patterns that count as one extra syllable.
func WithAdditionPatterns(patterns ...string) TableOption {
	return func(c *tableConfig) {
		c.addition = append(c.addition, patterns...)
	}
}

// WithSubtractionPatterns appends patterns that count as one merged syllable.
func WithSubtractionPatterns(patterns ...string) TableOption {
	return func(c *tableConfig) {
		c.subtraction = append(c.subtraction, patterns...)
	}
}

// WithoutDefaultPatterns drops the built-in pattern sets, so only patterns
// supplied through other options are compiled. Options apply in order:
// place it first.
func WithoutDefaultPatterns() TableOption {
	return func(c *tableConfig) {
		c.addition = nil
		c.subtraction = nil
	}
}

// NewTable compiles the built-in pattern sets plus any supplied through
// options. Every failing pattern is reported, joined with ErrInvalidPattern.
func NewTable(opts ...TableOption) (*Table, error) {
	cfg := &tableConfig{
		addition:    append([]string(nil), additionPatterns...),
		subtraction: append([]string(nil), subtractionPatterns...),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var errs []error
	addition := compileAll(cfg.addition, &errs)
	subtraction := compileAll(cfg.subtraction, &errs)
	if len(errs) > 0 {
		return nil, errors.Join(append([]error{ErrInvalidPattern}, errs...)...)
	}

	return &Table{
		addition:    addition,
		subtraction: subtraction,
		cluster:     regexp.MustCompile(clusterSeparator),
	}, nil
}

// MustNewTable is like NewTable but panics on error.
func MustNewTable(opts ...TableOption) *Table {
	t, err := NewTable(opts...)
	if err != nil {
		panic(err)
	}
	return t
}

var defaultTable = sync.OnceValue(func() *Table {
	return MustNewTable()
})

// DefaultTable returns the shared table built from the built-in patterns.
// It is compiled on first use, exactly once per process.
func DefaultTable() *Table {
	return defaultTable()
}

// AdditionLen returns the number of addition patterns.
func (t *Table) AdditionLen() int { return len(t.addition) }

// SubtractionLen returns the number of subtraction patterns.
func (t *Table) SubtractionLen() int { return len(t.subtraction) }

// Clusters counts the vowel clusters of s: the non-empty fragments left after
// splitting on runs of non-vowels. s is expected to be lower-case already.
func (t *Table) Clusters(s string) int {
	n := 0
	for _, part := range t.cluster.Split(s, -1) {
		if part != "" {
			n++
		}
	}
	return n
}

// tally is the outcome of evaluating patterns against one word.
type tally struct {
	add int
	sub int
}

// scan evaluates every pattern whose index i satisfies i%shards == shard.
// With shards == 1 it covers both sets completely.
func (t *Table) scan(word string, shard, shards int) tally {
	var res tally
	for i := shard; i < len(t.subtraction); i += shards {
		if t.subtraction[i].MatchString(word) {
			res.sub++
		}
	}
	for i := shard; i < len(t.addition); i += shards {
		loc := t.addition[i].FindStringIndex(word)
		if loc == nil {
			continue
		}
		res.add++
		// The matched letters were already counted by the baseline pass.
		res.sub += t.Clusters(word[loc[0]:loc[1]])
	}
	return res
}

func compileAll(patterns []string, errs *[]error) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			*errs = append(*errs, ErrEmptyPattern)
			continue
		}
		re, err := regexp.Compile(p)
		if err != nil {
			*errs = append(*errs, fmt.Errorf("pattern %q: %w", p, err))
			continue
		}
		out = append(out, re)
	}
	return out
}
