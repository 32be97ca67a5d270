package sentencizer

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
	"gopkg.in/yaml.v3"
)

// Terminators is an immutable set of sentence terminator symbols.
// A token terminates a sentence when its text equals one of the symbols.
type Terminators struct {
	set map[string]struct{}
}

// NewTerminators returns a set holding exactly the given symbols.
// Empty symbols are ignored.
func NewTerminators(symbols ...string) *Terminators {
	t := &Terminators{set: make(map[string]struct{}, len(symbols))}
	for _, s := range symbols {
		if s != "" {
			t.set[s] = struct{}{}
		}
	}
	return t
}

// DefaultTerminators returns ".", "!", "?" and every character with the
// Unicode Sentence_Terminal property, such as "。", "।", "؟" and "‼".
func DefaultTerminators() *Terminators {
	t := NewTerminators(".", "!", "?")
	rangetable.Visit(unicode.Sentence_Terminal, func(r rune) {
		t.set[string(r)] = struct{}{}
	})
	return t
}

// With returns a new set holding the receiver's symbols plus the given ones.
func (t *Terminators) With(symbols ...string) *Terminators {
	out := NewTerminators(symbols...)
	for s := range t.set {
		out.set[s] = struct{}{}
	}
	return out
}

// Contains reports whether text is exactly one of the terminator symbols.
func (t *Terminators) Contains(text string) bool {
	_, ok := t.set[text]
	return ok
}

// Len returns the number of symbols.
func (t *Terminators) Len() int { return len(t.set) }

// Symbols returns the symbols in sorted order.
func (t *Terminators) Symbols() []string {
	out := make([]string, 0, len(t.set))
	for s := range t.set {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// terminatorsFile is the YAML layout read by LoadTerminators:
//
//	replace: false
//	terminators: ["…", "⁇"]
type terminatorsFile struct {
	Replace     bool     `yaml:"replace"`
	Terminators []string `yaml:"terminators"`
}

// LoadTerminators reads a YAML terminator list from r. The listed symbols
// extend DefaultTerminators unless the document sets replace: true.
func LoadTerminators(r io.Reader) (*Terminators, error) {
	var file terminatorsFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidTerminators, err)
	}

	for i, s := range file.Terminators {
		if strings.TrimSpace(s) == "" {
			return nil, errors.Join(ErrInvalidTerminators, fmt.Errorf("entry %d: %w", i, ErrEmptyTerminator))
		}
	}

	if file.Replace {
		return NewTerminators(file.Terminators...), nil
	}
	return DefaultTerminators().With(file.Terminators...), nil
}
