package sentencizer

import (
	"strings"
	"unicode"

	"github.com/dmitrymomot/readkit/pkg/tokenizer"
)

// Sentencizer marks which tokens begin a new sentence.
// It holds no per-call state and is safe for concurrent use.
type Sentencizer struct {
	terminators *Terminators
	isPunct     func(rune) bool
}

// Option configures a Sentencizer.
type Option func(*Sentencizer)

// WithTerminators replaces the default terminator set.
func WithTerminators(t *Terminators) Option {
	if t == nil {
		panic("WithTerminators: nil terminators")
	}
	return func(s *Sentencizer) { s.terminators = t }
}

// WithPunctuation replaces the punctuation classifier used as the catch-all
// terminator test. Defaults to unicode.IsPunct.
func WithPunctuation(fn func(rune) bool) Option {
	if fn == nil {
		panic("WithPunctuation: nil classifier")
	}
	return func(s *Sentencizer) { s.isPunct = fn }
}

// New returns a Sentencizer using DefaultTerminators and unicode.IsPunct
// unless overridden.
func New(opts ...Option) *Sentencizer {
	s := &Sentencizer{isPunct: unicode.IsPunct}
	for _, opt := range opts {
		opt(s)
	}
	if s.terminators == nil {
		s.terminators = DefaultTerminators()
	}
	return s
}

// Sentencize returns one flag per token, true where a token starts a
// sentence. The first flag is always true; an empty input yields an empty
// result.
//
// A token is terminal when its text is in the terminator set or contains a
// punctuation rune. After a terminal token, the next non-terminal token
// starts a new sentence; runs of terminal tokens stay with the sentence they
// close.
func (s *Sentencizer) Sentencize(tokens []tokenizer.Token) []bool {
	starts := make([]bool, len(tokens))
	if len(tokens) == 0 {
		return starts
	}
	starts[0] = true

	afterTerminator := false
	segmentStart := 0
	for i, tok := range tokens {
		terminal := s.isTerminal(tok.Text)
		switch {
		case afterTerminator && !terminal:
			starts[segmentStart] = true
			segmentStart = i
			afterTerminator = false
		case terminal:
			afterTerminator = true
		}
	}
	starts[segmentStart] = true

	return starts
}

// Segments groups tokens into sentences using Sentencize.
func (s *Sentencizer) Segments(tokens []tokenizer.Token) [][]tokenizer.Token {
	starts := s.Sentencize(tokens)

	var out [][]tokenizer.Token
	from := 0
	for i := 1; i < len(starts); i++ {
		if starts[i] {
			out = append(out, tokens[from:i])
			from = i
		}
	}
	if len(tokens) > 0 {
		out = append(out, tokens[from:])
	}
	return out
}

// Terminators returns the terminator set in use.
func (s *Sentencizer) Terminators() *Terminators { return s.terminators }

func (s *Sentencizer) isTerminal(text string) bool {
	return s.terminators.Contains(text) || strings.ContainsFunc(text, s.isPunct)
}

// CountStarts returns the number of true flags.
func CountStarts(starts []bool) int {
	n := 0
	for _, b := range starts {
		if b {
			n++
		}
	}
	return n
}
