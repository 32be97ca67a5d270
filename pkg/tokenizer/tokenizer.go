package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// Option configures Tokenize.
type Option func(*config)

type config struct {
	breaks       map[rune]struct{}
	contractions bool
}

func defaultConfig() *config {
	return &config{
		breaks: map[rune]struct{}{
			'\'': {},
			'.':  {},
			// U+2019, typeset apostrophe.
			'\u2019': {},
		},
	}
}

// WithBreakRunes replaces the runes that always end the current token and
// are emitted as tokens of their own. The default set is the apostrophe
// (ASCII and U+2019) and the period.
func WithBreakRunes(runes ...rune) Option {
	return func(c *config) {
		c.breaks = make(map[rune]struct{}, len(runes))
		for _, r := range runes {
			c.breaks[r] = struct{}{}
		}
	}
}

// WithContractions keeps an apostrophe that sits between two letters inside
// the word, so "don't" stays one token instead of "don", "'", "t".
func WithContractions() Option {
	return func(c *config) { c.contractions = true }
}

// Tokenize splits text into tokens in document order.
//
// Whitespace separates tokens. Break runes (apostrophes and periods by
// default) end the preceding token and become single-rune tokens, so
// "end." yields "end" and ".". The text is decoded rune by rune; offsets
// always fall on rune boundaries.
func Tokenize(text string, opts ...Option) []Token {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var tokens []Token
	start := -1
	prev := rune(-1)

	emit := func(from, to int) {
		if from < 0 || from >= to {
			return
		}
		tokens = append(tokens, Token{
			Index:  len(tokens) + 1,
			Offset: from,
			Text:   text[from:to],
		})
	}

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch {
		case unicode.IsSpace(r):
			emit(start, i)
			start = -1

		case cfg.isBreak(r) && !cfg.keepInWord(r, prev, text[i+size:]):
			emit(start, i)
			emit(i, i+size)
			start = -1

		default:
			if start < 0 {
				start = i
			}
		}

		prev = r
		i += size
	}
	emit(start, len(text))

	return tokens
}

// CountTokenized returns the number of tokens Tokenize would produce.
func CountTokenized(text string, opts ...Option) int {
	return len(Tokenize(text, opts...))
}

func (c *config) isBreak(r rune) bool {
	_, ok := c.breaks[r]
	return ok
}

func (c *config) keepInWord(r, prev rune, rest string) bool {
	if !c.contractions || !isApostrophe(r) || !unicode.IsLetter(prev) {
		return false
	}
	next, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsLetter(next)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '\u2019'
}
