package tokenizer

import (
	"strings"
	"unicode"
)

// splitRunes are split out of a whitespace-delimited chunk by Split.
// All of them are ASCII, so byte slicing around them is rune-safe.
const splitRunes = "-.,!?;:"

// Split breaks text into whitespace-delimited chunks and splits each chunk
// once, at its first punctuation rune from {- . , ! ? ; :}, into the part
// before it, the rune itself and the rest. The rest is not split again.
// Empty parts are dropped.
//
//	Split("Hello, world!") // ["Hello" "," "world" "!"]
func Split(text string) []string {
	var out []string
	for _, chunk := range strings.Fields(text) {
		i := strings.IndexAny(chunk, splitRunes)
		if i < 0 {
			out = append(out, chunk)
			continue
		}
		out = appendNonEmpty(out, chunk[:i], chunk[i:i+1], chunk[i+1:])
	}
	return out
}

// Count returns len(Split(text)).
func Count(text string) int {
	return len(Split(text))
}

// Words returns the maximal runs of non-whitespace runes in text.
// Punctuation stays attached: "hyper-mode," is one word.
func Words(text string) []string {
	return strings.Fields(text)
}

// CountWords counts the maximal runs of non-whitespace runes without
// allocating.
func CountWords(text string) int {
	n := 0
	inWord := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			n++
			inWord = true
		}
	}
	return n
}

func appendNonEmpty(dst []string, parts ...string) []string {
	for _, p := range parts {
		if p != "" {
			dst = append(dst, p)
		}
	}
	return dst
}
