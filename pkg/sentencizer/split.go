package sentencizer

import "strings"

// Split breaks text into sentences at ".", "!", "?" and newlines.
//
// Sentence punctuation stays with its sentence, and a single space right
// after it is dropped. Newlines end a sentence but are never part of one.
// Fragments made only of whitespace are discarded; trailing text without a
// terminator becomes the last sentence.
//
//	Split("Hello, world! This is a test.") // ["Hello, world!" "This is a test."]
func Split(text string) []string {
	var out []string
	offset := 0

	// Terminators are ASCII, so every index visited here is a rune boundary.
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			out = appendSentence(out, text[offset:i])
			offset = i + 1
		case '.', '!', '?':
			out = appendSentence(out, text[offset:i+1])
			offset = i + 1
			if offset < len(text) && text[offset] == ' ' {
				offset++
				i++
			}
		}
	}
	return appendSentence(out, text[offset:])
}

// Count returns len(Split(text)).
func Count(text string) int {
	return len(Split(text))
}

func appendSentence(dst []string, s string) []string {
	if strings.TrimSpace(s) == "" {
		return dst
	}
	return append(dst, s)
}
