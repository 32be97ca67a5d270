// Package sentencizer detects sentence boundaries in English text.
//
// Two detectors are provided:
//
//   - Sentencizer works on tokenizer.Token sequences and returns one flag per
//     token marking where a new sentence begins. It is a greedy single-pass
//     machine with two states, inside a sentence and after a terminator,
//     configurable with a set of terminator symbols and a punctuation
//     classifier.
//   - Split and Count work on raw text and cut it at ".", "!", "?" and
//     newlines. They back sentence counting for readability scores.
//
// The default terminator set covers ".", "!", "?" and every character with
// the Unicode Sentence_Terminal property, so sentence-final punctuation of
// non-Latin scripts is recognized as a token. Sets can be extended in code
// or loaded from YAML:
//
//	terms, err := sentencizer.LoadTerminators(strings.NewReader(`terminators: ["…"]`))
//	if err != nil {
//		return err
//	}
//	s := sentencizer.New(sentencizer.WithTerminators(terms))
//	starts := s.Sentencize(tokenizer.Tokenize(text))
//
// All functions are pure; a Sentencizer is safe for concurrent use.
package sentencizer
