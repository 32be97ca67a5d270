// Package tokenizer splits English text into tokens and words.
//
// Three splitting rules are provided, each serving a different metric:
//
//   - Tokenize is a rune-scanning state machine producing Token spans with
//     1-based indexes and byte offsets. Whitespace separates tokens, and
//     apostrophes and periods are always emitted as tokens of their own.
//     Its output feeds the sentencizer package.
//   - Split splits every whitespace-delimited chunk once, at its first
//     punctuation rune, and backs token counting.
//   - Words and CountWords return whitespace-delimited runs and back word
//     counting; hyphenated compounds count as one word.
//
// # Usage
//
//	tokens := tokenizer.Tokenize("It's late.")
//	// It, ', s, late, .
//
//	tokenizer.Split("Hello, world!") // Hello , world !
//	tokenizer.CountWords("hyper-mode on") // 2
//
// Apostrophes split contractions by default ("don't" becomes "don", "'",
// "t"). Pass WithContractions to keep in-word apostrophes.
//
// All functions are pure and safe for concurrent use.
package tokenizer
