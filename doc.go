// Package readkit estimates linguistic metrics for English text without any
// statistical model.
//
// It counts syllables per word, words, sentences and tokens per document, and
// derives the Flesch-Kincaid grade level and reading ease from those counts.
// Every function is pure and safe to call from many goroutines.
//
// Basic Usage:
//
//	readkit.EstimateSyllables("Pontificate") // 4
//	readkit.CountWords("Hello, world! This is a test.") // 6
//	readkit.SentenceList("Hello, world! This is a test.")
//	// ["Hello, world!", "This is a test."]
//	readkit.TokenList("Hello, world!") // ["Hello", ",", "world", "!"]
//
//	words := float64(readkit.CountWords(text))
//	sentences := float64(readkit.CountSentences(text))
//	grade := readkit.FleschKincaidGradeLevel(words, sentences, syllables)
//
// Or everything at once:
//
//	r := readkit.Analyze(text)
//	if r.Scored {
//		fmt.Println(r.GradeLevel, r.ReadingEase)
//	}
//
// Packages:
//
//   - pkg/syllable: pattern tables and the syllable estimator
//   - pkg/tokenizer: token spans, punctuation splitting and word counting
//   - pkg/sentencizer: token-level sentence boundaries and sentence splitting
//   - pkg/readability: formulas, document reports and batch analysis
//
// The readability formulas divide by word and sentence counts; guard against
// zeros before calling them, or use Analyze, which only scores texts with at
// least one word and one sentence.
package readkit
