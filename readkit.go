package readkit

import (
	"sync"

	"github.com/dmitrymomot/readkit/pkg/readability"
	"github.com/dmitrymomot/readkit/pkg/sentencizer"
	"github.com/dmitrymomot/readkit/pkg/syllable"
	"github.com/dmitrymomot/readkit/pkg/tokenizer"
)

// Report is the full set of metrics for one document.
type Report = readability.Report

// EstimateSyllables returns the estimated syllable count of word.
// It is 0 for the empty string and at least 1 otherwise.
func EstimateSyllables(word string) int {
	return syllable.Estimate(word)
}

// CountWords counts whitespace-delimited words.
func CountWords(text string) int {
	return tokenizer.CountWords(text)
}

// CountSentences counts the sentences returned by SentenceList.
func CountSentences(text string) int {
	return sentencizer.Count(text)
}

// SentenceList splits text into sentences at ".", "!", "?" and newlines.
func SentenceList(text string) []string {
	return sentencizer.Split(text)
}

// CountTokens counts the tokens returned by TokenList.
func CountTokens(text string) int {
	return tokenizer.Count(text)
}

// TokenList splits text into words with punctuation split out.
func TokenList(text string) []string {
	return tokenizer.Split(text)
}

// FleschKincaidGradeLevel returns the Flesch-Kincaid grade level.
// Zero words or sentences produce a non-finite result.
func FleschKincaidGradeLevel(words, sentences, syllables float64) float64 {
	return readability.GradeLevel(words, sentences, syllables)
}

// FleschKincaidReadingEase returns the Flesch reading ease score.
// Zero words or sentences produce a non-finite result.
func FleschKincaidReadingEase(words, sentences, syllables float64) float64 {
	return readability.ReadingEase(words, sentences, syllables)
}

// defaultAnalyzer is built on first use so importing the package compiles
// no patterns.
var defaultAnalyzer = sync.OnceValue(func() *readability.Analyzer {
	return readability.New(readability.WithEstimator(syllable.Default()))
})

// Analyze returns every metric for text, with scores only when the text has
// at least one word and one sentence.
func Analyze(text string) Report {
	return defaultAnalyzer().Analyze(text)
}
