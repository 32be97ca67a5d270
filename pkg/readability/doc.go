// Package readability computes Flesch-Kincaid readability scores.
//
// GradeLevel and ReadingEase are the closed-form formulas over word,
// sentence and syllable counts. They do not guard against zero counts.
//
// Analyzer produces a full Report for a document, wiring together the
// tokenizer, sentencizer and syllable packages:
//
//	a := readability.New(readability.WithSentenceList())
//	r := a.Analyze("The cat sat on the mat. It was happy.")
//	if r.Scored {
//		fmt.Printf("grade %.1f, ease %.1f\n", r.GradeLevel, r.ReadingEase)
//	}
//
// AnalyzeAll processes many documents concurrently and honors context
// cancellation.
package readability
