// Package syllable estimates the number of syllables in English words without
// a dictionary or a statistical model.
//
// The estimate starts from the number of vowel clusters in the word (maximal
// runs of a, e, i, o, u and y) and is then corrected by two curated pattern
// sets:
//
//   - addition patterns, such as "tion" or a silent-looking "-ate", each add one
//     syllable when they match. Vowel clusters inside the matched text are
//     subtracted again because the baseline already counted them.
//   - subtraction patterns, such as "ia" or a leading "mc", each remove one
//     syllable when they match.
//
// Every pattern contributes independently; the order in which patterns are
// evaluated never changes the result. A non-empty word always has at least one
// syllable and the empty string has zero.
//
// # Usage
//
//	n := syllable.Estimate("Pontificate") // 4
//
// Estimators are cheap to create and share a compiled Table by reference:
//
//	est := syllable.New(
//		syllable.WithCache(4096),
//		syllable.WithPatternWorkers(4),
//	)
//	counts, err := est.EstimateAll(ctx, words)
//
// Custom tables extend or replace the built-in patterns:
//
//	table, err := syllable.NewTable(syllable.WithAdditionPatterns(`.ique$`))
//	if errors.Is(err, syllable.ErrInvalidPattern) {
//		// handle the bad pattern
//	}
//	est := syllable.New(syllable.WithTable(table))
//
// # Concurrency
//
// Tables are immutable after construction. DefaultTable is compiled lazily
// and exactly once. Estimator methods may be called from many goroutines.
package syllable
