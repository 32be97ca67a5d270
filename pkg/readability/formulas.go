package readability

// GradeLevel returns the Flesch-Kincaid grade level:
//
//	0.39*(words/sentences) + 11.8*(syllables/words) - 15.59
//
// Zero words or sentences yield NaN or ±Inf; callers must guard.
func GradeLevel(words, sentences, syllables float64) float64 {
	return 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59
}

// ReadingEase returns the Flesch reading ease score:
//
//	206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
//
// Zero words or sentences yield NaN or ±Inf; callers must guard.
func ReadingEase(words, sentences, syllables float64) float64 {
	return 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
}
