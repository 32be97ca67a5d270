package syllable_test

import (
	"context"
	"testing"

	"github.com/dmitrymomot/readkit/pkg/syllable"
)

var benchWords = []string{"Apple", "Tart", "plate", "Pontificate", "Hello", "juxtaposition", "onomatopoeia"}

func BenchmarkEstimate(b *testing.B) {
	est := syllable.New()
	for _, w := range benchWords {
		b.Run(w, func(b *testing.B) {
			for b.Loop() {
				_ = est.Estimate(w)
			}
		})
	}
}

func BenchmarkEstimate_Cached(b *testing.B) {
	est := syllable.New(syllable.WithCache(64))
	for b.Loop() {
		for _, w := range benchWords {
			_ = est.Estimate(w)
		}
	}
}

func BenchmarkEstimate_PatternWorkers(b *testing.B) {
	est := syllable.New(syllable.WithPatternWorkers(4))
	for b.Loop() {
		_ = est.Estimate("juxtaposition")
	}
}

func BenchmarkEstimateAll(b *testing.B) {
	est := syllable.New()
	words := make([]string, 0, 700)
	for range 100 {
		words = append(words, benchWords...)
	}
	ctx := context.Background()

	b.ResetTimer()
	for b.Loop() {
		_, _ = est.EstimateAll(ctx, words)
	}
}
