package readkit_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/readkit"
)

func TestEstimateSyllables(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, readkit.EstimateSyllables(""))
	assert.Equal(t, 2, readkit.EstimateSyllables("Apple"))
	assert.Equal(t, 1, readkit.EstimateSyllables("Tart"))
	assert.Equal(t, 4, readkit.EstimateSyllables("Pontificate"))

	for _, w := range []string{"apple", "tart", "pontificate", "juxtaposition", "mcdonald", "rhythm"} {
		assert.Equal(t, readkit.EstimateSyllables(w), readkit.EstimateSyllables(strings.ToUpper(w)), "word %q", w)
		assert.GreaterOrEqual(t, readkit.EstimateSyllables(w), 1, "word %q", w)
	}
}

func TestCountWords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, readkit.CountWords("Hello, world! This is a test."))
	assert.Equal(t, 6, readkit.CountWords("Hello, world! This is a test.  \n"))
	assert.Equal(t, 1, readkit.CountWords("hyper-mode"))
}

func TestTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, readkit.CountTokens("Hello, world!"))
	assert.Equal(t, []string{"Hello", ",", "world", "!"}, readkit.TokenList("Hello, world!"))

	in := "Hello, world! This is a test."
	rejoined := strings.Join(readkit.TokenList(in), " ")
	assert.Equal(t, readkit.CountTokens(in), readkit.CountTokens(rejoined))
}

func TestSentences(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Hello, world!", "This is a test."}, readkit.SentenceList("Hello, world! This is a test."))
	assert.Equal(t, []string{"Hello, world!", "This can't be a test."}, readkit.SentenceList("Hello, world!\nThis can't be a test.  \n"))
	assert.Equal(t, 2, readkit.CountSentences("Hello, world! This is a test."))
}

func TestFleschKincaid(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.39*3+11.8*(7.0/6.0)-15.59, readkit.FleschKincaidGradeLevel(6, 2, 7), 1e-9)
	assert.InDelta(t, 206.835-1.015*3-84.6*(7.0/6.0), readkit.FleschKincaidReadingEase(6, 2, 7), 1e-9)
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	r := readkit.Analyze("Hello, world! This is a test.")
	assert.Equal(t, 6, r.Words)
	assert.Equal(t, 2, r.Sentences)
	assert.Equal(t, 9, r.Tokens)
	assert.Equal(t, 7, r.Syllables)
	assert.True(t, r.Scored)
	assert.InDelta(t, readkit.FleschKincaidGradeLevel(6, 2, 7), r.GradeLevel, 1e-9)

	assert.False(t, readkit.Analyze("").Scored)
}

func TestAnalyze_ConcurrentCalls(t *testing.T) {
	t.Parallel()

	want := readkit.Analyze("One. Two words here!")
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, readkit.Analyze("One. Two words here!"))
		}()
	}
	wg.Wait()
}
