package readability

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/readkit/pkg/sentencizer"
	"github.com/dmitrymomot/readkit/pkg/syllable"
	"github.com/dmitrymomot/readkit/pkg/tokenizer"
)

// Report holds the metrics of one document.
type Report struct {
	Words     int `json:"words"`
	Sentences int `json:"sentences"`
	Tokens    int `json:"tokens"`
	Syllables int `json:"syllables"`

	// Scored is false when the text has no words or no sentences; both
	// scores are then zero.
	Scored      bool    `json:"scored"`
	GradeLevel  float64 `json:"grade_level"`
	ReadingEase float64 `json:"reading_ease"`

	// SentenceList is filled only when the analyzer was built with
	// WithSentenceList.
	SentenceList []string `json:"sentence_list,omitempty"`
}

// Analyzer computes document reports. It is safe for concurrent use.
type Analyzer struct {
	estimator     *syllable.Estimator
	concurrency   int
	maxDocuments  int
	sentenceLists bool
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithEstimator sets the syllable estimator. Defaults to syllable.New().
func WithEstimator(e *syllable.Estimator) Option {
	if e == nil {
		panic("WithEstimator: nil estimator")
	}
	return func(a *Analyzer) { a.estimator = e }
}

// WithConcurrency limits how many documents AnalyzeAll processes at once.
// Defaults to GOMAXPROCS.
func WithConcurrency(n int) Option {
	if n <= 0 {
		panic("WithConcurrency: n must be > 0")
	}
	return func(a *Analyzer) { a.concurrency = n }
}

// WithMaxDocuments rejects AnalyzeAll batches larger than n.
func WithMaxDocuments(n int) Option {
	if n <= 0 {
		panic("WithMaxDocuments: n must be > 0")
	}
	return func(a *Analyzer) { a.maxDocuments = n }
}

// WithSentenceList includes the split sentences in every report.
func WithSentenceList() Option {
	return func(a *Analyzer) { a.sentenceLists = true }
}

// New returns an Analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	if a.estimator == nil {
		a.estimator = syllable.New()
	}
	if a.concurrency == 0 {
		a.concurrency = runtime.GOMAXPROCS(0)
	}
	return a
}

// Analyze counts words, sentences, tokens and syllables in text and derives
// both Flesch-Kincaid scores from them.
//
// Syllables are estimated per word after trimming leading and trailing
// runes that are neither letters nor digits, so "world!" counts as "world".
func (a *Analyzer) Analyze(text string) Report {
	sentences := sentencizer.Split(text)
	words := tokenizer.Words(text)

	r := Report{
		Words:     len(words),
		Sentences: len(sentences),
		Tokens:    tokenizer.Count(text),
	}
	for _, w := range words {
		if core := strings.TrimFunc(w, isNotAlnum); core != "" {
			r.Syllables += a.estimator.Estimate(core)
		}
	}

	if r.Words > 0 && r.Sentences > 0 {
		w, s, syl := float64(r.Words), float64(r.Sentences), float64(r.Syllables)
		r.Scored = true
		r.GradeLevel = GradeLevel(w, s, syl)
		r.ReadingEase = ReadingEase(w, s, syl)
	}
	if a.sentenceLists {
		r.SentenceList = sentences
	}
	return r
}

// AnalyzeAll analyzes texts concurrently and returns reports in input order.
// It stops early when ctx is done.
func (a *Analyzer) AnalyzeAll(ctx context.Context, texts []string) ([]Report, error) {
	if a.maxDocuments > 0 && len(texts) > a.maxDocuments {
		return nil, fmt.Errorf("%w: got %d, limit %d", ErrTooManyDocuments, len(texts), a.maxDocuments)
	}

	reports := make([]Report, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = a.Analyze(text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func isNotAlnum(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
