package syllable

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
)

// Estimator estimates syllable counts for English words.
// It is safe for concurrent use.
type Estimator struct {
	table   *Table
	cache   *wordCache
	workers int
	batch   int
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithTable makes the estimator use t instead of the default table.
func WithTable(t *Table) Option {
	if t == nil {
		panic("WithTable: nil table")
	}
	return func(e *Estimator) { e.table = t }
}

// WithCache memoizes up to capacity distinct words.
func WithCache(capacity int) Option {
	if capacity <= 0 {
		panic("WithCache: capacity must be > 0")
	}
	return func(e *Estimator) { e.cache = newWordCache(capacity) }
}

// WithPatternWorkers spreads the pattern scan of a single word over n
// goroutines. Results are identical to the sequential scan.
func WithPatternWorkers(n int) Option {
	if n <= 0 {
		panic("WithPatternWorkers: n must be > 0")
	}
	return func(e *Estimator) { e.workers = n }
}

// WithBatchConcurrency limits how many words EstimateAll processes at once.
// Defaults to GOMAXPROCS.
func WithBatchConcurrency(n int) Option {
	if n <= 0 {
		panic("WithBatchConcurrency: n must be > 0")
	}
	return func(e *Estimator) { e.batch = n }
}

// New returns an Estimator backed by the default table unless WithTable is given.
func New(opts ...Option) *Estimator {
	e := &Estimator{workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	if e.table == nil {
		e.table = DefaultTable()
	}
	if e.batch == 0 {
		e.batch = runtime.GOMAXPROCS(0)
	}
	return e
}

// Estimate returns the estimated number of syllables in word.
// It returns 0 only for the empty string; any other input yields at least 1.
func (e *Estimator) Estimate(word string) int {
	if word == "" {
		return 0
	}

	folded := fold(word)
	if e.cache != nil {
		if n, ok := e.cache.get(folded); ok {
			return n
		}
	}

	n := e.estimate(folded)
	if e.cache != nil {
		e.cache.put(folded, n)
	}
	return n
}

// EstimateAll estimates every word concurrently and returns the counts in
// input order. It stops early when ctx is done.
func (e *Estimator) EstimateAll(ctx context.Context, words []string) ([]int, error) {
	counts := make([]int, len(words))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.batch)
	for i, w := range words {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			counts[i] = e.Estimate(w)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

func (e *Estimator) estimate(word string) int {
	baseline := e.table.Clusters(word)

	var t tally
	if e.workers > 1 {
		t = e.scanConcurrent(word)
	} else {
		t = e.table.scan(word, 0, 1)
	}

	if n := baseline + t.add - t.sub; n > 0 {
		return n
	}
	return 1
}

func (e *Estimator) scanConcurrent(word string) tally {
	parts := make([]tally, e.workers)

	var g errgroup.Group
	for shard := range e.workers {
		g.Go(func() error {
			parts[shard] = e.table.scan(word, shard, e.workers)
			return nil
		})
	}
	_ = g.Wait()

	var total tally
	for _, p := range parts {
		total.add += p.add
		total.sub += p.sub
	}
	return total
}

// A cases.Caser keeps internal state and must not be shared between
// goroutines, so folding borrows one from the pool.
var folders = sync.Pool{
	New: func() any {
		c := cases.Fold()
		return &c
	},
}

func fold(s string) string {
	c := folders.Get().(*cases.Caser)
	defer folders.Put(c)
	return c.String(s)
}

var defaultEstimator = sync.OnceValue(func() *Estimator {
	return New()
})

// Default returns the shared estimator over the default table. It is built
// on first call.
func Default() *Estimator {
	return defaultEstimator()
}

// Estimate estimates syllables with the Default estimator.
func Estimate(word string) int {
	return defaultEstimator().Estimate(word)
}
