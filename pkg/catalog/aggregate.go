package catalog

import (
	"context"
	"fmt"

	"github.com/kasuboski/juststreamit/pkg/cache"
	"github.com/kasuboski/juststreamit/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// DetailFetcher loads the full record of a title
type DetailFetcher interface {
	GetTitle(ctx context.Context, id int) (MovieDetail, error)
}

// Aggregator turns list summaries into full records
type Aggregator struct {
	fetcher     DetailFetcher
	memo        *cache.Cache[int, MovieDetail]
	concurrency int
}

// AggregatorOption configures an Aggregator
type AggregatorOption func(*Aggregator)

// WithMemo reuses details already fetched by another section
func WithMemo(memo *cache.Cache[int, MovieDetail]) AggregatorOption {
	return func(a *Aggregator) {
		a.memo = memo
	}
}

// WithConcurrency bounds in flight detail requests. Zero or less means unbounded.
func WithConcurrency(n int) AggregatorOption {
	return func(a *Aggregator) {
		a.concurrency = n
	}
}

func NewAggregator(fetcher DetailFetcher, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{fetcher: fetcher}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AggregateDetails fetches every summary's detail concurrently.
// The result at position i belongs to summaries[i]. A repeated id is fetched once.
// The first failure is returned and no partial list is produced; requests still in flight are cancelled.
func (a *Aggregator) AggregateDetails(ctx context.Context, summaries []MovieSummary) ([]MovieDetail, error) {
	log := logger.FromCtx(ctx)

	position := make(map[int]int, len(summaries))
	ids := make([]int, 0, len(summaries))
	for _, s := range summaries {
		if _, ok := position[s.ID]; ok {
			continue
		}
		position[s.ID] = len(ids)
		ids = append(ids, s.ID)
	}

	details := make([]MovieDetail, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	if a.concurrency > 0 {
		g.SetLimit(a.concurrency)
	}

	for i, id := range ids {
		if a.memo != nil {
			if d, ok := a.memo.Get(id); ok {
				details[i] = d
				continue
			}
		}

		g.Go(func() error {
			d, err := a.fetcher.GetTitle(gctx, id)
			if err != nil {
				return fmt.Errorf("title %d: %w", id, err)
			}

			details[i] = d
			if a.memo != nil {
				a.memo.Set(id, d)
			}
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		log.Debugw("aggregation failed", "count", len(summaries), "error", err)
		return nil, err
	}

	out := make([]MovieDetail, len(summaries))
	for i, s := range summaries {
		out[i] = details[position[s.ID]]
	}

	return out, nil
}
