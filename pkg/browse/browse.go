package browse

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/kasuboski/juststreamit/pkg/catalog"
	"github.com/kasuboski/juststreamit/pkg/logger"
	"github.com/kasuboski/juststreamit/pkg/pagination"
	"go.uber.org/zap"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_browse.go github.com/kasuboski/juststreamit/pkg/browse Catalog,DetailAggregator

const (
	DefaultTopPageSize      = 7
	DefaultCategoryPageSize = 6
)

var DefaultCategories = []string{"Crime", "Comedy"}

var ErrNoResults = errors.New("no results")

// Catalog is the subset of the catalog api the home page reads
type Catalog interface {
	ListTitles(ctx context.Context, q catalog.QueryParams) (pagination.Page[catalog.MovieSummary], error)
	GetTitle(ctx context.Context, id int) (catalog.MovieDetail, error)
	ListGenres(ctx context.Context) (catalog.GenreList, error)
}

// DetailAggregator resolves summaries into full records in input order
type DetailAggregator interface {
	AggregateDetails(ctx context.Context, summaries []catalog.MovieSummary) ([]catalog.MovieDetail, error)
}

type Options struct {
	TopPageSize      int
	CategoryPageSize int
	Categories       []string
}

// Browser loads the sections of the home page
type Browser struct {
	catalog    Catalog
	aggregator DetailAggregator
	opts       Options
}

func New(c Catalog, aggregator DetailAggregator, opts Options) Browser {
	if opts.TopPageSize <= 0 {
		opts.TopPageSize = DefaultTopPageSize
	}
	if opts.CategoryPageSize <= 0 {
		opts.CategoryPageSize = DefaultCategoryPageSize
	}
	if opts.Categories == nil {
		opts.Categories = DefaultCategories
	}

	return Browser{
		catalog:    c,
		aggregator: aggregator,
		opts:       opts,
	}
}

func (b Browser) Options() Options {
	return b.opts
}

// BestMovie is the full record of the best ranked title
func (b Browser) BestMovie(ctx context.Context) (catalog.MovieDetail, error) {
	page, err := b.catalog.ListTitles(ctx, catalog.BuildRankedQuery(1))
	if err != nil {
		return catalog.MovieDetail{}, err
	}

	if len(page.Results) == 0 {
		return catalog.MovieDetail{}, ErrNoResults
	}

	return b.catalog.GetTitle(ctx, page.Results[0].ID)
}

// Ranked lists the best ranked titles after the first one, which is shown as the best movie
func (b Browser) Ranked(ctx context.Context) ([]catalog.MovieDetail, error) {
	page, err := b.catalog.ListTitles(ctx, catalog.BuildRankedQuery(b.opts.TopPageSize))
	if err != nil {
		return nil, err
	}

	rest := page.Results
	if len(rest) > 0 {
		rest = rest[1:]
	}

	return b.aggregator.AggregateDetails(ctx, rest)
}

// Category lists the best ranked titles of a genre
func (b Browser) Category(ctx context.Context, genre string) ([]catalog.MovieDetail, error) {
	page, err := b.catalog.ListTitles(ctx, catalog.BuildGenreQuery(genre, b.opts.CategoryPageSize))
	if err != nil {
		return nil, err
	}

	return b.aggregator.AggregateDetails(ctx, page.Results)
}

// Genres lists every genre the catalog knows
func (b Browser) Genres(ctx context.Context) (catalog.GenreList, error) {
	return b.catalog.ListGenres(ctx)
}

// Title is the full record of one title
func (b Browser) Title(ctx context.Context, id int) (catalog.MovieDetail, error) {
	return b.catalog.GetTitle(ctx, id)
}

// GenreValue is the form a genre is queried with
func GenreValue(genre string) string {
	return strings.ToLower(genre)
}

// Home loads every section concurrently. A failing section is logged and
// recorded on the section without affecting the others.
func (b Browser) Home(ctx context.Context) Page {
	log := logger.FromCtx(ctx)

	var page Page
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		page.Best = Section{Key: BestKey, Kind: KindBest}
		best, err := b.BestMovie(ctx)
		if err != nil {
			log.Error("failed to display best movie", zap.Error(err))
			page.Best.Err = err
			return
		}
		page.Best.Movies = []catalog.MovieDetail{best}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		page.Ranked = b.loadSection(ctx, RankedKey, KindRanked, "", b.Ranked)
	}()

	page.Categories = make([]Section, len(b.opts.Categories))
	for i, genre := range b.opts.Categories {
		wg.Add(1)
		go func() {
			defer wg.Done()
			page.Categories[i] = b.loadSection(ctx, CategoryKey(genre), KindCategory, genre, func(ctx context.Context) ([]catalog.MovieDetail, error) {
				return b.Category(ctx, genre)
			})
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		page.Selector = Section{Key: GenreKey, Kind: KindGenre}
		genres, err := b.Genres(ctx)
		if err != nil {
			log.Error("failed to fetch genres", zap.Error(err))
			page.Selector.Err = err
			return
		}
		page.Genres = genres
		if len(genres) == 0 {
			return
		}

		page.Selector = b.SelectGenre(ctx, genres[0])
	}()

	wg.Wait()
	return page
}

// SelectGenre loads the genre selector grid for genre
func (b Browser) SelectGenre(ctx context.Context, genre string) Section {
	value := GenreValue(genre)
	return b.loadSection(ctx, GenreKey, KindGenre, value, func(ctx context.Context) ([]catalog.MovieDetail, error) {
		return b.Category(ctx, value)
	})
}

func (b Browser) loadSection(ctx context.Context, key string, kind Kind, genre string, load func(context.Context) ([]catalog.MovieDetail, error)) Section {
	log := logger.FromCtx(ctx, "section", key)
	s := Section{Key: key, Kind: kind, Genre: genre}

	movies, err := load(ctx)
	if err != nil {
		log.Error("failed to display category", zap.String("genre", genre), zap.Error(err))
		s.Err = err
		return s
	}

	s.Movies = movies
	return s
}
