package browse

import (
	"context"
	"errors"
	"testing"

	"github.com/kasuboski/juststreamit/pkg/browse/mocks"
	"github.com/kasuboski/juststreamit/pkg/catalog"
	"github.com/kasuboski/juststreamit/pkg/pagination"
	"github.com/kasuboski/juststreamit/pkg/visibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func summaries(ids ...int) []catalog.MovieSummary {
	out := make([]catalog.MovieSummary, len(ids))
	for i, id := range ids {
		out[i] = catalog.MovieSummary{ID: id, Title: "movie"}
	}
	return out
}

func details(s []catalog.MovieSummary) []catalog.MovieDetail {
	out := make([]catalog.MovieDetail, len(s))
	for i, m := range s {
		out[i] = catalog.MovieDetail{ID: m.ID, Title: m.Title}
	}
	return out
}

func page(ids ...int) pagination.Page[catalog.MovieSummary] {
	return pagination.Page[catalog.MovieSummary]{Results: summaries(ids...), Count: len(ids)}
}

func TestNew_Defaults(t *testing.T) {
	b := New(nil, nil, Options{})
	opts := b.Options()
	assert.Equal(t, DefaultTopPageSize, opts.TopPageSize)
	assert.Equal(t, DefaultCategoryPageSize, opts.CategoryPageSize)
	assert.Equal(t, DefaultCategories, opts.Categories)

	b = New(nil, nil, Options{Categories: []string{}})
	assert.Empty(t, b.Options().Categories)
}

func TestBrowser_BestMovie(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches the first ranked title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cat := mocks.NewMockCatalog(ctrl)

		cat.EXPECT().ListTitles(ctx, catalog.BuildRankedQuery(1)).Return(page(42), nil)
		cat.EXPECT().GetTitle(ctx, 42).Return(catalog.MovieDetail{ID: 42, Title: "Best"}, nil)

		b := New(cat, mocks.NewMockDetailAggregator(ctrl), Options{})
		got, err := b.BestMovie(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Best", got.Title)
	})

	t.Run("empty catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cat := mocks.NewMockCatalog(ctrl)

		cat.EXPECT().ListTitles(ctx, gomock.Any()).Return(page(), nil)

		b := New(cat, mocks.NewMockDetailAggregator(ctrl), Options{})
		_, err := b.BestMovie(ctx)
		assert.ErrorIs(t, err, ErrNoResults)
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cat := mocks.NewMockCatalog(ctrl)

		boom := errors.New("boom")
		cat.EXPECT().ListTitles(ctx, gomock.Any()).Return(pagination.Page[catalog.MovieSummary]{}, boom)

		b := New(cat, mocks.NewMockDetailAggregator(ctrl), Options{})
		_, err := b.BestMovie(ctx)
		assert.ErrorIs(t, err, boom)
	})
}

func TestBrowser_Ranked(t *testing.T) {
	ctx := context.Background()

	t.Run("skips the best movie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cat := mocks.NewMockCatalog(ctrl)
		agg := mocks.NewMockDetailAggregator(ctrl)

		cat.EXPECT().ListTitles(ctx, catalog.BuildRankedQuery(7)).Return(page(1, 2, 3, 4, 5, 6, 7), nil)
		agg.EXPECT().AggregateDetails(ctx, summaries(2, 3, 4, 5, 6, 7)).DoAndReturn(
			func(_ context.Context, s []catalog.MovieSummary) ([]catalog.MovieDetail, error) {
				return details(s), nil
			})

		b := New(cat, agg, Options{})
		got, err := b.Ranked(ctx)
		require.NoError(t, err)
		require.Len(t, got, 6)
		for _, m := range got {
			assert.NotEqual(t, 1, m.ID)
		}
		assert.Equal(t, 2, got[0].ID)
		assert.Equal(t, 7, got[5].ID)
	})

	t.Run("short page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cat := mocks.NewMockCatalog(ctrl)
		agg := mocks.NewMockDetailAggregator(ctrl)

		cat.EXPECT().ListTitles(ctx, gomock.Any()).Return(page(), nil)
		agg.EXPECT().AggregateDetails(ctx, gomock.Len(0)).Return(nil, nil)

		b := New(cat, agg, Options{})
		got, err := b.Ranked(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("aggregate error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cat := mocks.NewMockCatalog(ctrl)
		agg := mocks.NewMockDetailAggregator(ctrl)

		boom := errors.New("boom")
		cat.EXPECT().ListTitles(ctx, gomock.Any()).Return(page(1, 2), nil)
		agg.EXPECT().AggregateDetails(ctx, gomock.Any()).Return(nil, boom)

		b := New(cat, agg, Options{})
		_, err := b.Ranked(ctx)
		assert.ErrorIs(t, err, boom)
	})
}

func TestBrowser_Category(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cat := mocks.NewMockCatalog(ctrl)
	agg := mocks.NewMockDetailAggregator(ctrl)

	cat.EXPECT().ListTitles(ctx, catalog.BuildGenreQuery("Crime", 6)).Return(page(10, 11), nil)
	agg.EXPECT().AggregateDetails(ctx, summaries(10, 11)).Return(details(summaries(10, 11)), nil)

	b := New(cat, agg, Options{})
	got, err := b.Category(ctx, "Crime")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBrowser_Home(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	cat := mocks.NewMockCatalog(ctrl)
	agg := mocks.NewMockDetailAggregator(ctrl)

	cat.EXPECT().ListTitles(gomock.Any(), catalog.BuildRankedQuery(1)).Return(page(1), nil)
	cat.EXPECT().GetTitle(gomock.Any(), 1).Return(catalog.MovieDetail{ID: 1, Title: "Best"}, nil)
	cat.EXPECT().ListTitles(gomock.Any(), catalog.BuildRankedQuery(7)).Return(page(1, 2, 3), nil)
	cat.EXPECT().ListTitles(gomock.Any(), catalog.BuildGenreQuery("Crime", 6)).Return(page(20, 21), nil)
	cat.EXPECT().ListTitles(gomock.Any(), catalog.BuildGenreQuery("Comedy", 6)).Return(pagination.Page[catalog.MovieSummary]{}, errors.New("comedy is down"))
	cat.EXPECT().ListGenres(gomock.Any()).Return(catalog.GenreList{"Action", "Drama"}, nil)
	cat.EXPECT().ListTitles(gomock.Any(), catalog.BuildGenreQuery("action", 6)).Return(page(30), nil)

	agg.EXPECT().AggregateDetails(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s []catalog.MovieSummary) ([]catalog.MovieDetail, error) {
			return details(s), nil
		}).Times(3)

	b := New(cat, agg, Options{})
	home := b.Home(ctx)

	require.False(t, home.Best.Failed())
	assert.Equal(t, "Best", home.Best.Movies[0].Title)

	require.False(t, home.Ranked.Failed())
	assert.Len(t, home.Ranked.Movies, 2)

	require.Len(t, home.Categories, 2)
	assert.Equal(t, CategoryKey("Crime"), home.Categories[0].Key)
	assert.Len(t, home.Categories[0].Movies, 2)
	assert.True(t, home.Categories[1].Failed())
	assert.Empty(t, home.Categories[1].Movies)
	assert.Equal(t, "Comedy", home.Categories[1].Genre)

	assert.Equal(t, catalog.GenreList{"Action", "Drama"}, home.Genres)
	assert.Equal(t, GenreKey, home.Selector.Key)
	assert.Equal(t, "action", home.Selector.Genre)
	assert.Len(t, home.Selector.Movies, 1)

	lists := home.Lists()
	require.Len(t, lists, 4)
	assert.Equal(t, RankedKey, lists[0].Key)
	assert.Equal(t, GenreKey, lists[3].Key)
}

func TestBrowser_Home_GenresFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	cat := mocks.NewMockCatalog(ctrl)
	agg := mocks.NewMockDetailAggregator(ctrl)

	cat.EXPECT().ListTitles(gomock.Any(), catalog.BuildRankedQuery(1)).Return(page(), nil)
	cat.EXPECT().ListTitles(gomock.Any(), catalog.BuildRankedQuery(7)).Return(page(), nil)
	cat.EXPECT().ListGenres(gomock.Any()).Return(nil, errors.New("genres down"))
	agg.EXPECT().AggregateDetails(gomock.Any(), gomock.Any()).Return(nil, nil)

	b := New(cat, agg, Options{Categories: []string{}})
	home := b.Home(context.Background())

	assert.ErrorIs(t, home.Best.Err, ErrNoResults)
	assert.False(t, home.Ranked.Failed())
	assert.True(t, home.Selector.Failed())
	assert.Empty(t, home.Categories)
}

func TestBrowser_SelectGenre(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cat := mocks.NewMockCatalog(ctrl)
	agg := mocks.NewMockDetailAggregator(ctrl)

	cat.EXPECT().ListTitles(gomock.Any(), catalog.BuildGenreQuery("sci-fi", 6)).Return(page(5), nil)
	agg.EXPECT().AggregateDetails(gomock.Any(), summaries(5)).Return(details(summaries(5)), nil)

	b := New(cat, agg, Options{})
	s := b.SelectGenre(ctx, "Sci-Fi")
	assert.False(t, s.Failed())
	assert.Equal(t, "sci-fi", s.Genre)
	assert.Equal(t, KindGenre, s.Kind)
}

func TestSection_MarshalJSON(t *testing.T) {
	s := Section{Key: "category:crime", Kind: KindCategory, Genre: "Crime", Err: errors.New("down")}
	b, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"category:crime","kind":"category","genre":"Crime","movies":[],"error":"down"}`, string(b))
}

func TestResolveGenre(t *testing.T) {
	genres := catalog.GenreList{"Action", "Comedy", "Sci-Fi", "Film-Noir"}

	tests := []struct {
		name    string
		query   string
		want    string
		wantErr bool
	}{
		{name: "exact", query: "Comedy", want: "Comedy"},
		{name: "case insensitive", query: "sci-fi", want: "Sci-Fi"},
		{name: "fuzzy", query: "noir", want: "Film-Noir"},
		{name: "no match", query: "zzz", wantErr: true},
		{name: "empty", query: "  ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveGenre(tt.query, genres)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPage_Attach(t *testing.T) {
	p := Page{
		Ranked: Section{Key: RankedKey, Movies: details(summaries(1, 2, 3, 4, 5, 6))},
		Categories: []Section{
			{Key: CategoryKey("Crime"), Movies: details(summaries(7, 8))},
			{Key: CategoryKey("Comedy"), Err: errors.New("down")},
		},
		Selector: Section{Key: GenreKey, Movies: details(summaries(9, 10, 11))},
	}

	board := visibility.NewBoard()
	board.Replace(CategoryKey("Comedy"), 6, 500)

	snaps := p.Attach(board, 500)
	assert.Len(t, snaps, 3)
	assert.Equal(t, visibility.Collapsed, snaps[RankedKey].State)
	assert.Equal(t, visibility.NotNeeded, snaps[CategoryKey("Crime")].State)
	assert.Equal(t, visibility.Collapsed, snaps[GenreKey].State)

	_, ok := board.Get(CategoryKey("Comedy"))
	assert.False(t, ok)
}

func TestBrowser_Title(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cat := mocks.NewMockCatalog(ctrl)

	cat.EXPECT().GetTitle(ctx, 9).Return(catalog.MovieDetail{ID: 9, Title: "Nine"}, nil)

	b := New(cat, mocks.NewMockDetailAggregator(ctrl), Options{})
	got, err := b.Title(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "Nine", got.Title)
}
