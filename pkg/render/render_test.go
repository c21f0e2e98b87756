package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/kasuboski/juststreamit/pkg/browse"
	"github.com/kasuboski/juststreamit/pkg/catalog"
	"github.com/kasuboski/juststreamit/pkg/visibility"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func movies(titles ...string) []catalog.MovieDetail {
	out := make([]catalog.MovieDetail, len(titles))
	for i, t := range titles {
		out[i] = catalog.MovieDetail{ID: i + 1, Title: t, Year: 2000 + i}
	}
	return out
}

func TestRatedLabel(t *testing.T) {
	assert.Equal(t, UnknownRated, RatedLabel("Not rated or unkown rating"))
	assert.Equal(t, UnknownRated, RatedLabel("NOT RATED"))
	assert.Equal(t, UnknownRated, RatedLabel(""))
	assert.Equal(t, "PG: 13", RatedLabel("13"))
}

func TestScoreLabel(t *testing.T) {
	assert.Equal(t, Unscored, ScoreLabel(0))
	assert.Equal(t, "8.4", ScoreLabel(8.4))
}

func TestGrossLabel(t *testing.T) {
	assert.Equal(t, UnknownGross, GrossLabel(nil))
	assert.Equal(t, UnknownGross, GrossLabel(ptr[int64](0)))
	assert.Equal(t, "1,234,567 dollars", GrossLabel(ptr[int64](1234567)))
}

func TestDirectorsLabel(t *testing.T) {
	assert.Equal(t, UnknownDirector, DirectorsLabel(nil))
	assert.Equal(t, "Joel Coen, Ethan Coen", DirectorsLabel([]string{"Joel Coen", "Ethan Coen"}))
}

func TestSectionTitle(t *testing.T) {
	assert.Equal(t, RankedTitle, SectionTitle(browse.Section{Kind: browse.KindRanked}))
	assert.Equal(t, BestTitle, SectionTitle(browse.Section{Kind: browse.KindBest}))
	assert.Equal(t, "Crime", SectionTitle(browse.Section{Kind: browse.KindGenre, Genre: "crime"}))
}

func TestModalFields(t *testing.T) {
	d := catalog.MovieDetail{
		ID:                   1,
		Title:                "The Shawshank Redemption",
		Year:                 1994,
		Genres:               []string{"Drama"},
		Rated:                "Not rated or unkown rating",
		Duration:             142,
		Countries:            []string{"USA"},
		IMDBScore:            9.3,
		WorldwideGrossIncome: ptr[int64](28884504),
		Directors:            []string{"Frank Darabont"},
		Actors:               []string{"Tim Robbins", "Morgan Freeman"},
	}

	snaps.MatchSnapshot(t, ModalFields(d))
}

func TestModal(t *testing.T) {
	d := catalog.MovieDetail{Title: "Unknown", LongDescription: "A long story."}
	out := Modal(d, 0)

	assert.Contains(t, out, "Unknown")
	assert.Contains(t, out, Unscored)
	assert.Contains(t, out, UnknownGross)
	assert.Contains(t, out, UnknownDirector)
	assert.Contains(t, out, "A long story.")
}

func TestSection(t *testing.T) {
	s := browse.Section{Key: browse.RankedKey, Kind: browse.KindRanked, Movies: movies("a", "b", "c", "d")}

	t.Run("collapsed hides past the threshold", func(t *testing.T) {
		snap := visibility.New(4, 500).Snapshot()
		out := Section(s, snap, -1)

		assert.Contains(t, out, "a (2000)")
		assert.Contains(t, out, "b (2001)")
		assert.NotContains(t, out, "c (2002)")
		assert.NotContains(t, out, "d (2003)")
		assert.Contains(t, out, "2 de plus")
		assert.Contains(t, out, visibility.LabelMore)
	})

	t.Run("expanded shows everything", func(t *testing.T) {
		l := visibility.New(4, 500)
		_, err := l.Toggle()
		assert.NoError(t, err)
		out := Section(s, l.Snapshot(), -1)

		assert.Contains(t, out, "d (2003)")
		assert.Contains(t, out, visibility.LabelLess)
		assert.NotContains(t, out, "de plus")
	})

	t.Run("no control", func(t *testing.T) {
		out := Section(s, visibility.New(4, 1280).Snapshot(), -1)

		assert.Contains(t, out, "d (2003)")
		assert.NotContains(t, out, visibility.LabelMore)
	})

	t.Run("zero snapshot shows every movie", func(t *testing.T) {
		out := Section(s, visibility.Snapshot{}, -1)
		assert.Contains(t, out, "d (2003)")
	})

	t.Run("failed section shows only its heading", func(t *testing.T) {
		err := errors.New("request to http://x failed: boom")
		out := Section(browse.Section{Kind: browse.KindRanked, Err: err}, visibility.Snapshot{}, -1)
		assert.Contains(t, out, RankedTitle)
		assert.NotContains(t, out, "boom")
		assert.NotContains(t, out, "Erreur")
		assert.NotContains(t, out, NoMovies)
		assert.Equal(t, 1, len(strings.Split(strings.TrimSpace(out), "\n")))
	})

	t.Run("empty", func(t *testing.T) {
		out := Section(browse.Section{Kind: browse.KindCategory, Genre: "Comedy"}, visibility.Snapshot{}, -1)
		assert.Contains(t, out, NoMovies)
	})
}

func TestBest(t *testing.T) {
	s := browse.Section{Kind: browse.KindBest, Movies: []catalog.MovieDetail{{Title: "Top", IMDBScore: 9.1}}}
	out := Best(s, false)

	assert.Contains(t, out, BestTitle)
	assert.Contains(t, out, "Top")
	assert.Contains(t, out, NoSummary)
	assert.Contains(t, out, "9.1")
}

func TestBest_Failed(t *testing.T) {
	s := browse.Section{Kind: browse.KindBest, Err: errors.New("request to http://x failed: boom")}
	out := Best(s, false)

	assert.Contains(t, out, BestTitle)
	assert.NotContains(t, out, "boom")
	assert.NotContains(t, out, NoMovies)
}

func TestPage(t *testing.T) {
	p := browse.Page{
		Best:   browse.Section{Kind: browse.KindBest, Movies: movies("best")},
		Ranked: browse.Section{Key: browse.RankedKey, Kind: browse.KindRanked, Movies: movies("a", "b", "c")},
		Categories: []browse.Section{
			{Key: browse.CategoryKey("Crime"), Kind: browse.KindCategory, Genre: "Crime", Movies: movies("x")},
		},
		Selector: browse.Section{Key: browse.GenreKey, Kind: browse.KindGenre, Genre: "action"},
	}
	board := visibility.NewBoard()
	p.Attach(board, 500)

	out := Page(p, board)
	lines := strings.Split(out, "\n")

	assert.Contains(t, out, RankedTitle)
	assert.Contains(t, out, "Crime")
	assert.Contains(t, out, "Action")
	assert.NotContains(t, out, "c (2002)")
	assert.Greater(t, len(lines), 8)
}
