package browse

import (
	"encoding/json"

	"github.com/kasuboski/juststreamit/pkg/catalog"
	"github.com/kasuboski/juststreamit/pkg/visibility"
)

type Kind string

const (
	KindBest     Kind = "best"
	KindRanked   Kind = "ranked"
	KindCategory Kind = "category"
	KindGenre    Kind = "genre"
)

const (
	BestKey   = "best"
	RankedKey = "ranked"
	GenreKey  = "genre"
)

// CategoryKey identifies a fixed category section
func CategoryKey(genre string) string {
	return "category:" + GenreValue(genre)
}

// Section is one block of the home page. A failed section keeps its error and no movies.
type Section struct {
	Key    string                `json:"key"`
	Kind   Kind                  `json:"kind"`
	Genre  string                `json:"genre,omitempty"`
	Movies []catalog.MovieDetail `json:"movies"`
	Err    error                 `json:"-"`
}

func (s Section) Failed() bool {
	return s.Err != nil
}

func (s Section) MarshalJSON() ([]byte, error) {
	type section Section
	out := struct {
		section
		Error string `json:"error,omitempty"`
	}{section: section(s)}
	if s.Err != nil {
		out.Error = s.Err.Error()
	}
	if out.Movies == nil {
		out.Movies = []catalog.MovieDetail{}
	}
	return json.Marshal(out)
}

// Page is the loaded home page
type Page struct {
	Best       Section           `json:"best"`
	Ranked     Section           `json:"ranked"`
	Categories []Section         `json:"categories"`
	Genres     catalog.GenreList `json:"genres"`
	Selector   Section           `json:"selector"`
}

// Lists returns the sections rendered as grids, in display order
func (p Page) Lists() []Section {
	lists := make([]Section, 0, len(p.Categories)+2)
	lists = append(lists, p.Ranked)
	lists = append(lists, p.Categories...)
	lists = append(lists, p.Selector)
	return lists
}

// Attach starts a visibility list for every grid of the page, replacing any previous one.
// Failed sections have nothing rendered so their list is dropped.
func (p Page) Attach(board *visibility.Board, width int) map[string]visibility.Snapshot {
	out := make(map[string]visibility.Snapshot)
	for _, s := range p.Lists() {
		if s.Failed() {
			board.Remove(s.Key)
			continue
		}
		out[s.Key] = board.Replace(s.Key, len(s.Movies), width)
	}
	return out
}
