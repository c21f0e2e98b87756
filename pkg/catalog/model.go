package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MovieSummary is the minimal record list queries return
type MovieSummary struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

// MovieDetail is the full record for a single title
type MovieDetail struct {
	ID                   int      `json:"id"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	LongDescription      string   `json:"long_description"`
	ImageURL             string   `json:"image_url"`
	Year                 int      `json:"year"`
	Genres               []string `json:"genres"`
	Rated                string   `json:"rated"`
	Duration             int      `json:"duration"`
	Countries            []string `json:"countries"`
	IMDBScore            Score    `json:"imdb_score"`
	WorldwideGrossIncome *int64   `json:"worldwide_gross_income"`
	Directors            []string `json:"directors"`
	Actors               []string `json:"actors"`
}

// Summary returns the list view of the detail
func (d MovieDetail) Summary() MovieSummary {
	return MovieSummary{ID: d.ID, Title: d.Title, ImageURL: d.ImageURL}
}

// GenreList holds genre names in the order the catalog paged them
type GenreList []string

// Score is an imdb score. The catalog serves it as a decimal string, though numbers are accepted too.
// Zero means the title has no score.
type Score float64

func (s *Score) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = 0
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		if str == "" {
			*s = 0
			return nil
		}
		b = []byte(str)
	}

	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid score %q: %w", b, err)
	}
	*s = Score(f)
	return nil
}

func (s Score) MarshalJSON() ([]byte, error) {
	if s == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(s.String())
}

// String formats the score with one decimal like the catalog does
func (s Score) String() string {
	return strconv.FormatFloat(float64(s), 'f', 1, 64)
}
