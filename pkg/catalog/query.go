package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	sortByParam   = "sort_by"
	pageSizeParam = "page_size"
	genreParam    = "genre"
)

// RankedSort orders by descending imdb score, then descending votes. A leading - means descending.
var RankedSort = []string{"-imdb_score", "-votes"}

// QueryParams describes a titles list request
type QueryParams struct {
	SortBy   []string
	PageSize int
	Genre    string
}

// BuildRankedQuery asks for the best scored titles
func BuildRankedQuery(pageSize int) QueryParams {
	return QueryParams{
		SortBy:   append([]string(nil), RankedSort...),
		PageSize: pageSize,
	}
}

// BuildGenreQuery asks for the best scored titles of a genre
func BuildGenreQuery(genre string, pageSize int) QueryParams {
	q := BuildRankedQuery(pageSize)
	q.Genre = genre
	return q
}

// Values returns the query as url values. Empty fields are left out.
func (q QueryParams) Values() url.Values {
	v := url.Values{}
	if len(q.SortBy) > 0 {
		v.Set(sortByParam, strings.Join(q.SortBy, ","))
	}
	if q.PageSize > 0 {
		v.Set(pageSizeParam, strconv.Itoa(q.PageSize))
	}
	if q.Genre != "" {
		v.Set(genreParam, q.Genre)
	}
	return v
}

// Encode serializes the query with keys in sorted order
func (q QueryParams) Encode() string {
	return q.Values().Encode()
}

func trimBase(baseURL string) string {
	return strings.TrimRight(baseURL, "/")
}

// TitlesURL is the list endpoint for q
func TitlesURL(baseURL string, q QueryParams) string {
	u := trimBase(baseURL) + "/titles/"
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// BuildDetailURL is the single title endpoint
func BuildDetailURL(baseURL string, id int) string {
	return trimBase(baseURL) + "/titles/" + strconv.Itoa(id)
}

// GenresURL is the first page of the genre listing
func GenresURL(baseURL string) string {
	return trimBase(baseURL) + "/genres/"
}
