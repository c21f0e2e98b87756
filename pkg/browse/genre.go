package browse

import (
	"fmt"
	"strings"

	"github.com/kasuboski/juststreamit/pkg/catalog"
	"github.com/sahilm/fuzzy"
)

// ResolveGenre finds the genre a user meant. Exact matches ignore case, otherwise the best fuzzy match wins.
func ResolveGenre(query string, genres catalog.GenreList) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("genre is empty")
	}

	lower := make([]string, len(genres))
	for i, g := range genres {
		if strings.EqualFold(g, query) {
			return g, nil
		}
		lower[i] = strings.ToLower(g)
	}

	matches := fuzzy.Find(strings.ToLower(query), lower)
	if len(matches) == 0 {
		return "", fmt.Errorf("no genre matches %q", query)
	}

	return genres[matches[0].Index], nil
}
