package pagination

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// ErrCyclicPage is returned when a next link points at a page that was already visited
var ErrCyclicPage = errors.New("pagination: next link revisits a page")

// Page is the envelope the catalog wraps list results in
type Page[T any] struct {
	Results  []T     `json:"results"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Count    int     `json:"count"`
}

// HasNext reports whether the page links to another one
func (p Page[T]) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// FetchFunc loads the page at rawURL
type FetchFunc[T any] func(ctx context.Context, rawURL string) (Page[T], error)

// Collect follows next links from start and returns every page's results in page order.
// It stops after the first page without a next link.
// Relative next links are resolved against the page that returned them.
func Collect[T any](ctx context.Context, start string, fetch FetchFunc[T]) ([]T, error) {
	visited := make(map[string]struct{})
	results := make([]T, 0)

	current := start
	for {
		key, err := normalize(current)
		if err != nil {
			return nil, fmt.Errorf("invalid page url %q: %w", current, err)
		}
		if _, ok := visited[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrCyclicPage, current)
		}
		visited[key] = struct{}{}

		page, err := fetch(ctx, current)
		if err != nil {
			return nil, err
		}
		results = append(results, page.Results...)

		if !page.HasNext() {
			return results, nil
		}

		next, err := resolve(current, *page.Next)
		if err != nil {
			return nil, fmt.Errorf("invalid next link %q: %w", *page.Next, err)
		}
		current = next
	}
}

func resolve(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return b.ResolveReference(r).String(), nil
}

// normalize makes equivalent urls compare equal regardless of query ordering
func normalize(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	u.RawQuery = u.Query().Encode()
	u.Fragment = ""
	return u.String(), nil
}
