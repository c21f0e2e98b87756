package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	mhttp "github.com/kasuboski/juststreamit/pkg/http"
	"github.com/kasuboski/juststreamit/pkg/logger"
	"github.com/kasuboski/juststreamit/pkg/pagination"
	"go.uber.org/zap"
)

// Client reads the movie catalog api
type Client struct {
	http    mhttp.HTTPClient
	baseURL string
}

// New creates a catalog client rooted at baseURL, e.g. http://localhost:8000/api/v1
func New(http mhttp.HTTPClient, baseURL string) (*Client, error) {
	if http == nil {
		return nil, errors.New("http client is nil")
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("catalog url must be absolute: %q", baseURL)
	}

	return &Client{
		http:    http,
		baseURL: trimBase(u.String()),
	}, nil
}

// BaseURL returns the root the client builds endpoints from
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch GETs an absolute url and returns the json body.
// Failures are returned as *NetworkError, *HTTPStatusError or *DecodeError.
func (c *Client) Fetch(ctx context.Context, rawURL string) (json.RawMessage, error) {
	log := logger.FromCtx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	log.Debugw("catalog fetch", "url", rawURL)

	resp, err := c.http.Do(req)
	if err != nil {
		if resp == nil {
			return nil, &NetworkError{URL: rawURL, Err: err}
		}
		// the catalog answered, retries just ran out
		if resp.Body != nil {
			resp.Body.Close()
		}
		log.Debug("catalog gave up retrying", zap.String("url", rawURL), zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, &HTTPStatusError{URL: rawURL, Status: resp.StatusCode}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Debug("catalog status not ok", zap.String("url", rawURL), zap.Int("status", resp.StatusCode))
		return nil, &HTTPStatusError{URL: rawURL, Status: resp.StatusCode}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Err: err}
	}

	if !json.Valid(b) {
		return nil, &DecodeError{URL: rawURL, Err: errors.New("body is not valid json")}
	}

	return json.RawMessage(b), nil
}

// FetchAllPages follows next links from startURL and returns every page's results in order.
// A next link that revisits a page is reported as a *DecodeError.
func (c *Client) FetchAllPages(ctx context.Context, startURL string) ([]json.RawMessage, error) {
	results, err := pagination.Collect(ctx, startURL, c.fetchPage)
	if err != nil {
		if errors.Is(err, pagination.ErrCyclicPage) {
			return nil, &DecodeError{URL: startURL, Err: err}
		}
		return nil, err
	}

	return results, nil
}

func (c *Client) fetchPage(ctx context.Context, rawURL string) (pagination.Page[json.RawMessage], error) {
	var page pagination.Page[json.RawMessage]

	b, err := c.Fetch(ctx, rawURL)
	if err != nil {
		return page, err
	}

	err = decode(rawURL, b, &page)
	if err != nil {
		return page, err
	}

	if page.Results == nil {
		return page, &DecodeError{URL: rawURL, Err: fmt.Errorf("%w: results", ErrMissingField)}
	}

	return page, nil
}

// ListTitles fetches a single page of titles for q
func (c *Client) ListTitles(ctx context.Context, q QueryParams) (pagination.Page[MovieSummary], error) {
	var page pagination.Page[MovieSummary]
	u := TitlesURL(c.baseURL, q)

	b, err := c.Fetch(ctx, u)
	if err != nil {
		return page, err
	}

	err = decode(u, b, &page)
	if err != nil {
		return page, err
	}

	if page.Results == nil {
		return page, &DecodeError{URL: u, Err: fmt.Errorf("%w: results", ErrMissingField)}
	}

	return page, nil
}

// GetTitle fetches the full record of a title
func (c *Client) GetTitle(ctx context.Context, id int) (MovieDetail, error) {
	var detail MovieDetail
	u := BuildDetailURL(c.baseURL, id)

	b, err := c.Fetch(ctx, u)
	if err != nil {
		return detail, err
	}

	err = decode(u, b, &detail)
	if err != nil {
		return detail, err
	}

	if detail.ID == 0 || detail.Title == "" {
		return MovieDetail{}, &DecodeError{URL: u, Err: fmt.Errorf("%w: id and title", ErrMissingField)}
	}
	if detail.ID != id {
		return MovieDetail{}, &DecodeError{URL: u, Err: fmt.Errorf("requested title %d but got %d", id, detail.ID)}
	}

	return detail, nil
}

type genre struct {
	Name string `json:"name"`
}

// ListGenres collects every genre name across all pages
func (c *Client) ListGenres(ctx context.Context) (GenreList, error) {
	u := GenresURL(c.baseURL)
	raw, err := c.FetchAllPages(ctx, u)
	if err != nil {
		return nil, err
	}

	genres := make(GenreList, 0, len(raw))
	for _, r := range raw {
		var g genre
		err := decode(u, r, &g)
		if err != nil {
			return nil, err
		}
		if g.Name == "" {
			return nil, &DecodeError{URL: u, Err: fmt.Errorf("%w: name", ErrMissingField)}
		}
		genres = append(genres, g.Name)
	}

	return genres, nil
}

func decode(rawURL string, b []byte, v any) error {
	err := json.Unmarshal(b, v)
	if err != nil {
		return &DecodeError{URL: rawURL, Err: err}
	}
	return nil
}
