package cmd

import (
	"github.com/kasuboski/juststreamit/config"
	"github.com/kasuboski/juststreamit/pkg/browse"
	"github.com/kasuboski/juststreamit/pkg/cache"
	"github.com/kasuboski/juststreamit/pkg/catalog"
	mhttp "github.com/kasuboski/juststreamit/pkg/http"
	"github.com/spf13/viper"
)

// loadConfig reads and validates the configuration viper was set up with
func loadConfig() (config.Config, error) {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func newCatalogClient(cfg config.Catalog) (*catalog.Client, error) {
	opts := []mhttp.ClientOption{
		mhttp.WithMaxRetries(cfg.MaxRetries),
		mhttp.WithBaseBackoff(cfg.BaseBackoff),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mhttp.WithTimeout(cfg.Timeout))
	}

	return catalog.New(mhttp.NewRateLimitedHTTPClient(opts...), cfg.BaseURL)
}

// newBrowser wires the catalog client and a memoizing aggregator shared by every section
func newBrowser(cfg config.Config) (browse.Browser, error) {
	client, err := newCatalogClient(cfg.Catalog)
	if err != nil {
		return browse.Browser{}, err
	}

	aggregator := catalog.NewAggregator(client,
		catalog.WithMemo(cache.New[int, catalog.MovieDetail]()),
		catalog.WithConcurrency(cfg.Catalog.MaxConcurrency),
	)

	return browse.New(client, aggregator, browse.Options{
		TopPageSize:      cfg.Page.TopPageSize,
		CategoryPageSize: cfg.Page.CategoryPageSize,
		Categories:       cfg.Page.Categories,
	}), nil
}
