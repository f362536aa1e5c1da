package cmd

import (
	"context"

	"github.com/mydrama-tv/mydrama/catalog"
	"github.com/mydrama-tv/mydrama/favorites"
	"github.com/mydrama-tv/mydrama/history"
	"github.com/mydrama-tv/mydrama/icon"
	"github.com/mydrama-tv/mydrama/key"
	"github.com/mydrama-tv/mydrama/network"
	"github.com/mydrama-tv/mydrama/store"
	"github.com/mydrama-tv/mydrama/util"
	"github.com/spf13/viper"
)

type storeHandles struct {
	raw       store.Store
	favorites *favorites.Set
	history   *history.History
}

// withStore opens the configured storage backend for the duration of f.
func withStore(f func(storeHandles) error) error {
	s, err := store.Open(viper.GetString(key.StorageBackend))
	if err != nil {
		return err
	}
	defer util.Ignore(s.Close)

	return f(storeHandles{
		raw:       s,
		favorites: favorites.New(s),
		history:   history.New(s, viper.GetInt(key.HistoryLimit)),
	})
}

// fetchCatalog downloads the catalog. The progress line is skipped when
// the output is meant for other programs.
func fetchCatalog(ctx context.Context, quiet bool) ([]catalog.Project, error) {
	client := network.NewClient(viper.GetInt(key.CatalogRetries), viper.GetDuration(key.CatalogTimeout))

	if !quiet {
		erase := util.PrintErasable(icon.Get(icon.Progress) + " Fetching catalog...")
		defer erase()
	}

	url := viper.GetString(key.CatalogURL)
	if viper.GetBool(key.CatalogOffline) {
		return catalog.FetchCached(ctx, client, url, viper.GetDuration(key.CatalogCacheTTL))
	}
	return catalog.Fetch(ctx, client, url)
}
