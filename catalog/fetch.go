package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/mydrama-tv/mydrama/internal/cache"
	"github.com/mydrama-tv/mydrama/log"
	"github.com/mydrama-tv/mydrama/network"
	"github.com/tidwall/gjson"
)

// ErrMalformed is returned when the catalog body is not a JSON array.
var ErrMalformed = errors.New("catalog is not a JSON array")

// Fetch downloads and decodes the catalog. On failure the returned slice is
// empty, never nil, so callers can use it as is.
func Fetch(ctx context.Context, client *retryablehttp.Client, url string) ([]Project, error) {
	body, err := network.Get(ctx, client, url)
	if err != nil {
		return []Project{}, fmt.Errorf("fetch catalog: %w", err)
	}

	projects, err := Decode(body)
	if err != nil {
		return []Project{}, err
	}

	log.Infof("catalog: loaded %d projects from %s", len(projects), url)
	return projects, nil
}

// FetchCached is Fetch with an offline copy. Every good body is saved; when
// the download fails, a saved body younger than ttl is used instead.
func FetchCached(ctx context.Context, client *retryablehttp.Client, url string, ttl time.Duration) ([]Project, error) {
	key := cache.Key(url)

	body, err := network.Get(ctx, client, url)
	if err == nil {
		projects, derr := Decode(body)
		if derr != nil {
			return projects, derr
		}
		if werr := cache.Write(key, body); werr != nil {
			log.Warnf("catalog: save offline copy: %s", werr)
		}
		log.Infof("catalog: loaded %d projects from %s", len(projects), url)
		return projects, nil
	}

	saved, ok := cache.Read(key, ttl)
	if !ok {
		return []Project{}, fmt.Errorf("fetch catalog: %w", err)
	}

	log.Warnf("catalog: %s, using offline copy", err)
	return Decode(saved)
}

// Decode parses a catalog body. Records that fail to decode or violate the
// project invariants are skipped, as are repeated ids.
func Decode(body []byte) ([]Project, error) {
	if !gjson.ValidBytes(body) {
		return []Project{}, ErrMalformed
	}

	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return []Project{}, ErrMalformed
	}

	projects := make([]Project, 0, len(root.Array()))
	seen := make(map[string]bool)

	root.ForEach(func(index, record gjson.Result) bool {
		var p Project
		if err := json.Unmarshal([]byte(record.Raw), &p); err != nil {
			log.Warnf("catalog: record %d: %s", index.Int(), err)
			return true
		}

		if err := p.Validate(); err != nil {
			log.Warnf("catalog: record %d: %s", index.Int(), err)
			return true
		}

		if seen[p.ID] {
			log.Warnf("catalog: record %d: duplicate id %s", index.Int(), p.ID)
			return true
		}
		seen[p.ID] = true

		projects = append(projects, p)
		return true
	})

	return projects, nil
}
