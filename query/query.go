// Package query remembers past searches and suggests them back.
package query

import (
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/mydrama-tv/mydrama/filesystem"
	"github.com/mydrama-tv/mydrama/key"
	"github.com/mydrama-tv/mydrama/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

// Book is a ranked set of searches persisted to disk.
type Book struct {
	mu    sync.Mutex
	cache *gache.Cache[map[string]*record]
	memo  map[string][]string
}

func New(path string) *Book {
	return &Book{
		cache: gache.New[map[string]*record](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
		memo: make(map[string][]string),
	}
}

// Default is the book under the cache directory.
var Default = sync.OnceValue(func() *Book {
	return New(where.Queries())
})

func (b *Book) load() map[string]*record {
	cached, expired, err := b.cache.Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*record)
	}
	return cached
}

// Remember adds q or raises its rank by weight.
func (b *Book) Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	records := b.load()
	if r, ok := records[q]; ok {
		r.Rank += weight
	} else {
		records[q] = &record{Rank: weight, Query: q}
	}

	clear(b.memo)
	return b.cache.Set(records)
}

// Forget drops every remembered search.
func (b *Book) Forget() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	clear(b.memo)
	return b.cache.Set(make(map[string]*record))
}

// Suggest returns the best ranked search matching q.
func (b *Book) Suggest(q string) mo.Option[string] {
	suggestions := b.SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns the searches fuzzily matching q, best ranked first.
// An exact repeat of q is not a suggestion.
func (b *Book) SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)
	if q == "" {
		return []string{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if prev, ok := b.memo[q]; ok {
		return prev
	}

	records := lo.Filter(lo.Values(b.load()), func(r *record, _ int) bool {
		return r.Query != q && fuzzy.Match(q, r.Query)
	})

	slices.SortFunc(records, func(a, b *record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.Query, b.Query)
	})

	suggestions := lo.Map(records, func(r *record, _ int) string { return r.Query })
	b.memo[q] = suggestions
	return suggestions
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
