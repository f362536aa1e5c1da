// Package history keeps the "continue watching" list.
//
// Entries are unique per project, most recent first, and capped. The list is
// stored as a JSON array under constant.HistoryKey; data that cannot be
// decoded is discarded and the history starts empty.
package history

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/mydrama-tv/mydrama/constant"
	"github.com/mydrama-tv/mydrama/log"
	"github.com/mydrama-tv/mydrama/store"
	"github.com/samber/lo"
)

// DefaultLimit is used when the configured limit is not positive.
const DefaultLimit = 20

// Item is one watched project.
type Item struct {
	ProjectID    string `json:"projectId"`
	EpisodeIndex int    `json:"episodeIndex"`
	// Timestamp is in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// Time returns the timestamp as time.Time.
func (i Item) Time() time.Time {
	return time.UnixMilli(i.Timestamp)
}

type History struct {
	mu    sync.Mutex
	store store.Store
	limit int
	items []Item

	// Now is the clock used for new entries.
	Now func() time.Time
}

// New loads the history from s.
func New(s store.Store, limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}

	h := &History{
		store: s,
		limit: limit,
		Now:   time.Now,
	}
	h.items = h.load()
	return h
}

func (h *History) load() []Item {
	raw, err := h.store.Load(constant.HistoryKey)
	if err != nil {
		log.Warnf("history: load: %s", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Debugf("history: discarding unreadable data: %s", err)
		return nil
	}

	// older files may hold duplicates or more than limit entries
	items = lo.UniqBy(items, func(i Item) string { return i.ProjectID })
	if len(items) > h.limit {
		items = items[:h.limit]
	}
	return items
}

func (h *History) save() error {
	data, err := json.Marshal(h.items)
	if err != nil {
		return err
	}
	return h.store.Save(constant.HistoryKey, data)
}

// List returns a copy of the entries, most recent first.
func (h *History) List() []Item {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]Item(nil), h.items...)
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.items)
}

// Get returns the entry of projectID.
func (h *History) Get(projectID string) (Item, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return lo.Find(h.items, func(i Item) bool { return i.ProjectID == projectID })
}

// Record moves projectID to the front with the given episode, evicting the
// oldest entry past the limit.
func (h *History) Record(projectID string, episode int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	item := Item{
		ProjectID:    projectID,
		EpisodeIndex: episode,
		Timestamp:    h.Now().UnixMilli(),
	}

	rest := lo.Reject(h.items, func(i Item, _ int) bool { return i.ProjectID == projectID })
	h.items = append([]Item{item}, rest...)
	if len(h.items) > h.limit {
		h.items = h.items[:h.limit]
	}

	return h.save()
}

// Remove deletes the entry of projectID. It reports whether one existed.
func (h *History) Remove(projectID string) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	before := len(h.items)
	h.items = lo.Reject(h.items, func(i Item, _ int) bool { return i.ProjectID == projectID })
	if len(h.items) == before {
		return false, nil
	}
	return true, h.save()
}

func (h *History) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.items = nil
	return h.store.Delete(constant.HistoryKey)
}

// ProjectIDs returns the project ids in history order.
func (h *History) ProjectIDs() []string {
	return lo.Map(h.List(), func(i Item, _ int) string { return i.ProjectID })
}
