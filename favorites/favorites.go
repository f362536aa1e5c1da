// Package favorites is the persisted set of favorite project ids.
package favorites

import (
	"encoding/json"
	"sync"

	"github.com/mydrama-tv/mydrama/constant"
	"github.com/mydrama-tv/mydrama/log"
	"github.com/mydrama-tv/mydrama/store"
	"github.com/samber/lo"
)

// Set keeps insertion order so listings are stable.
type Set struct {
	mu    sync.Mutex
	store store.Store
	ids   []string
}

// New loads the set from s. Unreadable data gives an empty set.
func New(s store.Store) *Set {
	set := &Set{store: s}

	raw, err := s.Load(constant.FavoritesKey)
	switch {
	case err != nil:
		log.Warnf("favorites: load: %s", err)
	case raw != nil:
		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			log.Debugf("favorites: discarding unreadable data: %s", err)
			break
		}
		set.ids = lo.Uniq(ids)
	}

	return set
}

func (s *Set) save() error {
	data, err := json.Marshal(s.ids)
	if err != nil {
		return err
	}
	return s.store.Save(constant.FavoritesKey, data)
}

func (s *Set) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Contains(s.ids, id)
}

// List returns a copy of the ids.
func (s *Set) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.ids...)
}

func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.ids)
}

// Add reports whether id was not already present.
func (s *Set) Add(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lo.Contains(s.ids, id) {
		return false, nil
	}
	s.ids = append(s.ids, id)
	return true, s.save()
}

// Remove reports whether id was present.
func (s *Set) Remove(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !lo.Contains(s.ids, id) {
		return false, nil
	}
	s.ids = lo.Without(s.ids, id)
	return true, s.save()
}

// Toggle flips membership of id and returns the new state.
func (s *Set) Toggle(id string) (bool, error) {
	if s.Has(id) {
		_, err := s.Remove(id)
		return false, err
	}
	_, err := s.Add(id)
	return true, err
}
