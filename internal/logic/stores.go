package logic

import (
	"slices"

	"gamegrid/internal/catalog"
	"gamegrid/internal/domain"
)

// MemoryCatalogStore is an in-memory implementation of CatalogStore.
// It is never written after construction, so no locking is needed.
type MemoryCatalogStore struct {
	games  []domain.GameEntry
	byID   map[string]int
	genres []string
}

// NewMemoryCatalogStore creates a store over a loaded catalog
func NewMemoryCatalogStore(cat *catalog.Catalog) *MemoryCatalogStore {
	s := &MemoryCatalogStore{
		games:  slices.Clone(cat.Games),
		byID:   make(map[string]int, len(cat.Games)),
		genres: slices.Clone(cat.Genres),
	}
	for i, g := range s.games {
		s.byID[g.ID] = i
	}
	return s
}

// All returns the entries in catalog order.
// The slice is shared; callers must not modify it.
func (s *MemoryCatalogStore) All() []domain.GameEntry {
	return s.games
}

func (s *MemoryCatalogStore) Get(id string) (domain.GameEntry, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.GameEntry{}, false
	}
	return s.games[i], true
}

func (s *MemoryCatalogStore) Genres() []string {
	return slices.Clone(s.genres)
}

func (s *MemoryCatalogStore) Count() int {
	return len(s.games)
}
