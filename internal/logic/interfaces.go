package logic

import "gamegrid/internal/domain"

// CatalogStore provides read-only access to the loaded catalog
type CatalogStore interface {
	All() []domain.GameEntry
	Get(id string) (domain.GameEntry, bool)
	Genres() []string // known labels, sentinel excluded
	Count() int
}
