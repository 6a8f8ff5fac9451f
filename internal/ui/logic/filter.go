package logic

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gamegrid/internal/domain"
)

// Lower folds s to lower case independent of locale.
// A fresh Caser is built per call since cases.Caser is not safe for concurrent use.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// MatchesQuery checks if an entry's title or description contains the lower-cased query
func MatchesQuery(game domain.GameEntry, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(Lower(game.Title), query) ||
		strings.Contains(Lower(game.Description), query)
}

// MatchesGenre checks if an entry belongs to genre. The sentinel matches everything,
// a label nobody carries matches nothing.
func MatchesGenre(game domain.GameEntry, genre string) bool {
	if genre == domain.AllGenres {
		return true
	}
	return game.HasGenre(genre)
}

// Filter returns the entries matching both query and genre, in dataset order.
// The query is lower-cased here too so callers may pass raw input.
func Filter(games []domain.GameEntry, query, genre string) []domain.GameEntry {
	query = Lower(query)

	result := make([]domain.GameEntry, 0, len(games))
	for _, game := range games {
		if MatchesQuery(game, query) && MatchesGenre(game, genre) {
			result = append(result, game)
		}
	}
	return result
}
