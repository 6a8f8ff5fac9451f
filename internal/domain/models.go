package domain

// AllGenres is the genre label that disables genre filtering
const AllGenres = "All Genres"

// GameEntry represents a single catalog item
type GameEntry struct {
	ID              string   `json:"id" toml:"id" yaml:"id"`
	Title           string   `json:"title" toml:"title" yaml:"title"`
	Description     string   `json:"description" toml:"description" yaml:"description"`
	Genre           []string `json:"genre" toml:"genre" yaml:"genre"` // never empty
	Rating          float64  `json:"rating" toml:"rating" yaml:"rating"`
	ReleaseYear     int      `json:"releaseYear" toml:"release_year" yaml:"release_year"`
	Developer       string   `json:"developer" toml:"developer" yaml:"developer"`
	Image           string   `json:"image" toml:"image" yaml:"image"`
	OfficialWebsite string   `json:"officialWebsite" toml:"official_website" yaml:"official_website"`
}

// HasGenre reports whether label is one of the entry's genres
func (g GameEntry) HasGenre(label string) bool {
	for _, genre := range g.Genre {
		if genre == label {
			return true
		}
	}
	return false
}

// GenreLabels returns the labels offered to pickers and filters, sentinel first
func GenreLabels(genres []string) []string {
	out := make([]string, 0, len(genres)+1)
	out = append(out, AllGenres)
	for _, label := range genres {
		if label != AllGenres {
			out = append(out, label)
		}
	}
	return out
}
