// Package catalog loads the fixed game catalog from an embedded default or a
// TOML, YAML or JSON file.
package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"gamegrid/internal/domain"
)

//go:embed games.toml
var defaultFS embed.FS

// EmbeddedSource is reported as the source of the built-in catalog
const EmbeddedSource = "embedded"

// FallbackImage is shown when an entry has no image or it fails to load
const FallbackImage = "https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=400&h=300&fit=crop"

var (
	// ErrEmptyGenre is returned for entries without any genre label
	ErrEmptyGenre = errors.New("entry has no genre")
	// ErrEmptyTitle is returned for entries without a title
	ErrEmptyTitle = errors.New("entry has no title")
	// ErrDuplicateID is returned when two entries carry the same explicit ID
	ErrDuplicateID = errors.New("duplicate entry id")
	// ErrUnsupportedFormat is returned for catalog files with an unknown extension
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// entryNamespace seeds the deterministic entry IDs
var entryNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("gamegrid/catalog"))

// Format is a catalog file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Catalog is the read-only dataset: the entries in display order and the known genre labels
type Catalog struct {
	Source string
	Games  []domain.GameEntry
	Genres []string // sentinel excluded
}

// file is the on-disk layout shared by all formats
type file struct {
	Genres []string           `json:"genres" toml:"genres" yaml:"genres"`
	Games  []domain.GameEntry `json:"games" toml:"games" yaml:"games"`
}

// FormatFromPath picks the format by file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and validates a catalog file
func Load(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	cat, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	cat.Source = path
	return cat, nil
}

// Default returns the built-in catalog
func Default() (*Catalog, error) {
	data, err := defaultFS.ReadFile("games.toml")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}

	cat, err := Parse(data, FormatTOML)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	cat.Source = EmbeddedSource
	return cat, nil
}

// LoadOrDefault loads path, or the built-in catalog when path is empty
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Parse decodes and validates catalog data
func Parse(data []byte, format Format) (*Catalog, error) {
	var f file

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatJSON:
		err = json.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s catalog: %w", format, err)
	}

	games := make([]domain.GameEntry, 0, len(f.Games))
	seen := make(map[string]int, len(f.Games)) // id -> entry number
	for i, g := range f.Games {
		g, err := normalize(g)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i+1, g.Title, err)
		}
		if g.ID == "" {
			g.ID = uniqueID(g.Title, seen)
		}
		if first, ok := seen[g.ID]; ok {
			return nil, fmt.Errorf("entry %d (%q): %w %q, first used by entry %d", i+1, g.Title, ErrDuplicateID, g.ID, first)
		}
		seen[g.ID] = i + 1
		games = append(games, g)
	}

	return &Catalog{
		Games:  games,
		Genres: genres(f.Genres, games),
	}, nil
}

func normalize(g domain.GameEntry) (domain.GameEntry, error) {
	g.Title = strings.TrimSpace(g.Title)
	if g.Title == "" {
		return g, ErrEmptyTitle
	}

	labels := make([]string, 0, len(g.Genre))
	for _, label := range g.Genre {
		if label = strings.TrimSpace(label); label != "" {
			labels = append(labels, label)
		}
	}
	if len(labels) == 0 {
		return g, ErrEmptyGenre
	}
	g.Genre = labels

	g.ID = strings.TrimSpace(g.ID)
	if g.Image == "" {
		g.Image = FallbackImage
	}
	return g, nil
}

// EntryID derives the stable ID of an entry from its title
func EntryID(title string) string {
	return uuid.NewSHA1(entryNamespace, []byte(title)).String()
}

// uniqueID derives the ID for title. Repeated titles get "title#2", "title#3", ...
// so the first entry keeps the plain title ID.
func uniqueID(title string, seen map[string]int) string {
	id := EntryID(title)
	for n := 2; ; n++ {
		if _, taken := seen[id]; !taken {
			return id
		}
		id = EntryID(fmt.Sprintf("%s#%d", title, n))
	}
}

// genres returns the declared labels, or the labels in first-seen order when none are declared.
// The sentinel is never part of the result.
func genres(declared []string, games []domain.GameEntry) []string {
	var out []string
	add := func(label string) {
		label = strings.TrimSpace(label)
		if label == "" || label == domain.AllGenres || slices.Contains(out, label) {
			return
		}
		out = append(out, label)
	}

	if len(declared) > 0 {
		for _, label := range declared {
			add(label)
		}
		return out
	}
	for _, g := range games {
		for _, label := range g.Genre {
			add(label)
		}
	}
	return out
}
