package modes

import (
	"slices"

	"gamegrid/internal/ui/input/types"
)

// GenreSelectMode picks the genre filter from the known labels
type GenreSelectMode struct {
	pickerMode
}

func NewGenreSelectMode() *GenreSelectMode {
	return &GenreSelectMode{pickerMode{
		name: "genre",
		count: func(ctx types.Context) int {
			return len(ctx.Genres())
		},
		current: func(ctx types.Context) int {
			return slices.Index(ctx.Genres(), ctx.CurrentGenre())
		},
		apply: func(ctx types.Context, index int) types.Action {
			return types.SelectGenreAction{Label: ctx.Genres()[index]}
		},
	}}
}
