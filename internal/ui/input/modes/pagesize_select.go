package modes

import (
	"slices"

	"gamegrid/internal/ui/input/types"
)

// PageSizeSelectMode picks one of the allowed page sizes
type PageSizeSelectMode struct {
	pickerMode
}

func NewPageSizeSelectMode() *PageSizeSelectMode {
	return &PageSizeSelectMode{pickerMode{
		name: "page size",
		count: func(ctx types.Context) int {
			return len(ctx.PageSizes())
		},
		current: func(ctx types.Context) int {
			return slices.Index(ctx.PageSizes(), ctx.CurrentPageSize())
		},
		apply: func(ctx types.Context, index int) types.Action {
			return types.SetPageSizeAction{Size: ctx.PageSizes()[index]}
		},
	}}
}
