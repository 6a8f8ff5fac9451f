package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		total      int
		maxVisible int
		want       []int
		prev, next bool
	}{
		{"first page", 1, 10, 5, []int{1, 2, 3, 4, 5}, false, true},
		{"last page", 10, 10, 5, []int{6, 7, 8, 9, 10}, true, false},
		{"middle", 5, 10, 5, []int{3, 4, 5, 6, 7}, true, true},
		{"second page", 2, 10, 5, []int{1, 2, 3, 4, 5}, true, true},
		{"fewer pages than slots", 2, 3, 5, []int{1, 2, 3}, true, true},
		{"single page", 1, 1, 5, []int{1}, false, false},
		{"zero total", 1, 0, 5, []int{1}, false, false},
		{"narrow window", 4, 10, 3, []int{2, 3, 4}, true, true},
		{"default when unset", 1, 10, 0, []int{1, 2, 3, 4, 5}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := PageWindow(tt.current, tt.total, tt.maxVisible)
			assert.Equal(t, tt.want, w.Pages)
			assert.Equal(t, tt.prev, w.PrevEnabled)
			assert.Equal(t, tt.next, w.NextEnabled)
		})
	}
}

func TestPageWindowLength(t *testing.T) {
	for total := 1; total <= 12; total++ {
		for current := 1; current <= total; current++ {
			w := PageWindow(current, total, DefaultMaxVisiblePages)
			assert.Len(t, w.Pages, min(DefaultMaxVisiblePages, total))
			assert.Contains(t, w.Pages, current)
		}
	}
}
