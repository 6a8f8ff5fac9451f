package logic

// Navigator handles the card cursor and the row viewport of a page grid
type Navigator struct {
	selectedIndex  int
	viewportOffset int // first visible row
	viewportHeight int // visible rows
	columns        int
	itemCount      int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{columns: 1, viewportHeight: 1}
}

// UpdateState updates the grid geometry and clamps the cursor into it
func (n *Navigator) UpdateState(itemCount, columns, viewportHeight int) {
	if columns < 1 {
		columns = 1
	}
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	n.itemCount = itemCount
	n.columns = columns
	n.viewportHeight = viewportHeight
	n.SetSelectedIndex(n.selectedIndex)
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the first visible row
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// Columns returns the number of cards per row
func (n *Navigator) Columns() int {
	return n.columns
}

// Reset moves the cursor back to the first card
func (n *Navigator) Reset() {
	n.selectedIndex = 0
	n.viewportOffset = 0
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	if index > n.itemCount-1 {
		index = n.itemCount - 1
	}
	if index < 0 {
		index = 0
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// MoveUp moves the cursor one row up
func (n *Navigator) MoveUp() {
	if n.selectedIndex-n.columns >= 0 {
		n.SetSelectedIndex(n.selectedIndex - n.columns)
	}
}

// MoveDown moves the cursor one row down, landing on the last card of a short final row
func (n *Navigator) MoveDown() {
	if n.row(n.selectedIndex) < n.row(n.itemCount-1) {
		n.SetSelectedIndex(n.selectedIndex + n.columns)
	}
}

// MoveLeft moves the cursor to the previous card
func (n *Navigator) MoveLeft() {
	n.SetSelectedIndex(n.selectedIndex - 1)
}

// MoveRight moves the cursor to the next card
func (n *Navigator) MoveRight() {
	n.SetSelectedIndex(n.selectedIndex + 1)
}

// MoveToTop moves the cursor to the first card
func (n *Navigator) MoveToTop() {
	n.SetSelectedIndex(0)
}

// MoveToBottom moves the cursor to the last card
func (n *Navigator) MoveToBottom() {
	n.SetSelectedIndex(n.itemCount - 1)
}

// VisibleRows returns the half-open row range currently on screen
func (n *Navigator) VisibleRows() (int, int) {
	return n.viewportOffset, min(n.viewportOffset+n.viewportHeight, n.totalRows())
}

func (n *Navigator) row(index int) int {
	if index < 0 {
		return 0
	}
	return index / n.columns
}

func (n *Navigator) totalRows() int {
	if n.itemCount == 0 {
		return 0
	}
	return n.row(n.itemCount-1) + 1
}

// ensureSelectedVisible adjusts the viewport to keep the selected row visible
func (n *Navigator) ensureSelectedVisible() {
	selectedRow := n.row(n.selectedIndex)

	// If selected row is above viewport, scroll up
	if selectedRow < n.viewportOffset {
		n.viewportOffset = selectedRow
	}

	// If selected row is below viewport, scroll down
	if selectedRow >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = selectedRow - n.viewportHeight + 1
	}

	// Don't leave empty rows at the bottom when the page shrinks
	maxOffset := n.totalRows() - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
