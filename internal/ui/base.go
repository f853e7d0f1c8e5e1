package ui

// Base holds the focus and size state shared by panel components.
// Embed it in a component model:
//
//	type Model struct {
//	    ui.Base
//	    cursor cursor.Cursor
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component receives keyboard input.
func (b *Base) SetFocused(focused bool) { b.focused = focused }

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool { return b.focused }

// SetSize sets the outer dimensions, border included.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

func (b Base) Width() int  { return b.width }
func (b Base) Height() int { return b.height }

// ListHeight returns the rows left for list content after overhead.
func (b Base) ListHeight(overhead int) int {
	return b.height - overhead
}
