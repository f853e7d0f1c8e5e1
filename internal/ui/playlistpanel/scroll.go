package playlistpanel

// scroll tracks the cursor row and the first visible row of a list whose
// length and viewport height are passed in on every call.
type scroll struct {
	pos    int
	offset int
	margin int
}

// jump puts the cursor on row, clamped to the list, and scrolls so it
// stays margin rows away from either edge where possible.
func (s *scroll) jump(row, n, height int) {
	if n == 0 {
		return
	}
	s.pos = min(max(row, 0), n-1)
	s.reveal(n, height)
}

func (s *scroll) move(delta, n, height int) { s.jump(s.pos+delta, n, height) }

func (s *scroll) top() {
	s.pos, s.offset = 0, 0
}

// reveal adjusts the offset so the cursor is visible.
func (s *scroll) reveal(n, height int) {
	if height <= 0 || n == 0 {
		return
	}
	if s.pos < s.offset+s.margin {
		s.offset = s.pos - s.margin
	}
	if s.pos >= s.offset+height-s.margin {
		s.offset = s.pos - height + s.margin + 1
	}
	s.offset = min(max(s.offset, 0), max(n-height, 0))
}

// center scrolls so the cursor sits in the middle of the viewport.
func (s *scroll) center(n, height int) {
	if height <= 0 || n == 0 {
		return
	}
	s.offset = min(max(s.pos-height/2, 0), max(n-height, 0))
}

// clamp pulls the cursor back inside a list that shrank to n rows.
func (s *scroll) clamp(n int) {
	if n == 0 {
		s.top()
		return
	}
	s.pos = min(s.pos, n-1)
}

// visible returns the rendered rows as [start, end).
func (s scroll) visible(n, height int) (start, end int) {
	if n == 0 || height <= 0 {
		return 0, 0
	}
	return s.offset, min(s.offset+height, n)
}

// rowAt maps viewport line y to a list row.
func (s scroll) rowAt(y, n, height int) (int, bool) {
	if y < 0 || y >= height || s.offset+y >= n {
		return 0, false
	}
	return s.offset + y, true
}
