package focus

// Scroller keeps a target line of a tall view inside a window of Height
// lines, centering it.
type Scroller struct {
	Height int
	Offset int
}

// Reveal centers line target of total lines. It reports whether the window
// moved; revealing the same target again never moves it.
func (s *Scroller) Reveal(target, total int) bool {
	if s.Height <= 0 || total <= s.Height {
		moved := s.Offset != 0
		s.Offset = 0
		return moved
	}

	offset := target - s.Height/2
	offset = max(0, min(offset, total-s.Height))

	if offset == s.Offset {
		return false
	}
	s.Offset = offset
	return true
}

// Reset returns to the top.
func (s *Scroller) Reset() {
	s.Offset = 0
}
