package editor

// Target is a navigation instruction: either a range selection or a bare
// cursor placement, distinguished by the presence of valid end coordinates.
// Coordinates are 1-based; zero means absent.
type Target struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// HasRange returns true if both end coordinates are valid, in which case
// the target selects a range rather than placing the cursor.
func (t Target) HasRange() bool {
	return t.EndLine > 0 && t.EndColumn > 0
}

// Span returns the target as a selection span.
// Only meaningful when HasRange is true.
func (t Target) Span() Span {
	return Span{
		StartLine:   t.StartLine,
		StartColumn: t.StartColumn,
		EndLine:     t.EndLine,
		EndColumn:   t.EndColumn,
	}
}

// Position returns the target's start coordinates as a cursor position.
func (t Target) Position() Position {
	return Position{Line: t.StartLine, Column: t.StartColumn}
}

// apply performs the navigation on a surface: range selection plus reveal
// for range targets, cursor placement plus reveal otherwise.
func (t Target) apply(s Surface) {
	if t.HasRange() {
		span := t.Span()
		s.SetSelection(span)
		s.RevealSpan(span)
		return
	}
	pos := t.Position()
	s.SetCursor(pos)
	s.RevealPosition(pos)
}
