package editor

import "github.com/google/uuid"

// Position is a 1-based line/column cursor location.
type Position struct {
	Line   int
	Column int
}

// Span is an inclusive 1-based start/end selection range.
type Span struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Surface is a single editable document view.
//
// It is the boundary to the underlying widget: the resolver only needs the
// loaded model plus selection, cursor and reveal primitives.
type Surface interface {
	// ID identifies the surface for the lifetime of the editor instance.
	ID() string

	// Model returns the currently loaded model, or nil if none.
	Model() *Model

	// SetSelection selects the span.
	SetSelection(span Span)

	// SetCursor places the cursor without selecting.
	SetCursor(pos Position)

	// RevealSpan scrolls the view to center on the span.
	RevealSpan(span Span)

	// RevealPosition scrolls the view to center on the position.
	RevealPosition(pos Position)
}

// TextSurface is the host's in-process Surface implementation.
// It records the last selection, cursor and reveal so callers (and tests)
// can observe navigation effects.
type TextSurface struct {
	id    string
	model *Model

	selection *Span
	cursor    *Position
	revealed  *Span
}

// NewTextSurface creates a surface showing the given model.
func NewTextSurface(m *Model) *TextSurface {
	return &TextSurface{
		id:    uuid.NewString(),
		model: m,
	}
}

// ID returns the surface identifier.
func (s *TextSurface) ID() string {
	return s.id
}

// Model returns the loaded model.
func (s *TextSurface) Model() *Model {
	return s.model
}

// SetModel swaps the loaded model.
func (s *TextSurface) SetModel(m *Model) {
	s.model = m
}

// SetSelection selects the span and clears any bare cursor placement.
func (s *TextSurface) SetSelection(span Span) {
	s.selection = &span
	s.cursor = nil
}

// SetCursor places the cursor and clears any selection.
func (s *TextSurface) SetCursor(pos Position) {
	s.cursor = &pos
	s.selection = nil
}

// RevealSpan records the span the view was centered on.
func (s *TextSurface) RevealSpan(span Span) {
	s.revealed = &span
}

// RevealPosition records the position the view was centered on.
func (s *TextSurface) RevealPosition(pos Position) {
	s.revealed = &Span{
		StartLine:   pos.Line,
		StartColumn: pos.Column,
		EndLine:     pos.Line,
		EndColumn:   pos.Column,
	}
}

// Selection returns the current selection, or nil if only a cursor is set.
func (s *TextSurface) Selection() *Span {
	return s.selection
}

// Cursor returns the current cursor, or nil if a selection is active.
func (s *TextSurface) Cursor() *Position {
	return s.cursor
}

// Revealed returns the span the view last centered on.
func (s *TextSurface) Revealed() *Span {
	return s.revealed
}
