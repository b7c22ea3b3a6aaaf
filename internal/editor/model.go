package editor

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/edithost/internal/resource"
)

// Model is a live document model bound to a resource.
// The resolver borrows models per call and never owns them.
type Model struct {
	id       string
	res      resource.Resource
	lines    []string
	readOnly bool
}

// NewModel creates a model for a resource with the given content.
func NewModel(res resource.Resource, content string) *Model {
	return &Model{
		id:    uuid.NewString(),
		res:   res,
		lines: splitLines(content),
	}
}

// ID returns the model's unique identifier.
func (m *Model) ID() string {
	return m.id
}

// Resource returns the resource the model is bound to.
func (m *Model) Resource() resource.Resource {
	return m.res
}

// LineCount returns the number of lines in the model.
func (m *Model) LineCount() int {
	return len(m.lines)
}

// Line returns the content of the 1-based line n, or "" if out of range.
func (m *Model) Line(n int) string {
	if n < 1 || n > len(m.lines) {
		return ""
	}
	return m.lines[n-1]
}

// Text returns the full document content.
func (m *Model) Text() string {
	return strings.Join(m.lines, "\n")
}

// SetText replaces the document content.
func (m *Model) SetText(content string) {
	m.lines = splitLines(content)
}

// SetReadOnly marks the model read-only.
func (m *Model) SetReadOnly(ro bool) {
	m.readOnly = ro
}

// IsReadOnly returns true if the model cannot be edited.
func (m *Model) IsReadOnly() bool {
	return m.readOnly
}

func splitLines(content string) []string {
	if content == "" {
		return []string{""}
	}
	return strings.Split(content, "\n")
}

// Reader is a read-only view of a model, handed out by ResolveModel so
// callers can inspect a document without navigating to it or editing it.
type Reader struct {
	m *Model
}

// NewReader wraps a model read-only.
func NewReader(m *Model) Reader {
	return Reader{m: m}
}

// Resource returns the underlying model's resource.
func (r Reader) Resource() resource.Resource {
	return r.m.Resource()
}

// LineCount returns the underlying model's line count.
func (r Reader) LineCount() int {
	return r.m.LineCount()
}

// Line returns the content of the 1-based line n.
func (r Reader) Line(n int) string {
	return r.m.Line(n)
}

// Text returns the full document content.
func (r Reader) Text() string {
	return r.m.Text()
}
