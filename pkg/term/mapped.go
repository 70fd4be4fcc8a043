package term

import "github.com/matzehuels/pretty/pkg/doc"

// Mapped adapts a [Sink] to documents annotated with some other type A,
// translating each annotation to a [Style] on the way in.
type Mapped[A any] struct {
	*Sink
	style func(A) Style
}

// Map returns a sink for Doc[A] that colors regions with style(ann).
func Map[A any](s *Sink, style func(A) Style) *Mapped[A] {
	return &Mapped[A]{Sink: s, style: style}
}

// PushAnnotation implements doc.Annotator.
func (m *Mapped[A]) PushAnnotation(ann A) error {
	return m.Sink.PushAnnotation(m.style(ann))
}

// Palette returns a style function that looks annotations up in p. Missing
// keys map to the zero Style, which renders in the terminal default.
func Palette[A comparable](p map[A]Style) func(A) Style {
	return func(a A) Style { return p[a] }
}

var _ doc.Annotator[int] = (*Mapped[int])(nil)
