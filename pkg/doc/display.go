package doc

import (
	"io"
	"strings"
)

// Fprint renders d to w. It is Render with an io.Writer destination.
func Fprint[A any](w io.Writer, d *Doc[A], width int, opts ...Option) error {
	return Render(d, width, WriterSink(w), opts...)
}

// Printer binds a document to a width so it can be used wherever a
// fmt.Stringer or io.WriterTo is expected.
type Printer[A any] struct {
	doc   *Doc[A]
	width int
	opts  []Option
}

// Pretty returns a Printer for d at the given width.
func Pretty[A any](d *Doc[A], width int, opts ...Option) Printer[A] {
	return Printer[A]{doc: d, width: width, opts: opts}
}

// String renders the document. Rendering into memory cannot fail.
func (p Printer[A]) String() string {
	var b strings.Builder
	_ = Render(p.doc, p.width, &b, p.opts...)
	return b.String()
}

// WriteTo renders the document to w.
func (p Printer[A]) WriteTo(w io.Writer) (int64, error) {
	cw := &countingSink{w: w}
	err := Render(p.doc, p.width, cw, p.opts...)
	return cw.n, err
}

type countingSink struct {
	w io.Writer
	n int64
}

func (c *countingSink) WriteString(s string) (int, error) {
	n, err := io.WriteString(c.w, s)
	c.n += int64(n)
	return n, err
}
