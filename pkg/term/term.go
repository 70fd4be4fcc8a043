// Package term provides a color-aware sink for the doc layout engine.
//
// A [Sink] maps [Style] annotations onto terminal SGR escape sequences. It
// keeps its own stack of active styles, so closing a region restores the
// style of the enclosing region, or resets the terminal when no region is
// open.
//
//	s := term.NewSink(os.Stdout, termenv.ANSI256)
//	d := doc.Annotate(term.Style{Foreground: "167", Bold: true}, doc.Text[term.Style]("error"))
//	_ = doc.Render(d, 80, s)
//
// With the termenv.Ascii profile no escape sequences are written at all.
package term

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/matzehuels/pretty/pkg/doc"
)

// Style is the annotation type understood by [Sink].
type Style struct {
	Foreground lipgloss.Color // ANSI index ("167") or hex ("#ff8700"); empty keeps the default
	Background lipgloss.Color
	Bold       bool
	Faint      bool
	Italic     bool
	Underline  bool
}

// IsZero reports whether s sets no attribute.
func (s Style) IsZero() bool { return s == Style{} }

// Sequence returns the SGR escape sequence selecting s under profile p. The
// sequence starts with a reset so attributes of a previous style never leak.
func (s Style) Sequence(p termenv.Profile) string {
	if p == termenv.Ascii {
		return ""
	}
	seqs := []string{termenv.ResetSeq}
	if s.Bold {
		seqs = append(seqs, termenv.BoldSeq)
	}
	if s.Faint {
		seqs = append(seqs, termenv.FaintSeq)
	}
	if s.Italic {
		seqs = append(seqs, termenv.ItalicSeq)
	}
	if s.Underline {
		seqs = append(seqs, termenv.UnderlineSeq)
	}
	if c := p.Color(string(s.Foreground)); c != nil {
		if seq := c.Sequence(false); seq != "" {
			seqs = append(seqs, seq)
		}
	}
	if c := p.Color(string(s.Background)); c != nil {
		if seq := c.Sequence(true); seq != "" {
			seqs = append(seqs, seq)
		}
	}
	return termenv.CSI + strings.Join(seqs, ";") + "m"
}

// Sink writes rendered text to an io.Writer and applies [Style] annotations.
// It implements doc.Sink and doc.Annotator[Style].
type Sink struct {
	w       io.Writer
	profile termenv.Profile
	stack   []Style
}

// NewSink returns a Sink writing to w with the given color profile.
func NewSink(w io.Writer, profile termenv.Profile) *Sink {
	return &Sink{w: w, profile: profile}
}

// DetectProfile returns the color profile of w, honoring NO_COLOR and
// CLICOLOR_FORCE.
func DetectProfile(w io.Writer) termenv.Profile {
	return termenv.NewOutput(w).EnvColorProfile()
}

// WriteString implements doc.Sink.
func (s *Sink) WriteString(str string) (int, error) {
	return io.WriteString(s.w, str)
}

// PushAnnotation makes st the active style.
func (s *Sink) PushAnnotation(st Style) error {
	s.stack = append(s.stack, st)
	return s.apply(st)
}

// PopAnnotation restores the style that was active before the matching
// push, or the terminal default when no region remains open.
func (s *Sink) PopAnnotation() error {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	if n := len(s.stack); n > 0 {
		return s.apply(s.stack[n-1])
	}
	return s.reset()
}

// Depth returns the number of open regions.
func (s *Sink) Depth() int { return len(s.stack) }

func (s *Sink) apply(st Style) error {
	if st.IsZero() {
		return s.reset()
	}
	return doc.WriteAll(s, st.Sequence(s.profile))
}

func (s *Sink) reset() error {
	if s.profile == termenv.Ascii {
		return nil
	}
	return doc.WriteAll(s, termenv.CSI+termenv.ResetSeq+"m")
}

var (
	_ doc.Sink             = (*Sink)(nil)
	_ doc.Annotator[Style] = (*Sink)(nil)
)
