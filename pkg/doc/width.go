package doc

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Measure reports how many columns a literal occupies.
type Measure func(s string) int

// DisplayWidth measures s in terminal columns: wide East Asian characters
// count as two, combining marks as zero.
func DisplayWidth(s string) int { return runewidth.StringWidth(s) }

// ByteLen measures s by its length in bytes. It is exact for ASCII only.
func ByteLen(s string) int { return len(s) }

// ANSIWidth measures s in terminal columns, ignoring escape sequences that
// are already embedded in the literal.
func ANSIWidth(s string) int { return ansi.StringWidth(s) }

// Option configures a render.
type Option func(*options)

type options struct {
	measure Measure
}

// WithMeasure sets the function used to measure literals. A nil Measure
// restores [DisplayWidth].
func WithMeasure(m Measure) Option {
	return func(o *options) {
		if m == nil {
			m = DisplayWidth
		}
		o.measure = m
	}
}

func newOptions(opts ...Option) options {
	o := options{measure: DisplayWidth}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
