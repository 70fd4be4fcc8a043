package doc

type mode uint8

const (
	modeBreak mode = iota
	modeFlat
)

func (m mode) String() string {
	if m == modeFlat {
		return "flat"
	}
	return "break"
}

// cmd is a unit of pending work: render doc at indent in mode.
type cmd[A any] struct {
	indent int
	mode   mode
	doc    *Doc[A]
}

// pushConcat expands the Concat in c onto stack so that its leftmost leaf is
// on top. Left-leaning chains are unrolled in one pass; right-leaning chains
// are expanded one level at a time as they are popped, so neither shape
// grows the stack beyond the number of pending siblings.
func pushConcat[A any](stack []cmd[A], c cmd[A]) []cmd[A] {
	stack = append(stack, cmd[A]{c.indent, c.mode, c.doc.right})
	l := c.doc.left
	for l.Kind() == KindConcat {
		stack = append(stack, cmd[A]{c.indent, c.mode, l.right})
		l = l.left
	}
	return append(stack, cmd[A]{c.indent, c.mode, l})
}

// fits reports whether next, followed by the pending commands in rest
// (consumed from the end), reaches the end of the current line without
// exceeding rem columns. rest is only read.
func (p *printer[A]) fits(next cmd[A], rest []cmd[A], rem int) bool {
	bidx := len(rest)
	p.scratch = append(p.scratch[:0], next)
	for rem >= 0 {
		n := len(p.scratch)
		if n == 0 {
			if bidx == 0 {
				return true
			}
			bidx--
			p.scratch = append(p.scratch, rest[bidx])
			continue
		}
		c := p.scratch[n-1]
		p.scratch = p.scratch[:n-1]

		switch c.doc.Kind() {
		case KindNil:
		case KindConcat:
			p.scratch = pushConcat(p.scratch, c)
		case KindGroup:
			p.scratch = append(p.scratch, cmd[A]{c.indent, c.mode, c.doc.left})
		case KindNest:
			p.scratch = append(p.scratch, cmd[A]{c.indent + c.doc.indent, c.mode, c.doc.left})
		case KindSpace:
			if c.mode == modeBreak {
				return true
			}
			rem--
		case KindNewline:
			return true
		case KindText:
			rem -= p.measure(c.doc.text)
		case KindAnnotated:
			p.scratch = append(p.scratch, cmd[A]{c.indent, c.mode, c.doc.left})
		}
	}
	return false
}
