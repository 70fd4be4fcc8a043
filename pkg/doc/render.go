package doc

import (
	"time"

	"github.com/matzehuels/pretty/pkg/observability"
)

// Render lays d out for a line width of width columns and writes the result
// to s. If s implements Annotator[A], annotation regions are reported to it.
//
// The only possible failure is a sink error; the first one aborts the render
// and is returned unchanged. Negative widths are treated as zero. Literals
// wider than the remaining line are written as-is.
//
// Render does not modify d, and concurrent renders of the same document are
// safe.
func Render[A any](d *Doc[A], width int, s Sink, opts ...Option) error {
	o := newOptions(opts...)
	p := &printer[A]{
		width:   max(width, 0),
		sink:    s,
		measure: o.measure,
	}
	if a, ok := s.(Annotator[A]); ok {
		p.ann = a
	}

	hooks := observability.Render()
	hooks.OnRenderStart(p.width)
	start := time.Now()
	err := p.run(d)
	hooks.OnRenderComplete(p.width, p.stats, time.Since(start), err)
	return err
}

// printer holds the state of a single render.
type printer[A any] struct {
	width   int
	pos     int      // current output column
	cmds    []cmd[A] // committed work, top of stack is next in document order
	scratch []cmd[A] // reused by fits
	levels  []int    // len(cmds) at the time each open annotation was pushed
	sink    Sink
	ann     Annotator[A]
	measure Measure
	stats   observability.Stats
}

func (p *printer[A]) run(d *Doc[A]) error {
	p.cmds = append(p.cmds, cmd[A]{0, modeBreak, d})
	for len(p.cmds) > 0 {
		n := len(p.cmds)
		c := p.cmds[n-1]
		p.cmds = p.cmds[:n-1]

		if err := p.step(c); err != nil {
			return err
		}
		p.stats.PeakDepth = max(p.stats.PeakDepth, len(p.cmds))

		for k := len(p.levels); k > 0 && p.levels[k-1] == len(p.cmds); k-- {
			p.levels = p.levels[:k-1]
			if p.ann != nil {
				if err := p.ann.PopAnnotation(); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (p *printer[A]) step(c cmd[A]) error {
	switch c.doc.Kind() {
	case KindNil:
	case KindConcat:
		p.cmds = pushConcat(p.cmds, c)
	case KindGroup:
		p.group(c)
	case KindNest:
		p.cmds = append(p.cmds, cmd[A]{c.indent + c.doc.indent, c.mode, c.doc.left})
	case KindSpace:
		if c.mode == modeFlat {
			if err := writeSpaces(p.sink, 1); err != nil {
				return err
			}
			p.pos++
			return nil
		}
		return p.newline(c.indent)
	case KindNewline:
		if err := p.newline(c.indent); err != nil {
			return err
		}
		p.rebreak()
	case KindText:
		if err := WriteAll(p.sink, c.doc.text); err != nil {
			return err
		}
		p.pos += p.measure(c.doc.text)
	case KindAnnotated:
		if p.ann != nil {
			if err := p.ann.PushAnnotation(c.doc.ann); err != nil {
				return err
			}
		}
		p.stats.Annotations++
		p.levels = append(p.levels, len(p.cmds))
		p.cmds = append(p.cmds, cmd[A]{c.indent, c.mode, c.doc.left})
	}
	return nil
}

// group decides how the group in c is laid out. Inside a flat ancestor the
// decision has already been made; otherwise the group is flattened when its
// content, plus whatever follows it on the same line, fits in what is left of
// the line.
func (p *printer[A]) group(c cmd[A]) {
	if c.mode == modeFlat {
		p.cmds = append(p.cmds, cmd[A]{c.indent, modeFlat, c.doc.left})
		return
	}
	next := cmd[A]{c.indent, modeFlat, c.doc.left}
	if p.fits(next, p.cmds, p.width-p.pos) {
		p.stats.FlatGroups++
		p.cmds = append(p.cmds, next)
		return
	}
	p.stats.BrokenGroups++
	p.cmds = append(p.cmds, cmd[A]{c.indent, modeBreak, c.doc.left})
}

func (p *printer[A]) newline(indent int) error {
	if err := writeNewline(p.sink, indent); err != nil {
		return err
	}
	p.pos = max(indent, 0)
	p.stats.Lines++
	return nil
}

// rebreak runs after a hard line break. The flat commands on top of the
// stack were committed on the assumption that the line they belong to would
// not end early; now that it did, they are checked again from the new column
// and switched to break mode if they no longer fit.
func (p *printer[A]) rebreak() {
	n := len(p.cmds)
	start := n
	for start > 0 && p.cmds[start-1].mode == modeFlat {
		start--
	}
	if start == n {
		return
	}
	if p.fits(p.cmds[n-1], p.cmds[:n-1], p.width-p.pos) {
		return
	}
	for i := start; i < n; i++ {
		p.cmds[i].mode = modeBreak
	}
	p.stats.Rebreaks++
}
