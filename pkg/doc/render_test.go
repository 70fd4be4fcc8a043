package doc

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/pretty/pkg/observability"
)

var (
	text    = Text[string]
	space   = Space[string]
	newline = Newline[string]
	cat     = Cat[string]
)

func render(t *testing.T, d *Doc[string], width int, opts ...Option) string {
	t.Helper()
	var b strings.Builder
	if err := Render(d, width, &b, opts...); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}

func words(ws ...string) *Doc[string] {
	docs := make([]*Doc[string], len(ws))
	for i, w := range ws {
		docs[i] = text(w)
	}
	return Join(space(), docs...)
}

// list builds a bracketed, comma-separated list of items.
func list(items ...*Doc[string]) *Doc[string] {
	return Enclose("[", "]", 2, Join(cat(text(","), space()), items...))
}

func TestRender(t *testing.T) {
	helloWorld := Group(cat(text("hello"), space(), text("world")))

	tests := []struct {
		name  string
		doc   *Doc[string]
		width int
		want  string
	}{
		{
			name:  "group fits",
			doc:   helloWorld,
			width: 80,
			want:  "hello world",
		},
		{
			name:  "group breaks",
			doc:   helloWorld,
			width: 5,
			want:  "hello\nworld",
		},
		{
			name:  "exact fit",
			doc:   helloWorld,
			width: 11,
			want:  "hello world",
		},
		{
			name:  "nested indentation",
			doc:   Nest(2, Group(cat(text("a"), space(), text("b")))),
			width: 1,
			want:  "a\n  b",
		},
		{
			name:  "trailing text counts against the group",
			doc:   cat(Group(cat(text("a"), space(), text("b"))), text("cccc")),
			width: 4,
			want:  "a\nbcccc",
		},
		{
			name:  "lookahead stops at a hard break",
			doc:   cat(Group(cat(text("a"), space(), text("b"))), newline(), text("cccc")),
			width: 4,
			want:  "a b\ncccc",
		},
		{
			name:  "inner group flattened by fitting outer group",
			doc:   Group(cat(text("aaa"), space(), Group(cat(text("b"), space(), text("c"))))),
			width: 7,
			want:  "aaa b c",
		},
		{
			name:  "inner group decided on its own line",
			doc:   Group(cat(text("aaa"), space(), Group(cat(text("b"), space(), text("c"))))),
			width: 6,
			want:  "aaa\nb c",
		},
		{
			name:  "space outside any group breaks",
			doc:   words("a", "b"),
			width: 80,
			want:  "a\nb",
		},
		{
			name:  "hard break inside flat group",
			doc:   Group(cat(text("a"), newline(), text("b"))),
			width: 80,
			want:  "a\nb",
		},
		{
			name:  "hard break re-breaks committed flat content",
			doc:   Group(cat(text("aa"), newline(), text("bbbb"), space(), text("cc"))),
			width: 6,
			want:  "aa\nbbbb\ncc",
		},
		{
			name:  "hard break keeps flat content that still fits",
			doc:   Group(cat(text("aa"), newline(), text("bbbb"), space(), text("cc"))),
			width: 10,
			want:  "aa\nbbbb cc",
		},
		{
			name:  "hard break indents",
			doc:   Nest(4, cat(text("a"), newline(), text("b"))),
			width: 80,
			want:  "a\n    b",
		},
		{
			name:  "literal wider than the line is kept whole",
			doc:   Group(cat(text("abcdefghij"), space(), text("k"))),
			width: 3,
			want:  "abcdefghij\nk",
		},
		{
			name:  "width zero breaks every group",
			doc:   Group(cat(text("a"), space(), text("b"))),
			width: 0,
			want:  "a\nb",
		},
		{
			name:  "width zero keeps empty group",
			doc:   cat(Group(Nil[string]()), Group(text(""))),
			width: 0,
			want:  "",
		},
		{
			name:  "negative width behaves like zero",
			doc:   Group(cat(text("a"), space(), text("b"))),
			width: -5,
			want:  "a\nb",
		},
		{
			name:  "nil handles render nothing",
			doc:   cat(nil, text("x"), nil),
			width: 80,
			want:  "x",
		},
		{
			name:  "list flat",
			doc:   list(text("1"), text("2"), text("3")),
			width: 80,
			want:  "[ 1, 2, 3 ]",
		},
		{
			name:  "list broken",
			doc:   list(text("1"), text("2"), text("3")),
			width: 8,
			want:  "[\n  1,\n  2,\n  3\n]",
		},
		{
			name:  "nested list keeps inner flat",
			doc:   list(text("aa"), list(text("b"), text("c")), text("dd")),
			width: 12,
			want:  "[\n  aa,\n  [ b, c ],\n  dd\n]",
		},
		{
			name:  "empty enclosure",
			doc:   Enclose("{", "}", 2, Nil[string]()),
			width: 0,
			want:  "{}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, tt.doc, tt.width, WithMeasure(ByteLen))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Render() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderSharedSubtree(t *testing.T) {
	shared := Group(cat(text("a"), space(), text("b")))
	d := cat(shared, newline(), text("xxxxxxxxx"), shared)

	got := render(t, d, 10)
	want := "a b\nxxxxxxxxxa\nb"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	d := list(text("alpha"), list(text("beta"), text("gamma")), text("delta"))
	for width := 0; width < 40; width++ {
		first := render(t, d, width)
		for i := 0; i < 3; i++ {
			if got := render(t, d, width); got != first {
				t.Fatalf("width %d: render %d = %q, want %q", width, i, got, first)
			}
		}
	}
}

func TestRenderWithoutBreakPoints(t *testing.T) {
	d := cat(
		text("a"),
		Nest(3, text("b")),
		Annotate("red", text("c")),
		Nil[string](),
		Nest(-2, text("d")),
	)
	for _, width := range []int{0, 1, 4, 80} {
		if got := render(t, d, width); got != "abcd" {
			t.Errorf("width %d: Render() = %q, want %q", width, got, "abcd")
		}
	}
}

func TestRenderHardBreakIgnoresWidth(t *testing.T) {
	d := Group(cat(text("a"), newline(), text("b")))
	for _, width := range []int{0, 3, 1000} {
		if got := render(t, d, width); got != "a\nb" {
			t.Errorf("width %d: Render() = %q, want %q", width, got, "a\nb")
		}
	}
}

func TestRenderIndentComposition(t *testing.T) {
	body := func() *Doc[string] {
		return list(text("one"), list(text("two"), text("three")), text("four"))
	}
	for width := 0; width < 30; width++ {
		nested := render(t, Nest(1, Nest(2, cat(text("x"), newline(), body()))), width)
		flat := render(t, Nest(3, cat(text("x"), newline(), body())), width)
		if nested != flat {
			t.Errorf("width %d: Nest(1, Nest(2)) = %q, Nest(3) = %q", width, nested, flat)
		}
	}
}

// Fewer columns never means fewer line breaks for this nested list. Greedy
// layout does not guarantee that for every document, so this only checks the
// one below.
func TestRenderNestedListBreaksAsWidthShrinks(t *testing.T) {
	d := list(
		text("alpha"),
		list(text("b"), list(text("cc"), text("ddd")), text("e")),
		list(text("ffff"), text("g")),
		text("hh"),
	)
	prev := -1
	for width := 60; width >= 0; width-- {
		lines := strings.Count(render(t, d, width), "\n")
		if prev >= 0 && lines < prev {
			t.Fatalf("width %d: %d line breaks, fewer than %d at width %d", width, lines, prev, width+1)
		}
		prev = lines
	}
}

func TestRenderLongChains(t *testing.T) {
	const n = 100000

	left := text("x")
	for i := 0; i < n; i++ {
		left = left.Append(space()).Append(text("x"))
	}
	right := text("x")
	for i := 0; i < n; i++ {
		right = Concat(text("x"), Concat(space(), right))
	}

	for name, d := range map[string]*Doc[string]{"left": left, "right": right} {
		t.Run(name, func(t *testing.T) {
			got := render(t, Group(d), 80)
			if lines := strings.Count(got, "\n"); lines != n {
				t.Errorf("line breaks = %d, want %d", lines, n)
			}
		})
	}
}

func TestRenderDeepNesting(t *testing.T) {
	const depth = 50000
	d := text("x")
	for i := 0; i < depth; i++ {
		d = Group(Annotate("a", Nest(0, d)))
	}
	var s recordSink
	if err := Render(d, 80, &s); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if s.pushes != depth || s.pops != depth {
		t.Errorf("pushes/pops = %d/%d, want %d/%d", s.pushes, s.pops, depth, depth)
	}
}

func TestRenderMeasure(t *testing.T) {
	d := Group(cat(text("日本"), space(), text("x")))

	if got := render(t, d, 6); got != "日本 x" {
		t.Errorf("display width: Render() = %q, want %q", got, "日本 x")
	}
	if got := render(t, d, 6, WithMeasure(ByteLen)); got != "日本\nx" {
		t.Errorf("byte length: Render() = %q, want %q", got, "日本\nx")
	}
	if got := render(t, d, 6, WithMeasure(nil)); got != "日本 x" {
		t.Errorf("nil measure: Render() = %q, want %q", got, "日本 x")
	}
}

// =============================================================================
// Annotations
// =============================================================================

// recordSink logs writes and annotation events, tracking the active
// annotation the way a color sink would.
type recordSink struct {
	events []string
	stack  []string
	active []string // active annotation after each pop
	pushes int
	pops   int
}

func (r *recordSink) WriteString(s string) (int, error) {
	r.events = append(r.events, s)
	return len(s), nil
}

func (r *recordSink) PushAnnotation(a string) error {
	r.pushes++
	r.stack = append(r.stack, a)
	r.events = append(r.events, "push("+a+")")
	return nil
}

func (r *recordSink) PopAnnotation() error {
	r.pops++
	r.stack = r.stack[:len(r.stack)-1]
	current := "reset"
	if len(r.stack) > 0 {
		current = r.stack[len(r.stack)-1]
	}
	r.active = append(r.active, current)
	r.events = append(r.events, "pop")
	return nil
}

func TestRenderAnnotations(t *testing.T) {
	tests := []struct {
		name       string
		doc        *Doc[string]
		wantEvents []string
		wantActive []string
	}{
		{
			name:       "nested regions",
			doc:        Annotate("blue", cat(text("y"), Annotate("red", text("x")))),
			wantEvents: []string{"push(blue)", "y", "push(red)", "x", "pop", "pop"},
			wantActive: []string{"blue", "reset"},
		},
		{
			name:       "outer region closes before following text",
			doc:        cat(Annotate("blue", Annotate("red", text("x"))), text("z")),
			wantEvents: []string{"push(blue)", "push(red)", "x", "pop", "pop", "z"},
			wantActive: []string{"blue", "reset"},
		},
		{
			name:       "inner region closes before sibling text",
			doc:        Annotate("blue", cat(Annotate("red", text("x")), text("y"))),
			wantEvents: []string{"push(blue)", "push(red)", "x", "pop", "y", "pop"},
			wantActive: []string{"blue", "reset"},
		},
		{
			name:       "empty region",
			doc:        cat(Annotate("red", Nil[string]()), text("z")),
			wantEvents: []string{"push(red)", "pop", "z"},
			wantActive: []string{"reset"},
		},
		{
			name: "region spanning a break",
			doc:  Annotate("green", cat(text("a"), newline(), text("b"))),
			wantEvents: []string{
				"push(green)", "a", "\n", "b", "pop",
			},
			wantActive: []string{"reset"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s recordSink
			if err := Render(tt.doc, 80, &s); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if diff := cmp.Diff(tt.wantEvents, s.events); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantActive, s.active); diff != "" {
				t.Errorf("active mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderAnnotationsIgnoredByPlainSink(t *testing.T) {
	d := Annotate("red", cat(text("a"), Annotate("blue", text("b"))))
	if got := render(t, d, 80); got != "ab" {
		t.Errorf("Render() = %q, want %q", got, "ab")
	}
}

// =============================================================================
// Sink errors
// =============================================================================

// failSink fails on the write numbered failAt (1-based).
type failSink struct {
	writes int
	failAt int
	err    error
}

func (f *failSink) WriteString(s string) (int, error) {
	f.writes++
	if f.writes == f.failAt {
		return 0, f.err
	}
	return len(s), nil
}

func (f *failSink) PushAnnotation(string) error { return nil }
func (f *failSink) PopAnnotation() error        { return f.err }

func TestRenderSinkError(t *testing.T) {
	errDisk := errors.New("disk full")
	d := Group(cat(text("a"), space(), text("b"), space(), text("c")))

	for failAt := 1; failAt <= 3; failAt++ {
		s := &failSink{failAt: failAt, err: errDisk}
		err := Render(d, 80, s)
		if err != errDisk {
			t.Errorf("failAt %d: Render() error = %v, want %v", failAt, err, errDisk)
		}
		if s.writes != failAt {
			t.Errorf("failAt %d: writes = %d, render should stop at the first error", failAt, s.writes)
		}
	}
}

func TestRenderAnnotatorError(t *testing.T) {
	errPop := errors.New("pop failed")
	s := &failSink{err: errPop}
	if err := Render(Annotate("x", text("a")), 80, s); err != errPop {
		t.Errorf("Render() error = %v, want %v", err, errPop)
	}
}

// trickleSink consumes at most one byte per write.
type trickleSink struct {
	b strings.Builder
}

func (s *trickleSink) WriteString(str string) (int, error) {
	if str == "" {
		return 0, nil
	}
	s.b.WriteByte(str[0])
	return 1, nil
}

func TestRenderPartialWrites(t *testing.T) {
	d := Nest(3, Group(cat(text("hello"), space(), text("world"))))
	var s trickleSink
	if err := Render(d, 5, &s); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got, want := s.b.String(), "hello\n   world"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

type stuckSink struct{}

func (stuckSink) WriteString(string) (int, error) { return 0, nil }

func TestRenderNoProgress(t *testing.T) {
	if err := Render(text("a"), 80, stuckSink{}); !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("Render() error = %v, want %v", err, io.ErrNoProgress)
	}
}

// =============================================================================
// Hooks
// =============================================================================

type statsHooks struct {
	observability.NoopRenderHooks
	stats observability.Stats
	err   error
}

func (h *statsHooks) OnRenderComplete(_ int, s observability.Stats, _ time.Duration, err error) {
	h.stats = s
	h.err = err
}

func TestRenderReportsStats(t *testing.T) {
	h := &statsHooks{}
	observability.SetRenderHooks(h)
	defer observability.Reset()

	d := cat(
		Group(cat(text("hello"), space(), text("world"))),
		newline(),
		Annotate("x", Group(cat(text("a"), space(), text("b")))),
	)
	render(t, d, 5)

	want := observability.Stats{
		Lines:        2,
		FlatGroups:   1,
		BrokenGroups: 1,
		Annotations:  1,
		PeakDepth:    h.stats.PeakDepth,
	}
	if diff := cmp.Diff(want, h.stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	if h.stats.PeakDepth == 0 {
		t.Error("PeakDepth should be recorded")
	}
}

func TestEncloseAnnotated(t *testing.T) {
	tests := []struct {
		name  string
		width int
		doc   *Doc[string]
		want  []string
	}{
		{
			name:  "empty",
			width: 80,
			doc:   EncloseAnnotated("p", "[", "]", 2, Nil[string]()),
			want:  []string{"push(p)", "[]", "pop"},
		},
		{
			name:  "flat",
			width: 80,
			doc:   EncloseAnnotated("p", "[", "]", 2, Join(text(","), text("a"), text("b"))),
			want:  []string{"push(p)", "[", "pop", " ", "a", ",", "b", " ", "push(p)", "]", "pop"},
		},
		{
			name:  "broken",
			width: 3,
			doc:   EncloseAnnotated("p", "[", "]", 2, Join(text(","), text("a"), text("b"))),
			want:  []string{"push(p)", "[", "pop", "\n", "  ", "a", ",", "b", "\n", "push(p)", "]", "pop"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s recordSink
			if err := Render(tt.doc, tt.width, &s); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, s.events); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
