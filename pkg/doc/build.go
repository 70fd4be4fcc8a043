package doc

// Append returns d followed by next.
func (d *Doc[A]) Append(next *Doc[A]) *Doc[A] { return Concat(d, next) }

// Grouped is shorthand for Group(d).
func (d *Doc[A]) Grouped() *Doc[A] { return Group(d) }

// Nested is shorthand for Nest(n, d).
func (d *Doc[A]) Nested(n int) *Doc[A] { return Nest(n, d) }

// Annotated is shorthand for Annotate(ann, d).
func (d *Doc[A]) Annotated(ann A) *Doc[A] { return Annotate(ann, d) }

// Cat concatenates docs left to right. The result leans left, exactly as a
// chain of Append calls would.
func Cat[A any](docs ...*Doc[A]) *Doc[A] {
	if len(docs) == 0 {
		return Nil[A]()
	}
	out := docs[0]
	for _, d := range docs[1:] {
		out = Concat(out, d)
	}
	return out
}

// Join concatenates docs with sep between each pair.
func Join[A any](sep *Doc[A], docs ...*Doc[A]) *Doc[A] {
	if len(docs) == 0 {
		return Nil[A]()
	}
	out := docs[0]
	for _, d := range docs[1:] {
		out = Concat(Concat(out, sep), d)
	}
	return out
}

// Enclose builds the usual bracketed layout:
//
//	open body close          (flat)
//
//	open
//	    body                 (broken, body indented by n)
//	close
//
// An empty body yields open and close with nothing between them.
func Enclose[A any](open, close string, n int, body *Doc[A]) *Doc[A] {
	return enclose(Text[A], open, close, n, body)
}

// EncloseAnnotated is Enclose with both delimiters annotated with ann.
func EncloseAnnotated[A any](ann A, open, close string, n int, body *Doc[A]) *Doc[A] {
	delim := func(s string) *Doc[A] { return Annotate(ann, Text[A](s)) }
	return enclose(delim, open, close, n, body)
}

func enclose[A any](delim func(string) *Doc[A], open, close string, n int, body *Doc[A]) *Doc[A] {
	if body.Kind() == KindNil {
		return delim(open + close)
	}
	return Group(Cat(
		delim(open),
		Nest(n, Concat(Space[A](), body)),
		Space[A](),
		delim(close),
	))
}
