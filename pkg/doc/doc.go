// Package doc implements a Wadler-style pretty printer.
//
// # Overview
//
// A [Doc] is an immutable tree describing text together with the places where
// a line may be broken. [Render] lays the tree out for a target width and
// streams the result to a [Sink]: every [Group] is rendered on one line when
// it fits in the remaining width, and with its [Space] nodes turned into
// indented line breaks when it does not.
//
// Basic usage:
//
//	d := doc.Group(doc.Cat(
//	    doc.Text[struct{}]("hello"),
//	    doc.Space[struct{}](),
//	    doc.Text[struct{}]("world"),
//	))
//	fmt.Println(doc.Pretty(d, 80)) // hello world
//	fmt.Println(doc.Pretty(d, 5))  // hello\nworld
//
// # Layout
//
// The engine walks the tree with explicit stacks, so arbitrarily deep or
// wide documents (including long chains built by repeated [Doc.Append])
// never grow the goroutine stack. The flat-or-break decision for a group
// looks past the end of the group at whatever is already queued on the same
// line, so a group followed by a long literal breaks even though the group
// alone would fit.
//
// A [Newline] always breaks. After it, sibling content that had been
// committed to flat rendering on the current line is checked again and
// switched to break mode when it no longer fits.
//
// # Annotations
//
// [Annotate] wraps a subtree in a region tagged with a value of the
// document's annotation type A. Sinks implementing [Annotator] receive
// matched PushAnnotation/PopAnnotation calls around the region's output;
// other sinks ignore annotations. See package term for a color sink.
//
// # Width
//
// Literal width is measured in display columns by default ([DisplayWidth]).
// Use [WithMeasure] with [ByteLen] or [ANSIWidth] for other units.
package doc
