package doc

import "fmt"

// Kind identifies the variant of a [Doc] node.
type Kind uint8

const (
	// KindNil contributes nothing.
	KindNil Kind = iota
	// KindConcat renders its left child, then its right child.
	KindConcat
	// KindGroup is laid out flat or broken as a unit.
	KindGroup
	// KindNest increases the indentation of its child.
	KindNest
	// KindSpace is a blank when flat and a line break when broken.
	KindSpace
	// KindNewline is always a line break.
	KindNewline
	// KindText is a literal.
	KindText
	// KindAnnotated tags its child with an annotation.
	KindAnnotated
)

var kindNames = [...]string{
	KindNil:       "nil",
	KindConcat:    "concat",
	KindGroup:     "group",
	KindNest:      "nest",
	KindSpace:     "space",
	KindNewline:   "newline",
	KindText:      "text",
	KindAnnotated: "annotated",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Doc is a node of a document tree annotated with values of type A.
//
// Docs are immutable once built and may be shared freely between trees and
// goroutines. A nil *Doc is equivalent to [Nil]. The zero value is also Nil.
type Doc[A any] struct {
	kind   Kind
	left   *Doc[A] // Concat left, or the only child of Group/Nest/Annotated
	right  *Doc[A] // Concat right
	indent int
	text   string
	ann    A
}

// Kind reports the node variant. A nil receiver reports KindNil.
func (d *Doc[A]) Kind() Kind {
	if d == nil {
		return KindNil
	}
	return d.kind
}

// Children returns the child handles of d. For Group, Nest and Annotated the
// second result is nil. Leaves return two nils.
func (d *Doc[A]) Children() (*Doc[A], *Doc[A]) {
	if d == nil {
		return nil, nil
	}
	return d.left, d.right
}

// Text returns the literal of a KindText node.
func (d *Doc[A]) Text() string {
	if d == nil {
		return ""
	}
	return d.text
}

// Indent returns the offset of a KindNest node.
func (d *Doc[A]) Indent() int {
	if d == nil {
		return 0
	}
	return d.indent
}

// Annotation returns the tag of a KindAnnotated node.
func (d *Doc[A]) Annotation() A {
	if d == nil {
		var zero A
		return zero
	}
	return d.ann
}

// Nil returns the empty document.
func Nil[A any]() *Doc[A] { return &Doc[A]{kind: KindNil} }

// Space returns a soft break: a blank when flat, a newline plus indentation
// when broken.
func Space[A any]() *Doc[A] { return &Doc[A]{kind: KindSpace} }

// Newline returns a hard break, rendered as a newline plus indentation in
// every mode.
func Newline[A any]() *Doc[A] { return &Doc[A]{kind: KindNewline} }

// Text returns a literal. It is written verbatim and never split, so s should
// not contain line breaks; use [Newline] instead.
func Text[A any](s string) *Doc[A] { return &Doc[A]{kind: KindText, text: s} }

// Textf returns a literal built with fmt.Sprintf.
func Textf[A any](format string, args ...any) *Doc[A] {
	return Text[A](fmt.Sprintf(format, args...))
}

// Concat returns l followed by r.
func Concat[A any](l, r *Doc[A]) *Doc[A] {
	return &Doc[A]{kind: KindConcat, left: l, right: r}
}

// Group returns d as a unit that is rendered either entirely flat or broken.
func Group[A any](d *Doc[A]) *Doc[A] { return &Doc[A]{kind: KindGroup, left: d} }

// Nest returns d with its line breaks indented n further columns.
func Nest[A any](n int, d *Doc[A]) *Doc[A] {
	return &Doc[A]{kind: KindNest, indent: n, left: d}
}

// Annotate returns d wrapped in an annotation region tagged with ann.
func Annotate[A any](ann A, d *Doc[A]) *Doc[A] {
	return &Doc[A]{kind: KindAnnotated, ann: ann, left: d}
}
