// Package jsondoc turns JSON input into pretty-printable documents.
//
// Each token is annotated with its lexical [Class] so a color sink can
// highlight keys, strings, numbers and literals differently. Objects and
// arrays become groups: they stay on one line when they fit and otherwise
// put one member per line, indented.
//
//	d, err := jsondoc.Build(strings.NewReader(`{"a":[1,2]}`), 2)
//	fmt.Println(doc.Pretty(d, 80)) // { "a": [ 1, 2 ] }
package jsondoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/matzehuels/pretty/pkg/doc"
	perrors "github.com/matzehuels/pretty/pkg/errors"
)

// Class is the lexical category of a JSON token.
type Class uint8

const (
	Punct Class = iota
	Key
	String
	Number
	Bool
	Null
)

var classNames = [...]string{"punct", "key", "string", "number", "bool", "null"}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "class(" + strconv.Itoa(int(c)) + ")"
}

// ParseClass returns the Class named s.
func ParseClass(s string) (Class, bool) {
	for i, name := range classNames {
		if name == s {
			return Class(i), true
		}
	}
	return 0, false
}

// Classes lists every Class in declaration order.
func Classes() []Class {
	out := make([]Class, len(classNames))
	for i := range out {
		out[i] = Class(i)
	}
	return out
}

// Doc is a JSON document tree.
type Doc = doc.Doc[Class]

// frame is an open object or array.
type frame struct {
	object bool
	items  []*Doc
	key    *Doc // pending key inside an object
}

// Build reads every JSON value from r and returns them as one document,
// separated by line breaks. Object member order is preserved. indent is the
// nesting step for broken objects and arrays.
func Build(r io.Reader, indent int) (*Doc, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var (
		values []*Doc
		stack  []*frame
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if len(stack) > 0 {
				return nil, perrors.New(perrors.ErrCodeInvalidJSON, "unexpected end of input")
			}
			break
		}
		if err != nil {
			return nil, tokenError(err)
		}

		var value *Doc
		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{', '[':
				stack = append(stack, &frame{object: t == '{'})
				continue
			default:
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				value = closeFrame(top, indent)
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].key == nil {
				stack[n-1].key = doc.Annotate(Key, doc.Text[Class](quote(t)))
				continue
			}
			value = doc.Annotate(String, doc.Text[Class](quote(t)))
		case json.Number:
			value = doc.Annotate(Number, doc.Text[Class](t.String()))
		case bool:
			value = doc.Annotate(Bool, doc.Text[Class](strconv.FormatBool(t)))
		case nil:
			value = doc.Annotate(Null, doc.Text[Class]("null"))
		}

		if len(stack) == 0 {
			values = append(values, value)
			continue
		}
		top := stack[len(stack)-1]
		if top.object {
			value = doc.Cat(top.key, punct(":"), doc.Text[Class](" "), value)
			top.key = nil
		}
		top.items = append(top.items, value)
	}

	return doc.Join(doc.Newline[Class](), values...), nil
}

// tokenError classifies a decoder failure: malformed or truncated JSON is
// INVALID_JSON, a failing reader is INVALID_INPUT.
func tokenError(err error) error {
	var (
		syntax   *json.SyntaxError
		mismatch *json.UnmarshalTypeError
	)
	if errors.As(err, &syntax) || errors.As(err, &mismatch) || errors.Is(err, io.ErrUnexpectedEOF) {
		return perrors.Wrap(perrors.ErrCodeInvalidJSON, err, "parse json")
	}
	return perrors.Wrap(perrors.ErrCodeInvalidInput, err, "read input")
}

func closeFrame(f *frame, indent int) *Doc {
	open, close := "[", "]"
	if f.object {
		open, close = "{", "}"
	}
	sep := doc.Concat(punct(","), doc.Space[Class]())
	return doc.EncloseAnnotated(Punct, open, close, indent, doc.Join(sep, f.items...))
}

func punct(s string) *Doc { return doc.Annotate(Punct, doc.Text[Class](s)) }

// quote re-encodes s as a JSON string literal without HTML escaping.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
