package doc

import (
	"io"
	"strings"
)

// Sink is the destination of a render. It may consume only part of s and
// report how much it took; the engine retries with the remainder.
//
// Any io.StringWriter is a Sink, including *strings.Builder, *bytes.Buffer,
// *bufio.Writer and *os.File.
type Sink interface {
	WriteString(s string) (int, error)
}

// Annotator is implemented by sinks that react to annotation regions. Pushes
// and pops are always balanced and properly nested. A pop restores whatever
// was active before the matching push.
type Annotator[A any] interface {
	PushAnnotation(ann A) error
	PopAnnotation() error
}

// WriteAll writes the whole of str to s, looping over partial writes. It
// stops at the first error, which is returned unchanged. A write that makes
// no progress without reporting an error fails with io.ErrNoProgress.
func WriteAll(s Sink, str string) error {
	for str != "" {
		n, err := s.WriteString(str)
		if err != nil {
			return err
		}
		if n <= 0 {
			return io.ErrNoProgress
		}
		str = str[n:]
	}
	return nil
}

type writerSink struct {
	w io.Writer
}

// WriterSink adapts an io.Writer to a [Sink].
func WriterSink(w io.Writer) Sink {
	if s, ok := w.(Sink); ok {
		return s
	}
	return writerSink{w: w}
}

func (s writerSink) WriteString(str string) (int, error) {
	return s.w.Write([]byte(str))
}

var spaces = strings.Repeat(" ", 128)

func writeSpaces(s Sink, n int) error {
	for n > 0 {
		chunk := min(n, len(spaces))
		w, err := s.WriteString(spaces[:chunk])
		if err != nil {
			return err
		}
		if w <= 0 {
			return io.ErrNoProgress
		}
		n -= w
	}
	return nil
}

func writeNewline(s Sink, indent int) error {
	if err := WriteAll(s, "\n"); err != nil {
		return err
	}
	return writeSpaces(s, indent)
}
