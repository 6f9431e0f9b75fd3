// Package lineio defines the line-oriented input and output contracts that
// prompting is built on, decoupled from any concrete device.
package lineio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEndOfInput reports that a Source has no more lines to give.
// Retry loops treat it as terminal.
var ErrEndOfInput = errors.New("end of input")

// IOError reports a device-level read or write failure.
type IOError struct {
	Op  string // "read line", "write", "flush"
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("lineio: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Source yields successive lines of text.
// Implementations are not required to be safe for concurrent use.
type Source interface {
	// ReadLine returns the next line with its terminator stripped.
	// It returns ErrEndOfInput once the source is exhausted and an
	// *IOError if the underlying device fails.
	ReadLine() (string, error)
}

// Sink accepts text for display to the user.
// Implementations are not required to be safe for concurrent use.
type Sink interface {
	// WriteText writes text to the sink, returning an *IOError if the
	// underlying device fails.
	WriteText(text string) error
}

// ReaderSource adapts any io.Reader into a Source.
// It reads at most one line ahead; bufio supplies the internal buffering.
type ReaderSource struct {
	br *bufio.Reader
}

// NewReaderSource creates a Source reading lines from r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{br: bufio.NewReader(r)}
}

// ReadLine reads one line from the underlying reader. A final line without
// a terminator still counts as a line; ErrEndOfInput is only returned once
// no text remains.
func (s *ReaderSource) ReadLine() (string, error) {
	line, err := s.br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return stripTerminator(line), nil
			}
			return "", ErrEndOfInput
		}
		return "", &IOError{Op: "read line", Err: err}
	}
	return stripTerminator(line), nil
}

// stripTerminator removes a trailing LF or CRLF.
func stripTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// flusher is the optional flush capability of buffered writers.
type flusher interface {
	Flush() error
}

// WriterSink adapts any io.Writer into a Sink.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a Sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// WriteText writes text to the underlying writer. If the writer is buffered
// (exposes Flush), the sink flushes so a prompt is visible before the next
// blocking read.
func (s *WriterSink) WriteText(text string) error {
	if _, err := io.WriteString(s.w, text); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	if f, ok := s.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return &IOError{Op: "flush", Err: err}
		}
	}
	return nil
}
