// Package lineio provides the line-oriented I/O contracts behind prompting.
//
// # Overview
//
// A Source yields successive lines of text (terminator stripped) and reports
// exactly two kinds of hard failure: ErrEndOfInput when the stream is
// exhausted and *IOError when the device faults. A Sink accepts text and
// reports *IOError on a failed write. Nothing else about the device leaks
// through — terminals, files, pipes, and in-memory buffers all look alike
// to the prompt layer.
//
// # Usage
//
// Wrap standard streams:
//
//	src := lineio.NewReaderSource(os.Stdin)
//	sink := lineio.NewWriterSink(os.Stdout)
//
// Or drive prompts from scripted input:
//
//	src := lineio.NewScriptSource("yes", "42")
//
// # Failure classification
//
// Check exhaustion with errors.Is and device faults with errors.As:
//
//	if errors.Is(err, lineio.ErrEndOfInput) { ... }
//	var ioErr *lineio.IOError
//	if errors.As(err, &ioErr) { ... }
package lineio
