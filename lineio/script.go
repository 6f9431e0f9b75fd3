package lineio

// ScriptSource is an in-memory Source serving a fixed sequence of lines.
// Once the script runs out, every ReadLine returns ErrEndOfInput.
//
// It exists so prompts can be driven from scripted input — automated runs,
// replayed sessions, and tests. The read counter makes retry behavior
// observable.
//
// Example:
//
//	src := lineio.NewScriptSource("abc", "150", "42")
//	p := prompt.New(src, lineio.NewWriterSink(&buf), nil)
type ScriptSource struct {
	lines []string
	next  int
	reads int
}

// NewScriptSource creates a Source that yields the given lines in order.
// Lines are taken as-is; no terminator handling applies.
func NewScriptSource(lines ...string) *ScriptSource {
	return &ScriptSource{lines: lines}
}

// ReadLine returns the next scripted line, or ErrEndOfInput when the script
// is exhausted.
func (s *ScriptSource) ReadLine() (string, error) {
	s.reads++
	if s.next >= len(s.lines) {
		return "", ErrEndOfInput
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}

// Reads reports how many ReadLine calls have been made, including calls
// made after exhaustion.
func (s *ScriptSource) Reads() int {
	return s.reads
}
