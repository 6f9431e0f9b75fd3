// Package prompt asks the user for a single validated value, one line at a
// time.
package prompt

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/simonhull/prompto/lineio"
)

// defaultFeedback is written between retry attempts.
const defaultFeedback = "Invalid input! Please try again."

// Prompter reads lines from a source and writes prompts to a sink. It owns
// both handles for its lifetime and never buffers more than one line.
//
// A Prompter is not safe for concurrent use; callers that share one across
// goroutines must synchronize externally.
type Prompter struct {
	source   lineio.Source
	sink     lineio.Sink
	feedback string
	styled   bool
}

// Options configures a Prompter. All fields are optional.
type Options struct {
	// Feedback is the line written between retry attempts.
	// Default: "Invalid input! Please try again."
	Feedback string

	// Quiet suppresses retry feedback entirely.
	Quiet bool

	// Styled renders prompts, hints, and feedback with lipgloss.
	// Default: false, so injected sinks receive prompt text verbatim.
	Styled bool
}

// New creates a Prompter over the given source and sink. A nil opts means
// defaults.
func New(source lineio.Source, sink lineio.Sink, opts *Options) *Prompter {
	if opts == nil {
		opts = &Options{}
	}

	feedback := opts.Feedback
	if feedback == "" {
		feedback = defaultFeedback
	}
	if opts.Quiet {
		feedback = ""
	}

	return &Prompter{
		source:   source,
		sink:     sink,
		feedback: feedback,
		styled:   opts.Styled,
	}
}

// Stdio creates a Prompter over stdin and stdout. When opts is nil, styling
// is enabled only if stdout is a terminal.
func Stdio(opts *Options) *Prompter {
	p := New(lineio.NewReaderSource(os.Stdin), lineio.NewWriterSink(os.Stdout), opts)
	if opts == nil {
		p.styled = term.IsTerminal(int(os.Stdout.Fd()))
	}
	return p
}

// ask writes an already-rendered prompt and reads one line. This is the only
// path to the source and sink; every operation in the package funnels
// through it.
func (p *Prompter) ask(prompt string) (string, error) {
	if err := p.sink.WriteText(prompt); err != nil {
		return "", err
	}
	return p.source.ReadLine()
}

// Input writes msg to the sink and reads one line, terminator stripped.
// It neither parses nor validates. A failed prompt write is a hard failure,
// as is end of input or a device fault on the read.
func (p *Prompter) Input(msg string) (string, error) {
	return p.ask(p.render(promptStyle, msg))
}

// GetLine asks for a line of free text. It is Input under the name the rest
// of the API family uses: the string target needs no parsing, so the two
// behave identically.
func (p *Prompter) GetLine(msg string) (string, error) {
	return p.Input(msg)
}

// GetLineOr asks for a line of free text with a default, displayed as a gray
// hint. An empty response, end of input, or any fault yields the default —
// this is the forgiving call style.
//
// Example:
//
//	modulePath := p.GetLineOr("Module path", "github.com/username/myapp")
//	// Displays: Module path (github.com/username/myapp): _
func (p *Prompter) GetLineOr(msg, defaultValue string) string {
	var hint string
	if defaultValue != "" {
		hint = "(" + defaultValue + ")"
	}

	line, err := p.ask(p.decorate(msg, hint))
	if err != nil {
		return defaultValue
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue
	}
	return line
}

// Confirm asks a yes/no question. Answers y/Y/yes/YES count as yes. An empty
// response, end of input, or any fault yields defaultYes.
//
// Example:
//
//	if p.Confirm("Run go mod tidy?", true) {
//	    // User said yes (or pressed Enter)
//	}
//	// Displays: Run go mod tidy? [Y/n]: _
func (p *Prompter) Confirm(msg string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	line, err := p.ask(p.decorate(msg, hint))
	if err != nil {
		return defaultYes
	}

	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" {
		return defaultYes
	}
	return line == "y" || line == "yes"
}

// writeFeedback writes the retry feedback line, if one is configured.
func (p *Prompter) writeFeedback() error {
	if p.feedback == "" {
		return nil
	}
	return p.sink.WriteText(p.render(feedbackStyle, p.feedback) + "\n")
}
