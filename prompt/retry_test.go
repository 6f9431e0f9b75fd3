package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/prompto/lineio"
)

func inRange(x int) bool { return 1 <= x && x <= 100 }

func TestRPromptRetriesUntilValid(t *testing.T) {
	// "abc" fails parse, "150" fails validation, "42" passes both.
	p, src, out := newTestPrompter(nil, "abc", "150", "42")

	n, err := RPrompt(p, "1-100: ", inRange)
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	assert.Equal(t, 3, src.Reads(), "N invalid lines + 1 valid line = N+1 reads")

	// The full prompt precedes every attempt, including retries.
	assert.Equal(t, 3, strings.Count(out.String(), "1-100: "))
	// Feedback follows every soft failure.
	assert.Equal(t, 2, strings.Count(out.String(), defaultFeedback))
}

func TestRPromptNoRetryOnFirstValid(t *testing.T) {
	p, src, out := newTestPrompter(nil, "42", "unread")

	n, err := RPrompt(p, "1-100: ", inRange)
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	assert.Equal(t, 1, src.Reads())
	assert.Equal(t, "1-100: ", out.String())
}

func TestRPromptEndOfInput(t *testing.T) {
	p, src, _ := newTestPrompter(nil, "abc", "150")

	_, err := RPrompt(p, "1-100: ", inRange)

	assert.ErrorIs(t, err, lineio.ErrEndOfInput)
	assert.Equal(t, 3, src.Reads(), "exhaustion is terminal, never retried")
}

func TestRPromptDeviceFaultDistinctFromEndOfInput(t *testing.T) {
	fault := errors.New("tty vanished")
	p := New(
		lineio.NewReaderSource(&failingReader{err: fault}),
		lineio.NewWriterSink(&strings.Builder{}),
		nil,
	)

	_, err := RPrompt(p, "1-100: ", inRange)

	var ioErr *lineio.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.ErrorIs(t, err, fault)
	assert.NotErrorIs(t, err, lineio.ErrEndOfInput)
}

func TestRPromptFeedbackWriteFaultIsTerminal(t *testing.T) {
	// The sink accepts the first prompt, then dies; the feedback write
	// after the soft failure must terminate the loop.
	sink := &dyingSink{failAfter: 1}
	p := New(lineio.NewScriptSource("abc", "42"), sink, nil)

	_, err := RPrompt(p, "N: ", inRange)

	var ioErr *lineio.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestPromptNeverReturnsInvalid(t *testing.T) {
	p, _, _ := newTestPrompter(nil, "0", "101", "-3", "7")

	n := Prompt(p, "1-100: ", inRange)
	assert.Equal(t, 7, n)
	assert.True(t, inRange(n))
}

func TestPromptForgivingOnExhaustion(t *testing.T) {
	p, src, _ := newTestPrompter(nil)

	n := Prompt(p, "1-100: ", inRange)
	assert.Equal(t, 0, n, "terminal failure collapses into the zero value")
	assert.Equal(t, 1, src.Reads())
}

func TestPromptForgivingOnDeviceFault(t *testing.T) {
	p := New(
		lineio.NewReaderSource(&failingReader{err: errors.New("boom")}),
		lineio.NewWriterSink(&strings.Builder{}),
		nil,
	)

	assert.Equal(t, "", Prompt(p, "Name: ", func(string) bool { return true }))
}

// failingReader always reports a device fault.
type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

// dyingSink accepts failAfter writes, then faults forever.
type dyingSink struct {
	failAfter int
	writes    int
}

func (s *dyingSink) WriteText(string) error {
	s.writes++
	if s.writes > s.failAfter {
		return &lineio.IOError{Op: "write", Err: errors.New("sink died")}
	}
	return nil
}
