// Package prompt asks the user for a single validated value from a
// line-oriented input source.
//
// # Overview
//
// A Prompter owns one input source and one output sink (see lineio) and
// layers four fallible steps over them: write the prompt, read one line,
// parse it into the target type, validate the result. Each layer is exposed
// on its own so callers can stop at exactly the guarantee they need:
//
//   - Input / GetLine — raw acquisition, no parsing or validation
//   - Get / GetFunc — acquisition plus typed parsing
//   - Valid — parsing plus a caller-supplied predicate
//   - Prompt / RPrompt — ask again until the input is well-formed
//
// Failures come in two strengths. Soft failures (a line that doesn't parse,
// a value the predicate rejects) are recoverable: the retry operations loop
// past them, everything else reports them and stops. Hard failures (end of
// input, a device fault) terminate even the retry loops. IsSoft and IsHard
// classify any error from this package.
//
// # Usage
//
//	p := prompt.Stdio(nil)
//
//	name, err := p.GetLine("Name: ")
//
//	age, err := prompt.Get[int](p, "Age: ")
//
//	score := prompt.Prompt(p, "1-100: ", func(n int) bool {
//	    return 1 <= n && n <= 100
//	})
//
// Prompt is the forgiving form: any terminal failure collapses into the zero
// value. RPrompt reports the terminal failure instead, preserving the
// distinction between "user closed input" and "device error":
//
//	score, err := prompt.RPrompt(p, "1-100: ", inRange)
//	if errors.Is(err, lineio.ErrEndOfInput) {
//	    // stdin was closed
//	}
//
// # Testing host programs
//
// Construct the Prompter over in-memory streams; nothing in the package
// touches process-global state:
//
//	var out bytes.Buffer
//	p := prompt.New(lineio.NewScriptSource("42"), lineio.NewWriterSink(&out), nil)
//
// # Non-interactive mode
//
// In CI or automated environments, bypass prompting with flags in your CLI
// and only fall back to the Prompter when a value is missing.
package prompt
