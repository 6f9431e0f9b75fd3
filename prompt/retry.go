package prompt

// RPrompt asks for a T until one parses and satisfies validate, writing the
// full prompt before every attempt and the feedback line after every soft
// failure. The loop is intentionally unbounded: only a hard failure — end of
// input, a device fault, or a failed feedback write — terminates it, and
// that specific failure is returned. RPrompt never returns a value the
// predicate rejected.
//
// This is the reporting call style: callers can distinguish "user closed
// input" from "device error".
//
//	n, err := prompt.RPrompt(p, "1-100: ", func(x int) bool {
//	    return 1 <= x && x <= 100
//	})
//	if errors.Is(err, lineio.ErrEndOfInput) { ... }
func RPrompt[T any](p *Prompter, msg string, validate func(T) bool) (T, error) {
	for {
		v, err := Valid(p, msg, validate)
		if err == nil {
			return v, nil
		}
		if IsHard(err) {
			var zero T
			return zero, err
		}
		if ferr := p.writeFeedback(); ferr != nil {
			var zero T
			return zero, ferr
		}
	}
}

// Prompt is RPrompt in the forgiving call style: on a terminal hard failure
// it returns T's zero value and says nothing about which failure it was.
// Callers who must tell "no input" apart from "user entered the zero value"
// want RPrompt.
//
//	n := prompt.Prompt(p, "1-100: ", func(x int) bool {
//	    return 1 <= x && x <= 100
//	})
func Prompt[T any](p *Prompter, msg string, validate func(T) bool) T {
	v, _ := RPrompt(p, msg, validate)
	return v
}
