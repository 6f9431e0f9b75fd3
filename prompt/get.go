package prompt

import (
	"github.com/simonhull/prompto/parse"
)

// Get asks for one line and parses it into a T using parse.Value. A line
// that fails to parse comes back as a *parse.Error — a soft failure; the
// malformed text is discarded, not retried. Hard failures from acquisition
// propagate unchanged.
//
// The empty line is a legal input: if T's parser rejects empty text that
// surfaces as an ordinary parse error, nothing more.
//
// Example:
//
//	age, err := prompt.Get[int](p, "Age: ")
func Get[T any](p *Prompter, msg string) (T, error) {
	return GetFunc(p, msg, parse.Value[T])
}

// GetFunc is Get with a caller-supplied parser, for targets whose textual
// form isn't the canonical one — or that have none.
func GetFunc[T any](p *Prompter, msg string, fn parse.Func[T]) (T, error) {
	var zero T

	raw, err := p.Input(msg)
	if err != nil {
		return zero, err
	}

	return fn(raw)
}

// Valid asks for a T and checks it against validate. A parsed value the
// predicate rejects comes back as a *ValidationError — a soft failure,
// distinct from a parse failure; the value is discarded. The predicate is
// only ever applied to a value that parsed successfully.
//
// Example:
//
//	port, err := prompt.Valid(p, "Port: ", func(n int) bool {
//	    return n > 0 && n < 65536
//	})
func Valid[T any](p *Prompter, msg string, validate func(T) bool) (T, error) {
	v, err := Get[T](p, msg)
	if err != nil {
		return v, err
	}

	if !validate(v) {
		var zero T
		return zero, &ValidationError{Value: v}
	}
	return v, nil
}
