package prompt

import (
	"errors"
	"fmt"

	"github.com/simonhull/prompto/lineio"
	"github.com/simonhull/prompto/parse"
)

// ValidationError reports a successfully parsed value that the caller's
// predicate rejected.
type ValidationError struct {
	Value any // the rejected value
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("prompt: validator rejected %v", e.Value)
}

// IsHard reports whether err is terminal for retry loops: end of input or a
// device fault. Hard failures always propagate; no loop in this package
// swallows them.
func IsHard(err error) bool {
	if errors.Is(err, lineio.ErrEndOfInput) {
		return true
	}
	var ioErr *lineio.IOError
	return errors.As(err, &ioErr)
}

// IsSoft reports whether err is a recoverable input failure — malformed text
// or a rejected value — that a retry loop may ask past.
func IsSoft(err error) bool {
	var perr *parse.Error
	if errors.As(err, &perr) {
		return true
	}
	var verr *ValidationError
	return errors.As(err, &verr)
}
