// Package parse converts raw lines of text into typed values.
package parse

import (
	"encoding"
	"fmt"
	"strconv"
	"time"
)

// Func converts one line of raw text into a T.
// Parsers must be deterministic and side-effect free.
type Func[T any] func(raw string) (T, error)

// Error reports a failed conversion from text to a target type.
type Error struct {
	Input  string // the raw text that failed to convert
	Target string // the Go type it was being converted to
	Err    error  // underlying cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %q as %s: %v", e.Input, e.Target, e.Err)
	}
	return fmt.Sprintf("parse %q as %s", e.Input, e.Target)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Value parses raw into a T using T's canonical textual form.
//
// Built-in targets: string (identity, never fails), bool, every int and uint
// width, float32/float64, and time.Duration. Any other type is supported when
// *T implements encoding.TextUnmarshaler. Failures are reported as *Error.
//
// Conversions honor the target exactly: "32.32" is not an int, though "32"
// is a perfectly good float64.
func Value[T any](raw string) (T, error) {
	var v T
	var err error

	switch target := any(&v).(type) {
	case *string:
		*target = raw
	case *bool:
		*target, err = strconv.ParseBool(raw)
	case *int:
		err = parseInt(raw, target, strconv.IntSize)
	case *int8:
		err = parseInt(raw, target, 8)
	case *int16:
		err = parseInt(raw, target, 16)
	case *int32:
		err = parseInt(raw, target, 32)
	case *int64:
		err = parseInt(raw, target, 64)
	case *uint:
		err = parseUint(raw, target, strconv.IntSize)
	case *uint8:
		err = parseUint(raw, target, 8)
	case *uint16:
		err = parseUint(raw, target, 16)
	case *uint32:
		err = parseUint(raw, target, 32)
	case *uint64:
		err = parseUint(raw, target, 64)
	case *float32:
		var f float64
		if f, err = strconv.ParseFloat(raw, 32); err == nil {
			*target = float32(f)
		}
	case *float64:
		*target, err = strconv.ParseFloat(raw, 64)
	case *time.Duration:
		*target, err = time.ParseDuration(raw)
	case encoding.TextUnmarshaler:
		err = target.UnmarshalText([]byte(raw))
	default:
		err = fmt.Errorf("type %T has no textual form", v)
	}

	if err != nil {
		var zero T
		return zero, &Error{Input: raw, Target: fmt.Sprintf("%T", v), Err: err}
	}
	return v, nil
}

// parseInt parses a signed decimal integer of the given width into *target.
func parseInt[I int | int8 | int16 | int32 | int64](raw string, target *I, bits int) error {
	n, err := strconv.ParseInt(raw, 10, bits)
	if err != nil {
		return err
	}
	*target = I(n)
	return nil
}

// parseUint parses an unsigned decimal integer of the given width into *target.
func parseUint[U uint | uint8 | uint16 | uint32 | uint64](raw string, target *U, bits int) error {
	n, err := strconv.ParseUint(raw, 10, bits)
	if err != nil {
		return err
	}
	*target = U(n)
	return nil
}
