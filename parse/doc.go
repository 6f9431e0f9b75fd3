// Package parse converts raw lines of text into typed values.
//
// # Overview
//
// Value is the canonical converter: it understands the built-in scalar types
// (string, bool, integers, floats, time.Duration) and defers to
// encoding.TextUnmarshaler for everything else. It does no I/O and keeps no
// state — it is the pure step between reading a line and validating a value.
//
// # Usage
//
//	n, err := parse.Value[int]("42")
//
// Custom types just implement encoding.TextUnmarshaler:
//
//	type Color struct{ R, G, B uint8 }
//
//	func (c *Color) UnmarshalText(text []byte) error { ... }
//
//	c, err := parse.Value[Color]("#fa7268")
//
// Failed conversions are reported as *Error, carrying the offending input
// and the target type name:
//
//	var perr *parse.Error
//	if errors.As(err, &perr) {
//	    fmt.Println("bad input:", perr.Input)
//	}
package parse
