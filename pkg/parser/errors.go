package parser

import (
	"errors"
	"fmt"

	"kantan-bindgen/pkg/ast"
)

// Error kinds for structural parse failures. Both are fatal for a run.
var (
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
)

// SyntaxError describes malformed or unsupported input at a position
type SyntaxError struct {
	Kind     error  // ErrUnexpectedToken or ErrUnexpectedEndOfInput
	Expected string // What the parser wanted to see
	Found    string // What was actually there (empty at end of input)
	Source   string // Document name
	Pos      ast.Position
}

func (e *SyntaxError) Error() string {
	loc := fmt.Sprintf("%d:%d", e.Pos.Line, e.Pos.Column)
	if e.Source != "" {
		loc = e.Source + ":" + loc
	}

	if e.Kind == ErrUnexpectedEndOfInput {
		if e.Expected != "" {
			return fmt.Sprintf("%s: unexpected end of input, expected %q", loc, e.Expected)
		}
		return loc + ": unexpected end of input"
	}
	return fmt.Sprintf("%s: expected %q, but got %q", loc, e.Expected, e.Found)
}

// Unwrap exposes the error kind so callers can use errors.Is
func (e *SyntaxError) Unwrap() error {
	return e.Kind
}
