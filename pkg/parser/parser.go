// Package parser extracts function signatures from `extern "C"` declaration
// blocks. Only the subset of syntax needed for signatures is understood; any
// structural violation is reported as a *SyntaxError and is fatal.
package parser

import (
	"errors"
	"io"

	"kantan-bindgen/pkg/ast"
)

// Parser is a recursive-descent parser over a single document
type Parser struct {
	cursor *Cursor
}

// NewParser creates a parser positioned at the start of content
func NewParser(source, content string) *Parser {
	return &Parser{cursor: NewCursor(source, content)}
}

// Parse parses every block of a document. Nothing is returned when any
// block is malformed, so callers never see a partial document.
func Parse(source, content string) ([]*ast.Block, error) {
	p := NewParser(source, content)

	var blocks []*ast.Block
	for {
		block, err := p.Next()
		if errors.Is(err, io.EOF) {
			return blocks, nil
		}
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
}
