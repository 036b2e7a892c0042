package parser

import (
	"io"
	"strings"

	"kantan-bindgen/pkg/ast"
)

const (
	blockOpen    = `extern "C" {`
	blockClose   = "}"
	commentStart = "//"
)

// Next parses the next extern block. It returns io.EOF once the remaining
// buffer holds no further block opening.
func (p *Parser) Next() (*ast.Block, error) {
	c := p.cursor

	lowerBound := c.Offset()
	start := c.Index(blockOpen)
	if start < 0 {
		c.Seek(len(c.src))
		return nil, io.EOF
	}

	block := &ast.Block{
		Doc: p.blockDoc(lowerBound, start),
		Pos: c.Position(start),
	}

	c.Seek(start)
	if err := c.Consume(blockOpen); err != nil {
		return nil, err
	}

	for !c.HasPrefix(blockClose) {
		if c.AtEnd() {
			return nil, c.errorf(ErrUnexpectedEndOfInput, blockClose, "")
		}

		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		block.Declarations = append(block.Declarations, decl)
	}

	if err := c.Consume(blockClose); err != nil {
		return nil, err
	}
	return block, nil
}

// blockDoc extracts the comment directly above a block opening. A blank
// line right before the opening means the block is undocumented.
func (p *Parser) blockDoc(lowerBound, start int) string {
	c := p.cursor

	if start-2 >= lowerBound && c.Slice(start-2, start) == "\n\n" {
		return ""
	}

	preceding := c.Slice(lowerBound, start)
	idx := strings.LastIndex(preceding, commentStart)
	if idx < 0 {
		return ""
	}

	doc := preceding[idx+len(commentStart):]
	doc = strings.TrimLeft(doc, "/!")
	return strings.TrimSpace(doc)
}
