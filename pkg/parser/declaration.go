package parser

import (
	"strings"

	"kantan-bindgen/pkg/ast"
)

// Markers of the declaration grammar
const (
	richDocPrefix    = "///"
	plainDocPrefix   = "//"
	deprecatedMarker = "#[deprecated"
	functionStart    = "pub fn"
	returnArrow      = "->"
	declarationEnd   = ";"
)

// parseDeclaration parses one function signature starting at the cursor.
// A deprecated declaration is consumed completely and returned as a sentinel.
func (p *Parser) parseDeclaration() (*ast.Declaration, error) {
	c := p.cursor

	var docs []string
	for c.HasPrefix(richDocPrefix) {
		line, err := p.parseDocLine(richDocPrefix)
		if err != nil {
			return nil, err
		}
		docs = append(docs, line)
	}

	for c.HasPrefix(plainDocPrefix) {
		line, err := p.parseDocLine(plainDocPrefix)
		if err != nil {
			return nil, err
		}
		// llvm-sys has stray commented-out code between declarations
		if strings.Contains(line, returnArrow) {
			continue
		}
		docs = append(docs, line)
	}

	deprecated := false
	if c.HasPrefix(deprecatedMarker) {
		c.ConsumeLine()
		deprecated = true
	}

	c.SkipWhitespace()
	pos := c.Position(c.Offset())
	if err := c.Consume(functionStart); err != nil {
		return nil, err
	}

	name, err := c.ConsumeIdentifier()
	if err != nil {
		return nil, err
	}

	params, err := p.parseParameters()
	if err != nil {
		return nil, err
	}

	ret := ""
	if c.HasPrefix(returnArrow) {
		if err := c.Consume(returnArrow); err != nil {
			return nil, err
		}
		if ret, err = c.ConsumeTypeExpression(); err != nil {
			return nil, err
		}
	}

	if err := c.Consume(declarationEnd); err != nil {
		return nil, err
	}

	if deprecated {
		return &ast.Declaration{Deprecated: true}, nil
	}

	return &ast.Declaration{
		Name:       name,
		Parameters: params,
		ReturnType: ret,
		Doc:        docs,
		Pos:        pos,
	}, nil
}

// parseDocLine consumes a comment marker and the rest of its line
func (p *Parser) parseDocLine(prefix string) (string, error) {
	if err := p.cursor.Consume(prefix); err != nil {
		return "", err
	}
	return p.cursor.ConsumeLine(), nil
}

// parseParameters parses `(name: type, ...)`; a trailing comma is allowed
func (p *Parser) parseParameters() ([]ast.Parameter, error) {
	c := p.cursor

	if err := c.Consume("("); err != nil {
		return nil, err
	}

	var params []ast.Parameter
	for !c.HasPrefix(")") {
		if c.AtEnd() {
			return nil, c.errorf(ErrUnexpectedEndOfInput, ")", "")
		}

		name, err := c.ConsumeIdentifier()
		if err != nil {
			return nil, err
		}
		if err := c.Consume(":"); err != nil {
			return nil, err
		}
		typ, err := c.ConsumeTypeExpression()
		if err != nil {
			return nil, err
		}

		params = append(params, ast.Parameter{Name: name, Type: typ})
		c.ConsumeOptional(",")
	}

	if err := c.Consume(")"); err != nil {
		return nil, err
	}
	return params, nil
}
