package parser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"kantan-bindgen/pkg/ast"
)

// Cursor walks one immutable text buffer by offset. Every consuming
// primitive skips leading whitespace first, except ConsumeLine.
type Cursor struct {
	src        string
	pos        int
	source     string // Document name used in error positions
	lineStarts []int  // Built lazily by Position
}

// NewCursor creates a cursor positioned at the start of src
func NewCursor(source, src string) *Cursor {
	return &Cursor{src: src, source: source}
}

// Offset returns the current byte offset
func (c *Cursor) Offset() int {
	return c.pos
}

// Seek moves the cursor to an absolute offset, clamped to the buffer
func (c *Cursor) Seek(offset int) {
	switch {
	case offset < 0:
		c.pos = 0
	case offset > len(c.src):
		c.pos = len(c.src)
	default:
		c.pos = offset
	}
}

// AtEnd reports whether only whitespace remains
func (c *Cursor) AtEnd() bool {
	c.SkipWhitespace()
	return c.pos >= len(c.src)
}

// Remaining returns the unconsumed part of the buffer without copying
func (c *Cursor) Remaining() string {
	return c.src[c.pos:]
}

// Slice returns the buffer text between two absolute offsets
func (c *Cursor) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(c.src) {
		end = len(c.src)
	}
	if start >= end {
		return ""
	}
	return c.src[start:end]
}

// SkipWhitespace advances past spaces, tabs and newlines
func (c *Cursor) SkipWhitespace() {
	for c.pos < len(c.src) {
		r, size := utf8.DecodeRuneInString(c.src[c.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		c.pos += size
	}
}

// HasPrefix skips whitespace and reports whether tok comes next
func (c *Cursor) HasPrefix(tok string) bool {
	c.SkipWhitespace()
	return strings.HasPrefix(c.src[c.pos:], tok)
}

// Consume removes the exact literal tok after leading whitespace
func (c *Cursor) Consume(tok string) error {
	c.SkipWhitespace()
	if c.pos >= len(c.src) {
		return c.errorf(ErrUnexpectedEndOfInput, tok, "")
	}
	if !strings.HasPrefix(c.src[c.pos:], tok) {
		found := c.src[c.pos:]
		if len(found) > len(tok) {
			found = found[:len(tok)]
		}
		return c.errorf(ErrUnexpectedToken, tok, found)
	}
	c.pos += len(tok)
	return nil
}

// ConsumeOptional removes tok if present and reports whether it did
func (c *Cursor) ConsumeOptional(tok string) bool {
	if !c.HasPrefix(tok) {
		return false
	}
	c.pos += len(tok)
	return true
}

// ConsumeIdentifier collects a maximal run of letters, digits and underscores
func (c *Cursor) ConsumeIdentifier() (string, error) {
	return c.consumeRun("identifier", isIdentRune)
}

// ConsumeTypeExpression collects a foreign type spelling such as
// `*mut ::libc::c_char`. The result is trimmed.
func (c *Cursor) ConsumeTypeExpression() (string, error) {
	return c.consumeRun("type", isTypeRune)
}

// ConsumeLine returns the text up to the next newline, trimmed, and moves
// past that newline. Without a newline the whole remainder is the line.
func (c *Cursor) ConsumeLine() string {
	rest := c.src[c.pos:]
	idx := strings.IndexByte(rest, '\n')
	if idx < 0 {
		c.pos = len(c.src)
		return strings.TrimSpace(rest)
	}
	c.pos += idx + 1
	return strings.TrimSpace(rest[:idx])
}

// Index returns the absolute offset of the next occurrence of tok, or -1
func (c *Cursor) Index(tok string) int {
	idx := strings.Index(c.src[c.pos:], tok)
	if idx < 0 {
		return -1
	}
	return c.pos + idx
}

// Position converts an absolute offset into a line/column position
func (c *Cursor) Position(offset int) ast.Position {
	if c.lineStarts == nil {
		c.lineStarts = []int{0}
		for i := 0; i < len(c.src); i++ {
			if c.src[i] == '\n' {
				c.lineStarts = append(c.lineStarts, i+1)
			}
		}
	}

	line := sort.SearchInts(c.lineStarts, offset+1) - 1
	if line < 0 {
		line = 0
	}
	return ast.Position{
		Line:   line + 1,
		Column: offset - c.lineStarts[line] + 1,
		Offset: offset,
	}
}

func (c *Cursor) consumeRun(what string, accept func(rune) bool) (string, error) {
	c.SkipWhitespace()
	start := c.pos

	for i := start; i < len(c.src); {
		r, size := utf8.DecodeRuneInString(c.src[i:])
		if !accept(r) {
			run := strings.TrimSpace(c.src[start:i])
			if run == "" {
				_, width := utf8.DecodeRuneInString(c.src[start:])
				return "", c.errorf(ErrUnexpectedToken, what, c.src[start:start+width])
			}
			c.pos = i
			return run, nil
		}
		i += size
	}

	c.pos = len(c.src)
	return "", c.errorf(ErrUnexpectedEndOfInput, what, "")
}

func (c *Cursor) errorf(kind error, expected, found string) *SyntaxError {
	return &SyntaxError{
		Kind:     kind,
		Expected: expected,
		Found:    found,
		Source:   c.source,
		Pos:      c.Position(c.pos),
	}
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isTypeRune(r rune) bool {
	switch r {
	case '*', ':', '_', ' ':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
