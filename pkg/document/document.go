// Package document drives translation passes over input documents. A
// Document is an immutable text buffer; the Translator parses it completely,
// generates bindings block by block and accumulates skip diagnostics for the
// whole run.
package document

import (
	"fmt"
	"os"

	"kantan-bindgen/pkg/ast"
	"kantan-bindgen/pkg/parser"
)

// Document is a read-only input buffer with a name for diagnostics
type Document struct {
	name    string
	content string
}

// NewFromFile creates a new document by loading a local file
func NewFromFile(filename string) (*Document, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return NewFromContent(filename, string(content)), nil
}

// NewFromContent creates a new document from content with a given name
func NewFromContent(name, content string) *Document {
	return &Document{
		name:    name,
		content: content,
	}
}

// GetName returns the document's name (a path or URL)
func (d *Document) GetName() string {
	return d.name
}

// GetContent returns the document text
func (d *Document) GetContent() string {
	return d.content
}

// Len returns the size of the document in bytes
func (d *Document) Len() int {
	return len(d.content)
}

// Parse parses all declaration blocks of the document
func (d *Document) Parse() ([]*ast.Block, error) {
	blocks, err := parser.Parse(d.name, d.content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", d.name, err)
	}
	return blocks, nil
}
