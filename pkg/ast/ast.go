// Package ast defines the structures produced by parsing foreign declaration blocks
package ast

import (
	"strings"
)

// Position represents a position in the source document
type Position struct {
	Line   int
	Column int
	Offset int
}

// Parameter is one `name: type` entry of a declaration's parameter list
type Parameter struct {
	Name string
	Type string // Foreign type spelling, trimmed
}

// Declaration represents a single `pub fn` signature inside an extern block
type Declaration struct {
	Name       string
	Parameters []Parameter
	ReturnType string   // Empty means the function returns no value
	Doc        []string // Documentation lines without comment markers
	Deprecated bool
	Pos        Position
}

// IsSentinel reports whether the declaration carries no usable fields.
// Deprecated declarations are parsed only to keep the cursor in sync.
func (d *Declaration) IsSentinel() bool {
	return d == nil || d.Deprecated || d.Name == ""
}

// HasReturn reports whether the declaration returns a value
func (d *Declaration) HasReturn() bool {
	return strings.TrimSpace(d.ReturnType) != ""
}

// Signature renders the declaration back into foreign syntax
func (d *Declaration) Signature() string {
	if d.IsSentinel() {
		return ""
	}

	params := make([]string, 0, len(d.Parameters))
	for _, p := range d.Parameters {
		params = append(params, p.Name+": "+p.Type)
	}

	sig := "pub fn " + d.Name + "(" + strings.Join(params, ", ") + ")"
	if d.HasReturn() {
		sig += " -> " + d.ReturnType
	}
	return sig + ";"
}

// Block represents one `extern "C" { ... }` block
type Block struct {
	Doc          string // Comment immediately preceding the block, if any
	Declarations []*Declaration
	Pos          Position
}

// Usable returns the declarations that are not sentinels, in source order
func (b *Block) Usable() []*Declaration {
	var decls []*Declaration
	for _, d := range b.Declarations {
		if !d.IsSentinel() {
			decls = append(decls, d)
		}
	}
	return decls
}

// CountDeprecated returns the number of deprecated declarations in the block
func (b *Block) CountDeprecated() int {
	count := 0
	for _, d := range b.Declarations {
		if d != nil && d.Deprecated {
			count++
		}
	}
	return count
}
