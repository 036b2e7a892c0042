// Package generator turns parsed declaration blocks into raw extern
// declarations and safe wrappers. It performs no I/O: rendering lives in
// the formatter package and skip diagnostics are returned to the caller.
package generator

import (
	"fmt"

	"kantan-bindgen/pkg/ast"
	"kantan-bindgen/pkg/typemap"
	"kantan-bindgen/pkg/utils"
	"kantan-bindgen/pkg/whitelist"
)

// Param is a typed parameter of a generated declaration
type Param struct {
	Name string
	Type string
}

// Extern is a raw `extern def` declaration using raw types only
type Extern struct {
	Name       string // Original foreign name
	Params     []Param
	ReturnType string
}

// Arg is one argument of the raw call inside a wrapper
type Arg struct {
	Name      string
	Converter string // Safe-to-raw converter, empty for identity
}

// Wrapper is a safe `def` function around an Extern
type Wrapper struct {
	Name       string // Transformed name
	Doc        []string
	Params     []Param
	ReturnType string
	Target     string // Raw declaration called by the body
	Args       []Arg
	Returns    bool   // False emits a bare call statement
	Converter  string // Raw-to-safe converter for the result
}

// Result is the generated output for one block
type Result struct {
	Doc      string
	Externs  []Extern
	Wrappers []Wrapper
	Skipped  []string // Declarations dropped by the raw pass
}

// UnmappedTypeError reports a foreign type missing from the mapping table
type UnmappedTypeError struct {
	Declaration string
	Type        string
}

func (e *UnmappedTypeError) Error() string {
	return fmt.Sprintf("%s: type %q could not be mapped", e.Declaration, e.Type)
}

// Generator holds the immutable configuration shared by both passes
type Generator struct {
	whitelist *whitelist.Whitelist
	types     *typemap.Table
}

// New creates a generator from a whitelist and a type table
func New(wl *whitelist.Whitelist, types *typemap.Table) *Generator {
	return &Generator{
		whitelist: wl,
		types:     types,
	}
}

// NewDefault creates a generator with the built-in whitelist and table
func NewDefault() *Generator {
	return New(whitelist.Default(), typemap.Default())
}

// Generate runs the raw pass and then the safe pass over a block
func (g *Generator) Generate(block *ast.Block) *Result {
	result := &Result{Doc: block.Doc}
	decls := g.eligible(block)

	for _, decl := range decls {
		ext, err := g.extern(decl)
		if err != nil {
			result.Skipped = append(result.Skipped, decl.Name)
			continue
		}
		result.Externs = append(result.Externs, *ext)
	}

	// unmapped safe types are skipped without a diagnostic
	for _, decl := range decls {
		w, err := g.wrapper(decl)
		if err != nil {
			continue
		}
		result.Wrappers = append(result.Wrappers, *w)
	}

	return result
}

// eligible returns the whitelisted, non-sentinel declarations in order
func (g *Generator) eligible(block *ast.Block) []*ast.Declaration {
	var decls []*ast.Declaration
	for _, decl := range block.Usable() {
		if g.whitelist.Contains(decl.Name) {
			decls = append(decls, decl)
		}
	}
	return decls
}

func (g *Generator) extern(decl *ast.Declaration) (*Extern, error) {
	ret, err := g.lookup(decl, decl.ReturnType)
	if err != nil {
		return nil, err
	}

	params, err := g.mapParams(decl, func(m typemap.Mapping) string { return m.Raw })
	if err != nil {
		return nil, err
	}

	return &Extern{
		Name:       decl.Name,
		Params:     params,
		ReturnType: ret.Raw,
	}, nil
}

func (g *Generator) wrapper(decl *ast.Declaration) (*Wrapper, error) {
	ret, err := g.lookup(decl, decl.ReturnType)
	if err != nil {
		return nil, err
	}

	params, err := g.mapParams(decl, func(m typemap.Mapping) string { return m.Safe })
	if err != nil {
		return nil, err
	}

	args := make([]Arg, 0, len(decl.Parameters))
	for _, p := range decl.Parameters {
		m, _ := g.types.Lookup(p.Type)
		args = append(args, Arg{
			Name:      utils.TransformName(p.Name),
			Converter: m.SafeToRaw,
		})
	}

	w := &Wrapper{
		Name:       utils.TransformName(decl.Name),
		Doc:        decl.Doc,
		Params:     params,
		ReturnType: ret.Safe,
		Target:     decl.Name,
		Args:       args,
		Returns:    decl.HasReturn(),
	}
	if w.Returns {
		w.Converter = ret.RawToSafe
	}
	return w, nil
}

// mapParams maps every parameter in order and stops at the first miss
func (g *Generator) mapParams(decl *ast.Declaration, side func(typemap.Mapping) string) ([]Param, error) {
	params := make([]Param, 0, len(decl.Parameters))
	for _, p := range decl.Parameters {
		m, err := g.lookup(decl, p.Type)
		if err != nil {
			return nil, err
		}
		params = append(params, Param{
			Name: utils.TransformName(p.Name),
			Type: side(m),
		})
	}
	return params, nil
}

func (g *Generator) lookup(decl *ast.Declaration, foreign string) (typemap.Mapping, error) {
	m, ok := g.types.Lookup(foreign)
	if !ok {
		return typemap.Mapping{}, &UnmappedTypeError{Declaration: decl.Name, Type: foreign}
	}
	return m, nil
}
