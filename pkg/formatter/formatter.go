// Package formatter renders generated bindings as Kantan source text
package formatter

import (
	"fmt"
	"io"
	"strings"

	"kantan-bindgen/pkg/generator"
)

// SkipReason is the explanation printed for every skipped declaration
const SkipReason = "because a type could not be mapped"

// Formatter handles Kantan code rendering
type Formatter struct {
	indentSize int
	useSpaces  bool
}

// New creates a new formatter
func New() *Formatter {
	return &Formatter{
		indentSize: 4,
		useSpaces:  true,
	}
}

// FormatBlock renders one block: its comment, the raw declarations, the
// wrappers and a trailing blank separator line.
func (f *Formatter) FormatBlock(result *generator.Result) string {
	var b strings.Builder

	if result.Doc != "" {
		b.WriteString(f.formatComment(strings.Split(result.Doc, "\n"), 0))
	}

	for _, ext := range result.Externs {
		b.WriteString(f.FormatExtern(ext))
		b.WriteString("\n\n")
	}

	for _, w := range result.Wrappers {
		b.WriteString(f.FormatWrapper(w))
	}

	b.WriteString("\n")
	return b.String()
}

// FormatExtern renders a raw declaration without a trailing newline
func (f *Formatter) FormatExtern(ext generator.Extern) string {
	return fmt.Sprintf("extern def %s(%s): %s;", ext.Name, f.formatParams(ext.Params), ext.ReturnType)
}

// FormatWrapper renders a safe wrapper including its doc comment
func (f *Formatter) FormatWrapper(w generator.Wrapper) string {
	var b strings.Builder

	b.WriteString(f.formatComment(w.Doc, 0))
	fmt.Fprintf(&b, "def %s(%s): %s {\n", w.Name, f.formatParams(w.Params), w.ReturnType)

	args := make([]string, 0, len(w.Args))
	for _, a := range w.Args {
		args = append(args, applyConverter(a.Converter, a.Name))
	}
	call := fmt.Sprintf("%s(%s)", w.Target, strings.Join(args, ", "))

	indent := f.getIndent(1)
	if w.Returns {
		fmt.Fprintf(&b, "%sreturn %s;\n", indent, applyConverter(w.Converter, call))
	} else {
		fmt.Fprintf(&b, "%s%s;\n", indent, call)
	}

	b.WriteString("}\n")
	return b.String()
}

// FormatSkipped renders the end-of-run diagnostic line for a declaration
func (f *Formatter) FormatSkipped(name string) string {
	return fmt.Sprintf("%s was skipped, %s", name, SkipReason)
}

// WriteBlock writes a rendered block to w
func (f *Formatter) WriteBlock(w io.Writer, result *generator.Result) error {
	_, err := io.WriteString(w, f.FormatBlock(result))
	return err
}

// WriteSkipped writes one diagnostic line per name
func (f *Formatter) WriteSkipped(w io.Writer, names []string) error {
	for _, name := range names {
		if _, err := fmt.Fprintln(w, f.FormatSkipped(name)); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) formatParams(params []generator.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Name+": "+p.Type)
	}
	return strings.Join(parts, ", ")
}

// formatComment renders lines as `//` comments at the given depth
func (f *Formatter) formatComment(lines []string, depth int) string {
	var b strings.Builder
	indent := f.getIndent(depth)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			b.WriteString(indent + "//\n")
			continue
		}
		b.WriteString(indent + "// " + line + "\n")
	}
	return b.String()
}

// getIndent returns the indentation string for a given depth
func (f *Formatter) getIndent(depth int) string {
	if f.useSpaces {
		return strings.Repeat(" ", depth*f.indentSize)
	}
	return strings.Repeat("\t", depth)
}

func applyConverter(converter, expr string) string {
	if converter == "" {
		return expr
	}
	return converter + "(" + expr + ")"
}
