package document

import (
	"fmt"
	"io"

	"kantan-bindgen/pkg/ast"
	"kantan-bindgen/pkg/formatter"
	"kantan-bindgen/pkg/generator"
	"kantan-bindgen/pkg/logger"
)

// Generator produces bindings for a single block
type Generator interface {
	Generate(block *ast.Block) *generator.Result
}

// Translator runs translation passes and writes generated Kantan code
type Translator struct {
	generator Generator
	formatter *formatter.Formatter
	out       io.Writer
	skipped   []string
	seen      map[string]bool
}

// NewTranslator creates a translator writing to out
func NewTranslator(gen Generator, out io.Writer) *Translator {
	return &Translator{
		generator: gen,
		formatter: formatter.New(),
		out:       out,
		seen:      make(map[string]bool),
	}
}

// TranslationResult summarizes one document pass
type TranslationResult struct {
	Document     string
	Blocks       int
	Declarations int // All parsed declarations, deprecated ones included
	Deprecated   int
	Externs      int
	Wrappers     int
	Skipped      []string // Raw-pass skips in this document
}

// Summary aggregates a whole run
type Summary struct {
	Documents    []*TranslationResult
	Declarations int
	Externs      int
	Wrappers     int
	Skipped      []string // Each skipped name once, first-seen order
}

// Translate parses doc completely and then writes every block's bindings.
// A syntax error aborts before anything from doc is written.
func (t *Translator) Translate(doc *Document) (*TranslationResult, error) {
	blocks, err := doc.Parse()
	if err != nil {
		return nil, err
	}

	result := &TranslationResult{
		Document: doc.GetName(),
		Blocks:   len(blocks),
	}

	for _, block := range blocks {
		generated := t.generator.Generate(block)

		if err := t.formatter.WriteBlock(t.out, generated); err != nil {
			return nil, fmt.Errorf("failed to write bindings for %s: %w", doc.GetName(), err)
		}

		result.Declarations += len(block.Declarations)
		result.Deprecated += block.CountDeprecated()
		result.Externs += len(generated.Externs)
		result.Wrappers += len(generated.Wrappers)
		result.Skipped = append(result.Skipped, generated.Skipped...)
		t.recordSkipped(generated.Skipped)
	}

	logger.Debug("translated document",
		"document", doc.GetName(),
		"blocks", result.Blocks,
		"declarations", result.Declarations,
		"externs", result.Externs,
		"wrappers", result.Wrappers,
		"skipped", len(result.Skipped))

	return result, nil
}

// Skipped returns the names skipped so far, each once
func (t *Translator) Skipped() []string {
	return append([]string(nil), t.skipped...)
}

// Report writes the end-of-run skip diagnostics
func (t *Translator) Report() error {
	return t.formatter.WriteSkipped(t.out, t.skipped)
}

// Run translates docs in order, then writes the skip report. The first
// syntax error stops the run.
func (t *Translator) Run(docs []*Document) (*Summary, error) {
	summary := &Summary{}

	for _, doc := range docs {
		result, err := t.Translate(doc)
		if err != nil {
			return nil, err
		}
		summary.Documents = append(summary.Documents, result)
		summary.Declarations += result.Declarations
		summary.Externs += result.Externs
		summary.Wrappers += result.Wrappers
	}

	if err := t.Report(); err != nil {
		return nil, fmt.Errorf("failed to write skip report: %w", err)
	}
	summary.Skipped = t.Skipped()

	logger.Info("translation finished",
		"documents", len(summary.Documents),
		"functions", summary.Declarations,
		"externs", summary.Externs,
		"wrappers", summary.Wrappers,
		"skipped", len(summary.Skipped))

	return summary, nil
}

func (t *Translator) recordSkipped(names []string) {
	for _, name := range names {
		if t.seen[name] {
			continue
		}
		t.seen[name] = true
		t.skipped = append(t.skipped, name)
	}
}
