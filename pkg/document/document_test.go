package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"kantan-bindgen/pkg/parser"
)

func TestNewFromContent(t *testing.T) {
	content := "extern \"C\" {\n    pub fn LLVMShutdown();\n}\n"
	doc := NewFromContent("core.rs", content)

	if doc.GetName() != "core.rs" {
		t.Errorf("Expected name core.rs, got %s", doc.GetName())
	}
	if doc.GetContent() != content {
		t.Error("Expected content to be kept unchanged")
	}
	if doc.Len() != len(content) {
		t.Errorf("Expected length %d, got %d", len(content), doc.Len())
	}

	blocks, err := doc.Parse()
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(blocks) != 1 || blocks[0].Declarations[0].Name != "LLVMShutdown" {
		t.Errorf("Unexpected blocks: %+v", blocks)
	}
}

func TestNewFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.rs")
	content := "// Targets\nextern \"C\" {\n    pub fn LLVMInitializeX86Target();\n}\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	doc, err := NewFromFile(path)
	if err != nil {
		t.Fatalf("Failed to load document: %v", err)
	}
	if doc.GetName() != path || doc.GetContent() != content {
		t.Errorf("Unexpected document %s", doc.GetName())
	}

	if _, err := NewFromFile(filepath.Join(dir, "missing.rs")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestParseWrapsSyntaxError(t *testing.T) {
	doc := NewFromContent("broken.rs", "extern \"C\" {\n    pub fn LLVMShutdown()\n}\n")

	blocks, err := doc.Parse()
	if blocks != nil {
		t.Error("Expected no blocks on error")
	}
	if !errors.Is(err, parser.ErrUnexpectedToken) {
		t.Fatalf("Expected ErrUnexpectedToken, got %v", err)
	}

	var syntaxErr *parser.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("Expected *parser.SyntaxError in chain, got %T", err)
	}
	if syntaxErr.Source != "broken.rs" {
		t.Errorf("Expected source broken.rs, got %q", syntaxErr.Source)
	}
}
