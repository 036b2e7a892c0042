package formatter

import (
	"bytes"
	"strings"
	"testing"

	"kantan-bindgen/pkg/generator"
)

// createTestResult creates a generated block for an add instruction builder
func createTestResult() *generator.Result {
	params := []generator.Param{
		{Name: "lhs", Type: "*Value"},
		{Name: "rhs", Type: "*Value"},
		{Name: "name", Type: "string"},
	}

	return &generator.Result{
		Doc: "Instruction builders",
		Externs: []generator.Extern{
			{Name: "LLVMBuildAdd", Params: params, ReturnType: "*Value"},
		},
		Wrappers: []generator.Wrapper{
			{
				Name:       "build_add",
				Doc:        []string{"Build an integer addition."},
				Params:     params,
				ReturnType: "*Value",
				Target:     "LLVMBuildAdd",
				Args:       []generator.Arg{{Name: "lhs"}, {Name: "rhs"}, {Name: "name"}},
				Returns:    true,
			},
		},
	}
}

func TestNew(t *testing.T) {
	formatter := New()
	if formatter == nil {
		t.Fatal("New() should not return nil")
	}
}

func TestFormatBlock(t *testing.T) {
	formatter := New()
	result := formatter.FormatBlock(createTestResult())

	expected := `// Instruction builders
extern def LLVMBuildAdd(lhs: *Value, rhs: *Value, name: string): *Value;

// Build an integer addition.
def build_add(lhs: *Value, rhs: *Value, name: string): *Value {
    return LLVMBuildAdd(lhs, rhs, name);
}

`
	if result != expected {
		t.Errorf("Unexpected block output.\nExpected:\n%s\nGot:\n%s", expected, result)
	}
}

func TestFormatBlockEmpty(t *testing.T) {
	formatter := New()

	if result := formatter.FormatBlock(&generator.Result{}); result != "\n" {
		t.Errorf("Expected a lone separator line, got %q", result)
	}
	if result := formatter.FormatBlock(&generator.Result{Doc: "Core"}); result != "// Core\n\n" {
		t.Errorf("Expected comment and separator, got %q", result)
	}
}

func TestFormatExtern(t *testing.T) {
	formatter := New()

	tests := []struct {
		name     string
		ext      generator.Extern
		expected string
	}{
		{
			name:     "no parameters",
			ext:      generator.Extern{Name: "LLVMShutdown", ReturnType: "void"},
			expected: "extern def LLVMShutdown(): void;",
		},
		{
			name: "converted types",
			ext: generator.Extern{
				Name:       "LLVMConstInt",
				Params:     []generator.Param{{Name: "int_ty", Type: "*Type"}, {Name: "n", Type: "*void"}, {Name: "sign_extend", Type: "i32"}},
				ReturnType: "*Value",
			},
			expected: "extern def LLVMConstInt(int_ty: *Type, n: *void, sign_extend: i32): *Value;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := formatter.FormatExtern(tt.ext); result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestFormatWrapper(t *testing.T) {
	formatter := New()

	tests := []struct {
		name     string
		wrapper  generator.Wrapper
		expected string
	}{
		{
			name: "void call",
			wrapper: generator.Wrapper{
				Name:       "dispose_module",
				Params:     []generator.Param{{Name: "m", Type: "*Module"}},
				ReturnType: "void",
				Target:     "LLVMDisposeModule",
				Args:       []generator.Arg{{Name: "m"}},
			},
			expected: "def dispose_module(m: *Module): void {\n    LLVMDisposeModule(m);\n}\n",
		},
		{
			name: "converted result",
			wrapper: generator.Wrapper{
				Name:       "verify_module",
				Params:     []generator.Param{{Name: "m", Type: "*Module"}},
				ReturnType: "bool",
				Target:     "LLVMVerifyModule",
				Args:       []generator.Arg{{Name: "m"}},
				Returns:    true,
				Converter:  "std.int_to_bool",
			},
			expected: "def verify_module(m: *Module): bool {\n    return std.int_to_bool(LLVMVerifyModule(m));\n}\n",
		},
		{
			name: "converted arguments",
			wrapper: generator.Wrapper{
				Name:       "const_int",
				Params:     []generator.Param{{Name: "n", Type: "i32"}, {Name: "sign_extend", Type: "bool"}},
				ReturnType: "*Value",
				Target:     "LLVMConstInt",
				Args: []generator.Arg{
					{Name: "n", Converter: "std.int_to_ptr"},
					{Name: "sign_extend", Converter: "std.bool_to_int"},
				},
				Returns: true,
			},
			expected: "def const_int(n: i32, sign_extend: bool): *Value {\n    return LLVMConstInt(std.int_to_ptr(n), std.bool_to_int(sign_extend));\n}\n",
		},
		{
			name: "doc with empty line",
			wrapper: generator.Wrapper{
				Name:       "shutdown",
				Doc:        []string{"Deallocate and destroy all static variables.", "", "Call at exit."},
				ReturnType: "void",
				Target:     "LLVMShutdown",
			},
			expected: "// Deallocate and destroy all static variables.\n//\n// Call at exit.\ndef shutdown(): void {\n    LLVMShutdown();\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := formatter.FormatWrapper(tt.wrapper); result != tt.expected {
				t.Errorf("Expected:\n%s\nGot:\n%s", tt.expected, result)
			}
		})
	}
}

func TestWriteSkipped(t *testing.T) {
	formatter := New()
	var buf bytes.Buffer

	if err := formatter.WriteSkipped(&buf, []string{"LLVMBuildFAdd", "LLVMConstReal"}); err != nil {
		t.Fatalf("WriteSkipped failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "LLVMBuildFAdd was skipped, because a type could not be mapped" {
		t.Errorf("Unexpected diagnostic: %q", lines[0])
	}
}

func TestWriteBlock(t *testing.T) {
	formatter := New()
	var buf bytes.Buffer

	if err := formatter.WriteBlock(&buf, createTestResult()); err != nil {
		t.Fatalf("WriteBlock failed: %v", err)
	}
	if buf.String() != formatter.FormatBlock(createTestResult()) {
		t.Error("Expected WriteBlock to match FormatBlock")
	}
}

func TestGetIndent(t *testing.T) {
	formatter := New()

	tests := []struct {
		depth    int
		expected string
	}{
		{0, ""},
		{1, "    "},
		{2, "        "},
	}

	for _, test := range tests {
		result := formatter.getIndent(test.depth)
		if result != test.expected {
			t.Errorf("Expected indent for depth %d to be '%s', got '%s'", test.depth, test.expected, result)
		}
	}
}
