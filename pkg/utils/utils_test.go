package utils

import (
	"testing"
)

func TestTransformName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"LLVMBuildAdd", "build_add"},
		{"LLVMInt1TypeInContext", "int1_type_in_context"},
		{"LLVMModuleCreateWithNameInContext", "module_create_with_name_in_context"},
		{"LLVMShutdown", "shutdown"},
		{"ModuleID", "module_id"},
		{"LHS", "lhs"},
		{"arg1", "arg1"},
		{"C", "c"},
		{"OutMessage", "out_message"},
		{"if", "if_value"},
		{"Return", "return_value"},
		{" LLVMTypeOf ", "type_of"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := TransformName(tt.input)
			if result != tt.expected {
				t.Errorf("TransformName(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTransformNameIdempotent(t *testing.T) {
	for _, name := range []string{"build_add", "int1_type_in_context", "lhs", "module_id"} {
		if result := TransformName(name); result != name {
			t.Errorf("TransformName(%q) = %q, expected unchanged", name, result)
		}
	}
}

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"BuildAdd", "build_add"},
		{"GetTargetFromTriple", "get_target_from_triple"},
		{"PrintModuleToString", "print_module_to_string"},
		{"X86", "x86"},
		{"", ""},
	}

	for _, tt := range tests {
		if result := CamelToSnake(tt.input); result != tt.expected {
			t.Errorf("CamelToSnake(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	for _, kw := range []string{"if", "else", "let", "import", "def", "extern", "return"} {
		if !IsKeyword(kw) {
			t.Errorf("Expected %q to be a keyword", kw)
		}
	}
	if IsKeyword("value") || IsKeyword("If") {
		t.Error("Expected keyword matching to be exact")
	}
}
