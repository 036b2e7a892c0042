// Package typemap maps foreign type spellings to Kantan raw and safe types
package typemap

import (
	"sort"
	"strings"
)

// Mapping describes how one foreign type appears on both binding layers.
// An empty converter means the value passes through unchanged.
type Mapping struct {
	Raw       string // Type used in `extern def` declarations
	Safe      string // Type used in wrapper signatures
	RawToSafe string // Applied to a raw return value
	SafeToRaw string // Applied to a safe argument before the raw call
}

// Table is an immutable lookup from exact foreign spelling to Mapping
type Table struct {
	entries map[string]Mapping
}

// Entry pairs a foreign spelling with its mapping
type Entry struct {
	Foreign string
	Mapping
}

// New builds a table from entries. Later entries win on duplicate keys.
func New(entries []Entry) *Table {
	t := &Table{entries: make(map[string]Mapping, len(entries))}
	for _, e := range entries {
		t.entries[strings.TrimSpace(e.Foreign)] = e.Mapping
	}
	return t
}

// Lookup returns the mapping for a foreign spelling. Only surrounding
// whitespace is trimmed; there is no other normalization.
func (t *Table) Lookup(foreign string) (Mapping, bool) {
	m, ok := t.entries[strings.TrimSpace(foreign)]
	return m, ok
}

// Len returns the number of mapped spellings
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a sorted copy of the table contents
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.entries))
	for k, v := range t.entries {
		entries = append(entries, Entry{Foreign: k, Mapping: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Foreign < entries[j].Foreign
	})
	return entries
}

func identity(raw, safe string) Mapping {
	return Mapping{Raw: raw, Safe: safe}
}

func opaque(name string) Mapping {
	return identity("*"+name, "*"+name)
}

// enum types are passed as plain integers
var enums = []string{
	"LLVMIntPredicate",
	"LLVMRealPredicate",
	"LLVMValueKind",
	"LLVMCallConv",
	"LLVMDLLStorageClass",
	"LLVMLinkage",
	"LLVMVisibility",
	"LLVMOpcode",
	"LLVMUnnamedAddr",
	"LLVMTypeKind",
	"LLVMVerifierFailureAction",
	"LLVMCodeGenOptLevel",
	"LLVMRelocMode",
	"LLVMCodeModel",
	"LLVMCodeGenFileType",
}

// handles maps opaque llvm-sys reference types to Kantan struct names
var handles = map[string]string{
	"LLVMMemoryBufferRef":       "MemoryBuffer",
	"LLVMContextRef":            "Context",
	"LLVMModuleRef":             "Module",
	"LLVMTypeRef":               "Type",
	"LLVMValueRef":              "Value",
	"LLVMBasicBlockRef":         "BasicBlock",
	"LLVMMetadataRef":           "OpaqueMetadata",
	"LLVMNamedMDNodeRef":        "OpaqueNamedMDNode",
	"LLVMValueMetadataEntry":    "OpaqueValueMetadataEntry",
	"LLVMBuilderRef":            "Builder",
	"LLVMDIBuilderRef":          "OpaqueDIBuilder",
	"LLVMModuleProviderRef":     "ModuleProvider",
	"LLVMPassManagerRef":        "PassManager",
	"LLVMPassRegistryRef":       "PassRegistry",
	"LLVMUseRef":                "Use",
	"LLVMDiagnosticInfoRef":     "DiagnosticInfo",
	"LLVMComdatRef":             "Comdat",
	"LLVMModuleFlagEntry":       "OpaqueModuleFlagEntry",
	"LLVMJITEventListenerRef":   "OpaqueJITEventListener",
	"LLVMAttributeRef":          "OpaqueAttributeRef",
	"LLVMTargetMachineRef":      "TargetMachine",
	"LLVMTargetRef":             "Target",
	"LLVMPassManagerBuilderRef": "PassManagerBuilder",
}

// out-parameters of these handle types are mapped as double pointers
var handleOutParams = []string{
	"LLVMMemoryBufferRef",
	"LLVMModuleRef",
	"LLVMTypeRef",
	"LLVMValueRef",
	"LLVMTargetRef",
}

// DefaultEntries returns the built-in llvm-sys to Kantan mapping
func DefaultEntries() []Entry {
	entries := []Entry{
		// no return value
		{"", identity("void", "void")},

		{"u8", Mapping{Raw: "char", Safe: "i32", RawToSafe: "std.char_to_int", SafeToRaw: "std.int_to_char"}},
		{"*mut ::libc::c_char", identity("string", "string")},
		{"*const ::libc::c_char", identity("string", "string")},
		{"*::libc::c_char", identity("string", "string")},
		{"*mut *mut ::libc::c_char", identity("*string", "*string")},
		{"*const *const ::libc::c_char", identity("*string", "*string")},
		{"**::libc::c_char", identity("*string", "*string")},

		// 64-bit quantities do not fit in i32 and travel as pointers
		{"::libc::size_t", Mapping{Raw: "*void", Safe: "i32", RawToSafe: "std.ptr_to_int", SafeToRaw: "std.int_to_ptr"}},
		{"::libc::c_ulonglong", Mapping{Raw: "*void", Safe: "i32", RawToSafe: "std.ptr_to_int", SafeToRaw: "std.int_to_ptr"}},
		{"*mut ::libc::size_t", identity("*i32", "*i32")},
		{"::libc::c_uint", identity("i32", "i32")},
		{"*mut ::libc::c_uint", identity("*i32", "*i32")},
		{"::libc::c_int", identity("i32", "i32")},
		{"*mut ::libc::c_int", identity("*i32", "*i32")},
		{"LLVMBool", Mapping{Raw: "i32", Safe: "bool", RawToSafe: "std.int_to_bool", SafeToRaw: "std.bool_to_int"}},
		{"LLVMAttributeIndex", identity("i32", "i32")},
	}

	for _, e := range enums {
		entries = append(entries, Entry{e, identity("i32", "i32")})
	}
	for ref, name := range handles {
		entries = append(entries, Entry{ref, opaque(name)})
	}
	for _, ref := range handleOutParams {
		entries = append(entries, Entry{"*mut " + ref, opaque("*" + handles[ref])})
	}

	return entries
}

// Default returns a table with the built-in mapping
func Default() *Table {
	return New(DefaultEntries())
}
