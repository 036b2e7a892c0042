// Package utils provides identifier helpers shared by the generator and CLI
package utils

import (
	"regexp"
	"strings"
)

// LibraryPrefix is stripped from foreign names before case conversion
const LibraryPrefix = "LLVM"

// KeywordSuffix is appended to names that collide with Kantan keywords
const KeywordSuffix = "_value"

var (
	upperWordRe  = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	lowerUpperRe = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// reserved words of the Kantan language and of the generated code
var keywords = map[string]bool{
	"if":     true,
	"else":   true,
	"let":    true,
	"import": true,
	"def":    true,
	"extern": true,
	"return": true,
}

// TransformName turns a foreign identifier into a Kantan one:
// LLVMBuildAdd becomes build_add and if becomes if_value.
func TransformName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, LibraryPrefix)
	name = CamelToSnake(name)

	if IsKeyword(name) {
		name += KeywordSuffix
	}
	return name
}

// CamelToSnake inserts underscores at case boundaries and lowercases
func CamelToSnake(name string) string {
	name = upperWordRe.ReplaceAllString(name, "${1}_${2}")
	name = lowerUpperRe.ReplaceAllString(name, "${1}_${2}")
	return strings.ToLower(name)
}

// IsKeyword reports whether name is reserved in generated code
func IsKeyword(name string) bool {
	return keywords[name]
}
