package diagnostics

import (
	"fmt"
	"strings"
)

type Kind int

const (
	// Lexical and syntactic errors
	INVALID_CHARACTER Kind = iota
	UNTERMINATED_STRING_LITERAL
	INVALID_NUMBER_LITERAL
	EXPECTED_TOKEN
	UNEXPECTED_TOKEN

	// Verification errors
	REACHED_MAXIMUM_CYCLES
	NOT_A_BOOLEAN_CONSTANT
	IMPORTED_DEFINITION_NOT_FOUND
	RECURSIVE_ALIAS_IMPORT
	DUPLICATE_DEFINITION
	UNRESOLVED_DIRECTIVES

	// Warnings
	UNUSED_IMPORT
	EMPTY_PACKAGE_IMPORT
)

var TEMPLATES map[Kind]string = map[Kind]string{
	INVALID_CHARACTER:             "invalid character {1}",
	UNTERMINATED_STRING_LITERAL:   "unterminated string literal",
	INVALID_NUMBER_LITERAL:        "invalid number literal {1}",
	EXPECTED_TOKEN:                "expected {1}, not {2}",
	UNEXPECTED_TOKEN:              "unexpected {1}",
	REACHED_MAXIMUM_CYCLES:        "reached maximum cycles while evaluating constant",
	NOT_A_BOOLEAN_CONSTANT:        "configuration test must be a boolean constant, got {1}",
	IMPORTED_DEFINITION_NOT_FOUND: "imported definition '{1}' not found",
	RECURSIVE_ALIAS_IMPORT:        "recursive import '{1}' cannot be aliased",
	DUPLICATE_DEFINITION:          "'{1}' is already defined in this scope",
	UNRESOLVED_DIRECTIVES:         "could not resolve directives after {1} cycles",
	UNUSED_IMPORT:                 "unused import '{1}'",
	EMPTY_PACKAGE_IMPORT:          "package '{1}' contains no definitions",
}

var KIND_NAMES map[Kind]string = map[Kind]string{
	INVALID_CHARACTER:             "InvalidCharacter",
	UNTERMINATED_STRING_LITERAL:   "UnterminatedStringLiteral",
	INVALID_NUMBER_LITERAL:        "InvalidNumberLiteral",
	EXPECTED_TOKEN:                "ExpectedToken",
	UNEXPECTED_TOKEN:              "UnexpectedToken",
	REACHED_MAXIMUM_CYCLES:        "ReachedMaximumCycles",
	NOT_A_BOOLEAN_CONSTANT:        "NotABooleanConstant",
	IMPORTED_DEFINITION_NOT_FOUND: "ImportedDefinitionNotFound",
	RECURSIVE_ALIAS_IMPORT:        "RecursiveAliasImport",
	DUPLICATE_DEFINITION:          "DuplicateDefinition",
	UNRESOLVED_DIRECTIVES:         "UnresolvedDirectives",
	UNUSED_IMPORT:                 "UnusedImport",
	EMPTY_PACKAGE_IMPORT:          "EmptyPackageImport",
}

func (kind Kind) IsWarning() bool {
	return kind == UNUSED_IMPORT || kind == EMPTY_PACKAGE_IMPORT
}

// Format substitutes {N} placeholders of the kind's template with args,
// N starting at 1. Missing arguments are left as-is.
func (kind Kind) Format(args ...string) string {
	msg, ok := TEMPLATES[kind]
	if !ok {
		return kind.String()
	}
	for i, arg := range args {
		msg = strings.ReplaceAll(msg, fmt.Sprintf("{%d}", i+1), arg)
	}
	return msg
}

func (kind Kind) String() string {
	if name, ok := KIND_NAMES[kind]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}
