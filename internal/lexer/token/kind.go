package token

import "fmt"

type Kind int

const (
	// EOF
	EOF Kind = iota
	INVALID

	// Identifier
	ID

	// Literals
	NUMBER_LITERAL
	STRING_LITERAL
	TRUE_BOOL_LITERAL
	FALSE_BOOL_LITERAL
	NULL_LITERAL

	// Keywords
	PACKAGE
	IMPORT
	CLASS
	FUNCTION
	VAR
	CONST
	IF
	ELSE
	SWITCH
	CASE
	DEFAULT
	DO
	WHILE
	FOR
	IN
	WITH
	TRY
	CATCH
	FINALLY
	RETURN
	BREAK
	CONTINUE
	THROW
	NEW

	// (
	OPEN_PAREN
	// )
	CLOSE_PAREN

	// {
	OPEN_CURLY
	// }
	CLOSE_CURLY

	// [
	OPEN_BRACKET
	// ]
	CLOSE_BRACKET

	// ,
	COMMA

	// ;
	SEMICOLON

	// .
	DOT

	// :
	COLON
	// ::
	COLON_COLON

	// =
	EQUAL
	// ==
	EQUAL_EQUAL
	// ===
	EQUAL_EQUAL_EQUAL
	// !
	BANG
	// !=
	BANG_EQUAL
	// !==
	BANG_EQUAL_EQUAL

	// &&
	AND_AND
	// ||
	OR_OR

	// >
	GREATER
	// >=
	GREATER_EQ
	// <
	LESS
	// <=
	LESS_EQ

	// +
	PLUS
	// ++
	PLUS_PLUS
	// -
	MINUS
	// --
	MINUS_MINUS
	// *
	STAR
	// **
	STAR_STAR
	// /
	SLASH
	// %
	PERCENT
)

var KEYWORDS map[string]Kind = map[string]Kind{
	"package":  PACKAGE,
	"import":   IMPORT,
	"class":    CLASS,
	"function": FUNCTION,
	"var":      VAR,
	"const":    CONST,
	"if":       IF,
	"else":     ELSE,
	"switch":   SWITCH,
	"case":     CASE,
	"default":  DEFAULT,
	"do":       DO,
	"while":    WHILE,
	"for":      FOR,
	"in":       IN,
	"with":     WITH,
	"try":      TRY,
	"catch":    CATCH,
	"finally":  FINALLY,
	"return":   RETURN,
	"break":    BREAK,
	"continue": CONTINUE,
	"throw":    THROW,
	"new":      NEW,

	"true":  TRUE_BOOL_LITERAL,
	"false": FALSE_BOOL_LITERAL,
	"null":  NULL_LITERAL,
}

var LITERAL_KIND map[Kind]bool = map[Kind]bool{
	NUMBER_LITERAL:     true,
	STRING_LITERAL:     true,
	TRUE_BOOL_LITERAL:  true,
	FALSE_BOOL_LITERAL: true,
	NULL_LITERAL:       true,
}

func (kind Kind) IsLiteral() bool {
	_, ok := LITERAL_KIND[kind]
	return ok
}

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "end of file"
	case INVALID:
		return "INVALID"
	case ID:
		return "identifier"
	case NUMBER_LITERAL:
		return "number literal"
	case STRING_LITERAL:
		return "string literal"
	case TRUE_BOOL_LITERAL:
		return "true"
	case FALSE_BOOL_LITERAL:
		return "false"
	case NULL_LITERAL:
		return "null"
	case OPEN_PAREN:
		return "("
	case CLOSE_PAREN:
		return ")"
	case OPEN_CURLY:
		return "{"
	case CLOSE_CURLY:
		return "}"
	case OPEN_BRACKET:
		return "["
	case CLOSE_BRACKET:
		return "]"
	case COMMA:
		return ","
	case SEMICOLON:
		return ";"
	case DOT:
		return "."
	case COLON:
		return ":"
	case COLON_COLON:
		return "::"
	case EQUAL:
		return "="
	case EQUAL_EQUAL:
		return "=="
	case EQUAL_EQUAL_EQUAL:
		return "==="
	case BANG:
		return "!"
	case BANG_EQUAL:
		return "!="
	case BANG_EQUAL_EQUAL:
		return "!=="
	case AND_AND:
		return "&&"
	case OR_OR:
		return "||"
	case GREATER:
		return ">"
	case GREATER_EQ:
		return ">="
	case LESS:
		return "<"
	case LESS_EQ:
		return "<="
	case PLUS:
		return "+"
	case PLUS_PLUS:
		return "++"
	case MINUS:
		return "-"
	case MINUS_MINUS:
		return "--"
	case STAR:
		return "*"
	case STAR_STAR:
		return "**"
	case SLASH:
		return "/"
	case PERCENT:
		return "%"
	}
	for keyword, k := range KEYWORDS {
		if k == kind {
			return keyword
		}
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}
