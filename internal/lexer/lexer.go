package lexer

import (
	"os"
	"strconv"
	"unicode"

	"github.com/pkg/errors"

	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/diagnostics"
	"github.com/HicaroD/razen/internal/lexer/token"
)

const eof = '\000'

type Lexer struct {
	Loc       *ast.Loc
	Collector *diagnostics.Collector

	src     []byte
	offset  int
	pos     token.Pos
	newline bool
}

func New(loc *ast.Loc, src []byte, collector *diagnostics.Collector) *Lexer {
	lexer := new(Lexer)

	lexer.Loc = loc
	lexer.Collector = collector
	lexer.pos = token.NewPosition(loc.Name, 1, 1)
	lexer.src = src
	lexer.offset = 0

	return lexer
}

// NewFromFilePath reads the source file at loc.Path.
func NewFromFilePath(loc *ast.Loc, collector *diagnostics.Collector) (*Lexer, error) {
	src, err := os.ReadFile(loc.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", loc.Path)
	}
	l := New(loc, src, collector)
	return l, nil
}

func (lex *Lexer) Filename() string { return lex.pos.Filename }

func (lex *Lexer) Next() *token.Token {
	lex.newline = false
	lex.skipWhitespaceAndComments()
	character := lex.peekChar()

	tok := &token.Token{}
	tok.Kind = token.INVALID
	tok.NewlineBefore = lex.newline

	if character == eof {
		lex.consumeTokenNoLex(tok, token.EOF)
		return tok
	}

	token := lex.getToken(tok, character)
	return token
}

// Tokenize consumes the whole source. Invalid tokens are reported to the
// collector and make the call fail with COMPILER_ERROR_FOUND.
func (lex *Lexer) Tokenize() ([]*token.Token, error) {
	var tokens []*token.Token
	for {
		tok := lex.Next()
		if tok.Kind == token.INVALID {
			return nil, diagnostics.COMPILER_ERROR_FOUND
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, nil
}

func (lex *Lexer) getToken(tok *token.Token, ch byte) *token.Token {
	switch ch {
	case '(':
		lex.consumeSingle(tok, token.OPEN_PAREN)
	case ')':
		lex.consumeSingle(tok, token.CLOSE_PAREN)
	case '{':
		lex.consumeSingle(tok, token.OPEN_CURLY)
	case '}':
		lex.consumeSingle(tok, token.CLOSE_CURLY)
	case '[':
		lex.consumeSingle(tok, token.OPEN_BRACKET)
	case ']':
		lex.consumeSingle(tok, token.CLOSE_BRACKET)
	case ',':
		lex.consumeSingle(tok, token.COMMA)
	case ';':
		lex.consumeSingle(tok, token.SEMICOLON)
	case '.':
		lex.consumeSingle(tok, token.DOT)
	case '/':
		lex.consumeSingle(tok, token.SLASH)
	case '%':
		lex.consumeSingle(tok, token.PERCENT)
	case '"', '\'':
		lex.getStringLit(tok, ch)
	case '+':
		lex.consumeOneOrTwo(tok, token.PLUS, '+', token.PLUS_PLUS)
	case '-':
		lex.consumeOneOrTwo(tok, token.MINUS, '-', token.MINUS_MINUS)
	case '*':
		lex.consumeOneOrTwo(tok, token.STAR, '*', token.STAR_STAR)
	case ':':
		lex.consumeOneOrTwo(tok, token.COLON, ':', token.COLON_COLON)
	case '>':
		lex.consumeOneOrTwo(tok, token.GREATER, '=', token.GREATER_EQ)
	case '<':
		lex.consumeOneOrTwo(tok, token.LESS, '=', token.LESS_EQ)
	case '=':
		lex.consumeOneOrTwo(tok, token.EQUAL, '=', token.EQUAL_EQUAL)
		if tok.Kind == token.EQUAL_EQUAL && lex.peekChar() == '=' {
			lex.nextChar() // =
			tok.Kind = token.EQUAL_EQUAL_EQUAL
		}
	case '!':
		lex.consumeOneOrTwo(tok, token.BANG, '=', token.BANG_EQUAL)
		if tok.Kind == token.BANG_EQUAL && lex.peekChar() == '=' {
			lex.nextChar() // =
			tok.Kind = token.BANG_EQUAL_EQUAL
		}
	case '&':
		lex.consumePair(tok, '&', token.AND_AND)
	case '|':
		lex.consumePair(tok, '|', token.OR_OR)
	default:
		if unicode.IsLetter(rune(ch)) || ch == '_' || ch == '$' {
			lex.getIdOrKeyword(tok)
		} else if ch >= '0' && ch <= '9' {
			lex.getNumberLit(tok)
		} else {
			tok.Pos = lex.pos
			lex.nextChar()
			lex.Collector.ReportAndSave(diagnostics.NewDiag(diagnostics.INVALID_CHARACTER, tok.Pos, string(ch)))
		}
	}
	return tok
}

func (lex *Lexer) consumeSingle(tok *token.Token, kind token.Kind) {
	lex.consumeTokenNoLex(tok, kind)
	lex.nextChar()
}

func (lex *Lexer) consumeOneOrTwo(tok *token.Token, single token.Kind, second byte, double token.Kind) {
	lex.consumeSingle(tok, single)
	if lex.peekChar() == second {
		lex.nextChar()
		tok.Kind = double
	}
}

// consumePair lexes operators that are only valid when doubled, such as &&.
func (lex *Lexer) consumePair(tok *token.Token, ch byte, kind token.Kind) {
	tok.Pos = lex.pos
	lex.nextChar()
	if lex.peekChar() != ch {
		lex.Collector.ReportAndSave(diagnostics.NewDiag(diagnostics.INVALID_CHARACTER, tok.Pos, string(ch)))
		return
	}
	lex.nextChar()
	tok.Kind = kind
}

func (lex *Lexer) getStringLit(tok *token.Token, quote byte) *token.Token {
	tok.Pos = lex.pos
	lex.nextChar() // " or '

	var str []byte
	for {
		ch := lex.peekChar()
		if ch == eof || ch == quote || ch == '\n' {
			break
		}

		if ch == '\\' {
			lex.nextChar()
			escapeSym := lex.peekChar()

			var escape byte

			switch escapeSym {
			case 'n':
				escape = '\n'
			case 't':
				escape = '\t'
			case 'r':
				escape = '\r'
			case '0':
				escape = 0
			case eof:
				lex.Collector.ReportAndSave(diagnostics.NewDiag(diagnostics.UNTERMINATED_STRING_LITERAL, tok.Pos))
				return tok
			default:
				escape = escapeSym
			}
			str = append(str, escape)
		} else {
			str = append(str, ch)
		}

		lex.nextChar()
	}

	if lex.peekChar() != quote {
		lex.Collector.ReportAndSave(diagnostics.NewDiag(diagnostics.UNTERMINATED_STRING_LITERAL, tok.Pos))
		return tok
	}
	lex.nextChar()

	tok.Kind = token.STRING_LITERAL
	tok.Lexeme = str
	return tok
}

func (lex *Lexer) getNumberLit(tok *token.Token) {
	tok.Pos = lex.pos

	var dotFound bool
	number := lex.readWhile(
		func(chr byte) bool {
			if chr == '.' {
				if dotFound {
					return false
				}
				dotFound = true
				return true
			}
			return (chr >= '0' && chr <= '9') || chr == '_' ||
				chr == 'x' || chr == 'X' ||
				(chr >= 'a' && chr <= 'f') || (chr >= 'A' && chr <= 'F')
		},
	)

	if _, err := ParseNumber(string(number)); err != nil {
		lex.Collector.ReportAndSave(diagnostics.NewDiag(diagnostics.INVALID_NUMBER_LITERAL, tok.Pos, string(number)))
		return
	}

	tok.Kind = token.NUMBER_LITERAL
	tok.Lexeme = number
}

// ParseNumber converts a numeric lexeme (decimal, float or 0x-prefixed
// hexadecimal, with optional _ separators) into its value.
func ParseNumber(lexeme string) (float64, error) {
	clean := make([]byte, 0, len(lexeme))
	for i := 0; i < len(lexeme); i++ {
		if lexeme[i] != '_' {
			clean = append(clean, lexeme[i])
		}
	}
	s := string(clean)
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		n, err := strconv.ParseUint(s[2:], 16, 64)
		return float64(n), err
	}
	return strconv.ParseFloat(s, 64)
}

func (lex *Lexer) getIdOrKeyword(tok *token.Token) {
	tok.Pos = lex.pos
	identifier := lex.readWhile(
		func(chr byte) bool {
			return unicode.IsNumber(rune(chr)) || unicode.IsLetter(rune(chr)) || chr == '_' || chr == '$'
		},
	)
	tok.Kind = token.ID
	tok.Lexeme = identifier
	keyword, ok := token.KEYWORDS[string(identifier)]
	if ok {
		tok.Kind = keyword
	}
}

func (lex *Lexer) consumeTokenNoLex(tok *token.Token, kind token.Kind) {
	tok.Lexeme = nil
	tok.Kind = kind
	tok.Pos = lex.pos
}

func (lex *Lexer) skipWhitespaceAndComments() {
	for {
		lex.readWhile(func(ch byte) bool {
			if ch == '\n' {
				lex.newline = true
			}
			return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
		})

		if lex.peekChar() != '/' {
			return
		}
		switch lex.peekCharAt(1) {
		case '/':
			lex.readWhile(func(ch byte) bool { return ch != '\n' })
		case '*':
			lex.nextChar() // /
			lex.nextChar() // *
			for {
				ch := lex.peekChar()
				if ch == eof {
					return
				}
				if ch == '*' && lex.peekCharAt(1) == '/' {
					lex.nextChar()
					lex.nextChar()
					break
				}
				if ch == '\n' {
					lex.newline = true
				}
				lex.nextChar()
			}
		default:
			return
		}
	}
}

func (lex *Lexer) readWhile(isValid func(byte) bool) []byte {
	var start, end int
	start = lex.offset

	for {
		character := lex.peekChar()
		if character == eof {
			break
		}

		if isValid(character) {
			lex.nextChar()
		} else {
			break
		}
	}

	end = lex.offset

	return lex.src[start:end]
}

func (lex *Lexer) nextChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	character := lex.src[lex.offset]
	lex.pos.Move(character)
	lex.offset++
	return character
}

func (lex *Lexer) peekChar() byte {
	return lex.peekCharAt(0)
}

func (lex *Lexer) peekCharAt(n int) byte {
	if lex.offset+n >= len(lex.src) {
		return eof
	}
	return lex.src[lex.offset+n]
}
