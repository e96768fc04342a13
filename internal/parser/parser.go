package parser

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/diagnostics"
	"github.com/HicaroD/razen/internal/lexer"
	"github.com/HicaroD/razen/internal/lexer/token"
)

type Parser struct {
	cursor    *cursor
	collector *diagnostics.Collector
	ids       *ast.IDGen
}

func New(collector *diagnostics.Collector, ids *ast.IDGen) *Parser {
	parser := new(Parser)
	parser.collector = collector
	parser.ids = ids
	return parser
}

// ParseFile parses the file at path and appends it to the program.
func ParseFile(program *ast.Program, path string, collector *diagnostics.Collector) (*ast.CompilationUnit, error) {
	fullPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %s", path)
	}
	loc, err := ast.LocFromPath(fullPath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if loc.IsPackage {
		return nil, errors.Errorf("%s is a directory", path)
	}
	lex, err := lexer.NewFromFilePath(loc, collector)
	if err != nil {
		return nil, err
	}
	return parseUnit(program, lex, collector)
}

// ParseSource parses src as a compilation unit named after loc and appends
// it to the program.
func ParseSource(program *ast.Program, loc *ast.Loc, src []byte, collector *diagnostics.Collector) (*ast.CompilationUnit, error) {
	return parseUnit(program, lexer.New(loc, src, collector), collector)
}

func parseUnit(program *ast.Program, lex *lexer.Lexer, collector *diagnostics.Collector) (*ast.CompilationUnit, error) {
	unit, err := New(collector, program.IDs).ParseUnit(lex)
	if err != nil {
		return nil, err
	}
	program.Units = append(program.Units, unit)
	return unit, nil
}

func (p *Parser) ParseUnit(lex *lexer.Lexer) (*ast.CompilationUnit, error) {
	tokens, err := lex.Tokenize()
	if err != nil {
		return nil, err
	}
	p.cursor = newCursor(tokens)

	unit := &ast.CompilationUnit{
		Base: p.base(token.NewPosition(lex.Filename(), 1, 1)),
		Loc:  lex.Loc,
	}
	for !p.cursor.nextIs(token.EOF) {
		directive, err := p.parseDirective()
		if err != nil {
			return nil, err
		}
		unit.Directives = append(unit.Directives, directive)
	}
	return unit, nil
}

// ParseExpression parses a single expression spanning the whole input.
func (p *Parser) ParseExpression(lex *lexer.Lexer) (ast.Expr, error) {
	tokens, err := lex.Tokenize()
	if err != nil {
		return nil, err
	}
	p.cursor = newCursor(tokens)

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.cursor.nextIs(token.EOF) {
		return nil, p.unexpected(p.cursor.peek())
	}
	return expr, nil
}

func (p *Parser) base(pos token.Pos) ast.Base {
	return ast.NewBase(p.ids.Next(), pos)
}

func (p *Parser) expect(expectedKind token.Kind) (*token.Token, error) {
	tok := p.cursor.peek()
	if tok.Kind != expectedKind {
		return nil, p.expected("'"+expectedKind.String()+"'", tok)
	}
	p.cursor.skip()
	return tok, nil
}

func (p *Parser) expectIdentifier() (ast.Identifier, error) {
	tok := p.cursor.peek()
	if tok.Kind != token.ID {
		return ast.Identifier{}, p.expected("identifier", tok)
	}
	p.cursor.skip()
	return ast.Identifier{Name: tok.Name(), Pos: tok.Pos}, nil
}

// consumeSemicolon accepts an explicit semicolon, or an inserted one before
// a closing brace, the end of file or a line break.
func (p *Parser) consumeSemicolon() error {
	tok := p.cursor.peek()
	switch {
	case tok.Kind == token.SEMICOLON:
		p.cursor.skip()
		return nil
	case tok.Kind == token.CLOSE_CURLY, tok.Kind == token.EOF, tok.NewlineBefore:
		return nil
	}
	return p.expected("';'", tok)
}

func (p *Parser) expected(what string, tok *token.Token) error {
	p.collector.ReportAndSave(diagnostics.NewDiag(diagnostics.EXPECTED_TOKEN, tok.Pos, what, describe(tok)))
	return diagnostics.COMPILER_ERROR_FOUND
}

func (p *Parser) unexpected(tok *token.Token) error {
	p.collector.ReportAndSave(diagnostics.NewDiag(diagnostics.UNEXPECTED_TOKEN, tok.Pos, describe(tok)))
	return diagnostics.COMPILER_ERROR_FOUND
}

func describe(tok *token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.STRING_LITERAL:
		return "string literal"
	case token.NUMBER_LITERAL:
		return "number " + tok.Name()
	}
	return "'" + tok.Name() + "'"
}
