package parser

import (
	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/lexer/token"
)

var MODIFIERS map[string]bool = map[string]bool{
	"public":    true,
	"private":   true,
	"protected": true,
	"internal":  true,
	"static":    true,
	"final":     true,
	"override":  true,
	"dynamic":   true,
	"native":    true,
}

func isModifier(tok *token.Token) bool {
	return tok.Kind == token.ID && MODIFIERS[tok.Name()]
}

func isDefinitionStart(tok *token.Token) bool {
	switch tok.Kind {
	case token.CLASS, token.FUNCTION, token.VAR, token.CONST:
		return true
	}
	return false
}

// parseDefinition parses a class, function or variable definition preceded
// by any number of modifiers. Modifiers carry no meaning for verification
// and are dropped.
func (p *Parser) parseDefinition() (ast.Directive, error) {
	for isModifier(p.cursor.peek()) {
		p.cursor.skip()
	}

	tok := p.cursor.peek()
	switch tok.Kind {
	case token.CLASS:
		return p.parseClassDefinition()
	case token.FUNCTION:
		return p.parseFunctionDefinition()
	case token.VAR, token.CONST:
		return p.parseVariableDefinition(tok.Pos)
	}
	return nil, p.expected("definition", tok)
}

// parseVariableDefinition parses var or const and its bindings. pos is where
// the definition starts, which differs from the keyword when a namespace
// precedes it.
func (p *Parser) parseVariableDefinition(pos token.Pos) (*ast.VariableDefinition, error) {
	keyword := p.cursor.next()
	def := &ast.VariableDefinition{Base: p.base(pos), Const: keyword.Kind == token.CONST}
	for {
		binding, err := p.parseBinding(true)
		if err != nil {
			return nil, err
		}
		def.Bindings = append(def.Bindings, binding)
		if !p.cursor.nextIs(token.COMMA) {
			break
		}
		p.cursor.skip()
	}
	return def, p.consumeSemicolon()
}

// parseBinding parses name[: Type][= init].
func (p *Parser) parseBinding(allowInit bool) (*ast.Binding, error) {
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	binding := &ast.Binding{Base: p.base(name.Pos), Name: name}
	if err := p.skipTypeAnnotation(); err != nil {
		return nil, err
	}
	if allowInit && p.cursor.nextIs(token.EQUAL) {
		p.cursor.skip()
		binding.Init, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	return binding, nil
}

// skipTypeAnnotation consumes ": T", where T is *, a qualified name or a
// parameterized name such as Vector.<String>.
func (p *Parser) skipTypeAnnotation() error {
	if !p.cursor.nextIs(token.COLON) {
		return nil
	}
	p.cursor.skip()
	return p.skipTypeExpression()
}

func (p *Parser) skipTypeExpression() error {
	if p.cursor.nextIs(token.STAR) {
		p.cursor.skip()
		return nil
	}
	if _, err := p.expectIdentifier(); err != nil {
		return err
	}
	for p.cursor.nextIs(token.DOT) {
		p.cursor.skip()
		if p.cursor.nextIs(token.LESS) {
			p.cursor.skip()
			if err := p.skipTypeExpression(); err != nil {
				return err
			}
			if _, err := p.expect(token.GREATER); err != nil {
				return err
			}
			continue
		}
		if _, err := p.expectIdentifier(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseQualifiedName() ([]ast.Identifier, error) {
	var names []ast.Identifier
	for {
		name, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		if !p.cursor.nextIs(token.DOT) {
			return names, nil
		}
		p.cursor.skip()
	}
}

func (p *Parser) parsePackageDefinition() (*ast.PackageDefinition, error) {
	packageTok := p.cursor.next()
	def := &ast.PackageDefinition{Base: p.base(packageTok.Pos)}
	if p.cursor.nextIs(token.ID) {
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		def.Name = name
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	def.Block = block
	return def, nil
}

// class C [extends B] [implements I, J] { ... }
func (p *Parser) parseClassDefinition() (*ast.ClassDefinition, error) {
	classTok := p.cursor.next()
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if p.cursor.nextIsWord("extends") {
		p.cursor.skip()
		if _, err := p.parseQualifiedName(); err != nil {
			return nil, err
		}
	}
	if p.cursor.nextIsWord("implements") {
		p.cursor.skip()
		for {
			if _, err := p.parseQualifiedName(); err != nil {
				return nil, err
			}
			if !p.cursor.nextIs(token.COMMA) {
				break
			}
			p.cursor.skip()
		}
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ClassDefinition{Base: p.base(classTok.Pos), Name: name, Block: block}, nil
}

// function [get|set] name(params)[: T] { ... }
func (p *Parser) parseFunctionDefinition() (*ast.FunctionDefinition, error) {
	functionTok := p.cursor.next()
	if (p.cursor.nextIsWord("get") || p.cursor.nextIsWord("set")) && p.cursor.peekAt(1).Kind == token.ID {
		p.cursor.skip()
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	def := &ast.FunctionDefinition{Base: p.base(functionTok.Pos), Name: name}

	if _, err := p.expect(token.OPEN_PAREN); err != nil {
		return nil, err
	}
	for !p.cursor.nextIs(token.CLOSE_PAREN) {
		// ...rest
		for p.cursor.nextIs(token.DOT) {
			p.cursor.skip()
		}
		param, err := p.parseBinding(true)
		if err != nil {
			return nil, err
		}
		def.Params = append(def.Params, param)
		if !p.cursor.nextIs(token.COMMA) {
			break
		}
		p.cursor.skip()
	}
	if _, err := p.expect(token.CLOSE_PAREN); err != nil {
		return nil, err
	}
	if err := p.skipTypeAnnotation(); err != nil {
		return nil, err
	}

	if !p.cursor.nextIs(token.OPEN_CURLY) {
		// Native and interface functions have no body.
		return def, p.consumeSemicolon()
	}
	def.Body, err = p.parseBlock()
	if err != nil {
		return nil, err
	}
	return def, nil
}

// import [Alias =] a.b.Name; import a.b.*; import a.b.**;
func (p *Parser) parseImportDirective() (*ast.ImportDirective, error) {
	importTok := p.cursor.next()
	imp := &ast.ImportDirective{Base: p.base(importTok.Pos)}

	if p.cursor.nextIs(token.ID) && p.cursor.peekAt(1).Kind == token.EQUAL {
		alias, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		p.cursor.skip() // =
		imp.Alias = &alias
	}

	for {
		tok := p.cursor.peek()
		switch tok.Kind {
		case token.STAR:
			p.cursor.skip()
			imp.Specifier = ast.ImportSpecifier{Kind: ast.IMPORT_WILDCARD, Pos: tok.Pos}
		case token.STAR_STAR:
			p.cursor.skip()
			imp.Specifier = ast.ImportSpecifier{Kind: ast.IMPORT_RECURSIVE, Pos: tok.Pos}
		case token.ID:
			p.cursor.skip()
			name := ast.Identifier{Name: tok.Name(), Pos: tok.Pos}
			if p.cursor.nextIs(token.DOT) {
				p.cursor.skip()
				imp.PackageName = append(imp.PackageName, name)
				continue
			}
			imp.Specifier = ast.ImportSpecifier{Kind: ast.IMPORT_IDENTIFIER, Name: name, Pos: tok.Pos}
		default:
			return nil, p.expected("identifier", tok)
		}
		break
	}
	return imp, p.consumeSemicolon()
}

// parseConfigurationDirective parses configuration { ... }. A body made of a
// single if statement becomes that configuration if; any other body is a
// block whose if statements are configuration ifs themselves.
func (p *Parser) parseConfigurationDirective() (*ast.ConfigurationDirective, error) {
	keyword := p.cursor.next()
	open, err := p.expect(token.OPEN_CURLY)
	if err != nil {
		return nil, err
	}

	block := &ast.Block{Base: p.base(open.Pos)}
	for !p.cursor.nextIs(token.CLOSE_CURLY) {
		tok := p.cursor.peek()
		if tok.Kind == token.EOF {
			return nil, p.expected("'}'", tok)
		}
		if tok.Kind != token.IF {
			directive, err := p.parseDirective()
			if err != nil {
				return nil, err
			}
			block.Directives = append(block.Directives, directive)
			continue
		}
		ifStmt, err := p.parseConfigurationIf()
		if err != nil {
			return nil, err
		}
		block.Directives = append(block.Directives, &ast.ConfigurationDirective{
			Base:      p.base(ifStmt.Loc()),
			Directive: ifStmt,
		})
	}
	p.cursor.skip() // }

	cfg := &ast.ConfigurationDirective{Base: p.base(keyword.Pos), Directive: block}
	if len(block.Directives) == 1 {
		if nested, ok := block.Directives[0].(*ast.ConfigurationDirective); ok {
			cfg.Directive = nested.Directive
		}
	}
	return cfg, nil
}

// parseConfigurationIf parses if (test) branch [else branch], where a branch
// is a block, another if, or a single directive wrapped in a block.
func (p *Parser) parseConfigurationIf() (*ast.IfStatement, error) {
	ifTok := p.cursor.next()
	test, err := p.parseParenExpr()
	if err != nil {
		return nil, err
	}
	consequent, err := p.parseConfigurationBranch()
	if err != nil {
		return nil, err
	}
	ifStmt := &ast.IfStatement{Base: p.base(ifTok.Pos), Test: test, Consequent: consequent}
	if p.cursor.nextIs(token.ELSE) {
		p.cursor.skip()
		if p.cursor.nextIs(token.IF) {
			ifStmt.Alternative, err = p.parseConfigurationIf()
		} else {
			ifStmt.Alternative, err = p.parseConfigurationBranch()
		}
		if err != nil {
			return nil, err
		}
	}
	return ifStmt, nil
}

func (p *Parser) parseConfigurationBranch() (*ast.Block, error) {
	if p.cursor.nextIs(token.OPEN_CURLY) {
		return p.parseBlock()
	}
	tok := p.cursor.peek()
	directive, err := p.parseDirective()
	if err != nil {
		return nil, err
	}
	return &ast.Block{Base: p.base(tok.Pos), Directives: []ast.Directive{directive}}, nil
}

// parseConfigurationShorthand parses NS::name { ... } and NS::name followed
// by a definition: code included only when the constant is true.
func (p *Parser) parseConfigurationShorthand() (*ast.ConfigurationDirective, error) {
	nsTok := p.cursor.next()
	p.cursor.skip() // ::
	nameTok := p.cursor.next()
	test := &ast.QualifiedIdentifier{
		Base:      p.base(nsTok.Pos),
		Namespace: nsTok.Name(),
		Name:      nameTok.Name(),
	}

	var consequent *ast.Block
	var err error
	if p.cursor.nextIs(token.OPEN_CURLY) {
		consequent, err = p.parseBlock()
	} else {
		tok := p.cursor.peek()
		var def ast.Directive
		def, err = p.parseDefinition()
		if err == nil {
			consequent = &ast.Block{Base: p.base(tok.Pos), Directives: []ast.Directive{def}}
		}
	}
	if err != nil {
		return nil, err
	}

	ifStmt := &ast.IfStatement{Base: p.base(nsTok.Pos), Test: test, Consequent: consequent}
	return &ast.ConfigurationDirective{Base: p.base(nsTok.Pos), Directive: ifStmt}, nil
}
