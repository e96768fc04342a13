package parser

import (
	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/lexer/token"
)

func (p *Parser) parseDirective() (ast.Directive, error) {
	tok := p.cursor.peek()

	switch tok.Kind {
	case token.OPEN_CURLY:
		return p.parseBlock()
	case token.SEMICOLON:
		p.cursor.skip()
		return &ast.EmptyStatement{Base: p.base(tok.Pos)}, nil
	case token.IF:
		return p.parseIfStatement()
	case token.SWITCH:
		if p.cursor.peekIsWord(1, "type") {
			return p.parseSwitchTypeStatement()
		}
		return p.parseSwitchStatement()
	case token.DO:
		return p.parseDoStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.WITH:
		return p.parseWithStatement()
	case token.TRY:
		return p.parseTryStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.THROW:
		return p.parseThrowStatement()
	case token.BREAK, token.CONTINUE:
		return p.parseJumpStatement()
	case token.IMPORT:
		return p.parseImportDirective()
	case token.PACKAGE:
		return p.parsePackageDefinition()
	case token.CLASS, token.FUNCTION, token.VAR, token.CONST:
		return p.parseDefinition()
	case token.ID:
		return p.parseDirectiveStartingWithIdentifier(tok)
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseDirectiveStartingWithIdentifier(tok *token.Token) (ast.Directive, error) {
	next := p.cursor.peekAt(1)

	switch {
	case isModifier(tok) && (isDefinitionStart(next) || isModifier(next)):
		return p.parseDefinition()
	case tok.Name() == "configuration" && next.Kind == token.OPEN_CURLY:
		return p.parseConfigurationDirective()
	case next.Kind == token.CONST:
		// CONFIG const debug = true;
		p.cursor.skip()
		namespace := ast.Identifier{Name: tok.Name(), Pos: tok.Pos}
		def, err := p.parseVariableDefinition(tok.Pos)
		if err != nil {
			return nil, err
		}
		def.Namespace = &namespace
		return def, nil
	case next.Kind == token.COLON_COLON && p.cursor.peekAt(2).Kind == token.ID:
		after := p.cursor.peekAt(3)
		if after.Kind == token.OPEN_CURLY || isDefinitionStart(after) || isModifier(after) {
			return p.parseConfigurationShorthand()
		}
	case next.Kind == token.COLON:
		p.cursor.skip() // label
		p.cursor.skip() // :
		substatement, err := p.parseDirective()
		if err != nil {
			return nil, err
		}
		return &ast.LabeledStatement{
			Base:         p.base(tok.Pos),
			Label:        ast.Identifier{Name: tok.Name(), Pos: tok.Pos},
			Substatement: substatement,
		}, nil
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	open, err := p.expect(token.OPEN_CURLY)
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Base: p.base(open.Pos)}
	for !p.cursor.nextIs(token.CLOSE_CURLY) {
		if p.cursor.nextIs(token.EOF) {
			return nil, p.expected("'}'", p.cursor.peek())
		}
		directive, err := p.parseDirective()
		if err != nil {
			return nil, err
		}
		block.Directives = append(block.Directives, directive)
	}
	p.cursor.skip() // }
	return block, nil
}

func (p *Parser) parseParenExpr() (ast.Expr, error) {
	if _, err := p.expect(token.OPEN_PAREN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.CLOSE_PAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseIfStatement() (*ast.IfStatement, error) {
	ifTok := p.cursor.next()
	test, err := p.parseParenExpr()
	if err != nil {
		return nil, err
	}
	consequent, err := p.parseDirective()
	if err != nil {
		return nil, err
	}
	ifStmt := &ast.IfStatement{Base: p.base(ifTok.Pos), Test: test, Consequent: consequent}
	if p.cursor.nextIs(token.ELSE) {
		p.cursor.skip()
		ifStmt.Alternative, err = p.parseDirective()
		if err != nil {
			return nil, err
		}
	}
	return ifStmt, nil
}

func (p *Parser) parseSwitchStatement() (*ast.SwitchStatement, error) {
	switchTok := p.cursor.next()
	discriminant, err := p.parseParenExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.OPEN_CURLY); err != nil {
		return nil, err
	}

	swstmt := &ast.SwitchStatement{Base: p.base(switchTok.Pos), Discriminant: discriminant}
	var current *ast.SwitchCase
	for !p.cursor.nextIs(token.CLOSE_CURLY) {
		tok := p.cursor.peek()
		switch tok.Kind {
		case token.CASE:
			p.cursor.skip()
			label, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.COLON); err != nil {
				return nil, err
			}
			// Consecutive labels share a case.
			if current == nil || len(current.Directives) > 0 {
				current = &ast.SwitchCase{Base: p.base(tok.Pos)}
				swstmt.Cases = append(swstmt.Cases, current)
			}
			current.Labels = append(current.Labels, label)
		case token.DEFAULT:
			p.cursor.skip()
			if _, err := p.expect(token.COLON); err != nil {
				return nil, err
			}
			current = &ast.SwitchCase{Base: p.base(tok.Pos)}
			swstmt.Cases = append(swstmt.Cases, current)
		case token.EOF:
			return nil, p.expected("'}'", tok)
		default:
			if current == nil {
				return nil, p.expected("'case'", tok)
			}
			directive, err := p.parseDirective()
			if err != nil {
				return nil, err
			}
			current.Directives = append(current.Directives, directive)
		}
	}
	p.cursor.skip() // }
	return swstmt, nil
}

// switch type (x) { case (s: String) { ... } default { ... } }
func (p *Parser) parseSwitchTypeStatement() (*ast.SwitchTypeStatement, error) {
	switchTok := p.cursor.next()
	p.cursor.skip() // type
	discriminant, err := p.parseParenExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.OPEN_CURLY); err != nil {
		return nil, err
	}

	swstmt := &ast.SwitchTypeStatement{Base: p.base(switchTok.Pos), Discriminant: discriminant}
	for !p.cursor.nextIs(token.CLOSE_CURLY) {
		tok := p.cursor.peek()
		typeCase := &ast.SwitchTypeCase{Base: p.base(tok.Pos)}
		switch tok.Kind {
		case token.CASE:
			p.cursor.skip()
			if _, err := p.expect(token.OPEN_PAREN); err != nil {
				return nil, err
			}
			typeCase.Parameter, err = p.parseBinding(false)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.CLOSE_PAREN); err != nil {
				return nil, err
			}
		case token.DEFAULT:
			p.cursor.skip()
		default:
			return nil, p.expected("'case'", tok)
		}
		typeCase.Block, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
		swstmt.Cases = append(swstmt.Cases, typeCase)
	}
	p.cursor.skip() // }
	return swstmt, nil
}

func (p *Parser) parseDoStatement() (*ast.DoStatement, error) {
	doTok := p.cursor.next()
	body, err := p.parseDirective()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.WHILE); err != nil {
		return nil, err
	}
	test, err := p.parseParenExpr()
	if err != nil {
		return nil, err
	}
	if p.cursor.nextIs(token.SEMICOLON) {
		p.cursor.skip()
	}
	return &ast.DoStatement{Base: p.base(doTok.Pos), Body: body, Test: test}, nil
}

func (p *Parser) parseWhileStatement() (*ast.WhileStatement, error) {
	whileTok := p.cursor.next()
	test, err := p.parseParenExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseDirective()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Base: p.base(whileTok.Pos), Test: test, Body: body}, nil
}

func (p *Parser) parseWithStatement() (*ast.WithStatement, error) {
	withTok := p.cursor.next()
	object, err := p.parseParenExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseDirective()
	if err != nil {
		return nil, err
	}
	return &ast.WithStatement{Base: p.base(withTok.Pos), Object: object, Body: body}, nil
}

// parseForStatement handles for (init; test; update), for (x in o) and
// for each (x in o).
func (p *Parser) parseForStatement() (ast.Directive, error) {
	forTok := p.cursor.next()
	each := false
	if p.cursor.nextIsWord("each") {
		p.cursor.skip()
		each = true
	}
	if _, err := p.expect(token.OPEN_PAREN); err != nil {
		return nil, err
	}

	var init ast.Directive
	switch tok := p.cursor.peek(); tok.Kind {
	case token.SEMICOLON:
	case token.VAR, token.CONST:
		p.cursor.skip()
		def := &ast.VariableDefinition{Base: p.base(tok.Pos), Const: tok.Kind == token.CONST}
		binding, err := p.parseBinding(true)
		if err != nil {
			return nil, err
		}
		def.Bindings = append(def.Bindings, binding)
		for p.cursor.nextIs(token.COMMA) {
			p.cursor.skip()
			binding, err := p.parseBinding(true)
			if err != nil {
				return nil, err
			}
			def.Bindings = append(def.Bindings, binding)
		}
		init = def
	default:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		init = &ast.ExpressionStatement{Base: p.base(tok.Pos), Expr: expr}
	}

	if init != nil && p.cursor.nextIs(token.IN) {
		p.cursor.skip()
		right, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.CLOSE_PAREN); err != nil {
			return nil, err
		}
		body, err := p.parseDirective()
		if err != nil {
			return nil, err
		}
		return &ast.ForInStatement{Base: p.base(forTok.Pos), Each: each, Left: init, Right: right, Body: body}, nil
	}
	if each {
		return nil, p.expected("'in'", p.cursor.peek())
	}

	forStmt := &ast.ForStatement{Base: p.base(forTok.Pos), Init: init}
	var err error
	if _, err = p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	if !p.cursor.nextIs(token.SEMICOLON) {
		if forStmt.Test, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}
	if _, err = p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	if !p.cursor.nextIs(token.CLOSE_PAREN) {
		if forStmt.Update, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}
	if _, err = p.expect(token.CLOSE_PAREN); err != nil {
		return nil, err
	}
	if forStmt.Body, err = p.parseDirective(); err != nil {
		return nil, err
	}
	return forStmt, nil
}

func (p *Parser) parseTryStatement() (*ast.TryStatement, error) {
	tryTok := p.cursor.next()
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	trystmt := &ast.TryStatement{Base: p.base(tryTok.Pos), Block: block}

	for p.cursor.nextIs(token.CATCH) {
		catchTok := p.cursor.next()
		if _, err := p.expect(token.OPEN_PAREN); err != nil {
			return nil, err
		}
		param, err := p.parseBinding(false)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.CLOSE_PAREN); err != nil {
			return nil, err
		}
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		trystmt.CatchClauses = append(trystmt.CatchClauses, &ast.CatchClause{
			Base:      p.base(catchTok.Pos),
			Parameter: param,
			Block:     block,
		})
	}

	if p.cursor.nextIs(token.FINALLY) {
		finallyTok := p.cursor.next()
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		trystmt.FinallyClause = &ast.FinallyClause{Base: p.base(finallyTok.Pos), Block: block}
	}

	if len(trystmt.CatchClauses) == 0 && trystmt.FinallyClause == nil {
		return nil, p.expected("'catch' or 'finally'", p.cursor.peek())
	}
	return trystmt, nil
}

func (p *Parser) endsStatement() bool {
	tok := p.cursor.peek()
	return tok.Kind == token.SEMICOLON || tok.Kind == token.CLOSE_CURLY || tok.Kind == token.EOF || tok.NewlineBefore
}

func (p *Parser) parseReturnStatement() (*ast.ReturnStatement, error) {
	returnTok := p.cursor.next()
	ret := &ast.ReturnStatement{Base: p.base(returnTok.Pos)}
	if !p.endsStatement() {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		ret.Value = value
	}
	return ret, p.consumeSemicolon()
}

func (p *Parser) parseThrowStatement() (*ast.ThrowStatement, error) {
	throwTok := p.cursor.next()
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.ThrowStatement{Base: p.base(throwTok.Pos), Value: value}, p.consumeSemicolon()
}

func (p *Parser) parseJumpStatement() (ast.Directive, error) {
	jumpTok := p.cursor.next()
	var label *ast.Identifier
	if next := p.cursor.peek(); next.Kind == token.ID && !next.NewlineBefore {
		p.cursor.skip()
		label = &ast.Identifier{Name: next.Name(), Pos: next.Pos}
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	if jumpTok.Kind == token.BREAK {
		return &ast.BreakStatement{Base: p.base(jumpTok.Pos), Label: label}, nil
	}
	return &ast.ContinueStatement{Base: p.base(jumpTok.Pos), Label: label}, nil
}

func (p *Parser) parseExpressionStatement() (*ast.ExpressionStatement, error) {
	tok := p.cursor.peek()
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Base: p.base(tok.Pos), Expr: expr}, p.consumeSemicolon()
}
