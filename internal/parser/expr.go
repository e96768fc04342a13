package parser

import (
	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/lexer"
	"github.com/HicaroD/razen/internal/lexer/token"
)

var EQUALITY map[token.Kind]bool = map[token.Kind]bool{
	token.EQUAL_EQUAL:       true,
	token.EQUAL_EQUAL_EQUAL: true,
	token.BANG_EQUAL:        true,
	token.BANG_EQUAL_EQUAL:  true,
}

var RELATIONAL map[token.Kind]bool = map[token.Kind]bool{
	token.LESS:       true,
	token.LESS_EQ:    true,
	token.GREATER:    true,
	token.GREATER_EQ: true,
}

var TERM map[token.Kind]bool = map[token.Kind]bool{
	token.PLUS:  true,
	token.MINUS: true,
}

var FACTOR map[token.Kind]bool = map[token.Kind]bool{
	token.STAR:    true,
	token.SLASH:   true,
	token.PERCENT: true,
}

var UNARY map[token.Kind]bool = map[token.Kind]bool{
	token.BANG:        true,
	token.MINUS:       true,
	token.PLUS:        true,
	token.PLUS_PLUS:   true,
	token.MINUS_MINUS: true,
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseAssignment()
}

// Assignment is right associative: a = b = c is a = (b = c).
func (p *Parser) parseAssignment() (ast.Expr, error) {
	lhs, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if !p.cursor.nextIs(token.EQUAL) {
		return lhs, nil
	}
	p.cursor.skip()
	rhs, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentExpr{Base: p.base(lhs.Loc()), Target: lhs, Value: rhs}, nil
}

func (p *Parser) parseLogicalOr() (ast.Expr, error) {
	return p.parseBinaryLevel(func(kind token.Kind) bool { return kind == token.OR_OR }, p.parseLogicalAnd)
}

func (p *Parser) parseLogicalAnd() (ast.Expr, error) {
	return p.parseBinaryLevel(func(kind token.Kind) bool { return kind == token.AND_AND }, p.parseEquality)
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	return p.parseBinaryLevel(func(kind token.Kind) bool { return EQUALITY[kind] }, p.parseRelational)
}

func (p *Parser) parseRelational() (ast.Expr, error) {
	return p.parseBinaryLevel(func(kind token.Kind) bool { return RELATIONAL[kind] }, p.parseTerm)
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	return p.parseBinaryLevel(func(kind token.Kind) bool { return TERM[kind] }, p.parseFactor)
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	return p.parseBinaryLevel(func(kind token.Kind) bool { return FACTOR[kind] }, p.parseExponent)
}

// parseBinaryLevel parses a left associative chain of operators accepted by
// isOp, with operands parsed by next.
func (p *Parser) parseBinaryLevel(isOp func(token.Kind) bool, next func() (ast.Expr, error)) (ast.Expr, error) {
	lhs, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op := p.cursor.peek()
		if !isOp(op.Kind) {
			return lhs, nil
		}
		p.cursor.skip()
		rhs, err := next()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{Base: p.base(lhs.Loc()), Left: lhs, Op: op.Kind, Right: rhs}
	}
}

// ** binds tighter than the multiplicative operators and is right
// associative.
func (p *Parser) parseExponent() (ast.Expr, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if !p.cursor.nextIs(token.STAR_STAR) {
		return lhs, nil
	}
	p.cursor.skip()
	rhs, err := p.parseExponent()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Base: p.base(lhs.Loc()), Left: lhs, Op: token.STAR_STAR, Right: rhs}, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	next := p.cursor.peek()
	if UNARY[next.Kind] {
		p.cursor.skip()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Base: p.base(next.Pos), Op: next.Kind, Operand: operand}, nil
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parseCallOrMember()
	if err != nil {
		return nil, err
	}
	for {
		op := p.cursor.peek()
		if (op.Kind != token.PLUS_PLUS && op.Kind != token.MINUS_MINUS) || op.NewlineBefore {
			return expr, nil
		}
		p.cursor.skip()
		expr = &ast.UnaryExpr{Base: p.base(expr.Loc()), Op: op.Kind, Operand: expr, Postfix: true}
	}
}

func (p *Parser) parseCallOrMember() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cursor.peek().Kind {
		case token.DOT:
			p.cursor.skip()
			name, err := p.expectIdentifier()
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpr{Base: p.base(expr.Loc()), Object: expr, Name: name}
		case token.OPEN_BRACKET:
			p.cursor.skip()
			index, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.CLOSE_BRACKET); err != nil {
				return nil, err
			}
			expr = &ast.IndexExpr{Base: p.base(expr.Loc()), Object: expr, Index: index}
		case token.OPEN_PAREN:
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpr{Base: p.base(expr.Loc()), Callee: expr, Args: args}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseArguments() ([]ast.Expr, error) {
	if _, err := p.expect(token.OPEN_PAREN); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for !p.cursor.nextIs(token.CLOSE_PAREN) {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.cursor.nextIs(token.COMMA) {
			break
		}
		p.cursor.skip()
	}
	if _, err := p.expect(token.CLOSE_PAREN); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.cursor.peek()
	switch tok.Kind {
	case token.ID:
		p.cursor.skip()
		if p.cursor.nextIs(token.COLON_COLON) {
			p.cursor.skip()
			name, err := p.expectIdentifier()
			if err != nil {
				return nil, err
			}
			return &ast.QualifiedIdentifier{Base: p.base(tok.Pos), Namespace: tok.Name(), Name: name.Name}, nil
		}
		return &ast.IdentifierExpr{Base: p.base(tok.Pos), Name: tok.Name()}, nil
	case token.NUMBER_LITERAL:
		p.cursor.skip()
		value, err := lexer.ParseNumber(tok.Name())
		if err != nil {
			return nil, p.unexpected(tok)
		}
		return &ast.NumberLiteral{Base: p.base(tok.Pos), Value: value, Raw: tok.Name()}, nil
	case token.STRING_LITERAL:
		p.cursor.skip()
		return &ast.StringLiteral{Base: p.base(tok.Pos), Value: tok.Name()}, nil
	case token.TRUE_BOOL_LITERAL, token.FALSE_BOOL_LITERAL:
		p.cursor.skip()
		return &ast.BooleanLiteral{Base: p.base(tok.Pos), Value: tok.Kind == token.TRUE_BOOL_LITERAL}, nil
	case token.NULL_LITERAL:
		p.cursor.skip()
		return &ast.NullLiteral{Base: p.base(tok.Pos)}, nil
	case token.OPEN_PAREN:
		p.cursor.skip()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.CLOSE_PAREN); err != nil {
			return nil, err
		}
		return &ast.ParenExpr{Base: p.base(tok.Pos), Expr: expr}, nil
	case token.NEW:
		return p.parseNewExpr()
	}
	return nil, p.unexpected(tok)
}

// new C(args); the argument list is optional.
func (p *Parser) parseNewExpr() (*ast.NewExpr, error) {
	newTok := p.cursor.next()
	callee, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.cursor.nextIs(token.DOT) {
		p.cursor.skip()
		name, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		callee = &ast.MemberExpr{Base: p.base(callee.Loc()), Object: callee, Name: name}
	}
	newExpr := &ast.NewExpr{Base: p.base(newTok.Pos), Callee: callee}
	if p.cursor.nextIs(token.OPEN_PAREN) {
		newExpr.Args, err = p.parseArguments()
		if err != nil {
			return nil, err
		}
	}
	return newExpr, nil
}
