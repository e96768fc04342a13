// Package eval folds configuration expressions into compile-time constants.
package eval

import (
	"math"

	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/constant"
	"github.com/HicaroD/razen/internal/host"
	"github.com/HicaroD/razen/internal/lexer/token"
)

// Context carries evaluation options. The zero value is the default
// context used for configuration tests.
type Context struct{}

type Evaluator struct {
	host *host.Host
}

func New(h *host.Host) *Evaluator {
	return &Evaluator{host: h}
}

// VerifyExpression returns the constant value of expr. A nil value with a
// nil error means the value is not known yet. In last-chance mode an
// unknown configuration constant fails with host.ERR_DEFER instead.
// Expressions that are not constant evaluate to undefined.
//
// Results are annotated on the expression node, so later passes do not
// evaluate it again.
func (e *Evaluator) VerifyExpression(expr ast.Expr, ctx Context) (constant.Value, error) {
	if annotation, ok := e.host.NodeMapping().Get(expr.ID()); ok {
		if value, ok := annotation.(constant.Value); ok {
			return value, nil
		}
	}

	value, err := e.evaluate(expr, ctx)
	if err != nil || value == nil {
		return nil, err
	}
	e.host.NodeMapping().Set(expr.ID(), value)
	return value, nil
}

func (e *Evaluator) evaluate(expr ast.Expr, ctx Context) (constant.Value, error) {
	switch expr := expr.(type) {
	case *ast.BooleanLiteral:
		return constant.Boolean(expr.Value), nil
	case *ast.NumberLiteral:
		return constant.Number(expr.Value), nil
	case *ast.StringLiteral:
		return constant.String(expr.Value), nil
	case *ast.NullLiteral:
		return constant.Null{}, nil
	case *ast.QualifiedIdentifier:
		return e.evaluateConstantReference(expr)
	case *ast.ParenExpr:
		return e.VerifyExpression(expr.Expr, ctx)
	case *ast.UnaryExpr:
		return e.evaluateUnary(expr, ctx)
	case *ast.BinaryExpr:
		return e.evaluateBinary(expr, ctx)
	default:
		return constant.Undefined{}, nil
	}
}

func (e *Evaluator) evaluateConstantReference(expr *ast.QualifiedIdentifier) (constant.Value, error) {
	if value, ok := e.host.Constant(expr.Namespace, expr.Name); ok {
		return value, nil
	}
	if e.host.LastChance() {
		return nil, host.ERR_DEFER
	}
	return nil, nil
}

func (e *Evaluator) evaluateUnary(expr *ast.UnaryExpr, ctx Context) (constant.Value, error) {
	if expr.Postfix {
		return constant.Undefined{}, nil
	}
	operand, err := e.VerifyExpression(expr.Operand, ctx)
	if err != nil || operand == nil {
		return nil, err
	}
	switch expr.Op {
	case token.BANG:
		return constant.Boolean(!constant.ToBoolean(operand)), nil
	case token.MINUS:
		return constant.Number(-constant.ToNumber(operand)), nil
	case token.PLUS:
		return constant.Number(constant.ToNumber(operand)), nil
	}
	return constant.Undefined{}, nil
}

func (e *Evaluator) evaluateBinary(expr *ast.BinaryExpr, ctx Context) (constant.Value, error) {
	left, err := e.VerifyExpression(expr.Left, ctx)
	if err != nil || left == nil {
		return nil, err
	}

	switch expr.Op {
	case token.AND_AND:
		if !constant.ToBoolean(left) {
			return left, nil
		}
		return e.VerifyExpression(expr.Right, ctx)
	case token.OR_OR:
		if constant.ToBoolean(left) {
			return left, nil
		}
		return e.VerifyExpression(expr.Right, ctx)
	}

	right, err := e.VerifyExpression(expr.Right, ctx)
	if err != nil || right == nil {
		return nil, err
	}

	switch expr.Op {
	case token.EQUAL_EQUAL:
		return constant.Boolean(constant.LooseEquals(left, right)), nil
	case token.BANG_EQUAL:
		return constant.Boolean(!constant.LooseEquals(left, right)), nil
	case token.EQUAL_EQUAL_EQUAL:
		return constant.Boolean(constant.StrictEquals(left, right)), nil
	case token.BANG_EQUAL_EQUAL:
		return constant.Boolean(!constant.StrictEquals(left, right)), nil
	case token.LESS, token.LESS_EQ, token.GREATER, token.GREATER_EQ:
		return compare(expr.Op, left, right), nil
	case token.PLUS:
		if left.Kind() == constant.STRING || right.Kind() == constant.STRING {
			return constant.String(constant.ToString(left) + constant.ToString(right)), nil
		}
		return constant.Number(constant.ToNumber(left) + constant.ToNumber(right)), nil
	case token.MINUS:
		return constant.Number(constant.ToNumber(left) - constant.ToNumber(right)), nil
	case token.STAR:
		return constant.Number(constant.ToNumber(left) * constant.ToNumber(right)), nil
	case token.SLASH:
		return constant.Number(constant.ToNumber(left) / constant.ToNumber(right)), nil
	case token.PERCENT:
		return constant.Number(math.Mod(constant.ToNumber(left), constant.ToNumber(right))), nil
	case token.STAR_STAR:
		return constant.Number(math.Pow(constant.ToNumber(left), constant.ToNumber(right))), nil
	}
	return constant.Undefined{}, nil
}

func compare(op token.Kind, left, right constant.Value) constant.Value {
	cmp, ok := constant.Compare(left, right)
	if !ok {
		return constant.Boolean(false)
	}
	switch op {
	case token.LESS:
		return constant.Boolean(cmp < 0)
	case token.LESS_EQ:
		return constant.Boolean(cmp <= 0)
	case token.GREATER:
		return constant.Boolean(cmp > 0)
	}
	return constant.Boolean(cmp >= 0)
}
