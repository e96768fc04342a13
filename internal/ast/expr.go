package ast

import "github.com/HicaroD/razen/internal/lexer/token"

type Expr interface {
	Node
	exprNode()
}

type BooleanLiteral struct {
	Base
	Value bool
}

type NumberLiteral struct {
	Base
	Value float64
	Raw   string
}

type StringLiteral struct {
	Base
	Value string
}

type NullLiteral struct {
	Base
}

type IdentifierExpr struct {
	Base
	Name string
}

// QualifiedIdentifier is a namespace-qualified name such as CONFIG::debug.
type QualifiedIdentifier struct {
	Base
	Namespace string
	Name      string
}

type MemberExpr struct {
	Base
	Object Expr
	Name   Identifier
}

type IndexExpr struct {
	Base
	Object Expr
	Index  Expr
}

type CallExpr struct {
	Base
	Callee Expr
	Args   []Expr
}

type NewExpr struct {
	Base
	Callee Expr
	Args   []Expr
}

type UnaryExpr struct {
	Base
	Op      token.Kind
	Operand Expr
	Postfix bool
}

type BinaryExpr struct {
	Base
	Left  Expr
	Op    token.Kind
	Right Expr
}

type AssignmentExpr struct {
	Base
	Target Expr
	Value  Expr
}

type ParenExpr struct {
	Base
	Expr Expr
}

func (*BooleanLiteral) exprNode()      {}
func (*NumberLiteral) exprNode()       {}
func (*StringLiteral) exprNode()       {}
func (*NullLiteral) exprNode()         {}
func (*IdentifierExpr) exprNode()      {}
func (*QualifiedIdentifier) exprNode() {}
func (*MemberExpr) exprNode()          {}
func (*IndexExpr) exprNode()           {}
func (*CallExpr) exprNode()            {}
func (*NewExpr) exprNode()             {}
func (*UnaryExpr) exprNode()           {}
func (*BinaryExpr) exprNode()          {}
func (*AssignmentExpr) exprNode()      {}
func (*ParenExpr) exprNode()           {}

// Walk calls fn for expr and every sub-expression, parents first. It stops
// descending into a node when fn returns false.
func Walk(expr Expr, fn func(Expr) bool) {
	if expr == nil || !fn(expr) {
		return
	}
	switch e := expr.(type) {
	case *MemberExpr:
		Walk(e.Object, fn)
	case *IndexExpr:
		Walk(e.Object, fn)
		Walk(e.Index, fn)
	case *CallExpr:
		Walk(e.Callee, fn)
		for _, arg := range e.Args {
			Walk(arg, fn)
		}
	case *NewExpr:
		Walk(e.Callee, fn)
		for _, arg := range e.Args {
			Walk(arg, fn)
		}
	case *UnaryExpr:
		Walk(e.Operand, fn)
	case *BinaryExpr:
		Walk(e.Left, fn)
		Walk(e.Right, fn)
	case *AssignmentExpr:
		Walk(e.Target, fn)
		Walk(e.Value, fn)
	case *ParenExpr:
		Walk(e.Expr, fn)
	}
}
