package ast

import "github.com/HicaroD/razen/internal/lexer/token"

// Directive is a statement-level node. The set of directives is closed: only
// types declared in this package implement it.
type Directive interface {
	Node
	directiveNode()
}

type Block struct {
	Base
	Directives []Directive
}

type LabeledStatement struct {
	Base
	Label        Identifier
	Substatement Directive
}

type IfStatement struct {
	Base
	Test        Expr
	Consequent  Directive
	Alternative Directive // nil when there is no else clause
}

type SwitchCase struct {
	Base
	Labels     []Expr // empty for the default case
	Directives []Directive
}

type SwitchStatement struct {
	Base
	Discriminant Expr
	Cases        []*SwitchCase
}

type SwitchTypeCase struct {
	Base
	Parameter *Binding // nil for the default case
	Block     *Block
}

type SwitchTypeStatement struct {
	Base
	Discriminant Expr
	Cases        []*SwitchTypeCase
}

type DoStatement struct {
	Base
	Body Directive
	Test Expr
}

type WhileStatement struct {
	Base
	Test Expr
	Body Directive
}

type ForStatement struct {
	Base
	Init   Directive // *VariableDefinition, *ExpressionStatement or nil
	Test   Expr
	Update Expr
	Body   Directive
}

type ForInStatement struct {
	Base
	Each  bool
	Left  Directive // *VariableDefinition or *ExpressionStatement
	Right Expr
	Body  Directive
}

type WithStatement struct {
	Base
	Object Expr
	Body   Directive
}

type CatchClause struct {
	Base
	Parameter *Binding
	Block     *Block
}

type FinallyClause struct {
	Base
	Block *Block
}

type TryStatement struct {
	Base
	Block         *Block
	CatchClauses  []*CatchClause
	FinallyClause *FinallyClause
}

// ConfigurationDirective wraps conditional-compilation code. Directive is
// either a *Block or an *IfStatement whose branches are themselves blocks or
// configuration if statements.
type ConfigurationDirective struct {
	Base
	Directive Directive
}

type ImportSpecifierKind int

const (
	IMPORT_IDENTIFIER ImportSpecifierKind = iota // import p.q.Name;
	IMPORT_WILDCARD                              // import p.q.*;
	IMPORT_RECURSIVE                             // import p.q.**;
)

type ImportSpecifier struct {
	Kind ImportSpecifierKind
	Name Identifier // only for IMPORT_IDENTIFIER
	Pos  token.Pos
}

type ImportDirective struct {
	Base
	Alias       *Identifier // import X = p.q.Name;
	PackageName []Identifier
	Specifier   ImportSpecifier
}

func (imp *ImportDirective) PackageSegments() []string {
	segments := make([]string, len(imp.PackageName))
	for i, id := range imp.PackageName {
		segments[i] = id.Name
	}
	return segments
}

// ImportedName renders the import target the way it is written in source.
func (imp *ImportDirective) ImportedName() string {
	name := JoinIdentifiers(imp.PackageName, ".")
	var last string
	switch imp.Specifier.Kind {
	case IMPORT_WILDCARD:
		last = "*"
	case IMPORT_RECURSIVE:
		last = "**"
	default:
		last = imp.Specifier.Name.Name
	}
	if name == "" {
		return last
	}
	return name + "." + last
}

type PackageDefinition struct {
	Base
	Name  []Identifier
	Block *Block
}

type ClassDefinition struct {
	Base
	Name  Identifier
	Block *Block
}

type FunctionDefinition struct {
	Base
	Name   Identifier
	Params []*Binding
	Body   *Block
}

type Binding struct {
	Base
	Name Identifier
	Init Expr // nil when there is no initializer
}

type VariableDefinition struct {
	Base
	Namespace *Identifier // CONFIG const x = ...;
	Const     bool
	Bindings  []*Binding
}

type ExpressionStatement struct {
	Base
	Expr Expr
}

type EmptyStatement struct {
	Base
}

type ReturnStatement struct {
	Base
	Value Expr
}

type ThrowStatement struct {
	Base
	Value Expr
}

type BreakStatement struct {
	Base
	Label *Identifier
}

type ContinueStatement struct {
	Base
	Label *Identifier
}

func (*Block) directiveNode()                  {}
func (*LabeledStatement) directiveNode()       {}
func (*IfStatement) directiveNode()            {}
func (*SwitchStatement) directiveNode()        {}
func (*SwitchTypeStatement) directiveNode()    {}
func (*DoStatement) directiveNode()            {}
func (*WhileStatement) directiveNode()         {}
func (*ForStatement) directiveNode()           {}
func (*ForInStatement) directiveNode()         {}
func (*WithStatement) directiveNode()          {}
func (*TryStatement) directiveNode()           {}
func (*ConfigurationDirective) directiveNode() {}
func (*ImportDirective) directiveNode()        {}
func (*PackageDefinition) directiveNode()      {}
func (*ClassDefinition) directiveNode()        {}
func (*FunctionDefinition) directiveNode()     {}
func (*VariableDefinition) directiveNode()     {}
func (*ExpressionStatement) directiveNode()    {}
func (*EmptyStatement) directiveNode()         {}
func (*ReturnStatement) directiveNode()        {}
func (*ThrowStatement) directiveNode()         {}
func (*BreakStatement) directiveNode()         {}
func (*ContinueStatement) directiveNode()      {}
