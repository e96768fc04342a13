package verifier

import (
	"fmt"

	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/host"
)

// VerifyDirectives verifies every directive of the list, in order, even after
// one of them defers.
func (v *Verifier) VerifyDirectives(list []ast.Directive) error {
	anyDefer := false
	for _, directive := range list {
		if v.VerifyDirective(directive) != nil {
			anyDefer = true
		}
	}
	if anyDefer {
		return ERR_DEFER
	}
	return nil
}

func (v *Verifier) VerifyDirective(directive ast.Directive) error {
	switch d := directive.(type) {
	case *ast.Block:
		return v.VerifyBlock(d)
	case *ast.LabeledStatement:
		return v.VerifyDirective(d.Substatement)
	case *ast.IfStatement:
		test := v.markUsedNames(d.Test)
		consequent := v.VerifyDirective(d.Consequent)
		var alternative error
		if d.Alternative != nil {
			alternative = v.VerifyDirective(d.Alternative)
		}
		return deferred(test, consequent, alternative)
	case *ast.SwitchStatement:
		return v.verifySwitchStatement(d)
	case *ast.SwitchTypeStatement:
		return v.verifySwitchTypeStatement(d)
	case *ast.DoStatement:
		body := v.VerifyDirective(d.Body)
		test := v.markUsedNames(d.Test)
		return deferred(body, test)
	case *ast.WhileStatement:
		test := v.markUsedNames(d.Test)
		body := v.VerifyDirective(d.Body)
		return deferred(test, body)
	case *ast.ForStatement:
		return v.verifyForStatement(d)
	case *ast.ForInStatement:
		return v.verifyForInStatement(d)
	case *ast.WithStatement:
		object := v.markUsedNames(d.Object)
		body := v.VerifyDirective(d.Body)
		return deferred(object, body)
	case *ast.TryStatement:
		return v.verifyTryStatement(d)
	case *ast.ConfigurationDirective:
		return v.verifyConfigurationDirective(d)
	case *ast.ImportDirective:
		return v.VerifyImportDirective(d)
	case *ast.PackageDefinition:
		return v.verifyPackageDefinition(d)
	case *ast.ClassDefinition:
		return v.verifyClassDefinition(d)
	case *ast.FunctionDefinition:
		return v.verifyFunctionDefinition(d)
	case *ast.VariableDefinition:
		return v.verifyVariableDefinition(d)
	case *ast.ExpressionStatement:
		if v.lazyInitPhase(d.ID(), host.PHASE_ALPHA) == host.PHASE_FINISHED {
			return nil
		}
		return v.finishUnlessDeferred(d.ID(), v.markUsedNames(d.Expr))
	case *ast.ReturnStatement:
		return v.markUsedNames(d.Value)
	case *ast.ThrowStatement:
		return v.markUsedNames(d.Value)
	case *ast.EmptyStatement, *ast.BreakStatement, *ast.ContinueStatement:
		return nil
	default:
		panic(fmt.Sprintf("verifier: unhandled directive %T", directive))
	}
}

func (v *Verifier) verifySwitchStatement(swstmt *ast.SwitchStatement) error {
	results := []error{v.markUsedNames(swstmt.Discriminant)}
	for _, c := range swstmt.Cases {
		for _, label := range c.Labels {
			results = append(results, v.markUsedNames(label))
		}
		results = append(results, v.VerifyDirectives(c.Directives))
	}
	return deferred(results...)
}

func (v *Verifier) verifySwitchTypeStatement(swstmt *ast.SwitchTypeStatement) error {
	results := []error{v.markUsedNames(swstmt.Discriminant)}
	for _, c := range swstmt.Cases {
		results = append(results, v.verifyBlockWith(c.Block, v.parameterBinder(c.Parameter)))
	}
	return deferred(results...)
}

// The loop scope of a for statement holds the bindings of its
// initializer, so it exists regardless of block scoping.
func (v *Verifier) verifyForStatement(forstmt *ast.ForStatement) error {
	scope := host.LazyNodeMapping(v.host, forstmt.ID(), func() *host.Scope {
		return v.host.CreateScope(host.SCOPE_LOOP)
	})
	return v.withScope(scope, func() error {
		var init error
		if forstmt.Init != nil {
			init = v.VerifyDirective(forstmt.Init)
		}
		test := v.markUsedNames(forstmt.Test)
		update := v.markUsedNames(forstmt.Update)
		body := v.VerifyDirective(forstmt.Body)
		return deferred(init, test, update, body)
	})
}

func (v *Verifier) verifyForInStatement(forstmt *ast.ForInStatement) error {
	right := v.markUsedNames(forstmt.Right)
	loop := func() error {
		left := v.VerifyDirective(forstmt.Left)
		body := v.VerifyDirective(forstmt.Body)
		return deferred(left, body)
	}
	if !v.host.Options().BlockScope {
		return deferred(right, loop())
	}
	scope := host.LazyNodeMapping(v.host, forstmt.ID(), func() *host.Scope {
		return v.host.CreateScope(host.SCOPE_LOOP)
	})
	return deferred(right, v.withScope(scope, loop))
}

func (v *Verifier) verifyTryStatement(trystmt *ast.TryStatement) error {
	results := []error{v.VerifyBlock(trystmt.Block)}
	for _, catchClause := range trystmt.CatchClauses {
		results = append(results, v.verifyBlockWith(catchClause.Block, v.parameterBinder(catchClause.Parameter)))
	}
	if trystmt.FinallyClause != nil {
		results = append(results, v.VerifyBlock(trystmt.FinallyClause.Block))
	}
	return deferred(results...)
}
