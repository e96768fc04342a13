package verifier

import (
	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/host"
)

// markUsedNames resolves the identifiers referenced by expr through the
// current scope chain and removes the imports they came through from the
// unused registry. Only the root of a member chain is a name use. An
// unresolved name defers, since a later sibling may still define it; in
// last-chance mode it is left unresolved.
func (v *Verifier) markUsedNames(expr ast.Expr) error {
	if expr == nil {
		return nil
	}
	phase := v.lazyInitPhase(expr.ID(), host.PHASE_ALPHA)
	if phase == host.PHASE_FINISHED {
		return nil
	}

	unresolved := false
	ast.Walk(expr, func(e ast.Expr) bool {
		if id, ok := e.(*ast.IdentifierExpr); ok {
			if !v.markUsedName(id.Name) {
				unresolved = true
			}
		}
		return true
	})

	if unresolved && !v.host.LastChance() {
		return ERR_DEFER
	}
	v.setPhase(expr.ID(), host.PHASE_FINISHED)
	return nil
}

func (v *Verifier) markUsedName(name string) bool {
	_, via, err := v.currentScope().Lookup(name)
	if err != nil {
		return false
	}
	if via != nil {
		v.host.Unused().MarkUsed(via)
	}
	return true
}
