package verifier

import (
	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/host"
)

// VerifyBlock verifies a block in its own scope, memoized on the block node.
// A block finishes once all of its directives have finished.
func (v *Verifier) VerifyBlock(block *ast.Block) error {
	return v.verifyBlockWith(block, nil)
}

// verifyBlockWith is VerifyBlock with a hook that binds names (catch and
// type-switch parameters) in the block scope before its directives run.
// Blocks with a binder always get a scope; other blocks only when block
// scoping is enabled.
func (v *Verifier) verifyBlockWith(block *ast.Block, bind func(*host.Scope)) error {
	phase := v.lazyInitPhase(block.ID(), host.PHASE_ALPHA)
	if phase == host.PHASE_FINISHED {
		return nil
	}

	verify := func() error {
		if bind != nil {
			bind(v.currentScope())
		}
		if err := v.VerifyDirectives(block.Directives); err != nil {
			return err
		}
		v.setPhase(block.ID(), host.PHASE_FINISHED)
		return nil
	}

	if bind == nil && !v.host.Options().BlockScope {
		return verify()
	}
	scope := host.LazyNodeMapping(v.host, block.ID(), func() *host.Scope {
		return v.host.CreateScope(host.SCOPE_BLOCK)
	})
	return v.withScope(scope, verify)
}

func (v *Verifier) parameterBinder(param *ast.Binding) func(*host.Scope) {
	if param == nil {
		return nil
	}
	return func(scope *host.Scope) {
		v.lazySymbol(scope, param.ID(), param.Name, host.SYMBOL_PARAMETER)
	}
}
