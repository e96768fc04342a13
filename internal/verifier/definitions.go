package verifier

import (
	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/constant"
	"github.com/HicaroD/razen/internal/diagnostics"
	"github.com/HicaroD/razen/internal/host"
)

func (v *Verifier) verifyPackageDefinition(def *ast.PackageDefinition) error {
	phase := v.lazyInitPhase(def.ID(), host.PHASE_ALPHA)
	if phase == host.PHASE_FINISHED {
		return nil
	}

	segments := make([]string, len(def.Name))
	for i, id := range def.Name {
		segments[i] = id.Name
	}
	pckg := v.host.CreatePackage(segments)

	err := v.withScope(pckg.Scope, func() error {
		return v.VerifyDirectives(def.Block.Directives)
	})
	if err != nil {
		return err
	}
	v.setPhase(def.ID(), host.PHASE_FINISHED)
	return nil
}

// Classes are members of the enclosing scope, which makes classes defined
// directly in a package block members of the package.
func (v *Verifier) verifyClassDefinition(def *ast.ClassDefinition) error {
	phase := v.lazyInitPhase(def.ID(), host.PHASE_ALPHA)
	if phase == host.PHASE_FINISHED {
		return nil
	}
	v.lazySymbol(v.currentScope(), def.ID(), def.Name, host.SYMBOL_CLASS)

	scope := host.LazyNodeMapping(v.host, def.Block.ID(), func() *host.Scope {
		scope := v.host.CreateScope(host.SCOPE_CLASS)
		scope.Name = def.Name.Name
		return scope
	})
	err := v.withScope(scope, func() error {
		return v.VerifyDirectives(def.Block.Directives)
	})
	if err != nil {
		return err
	}
	v.setPhase(def.ID(), host.PHASE_FINISHED)
	return nil
}

func (v *Verifier) verifyFunctionDefinition(def *ast.FunctionDefinition) error {
	phase := v.lazyInitPhase(def.ID(), host.PHASE_ALPHA)
	if phase == host.PHASE_FINISHED {
		return nil
	}
	v.lazySymbol(v.currentScope(), def.ID(), def.Name, host.SYMBOL_FUNCTION)

	if def.Body == nil {
		v.setPhase(def.ID(), host.PHASE_FINISHED)
		return nil
	}

	scope := host.LazyNodeMapping(v.host, def.Body.ID(), func() *host.Scope {
		scope := v.host.CreateScope(host.SCOPE_ACTIVATION)
		scope.Name = def.Name.Name
		return scope
	})
	err := v.withScope(scope, func() error {
		var results []error
		for _, param := range def.Params {
			v.lazySymbol(scope, param.ID(), param.Name, host.SYMBOL_PARAMETER)
			results = append(results, v.markUsedNames(param.Init))
		}
		results = append(results, v.VerifyDirectives(def.Body.Directives))
		return deferred(results...)
	})
	if err != nil {
		return err
	}
	v.setPhase(def.ID(), host.PHASE_FINISHED)
	return nil
}

// A variable definition finishes once every binding has finished.
func (v *Verifier) verifyVariableDefinition(def *ast.VariableDefinition) error {
	phase := v.lazyInitPhase(def.ID(), host.PHASE_ALPHA)
	if phase == host.PHASE_FINISHED {
		return nil
	}

	var err error
	if def.Namespace != nil {
		err = v.verifyConfigConstant(def)
	} else {
		kind := host.SYMBOL_VARIABLE
		if def.Const {
			kind = host.SYMBOL_CONST
		}
		var results []error
		for _, binding := range def.Bindings {
			v.lazySymbol(v.currentScope(), binding.ID(), binding.Name, kind)
			results = append(results, v.markUsedNames(binding.Init))
		}
		err = deferred(results...)
	}
	return v.finishUnlessDeferred(def.ID(), err)
}

// verifyConfigConstant defines NS::name constants from CONFIG const name = e.
// Each binding finishes once its initializer is a known constant.
func (v *Verifier) verifyConfigConstant(def *ast.VariableDefinition) error {
	namespace := def.Namespace.Name

	var results []error
	for _, binding := range def.Bindings {
		phase := v.lazyInitPhase(binding.ID(), host.PHASE_ALPHA)
		if phase == host.PHASE_FINISHED {
			continue
		}

		var value constant.Value = constant.Undefined{}
		if binding.Init != nil {
			var err error
			value, err = v.verifyExpression(binding.Init)
			if err != nil {
				v.addVerifyError(binding.Init.Loc(), diagnostics.REACHED_MAXIMUM_CYCLES)
				v.setPhase(binding.ID(), host.PHASE_FINISHED)
				continue
			}
			if value == nil {
				results = append(results, ERR_DEFER)
				continue
			}
		}

		if !v.host.DefineConstant(namespace, binding.Name.Name, value) {
			v.addVerifyError(binding.Name.Pos, diagnostics.DUPLICATE_DEFINITION, namespace+"::"+binding.Name.Name)
		}
		v.setPhase(binding.ID(), host.PHASE_FINISHED)
	}
	return deferred(results...)
}
