package verifier

import (
	"fmt"

	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/constant"
	"github.com/HicaroD/razen/internal/diagnostics"
	"github.com/HicaroD/razen/internal/host"
)

func (v *Verifier) verifyConfigurationDirective(cfg *ast.ConfigurationDirective) error {
	phase := v.lazyInitPhase(cfg.ID(), host.PHASE_ALPHA)
	if phase == host.PHASE_FINISHED {
		return nil
	}
	if err := v.VerifyConfigSubdirective(cfg.Directive); err != nil {
		return ERR_DEFER
	}
	v.setPhase(cfg.ID(), host.PHASE_FINISHED)
	return nil
}

// VerifyConfigSubdirective verifies conditional-compilation code. Blocks
// contribute to the enclosing scope. For if statements only the branch
// selected by the constant test is verified; the other branch is excluded
// from compilation.
func (v *Verifier) VerifyConfigSubdirective(directive ast.Directive) error {
	switch d := directive.(type) {
	case *ast.Block:
		return v.VerifyDirectives(d.Directives)
	case *ast.IfStatement:
		value, err := v.verifyExpression(d.Test)
		if err != nil {
			v.addVerifyError(d.Test.Loc(), diagnostics.REACHED_MAXIMUM_CYCLES)
			return nil
		}
		if value == nil {
			return ERR_DEFER
		}
		if !constant.IsBoolean(value) {
			v.host.NodeMapping().Delete(d.Test.ID())
			v.addVerifyError(d.Test.Loc(), diagnostics.NOT_A_BOOLEAN_CONSTANT, value.Kind().String())
			return nil
		}
		if constant.ToBoolean(value) {
			return v.VerifyConfigSubdirective(d.Consequent)
		}
		if d.Alternative != nil {
			return v.VerifyConfigSubdirective(d.Alternative)
		}
		return nil
	default:
		panic(fmt.Sprintf("verifier: unexpected configuration subdirective %T", directive))
	}
}
