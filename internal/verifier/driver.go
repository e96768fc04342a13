package verifier

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/diagnostics"
	"github.com/HicaroD/razen/internal/host"
	"github.com/HicaroD/razen/internal/lexer/token"
)

// UnitScope returns the scope of a compilation unit, a child of the global
// scope.
func (v *Verifier) UnitScope(unit *ast.CompilationUnit) *host.Scope {
	return host.LazyNodeMapping(v.host, unit.ID(), func() *host.Scope {
		scope := v.host.CreateScope(host.SCOPE_UNIT)
		if unit.Loc != nil {
			scope.Name = unit.Loc.Name
		}
		scope.Inherit(v.host.GlobalScope())
		return scope
	})
}

// VerifyUnit runs one pass over the unit's directives.
func (v *Verifier) VerifyUnit(unit *ast.CompilationUnit) error {
	return v.withScope(v.UnitScope(unit), func() error {
		return v.VerifyDirectives(unit.Directives)
	})
}

// Verify repeats passes over every unit until none defers. A pass that defers
// without making progress is followed by a last-chance pass, in which
// unknown constants and unresolved imports are reported instead of deferred.
// If deferrals remain after that, or after MaxCycles passes, the program is
// reported as unresolved.
func (v *Verifier) Verify(ctx context.Context, program *ast.Program) error {
	maxCycles := v.host.Options().MaxCycles
	lastChance := false
	passes := 0

	for passes < maxCycles {
		if err := ctx.Err(); err != nil {
			return err
		}
		passes++

		v.host.SetLastChance(lastChance)
		before := v.host.Progress()

		anyDefer := false
		for _, unit := range program.Units {
			if v.VerifyUnit(unit) != nil {
				anyDefer = true
			}
		}
		progress := v.host.Progress() != before
		v.metrics.pass(anyDefer)

		v.log.Debug("verification pass",
			zap.Int("pass", passes),
			zap.Bool("deferred", anyDefer),
			zap.Bool("progress", progress),
			zap.Bool("last_chance", lastChance),
		)

		if !anyDefer {
			v.host.SetLastChance(false)
			v.reportUnusedImports()
			v.log.Info("verification finished",
				zap.Int("passes", passes),
				zap.Int("units", len(program.Units)),
			)
			return nil
		}

		if progress {
			lastChance = false
		} else if lastChance {
			break
		} else {
			lastChance = true
		}
	}

	v.host.SetLastChance(false)
	v.addVerifyError(token.Pos{}, diagnostics.UNRESOLVED_DIRECTIVES, strconv.Itoa(passes))
	return diagnostics.COMPILER_ERROR_FOUND
}

func (v *Verifier) reportUnusedImports() {
	if !v.host.Options().Warnings.Unused {
		return
	}
	for _, imp := range v.host.Unused().All() {
		v.addVerifyError(imp.Location(), diagnostics.UNUSED_IMPORT, imp.ImportedName())
	}
}
