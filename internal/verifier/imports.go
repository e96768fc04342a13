package verifier

import (
	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/diagnostics"
	"github.com/HicaroD/razen/internal/host"
)

// VerifyImportDirective binds an import in two phases. Alpha opens the import
// in the enclosing scope and registers it as unused; Beta, one pass later,
// resolves it against the package tree. Missing definitions and empty
// packages keep the import in Beta until the last-chance pass, since their
// members may still be defined by code that is not verified yet.
func (v *Verifier) VerifyImportDirective(imp *ast.ImportDirective) error {
	phase := v.lazyInitPhase(imp.ID(), host.PHASE_ALPHA)
	if phase == host.PHASE_FINISHED {
		return nil
	}
	if imp.Alias != nil {
		return v.verifyImportAliasDirective(imp, phase)
	}

	object := host.LazyNodeMapping(v.host, imp.ID(), func() host.Import {
		pckg := v.host.CreatePackage(imp.PackageSegments())
		switch imp.Specifier.Kind {
		case ast.IMPORT_WILDCARD:
			return &host.WildcardImport{Package: pckg, Pos: imp.Loc()}
		case ast.IMPORT_RECURSIVE:
			return &host.RecursiveImport{Package: pckg, Pos: imp.Loc()}
		default:
			return &host.PropertyImport{Package: pckg, Name: imp.Specifier.Name.Name, Pos: imp.Loc()}
		}
	})

	if phase == host.PHASE_ALPHA {
		v.host.Unused().Add(object)
		v.currentScope().AddImport(object)
		v.setPhase(imp.ID(), host.PHASE_BETA)
		return ERR_DEFER
	}

	switch object := object.(type) {
	case *host.WildcardImport:
		if object.Package.IsEmpty() {
			if !v.host.LastChance() {
				return ERR_DEFER
			}
			v.addVerifyError(imp.Loc(), diagnostics.EMPTY_PACKAGE_IMPORT, object.Package.Name)
		}
	case *host.RecursiveImport:
		if object.Package.IsEmptyRecursive() {
			if !v.host.LastChance() {
				return ERR_DEFER
			}
			v.addVerifyError(imp.Loc(), diagnostics.EMPTY_PACKAGE_IMPORT, object.Package.Name)
		}
	case *host.PropertyImport:
		sym, ok := object.Package.Member(object.Name)
		if !ok {
			if !v.host.LastChance() {
				return ERR_DEFER
			}
			v.addVerifyError(imp.Specifier.Pos, diagnostics.IMPORTED_DEFINITION_NOT_FOUND, object.ImportedName())
		} else {
			object.Resolve(sym)
		}
	}
	v.setPhase(imp.ID(), host.PHASE_FINISHED)
	return nil
}

// verifyImportAliasDirective handles import X = p.q.Name and import X = p.q.*.
// The alias is a property of the enclosing scope rather than an open import.
func (v *Verifier) verifyImportAliasDirective(imp *ast.ImportDirective, phase host.Phase) error {
	if imp.Specifier.Kind == ast.IMPORT_RECURSIVE {
		v.addVerifyError(imp.Specifier.Pos, diagnostics.RECURSIVE_ALIAS_IMPORT, imp.ImportedName())
		v.setPhase(imp.ID(), host.PHASE_FINISHED)
		return nil
	}

	object := host.LazyNodeMapping(v.host, imp.ID(), func() *host.AliasImport {
		alias := &host.AliasImport{
			Alias:   imp.Alias.Name,
			Package: v.host.CreatePackage(imp.PackageSegments()),
			Pos:     imp.Loc(),
		}
		if imp.Specifier.Kind == ast.IMPORT_IDENTIFIER {
			alias.Name = imp.Specifier.Name.Name
		}
		return alias
	})

	if phase == host.PHASE_ALPHA {
		sym := host.NewSymbol(imp.Alias.Name, host.SYMBOL_ALIAS, imp.Alias.Pos, imp.ID())
		sym.Import = object
		if err := v.host.DefineSymbol(v.currentScope(), sym); err != nil {
			v.addVerifyError(imp.Alias.Pos, diagnostics.DUPLICATE_DEFINITION, imp.Alias.Name)
		}
		v.host.Unused().Add(object)
		v.setPhase(imp.ID(), host.PHASE_BETA)
		return ERR_DEFER
	}

	if object.IsPackageAlias() {
		if object.Package.IsEmpty() {
			if !v.host.LastChance() {
				return ERR_DEFER
			}
			v.addVerifyError(imp.Loc(), diagnostics.EMPTY_PACKAGE_IMPORT, object.Package.Name)
		}
		object.ResolvedPackage = object.Package
	} else {
		sym, ok := object.Package.Member(object.Name)
		if !ok {
			if !v.host.LastChance() {
				return ERR_DEFER
			}
			v.addVerifyError(imp.Specifier.Pos, diagnostics.IMPORTED_DEFINITION_NOT_FOUND, imp.ImportedName())
		} else {
			object.Resolved = sym
		}
	}
	v.setPhase(imp.ID(), host.PHASE_FINISHED)
	return nil
}
