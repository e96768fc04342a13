package host

import (
	"github.com/HicaroD/razen/internal/lexer/token"
)

// Import is an open import contributed to a scope. The set of import kinds is
// closed.
type Import interface {
	// ImportedName renders the import the way it is written in source.
	ImportedName() string
	Location() token.Pos
	lookup(name string) (*Symbol, bool)
}

// PropertyImport is import p.q.Name. It is unresolved until the verifier's
// Beta phase finds Name among the package members.
type PropertyImport struct {
	Package  *Package
	Name     string
	Pos      token.Pos
	Resolved *Symbol
}

func (imp *PropertyImport) Resolve(sym *Symbol) { imp.Resolved = sym }

func (imp *PropertyImport) IsResolved() bool { return imp.Resolved != nil }

func (imp *PropertyImport) ImportedName() string { return qualify(imp.Package, imp.Name) }
func (imp *PropertyImport) Location() token.Pos  { return imp.Pos }

func (imp *PropertyImport) lookup(name string) (*Symbol, bool) {
	if name != imp.Name {
		return nil, false
	}
	return imp.Resolved, true
}

// WildcardImport is import p.q.*.
type WildcardImport struct {
	Package *Package
	Pos     token.Pos
}

func (imp *WildcardImport) ImportedName() string { return qualify(imp.Package, "*") }
func (imp *WildcardImport) Location() token.Pos  { return imp.Pos }

func (imp *WildcardImport) lookup(name string) (*Symbol, bool) {
	return imp.Package.Member(name)
}

// RecursiveImport is import p.q.**, opening p.q and every package below it.
type RecursiveImport struct {
	Package *Package
	Pos     token.Pos
}

func (imp *RecursiveImport) ImportedName() string { return qualify(imp.Package, "**") }
func (imp *RecursiveImport) Location() token.Pos  { return imp.Pos }

func (imp *RecursiveImport) lookup(name string) (*Symbol, bool) {
	return imp.Package.MemberRecursive(name)
}

// AliasImport is import X = p.q.Name or import X = p.q.*. The alias is bound
// as a SYMBOL_ALIAS in the enclosing scope; Name is empty for a package alias.
type AliasImport struct {
	Alias   string
	Package *Package
	Name    string
	Pos     token.Pos

	Resolved *Symbol
	// Resolved package of a package alias.
	ResolvedPackage *Package
}

func (imp *AliasImport) IsPackageAlias() bool { return imp.Name == "" }

func (imp *AliasImport) IsResolved() bool {
	return imp.Resolved != nil || imp.ResolvedPackage != nil
}

func (imp *AliasImport) ImportedName() string {
	if imp.IsPackageAlias() {
		return imp.Alias + " = " + qualify(imp.Package, "*")
	}
	return imp.Alias + " = " + qualify(imp.Package, imp.Name)
}

func (imp *AliasImport) Location() token.Pos { return imp.Pos }

func (imp *AliasImport) lookup(name string) (*Symbol, bool) {
	if name != imp.Alias {
		return nil, false
	}
	return imp.Resolved, true
}

func qualify(pckg *Package, name string) string {
	if pckg == nil || pckg.Name == "" {
		return name
	}
	return pckg.Name + "." + name
}
