package host

import (
	"errors"
	"fmt"
)

var (
	ERR_SYMBOL_ALREADY_DEFINED_ON_SCOPE = errors.New("symbol already defined on scope")
	ERR_SYMBOL_NOT_FOUND_ON_SCOPE       = errors.New("symbol not found on scope")
)

type ScopeKind int

const (
	SCOPE_GLOBAL ScopeKind = iota
	SCOPE_UNIT
	SCOPE_PACKAGE
	SCOPE_CLASS
	SCOPE_ACTIVATION
	SCOPE_BLOCK
	SCOPE_LOOP
)

func (kind ScopeKind) String() string {
	switch kind {
	case SCOPE_GLOBAL:
		return "global"
	case SCOPE_UNIT:
		return "unit"
	case SCOPE_PACKAGE:
		return "package"
	case SCOPE_CLASS:
		return "class"
	case SCOPE_ACTIVATION:
		return "activation"
	case SCOPE_BLOCK:
		return "block"
	case SCOPE_LOOP:
		return "loop"
	}
	return fmt.Sprintf("ScopeKind(%d)", int(kind))
}

type Scope struct {
	Kind     ScopeKind
	Name     string
	Parent   *Scope
	Children []*Scope

	// Package is set for SCOPE_PACKAGE.
	Package *Package

	Properties map[string]*Symbol
	Imports    []Import

	order []string
}

func newScope(kind ScopeKind) *Scope {
	return &Scope{Kind: kind, Properties: make(map[string]*Symbol)}
}

// Inherit links the scope under parent. A scope is linked once; later calls
// are no-ops, so memoized scopes keep their original parent.
func (scope *Scope) Inherit(parent *Scope) {
	if scope.Parent != nil || parent == nil || parent == scope {
		return
	}
	scope.Parent = parent
	parent.Children = append(parent.Children, scope)
}

func (scope *Scope) Insert(sym *Symbol) error {
	if _, ok := scope.Properties[sym.Name]; ok {
		return ERR_SYMBOL_ALREADY_DEFINED_ON_SCOPE
	}
	scope.Properties[sym.Name] = sym
	scope.order = append(scope.order, sym.Name)
	return nil
}

// Symbols returns the scope's properties in definition order.
func (scope *Scope) Symbols() []*Symbol {
	symbols := make([]*Symbol, 0, len(scope.order))
	for _, name := range scope.order {
		symbols = append(symbols, scope.Properties[name])
	}
	return symbols
}

func (scope *Scope) AddImport(imp Import) {
	for _, existing := range scope.Imports {
		if existing == imp {
			return
		}
	}
	scope.Imports = append(scope.Imports, imp)
}

func (scope *Scope) LookupCurrentScope(name string) (*Symbol, error) {
	if sym, ok := scope.Properties[name]; ok {
		return sym, nil
	}
	return nil, ERR_SYMBOL_NOT_FOUND_ON_SCOPE
}

// Lookup resolves name across the scope chain. Each scope is searched by its
// own properties first, then its open imports in order. via is the import
// through which the name was found, if any. The symbol is nil when the name
// matched an import that is not resolved yet.
func (scope *Scope) Lookup(name string) (sym *Symbol, via Import, err error) {
	for current := scope; current != nil; current = current.Parent {
		if sym, ok := current.Properties[name]; ok {
			return sym, sym.Import, nil
		}
		for _, imp := range current.Imports {
			if sym, ok := imp.lookup(name); ok {
				return sym, imp, nil
			}
		}
	}
	return nil, nil, ERR_SYMBOL_NOT_FOUND_ON_SCOPE
}

func (scope *Scope) String() string {
	if scope.Name != "" {
		return fmt.Sprintf("%s %s", scope.Kind, scope.Name)
	}
	return scope.Kind.String()
}
