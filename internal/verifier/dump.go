package verifier

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/host"
)

// DumpScopes renders the scope tree of every unit of the program, followed by
// the package tree. It is meant to be called after Verify.
func DumpScopes(h *host.Host, program *ast.Program) string {
	root := treeprint.New()
	tree := root.AddBranch(h.GlobalScope().String())
	addSymbols(tree, h.GlobalScope())

	for _, unit := range program.Units {
		annotation, ok := h.NodeMapping().Get(unit.ID())
		if !ok {
			continue
		}
		if scope, ok := annotation.(*host.Scope); ok {
			addScope(tree, scope)
		}
	}

	if names := h.PackageNames(); len(names) > 0 {
		packages := root.AddBranch("packages")
		for _, name := range names {
			pckg, _ := h.LookupPackage(name)
			branch := packages.AddBranch(name)
			addSymbols(branch, pckg.Scope)
		}
	}
	return root.String()
}

func addScope(parent treeprint.Tree, scope *host.Scope) {
	branch := parent.AddBranch(scope.String())
	for _, imp := range scope.Imports {
		branch.AddNode("import " + imp.ImportedName())
	}
	addSymbols(branch, scope)
	for _, child := range scope.Children {
		// Package scopes are listed under packages.
		if child.Kind == host.SCOPE_PACKAGE {
			continue
		}
		addScope(branch, child)
	}
}

func addSymbols(tree treeprint.Tree, scope *host.Scope) {
	for _, sym := range scope.Symbols() {
		if sym.Kind == host.SYMBOL_ALIAS && sym.Import != nil {
			tree.AddNode(fmt.Sprintf("%s -> %s", sym, aliasTarget(sym.Import)))
			continue
		}
		tree.AddNode(sym.String())
	}
}

func aliasTarget(imp host.Import) string {
	name := imp.ImportedName()
	if i := strings.Index(name, " = "); i >= 0 {
		return name[i+3:]
	}
	return name
}
