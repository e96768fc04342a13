package host

import (
	"fmt"

	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/lexer/token"
)

type SymbolKind int

const (
	SYMBOL_VARIABLE SymbolKind = iota
	SYMBOL_CONST
	SYMBOL_FUNCTION
	SYMBOL_CLASS
	SYMBOL_PARAMETER
	SYMBOL_ALIAS
)

func (kind SymbolKind) String() string {
	switch kind {
	case SYMBOL_VARIABLE:
		return "var"
	case SYMBOL_CONST:
		return "const"
	case SYMBOL_FUNCTION:
		return "function"
	case SYMBOL_CLASS:
		return "class"
	case SYMBOL_PARAMETER:
		return "param"
	case SYMBOL_ALIAS:
		return "alias"
	}
	return fmt.Sprintf("SymbolKind(%d)", int(kind))
}

type Symbol struct {
	Name string
	Kind SymbolKind
	Pos  token.Pos
	Node ast.NodeID

	// Import is the alias import that introduced a SYMBOL_ALIAS.
	Import Import
}

func NewSymbol(name string, kind SymbolKind, pos token.Pos, node ast.NodeID) *Symbol {
	return &Symbol{Name: name, Kind: kind, Pos: pos, Node: node}
}

func (sym *Symbol) String() string {
	return fmt.Sprintf("%s %s", sym.Kind, sym.Name)
}
