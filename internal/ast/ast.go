// Package ast defines the directive tree produced by the parser and
// consumed by the verifier.
//
// Every node carries a NodeID that is unique within a Program. Semantic
// state (phases, scopes, imports, constant annotations) is never stored on
// the nodes themselves; the verifier keys it by NodeID instead, so a tree can
// be shared and re-verified without mutation.
package ast

import (
	"strings"

	"github.com/HicaroD/razen/internal/lexer/token"
)

type NodeID int

// NO_NODE is never handed out by an IDGen.
const NO_NODE NodeID = 0

type Node interface {
	ID() NodeID
	Loc() token.Pos
}

type Base struct {
	NodeId NodeID
	Pos    token.Pos
}

func (base *Base) ID() NodeID     { return base.NodeId }
func (base *Base) Loc() token.Pos { return base.Pos }

func NewBase(id NodeID, pos token.Pos) Base {
	return Base{NodeId: id, Pos: pos}
}

// IDGen hands out node ids. All compilation units of a program must share
// one generator.
type IDGen struct {
	last NodeID
}

func NewIDGen() *IDGen { return &IDGen{} }

func (gen *IDGen) Next() NodeID {
	gen.last++
	return gen.last
}

type Identifier struct {
	Name string
	Pos  token.Pos
}

func (id Identifier) String() string { return id.Name }

func JoinIdentifiers(ids []Identifier, sep string) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.Name
	}
	return strings.Join(names, sep)
}
