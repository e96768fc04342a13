package host

import "github.com/HicaroD/razen/internal/ast"

// NodeMapping associates semantic objects (scopes, imports, symbols,
// constant annotations) with node ids.
type NodeMapping struct {
	values map[ast.NodeID]any
}

func newNodeMapping() *NodeMapping {
	return &NodeMapping{values: make(map[ast.NodeID]any)}
}

func (mapping *NodeMapping) Get(id ast.NodeID) (any, bool) {
	value, ok := mapping.values[id]
	return value, ok
}

func (mapping *NodeMapping) Set(id ast.NodeID, value any) {
	mapping.values[id] = value
}

func (mapping *NodeMapping) Delete(id ast.NodeID) {
	delete(mapping.values, id)
}

func (mapping *NodeMapping) Has(id ast.NodeID) bool {
	_, ok := mapping.values[id]
	return ok
}

func (mapping *NodeMapping) Len() int { return len(mapping.values) }

// LazyNodeMapping returns the object mapped to id, creating it with factory
// on first use. Later calls return the same object.
func LazyNodeMapping[T any](host *Host, id ast.NodeID, factory func() T) T {
	if value, ok := host.mapping.Get(id); ok {
		if typed, ok := value.(T); ok {
			return typed
		}
	}
	value := factory()
	host.mapping.Set(id, value)
	return value
}
