package host

// Unused tracks imports that no name use has gone through yet. Entries keep
// the order in which they were added.
type Unused struct {
	order   []Import
	members map[Import]bool
}

func newUnused() *Unused {
	return &Unused{members: make(map[Import]bool)}
}

func (unused *Unused) Add(imp Import) {
	if _, seen := unused.members[imp]; seen {
		return
	}
	unused.members[imp] = true
	unused.order = append(unused.order, imp)
}

// MarkUsed removes imp from the registry. It reports whether imp was still
// unused.
func (unused *Unused) MarkUsed(imp Import) bool {
	if !unused.members[imp] {
		return false
	}
	unused.members[imp] = false
	return true
}

func (unused *Unused) Contains(imp Import) bool {
	return unused.members[imp]
}

func (unused *Unused) All() []Import {
	var imports []Import
	for _, imp := range unused.order {
		if unused.members[imp] {
			imports = append(imports, imp)
		}
	}
	return imports
}

func (unused *Unused) Len() int {
	return len(unused.All())
}
