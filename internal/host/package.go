package host

import "strings"

// Package is a node of the package tree. Its members are the properties of
// its scope.
type Package struct {
	Name     string
	Segments []string
	Parent   *Package
	Scope    *Scope

	subpackages map[string]*Package
	order       []string
}

func newPackage(segments []string, parent *Package, global *Scope) *Package {
	pckg := &Package{
		Name:        strings.Join(segments, "."),
		Segments:    segments,
		Parent:      parent,
		subpackages: make(map[string]*Package),
	}
	pckg.Scope = newScope(SCOPE_PACKAGE)
	pckg.Scope.Name = pckg.Name
	pckg.Scope.Package = pckg
	pckg.Scope.Inherit(global)
	return pckg
}

func (pckg *Package) Subpackage(name string) (*Package, bool) {
	sub, ok := pckg.subpackages[name]
	return sub, ok
}

// Subpackages returns the direct subpackages in creation order.
func (pckg *Package) Subpackages() []*Package {
	subs := make([]*Package, 0, len(pckg.order))
	for _, name := range pckg.order {
		subs = append(subs, pckg.subpackages[name])
	}
	return subs
}

func (pckg *Package) Member(name string) (*Symbol, bool) {
	sym, ok := pckg.Scope.Properties[name]
	return sym, ok
}

// MemberRecursive searches the package and then its subpackages, depth
// first in creation order.
func (pckg *Package) MemberRecursive(name string) (*Symbol, bool) {
	if sym, ok := pckg.Member(name); ok {
		return sym, true
	}
	for _, sub := range pckg.Subpackages() {
		if sym, ok := sub.MemberRecursive(name); ok {
			return sym, true
		}
	}
	return nil, false
}

func (pckg *Package) IsEmpty() bool {
	return len(pckg.Scope.Properties) == 0
}

func (pckg *Package) IsEmptyRecursive() bool {
	if !pckg.IsEmpty() {
		return false
	}
	for _, sub := range pckg.subpackages {
		if !sub.IsEmptyRecursive() {
			return false
		}
	}
	return true
}

func (pckg *Package) String() string {
	return pckg.Name
}
