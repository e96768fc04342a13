// Package host holds the state shared by every verification pass: the node
// memo table, node phases, the scope and package factory, the unused-import
// registry and the configuration-constant table.
package host

import (
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/config"
	"github.com/HicaroD/razen/internal/constant"
	"github.com/HicaroD/razen/internal/diagnostics"
	"github.com/HicaroD/razen/internal/lexer/token"
)

// ERR_DEFER signals that a node could not complete in the current pass and
// must be visited again.
var ERR_DEFER = errors.New("verification deferred")

type Host struct {
	options   *config.CompilerOptions
	collector *diagnostics.Collector
	log       *zap.Logger

	phases  map[ast.NodeID]Phase
	mapping *NodeMapping

	global   *Scope
	root     *Package
	packages map[string]*Package

	constants map[string]map[string]constant.Value
	unused    *Unused

	lastChance bool
	progress   int
}

func New(options *config.CompilerOptions, collector *diagnostics.Collector, log *zap.Logger) (*Host, error) {
	if options == nil {
		options = config.NewCompilerOptions()
	}
	if collector == nil {
		collector = diagnostics.New()
	}
	if log == nil {
		log = zap.NewNop()
	}

	host := &Host{
		options:   options,
		collector: collector,
		log:       log,
		phases:    make(map[ast.NodeID]Phase),
		mapping:   newNodeMapping(),
		global:    newScope(SCOPE_GLOBAL),
		packages:  make(map[string]*Package),
		constants: make(map[string]map[string]constant.Value),
		unused:    newUnused(),
	}
	host.root = newPackage(nil, nil, host.global)
	host.packages[""] = host.root

	defines, err := options.ParsedDefines()
	if err != nil {
		return nil, err
	}
	for _, define := range defines {
		host.DefineConstant(define.Namespace, define.Name, constant.FromGo(define.Value))
	}
	// Predefined constants are not progress of any pass.
	host.progress = 0
	return host, nil
}

func (host *Host) Options() *config.CompilerOptions  { return host.options }
func (host *Host) Collector() *diagnostics.Collector { return host.collector }
func (host *Host) Logger() *zap.Logger               { return host.log }
func (host *Host) NodeMapping() *NodeMapping         { return host.mapping }
func (host *Host) GlobalScope() *Scope               { return host.global }
func (host *Host) Unused() *Unused                   { return host.unused }

func (host *Host) Phase(id ast.NodeID) Phase {
	return host.phases[id]
}

// SetPhase promotes the node's phase. Attempts to lower it are ignored.
func (host *Host) SetPhase(id ast.NodeID, phase Phase) {
	if phase <= host.phases[id] {
		return
	}
	host.phases[id] = phase
	host.progress++
}

func (host *Host) CreateScope(kind ScopeKind) *Scope {
	return newScope(kind)
}

// CreatePackage returns the package named by segments, creating it and any
// missing parent packages.
func (host *Host) CreatePackage(segments []string) *Package {
	current := host.root
	for i, segment := range segments {
		sub, ok := current.Subpackage(segment)
		if !ok {
			path := append([]string{}, segments[:i+1]...)
			sub = newPackage(path, current, host.global)
			current.subpackages[segment] = sub
			current.order = append(current.order, segment)
			host.packages[sub.Name] = sub
			host.progress++
		}
		current = sub
	}
	return current
}

func (host *Host) LookupPackage(name string) (*Package, bool) {
	pckg, ok := host.packages[name]
	return pckg, ok
}

// TopLevelPackage is the unnamed package at the root of the package tree.
func (host *Host) TopLevelPackage() *Package {
	return host.root
}

// DefineSymbol inserts sym into scope. A successful definition counts as
// progress.
func (host *Host) DefineSymbol(scope *Scope, sym *Symbol) error {
	if err := scope.Insert(sym); err != nil {
		return err
	}
	host.progress++
	return nil
}

// DefineConstant stores a configuration constant. It reports false when the
// constant already exists; the first definition wins.
func (host *Host) DefineConstant(namespace, name string, value constant.Value) bool {
	ns, ok := host.constants[namespace]
	if !ok {
		ns = make(map[string]constant.Value)
		host.constants[namespace] = ns
	}
	if _, exists := ns[name]; exists {
		return false
	}
	ns[name] = value
	host.progress++
	host.log.Debug("defined configuration constant",
		zap.String("name", namespace+"::"+name),
		zap.Stringer("value", value),
	)
	return true
}

func (host *Host) Constant(namespace, name string) (constant.Value, bool) {
	value, ok := host.constants[namespace][name]
	return value, ok
}

func (host *Host) IsConfigNamespace(namespace string) bool {
	_, ok := host.constants[namespace]
	return ok
}

func (host *Host) LastChance() bool {
	return host.lastChance
}

func (host *Host) SetLastChance(lastChance bool) {
	host.lastChance = lastChance
}

// Progress is a counter bumped by every phase promotion and by every
// symbol, package or constant creation.
func (host *Host) Progress() int {
	return host.progress
}

func (host *Host) AddVerifyError(pos token.Pos, kind diagnostics.Kind, args ...string) {
	host.collector.ReportAndSave(diagnostics.NewDiag(kind, pos, args...))
}

func (host *Host) PackageNames() []string {
	var names []string
	for name := range host.packages {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
