// Package verifier implements the directive verifier: a multi-pass walk over
// directive trees in which every node advances through phases and may defer
// its work to a later pass.
package verifier

import (
	"go.uber.org/zap"

	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/constant"
	"github.com/HicaroD/razen/internal/diagnostics"
	"github.com/HicaroD/razen/internal/eval"
	"github.com/HicaroD/razen/internal/host"
	"github.com/HicaroD/razen/internal/lexer/token"
)

// ERR_DEFER is the only error the directive verifier returns. It means that
// at least one node must be visited again in a later pass.
var ERR_DEFER = host.ERR_DEFER

// ExprVerifier evaluates expressions to compile-time constants. A nil value
// with a nil error means "not yet a constant, try later".
type ExprVerifier interface {
	VerifyExpression(expr ast.Expr, ctx eval.Context) (constant.Value, error)
}

type Verifier struct {
	host    *host.Host
	exprs   ExprVerifier
	metrics *Metrics
	log     *zap.Logger

	scopes []*host.Scope
}

type Option func(*Verifier)

func WithExprVerifier(exprs ExprVerifier) Option {
	return func(v *Verifier) { v.exprs = exprs }
}

func WithMetrics(metrics *Metrics) Option {
	return func(v *Verifier) { v.metrics = metrics }
}

func New(h *host.Host, options ...Option) *Verifier {
	v := &Verifier{
		host:   h,
		log:    h.Logger(),
		scopes: []*host.Scope{h.GlobalScope()},
	}
	for _, option := range options {
		option(v)
	}
	if v.exprs == nil {
		v.exprs = eval.New(h)
	}
	return v
}

func (v *Verifier) Host() *host.Host { return v.host }

// ScopeDepth is the height of the scope stack. Between top-level calls it is
// always 1 (the global scope).
func (v *Verifier) ScopeDepth() int { return len(v.scopes) }

func (v *Verifier) currentScope() *host.Scope {
	return v.scopes[len(v.scopes)-1]
}

// inheritAndEnterScope links scope under the current scope (first entry
// only) and pushes it.
func (v *Verifier) inheritAndEnterScope(scope *host.Scope) {
	scope.Inherit(v.currentScope())
	v.scopes = append(v.scopes, scope)
}

func (v *Verifier) exitScope() {
	if len(v.scopes) == 1 {
		panic("verifier: exiting the global scope")
	}
	v.scopes = v.scopes[:len(v.scopes)-1]
}

// withScope runs fn with scope on top of the stack. The scope is popped on
// every path out of fn.
func (v *Verifier) withScope(scope *host.Scope, fn func() error) error {
	v.inheritAndEnterScope(scope)
	defer v.exitScope()
	return fn()
}

// lazyInitPhase returns the node's phase, initializing an unvisited node to
// initial.
func (v *Verifier) lazyInitPhase(id ast.NodeID, initial host.Phase) host.Phase {
	phase := v.host.Phase(id)
	if phase == host.PHASE_UNVISITED {
		v.host.SetPhase(id, initial)
		return initial
	}
	return phase
}

func (v *Verifier) setPhase(id ast.NodeID, phase host.Phase) {
	before := v.host.Phase(id)
	v.host.SetPhase(id, phase)
	if phase == host.PHASE_FINISHED && before != host.PHASE_FINISHED {
		v.metrics.nodeFinished()
	}
}

func (v *Verifier) addVerifyError(pos token.Pos, kind diagnostics.Kind, args ...string) {
	v.host.AddVerifyError(pos, kind, args...)
	v.metrics.diagnostic(kind)
}

func (v *Verifier) verifyExpression(expr ast.Expr) (constant.Value, error) {
	return v.exprs.VerifyExpression(expr, eval.Context{})
}

func (v *Verifier) finishUnlessDeferred(id ast.NodeID, err error) error {
	if err != nil {
		return ERR_DEFER
	}
	v.setPhase(id, host.PHASE_FINISHED)
	return nil
}

// deferred folds the results of sibling verifications.
func deferred(results ...error) error {
	for _, err := range results {
		if err != nil {
			return ERR_DEFER
		}
	}
	return nil
}

// lazySymbol defines a symbol for the node in scope the first time it is
// called and returns the same symbol afterwards. A name clash is reported
// once.
func (v *Verifier) lazySymbol(scope *host.Scope, id ast.NodeID, name ast.Identifier, kind host.SymbolKind) *host.Symbol {
	return host.LazyNodeMapping(v.host, id, func() *host.Symbol {
		sym := host.NewSymbol(name.Name, kind, name.Pos, id)
		if err := v.host.DefineSymbol(scope, sym); err != nil {
			v.addVerifyError(name.Pos, diagnostics.DUPLICATE_DEFINITION, name.Name)
		}
		return sym
	})
}
