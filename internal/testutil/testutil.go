// Package testutil builds parsed programs and hosts for tests.
package testutil

import (
	"fmt"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/config"
	"github.com/HicaroD/razen/internal/diagnostics"
	"github.com/HicaroD/razen/internal/host"
	"github.com/HicaroD/razen/internal/lexer"
	"github.com/HicaroD/razen/internal/parser"
)

const DefaultFilename = "test.as"

func FakeLoc(filename string) *ast.Loc {
	if filename == "" {
		filename = DefaultFilename
	}
	return &ast.Loc{Name: filename}
}

// UnitFilename names the i-th unit of a program built by ParseProgram.
func UnitFilename(i int) string {
	if i == 0 {
		return DefaultFilename
	}
	return fmt.Sprintf("test%d.as", i+1)
}

// ParseProgram parses each source as its own compilation unit, all sharing
// one node id generator. Parse errors fail the test.
func ParseProgram(t testing.TB, srcs ...string) *ast.Program {
	t.Helper()
	program := ast.NewProgram()
	for i, src := range srcs {
		collector := diagnostics.New()
		if _, err := parser.ParseSource(program, FakeLoc(UnitFilename(i)), []byte(src), collector); err != nil {
			t.Fatalf("parsing unit %d: %v %v", i, err, collector.Diags)
		}
	}
	return program
}

// ParseExpr parses a standalone expression with ids from program.
func ParseExpr(t testing.TB, program *ast.Program, src string) ast.Expr {
	t.Helper()
	collector := diagnostics.New()
	lex := lexer.New(FakeLoc(""), []byte(src), collector)
	expr, err := parser.New(collector, program.IDs).ParseExpression(lex)
	if err != nil {
		t.Fatalf("parsing %q: %v %v", src, err, collector.Diags)
	}
	return expr
}

// NewHost returns a host that logs through the test and collects
// diagnostics into the returned collector. A nil opts uses the defaults.
func NewHost(t testing.TB, opts *config.CompilerOptions) (*host.Host, *diagnostics.Collector) {
	t.Helper()
	if opts == nil {
		opts = config.NewCompilerOptions()
	}
	log := zaptest.NewLogger(t)
	collector := diagnostics.NewWithLogger(log)
	h, err := host.New(opts, collector, log)
	if err != nil {
		t.Fatalf("creating host: %v", err)
	}
	return h, collector
}

// Options returns the default options changed by each mutator in turn.
func Options(mutators ...func(*config.CompilerOptions)) *config.CompilerOptions {
	opts := config.NewCompilerOptions()
	for _, mutate := range mutators {
		mutate(opts)
	}
	return opts
}

func Kinds(diags []diagnostics.Diag) []diagnostics.Kind {
	kinds := make([]diagnostics.Kind, len(diags))
	for i, diag := range diags {
		kinds[i] = diag.Kind
	}
	return kinds
}

func Messages(diags []diagnostics.Diag) []string {
	messages := make([]string, len(diags))
	for i, diag := range diags {
		messages[i] = diag.String()
	}
	return messages
}
