package parser

import (
	"testing"

	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/diagnostics"
	"github.com/HicaroD/razen/internal/lexer"
	"github.com/HicaroD/razen/internal/lexer/token"
)

const defaultFilename = "test.as"

func parseForTest(t *testing.T, src string) (*ast.CompilationUnit, *diagnostics.Collector, error) {
	t.Helper()
	collector := diagnostics.New()
	program := ast.NewProgram()
	unit, err := ParseSource(program, &ast.Loc{Name: defaultFilename}, []byte(src), collector)
	return unit, collector, err
}

func mustParse(t *testing.T, src string) *ast.CompilationUnit {
	t.Helper()
	unit, collector, err := parseForTest(t, src)
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %v %v", src, err, collector.Diags)
	}
	return unit
}

func parseExprForTest(t *testing.T, src string) ast.Expr {
	t.Helper()
	collector := diagnostics.New()
	lex := lexer.New(&ast.Loc{Name: defaultFilename}, []byte(src), collector)
	expr, err := New(collector, ast.NewIDGen()).ParseExpression(lex)
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %v %v", src, err, collector.Diags)
	}
	return expr
}

func onlyDirective(t *testing.T, src string) ast.Directive {
	t.Helper()
	unit := mustParse(t, src)
	if len(unit.Directives) != 1 {
		t.Fatalf("expected 1 directive in %q, got %d", src, len(unit.Directives))
	}
	return unit.Directives[0]
}

func TestImportDirective(t *testing.T) {
	tests := []struct {
		input    string
		kind     ast.ImportSpecifierKind
		imported string
		alias    string
	}{
		{"import flash.display.Sprite;", ast.IMPORT_IDENTIFIER, "flash.display.Sprite", ""},
		{"import flash.display.*;", ast.IMPORT_WILDCARD, "flash.display.*", ""},
		{"import flash.**;", ast.IMPORT_RECURSIVE, "flash.**", ""},
		{"import S = flash.display.Sprite;", ast.IMPORT_IDENTIFIER, "flash.display.Sprite", "S"},
		{"import D = flash.display.*;", ast.IMPORT_WILDCARD, "flash.display.*", "D"},
		{"import Top\n", ast.IMPORT_IDENTIFIER, "Top", ""},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			imp, ok := onlyDirective(t, test.input).(*ast.ImportDirective)
			if !ok {
				t.Fatalf("expected *ast.ImportDirective")
			}
			if imp.Specifier.Kind != test.kind {
				t.Errorf("expected specifier kind %d, got %d", test.kind, imp.Specifier.Kind)
			}
			if imp.ImportedName() != test.imported {
				t.Errorf("expected %q, got %q", test.imported, imp.ImportedName())
			}
			alias := ""
			if imp.Alias != nil {
				alias = imp.Alias.Name
			}
			if alias != test.alias {
				t.Errorf("expected alias %q, got %q", test.alias, alias)
			}
		})
	}
}

func TestImportSpecifierPos(t *testing.T) {
	imp := onlyDirective(t, "import a.b.C;").(*ast.ImportDirective)
	want := token.NewPosition(defaultFilename, 12, 1)
	if imp.Specifier.Pos != want {
		t.Errorf("expected specifier at %s, got %s", want, imp.Specifier.Pos)
	}
}

func TestPackageDefinition(t *testing.T) {
	tests := []struct {
		input      string
		name       string
		directives int
	}{
		{"package {}", "", 0},
		{"package a.b { class C {} }", "a.b", 1},
		{"package a { import x.*; function f() {} var v }", "a", 3},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			pkg, ok := onlyDirective(t, test.input).(*ast.PackageDefinition)
			if !ok {
				t.Fatalf("expected *ast.PackageDefinition")
			}
			if name := ast.JoinIdentifiers(pkg.Name, "."); name != test.name {
				t.Errorf("expected package %q, got %q", test.name, name)
			}
			if len(pkg.Block.Directives) != test.directives {
				t.Errorf("expected %d directives, got %d", test.directives, len(pkg.Block.Directives))
			}
		})
	}
}

func TestDefinitions(t *testing.T) {
	tests := []struct {
		input string
		check func(t *testing.T, directive ast.Directive)
	}{
		{
			input: "public final class Foo extends Bar implements IA, b.IB { var x:int = 1; }",
			check: func(t *testing.T, directive ast.Directive) {
				class := directive.(*ast.ClassDefinition)
				if class.Name.Name != "Foo" {
					t.Errorf("expected class Foo, got %s", class.Name.Name)
				}
				if len(class.Block.Directives) != 1 {
					t.Errorf("expected 1 member, got %d", len(class.Block.Directives))
				}
			},
		},
		{
			input: "function sum(a:Number, b:Number = 2, ...rest):Number { return a + b }",
			check: func(t *testing.T, directive ast.Directive) {
				fn := directive.(*ast.FunctionDefinition)
				if fn.Name.Name != "sum" {
					t.Errorf("expected function sum, got %s", fn.Name.Name)
				}
				if len(fn.Params) != 3 {
					t.Fatalf("expected 3 params, got %d", len(fn.Params))
				}
				if fn.Params[1].Init == nil {
					t.Errorf("expected default value on b")
				}
				if fn.Params[2].Name.Name != "rest" {
					t.Errorf("expected rest param, got %s", fn.Params[2].Name.Name)
				}
				if fn.Body == nil || len(fn.Body.Directives) != 1 {
					t.Errorf("expected body with 1 directive")
				}
			},
		},
		{
			input: "override public function get size():int { return 0; }",
			check: func(t *testing.T, directive ast.Directive) {
				fn := directive.(*ast.FunctionDefinition)
				if fn.Name.Name != "size" {
					t.Errorf("expected getter size, got %s", fn.Name.Name)
				}
			},
		},
		{
			input: "native function trace(...args):void;",
			check: func(t *testing.T, directive ast.Directive) {
				fn := directive.(*ast.FunctionDefinition)
				if fn.Body != nil {
					t.Errorf("expected no body")
				}
			},
		},
		{
			input: "var a:Vector.<String>, b = 1, c:*;",
			check: func(t *testing.T, directive ast.Directive) {
				def := directive.(*ast.VariableDefinition)
				if def.Const {
					t.Errorf("expected var")
				}
				if len(def.Bindings) != 3 {
					t.Fatalf("expected 3 bindings, got %d", len(def.Bindings))
				}
				if def.Bindings[1].Init == nil {
					t.Errorf("expected initializer on b")
				}
			},
		},
		{
			input: "const k = 10",
			check: func(t *testing.T, directive ast.Directive) {
				def := directive.(*ast.VariableDefinition)
				if !def.Const || def.Namespace != nil {
					t.Errorf("expected plain const")
				}
			},
		},
		{
			input: "CONFIG const debug = true;",
			check: func(t *testing.T, directive ast.Directive) {
				def := directive.(*ast.VariableDefinition)
				if !def.Const {
					t.Errorf("expected const")
				}
				if def.Namespace == nil || def.Namespace.Name != "CONFIG" {
					t.Fatalf("expected CONFIG namespace")
				}
				if def.Bindings[0].Name.Name != "debug" {
					t.Errorf("expected binding debug, got %s", def.Bindings[0].Name.Name)
				}
			},
		},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			test.check(t, onlyDirective(t, test.input))
		})
	}
}

func TestConfigurationDirective(t *testing.T) {
	t.Run("single if", func(t *testing.T) {
		cfg := onlyDirective(t, "configuration { if (CONFIG::debug) { trace(1) } else { trace(2) } }").(*ast.ConfigurationDirective)
		ifStmt, ok := cfg.Directive.(*ast.IfStatement)
		if !ok {
			t.Fatalf("expected configuration if, got %T", cfg.Directive)
		}
		if _, ok := ifStmt.Test.(*ast.QualifiedIdentifier); !ok {
			t.Errorf("expected qualified test, got %T", ifStmt.Test)
		}
		if _, ok := ifStmt.Alternative.(*ast.Block); !ok {
			t.Errorf("expected else block, got %T", ifStmt.Alternative)
		}
	})

	t.Run("else if chain", func(t *testing.T) {
		cfg := onlyDirective(t, "configuration { if (A::a) x(); else if (A::b) y() }").(*ast.ConfigurationDirective)
		ifStmt := cfg.Directive.(*ast.IfStatement)
		if _, ok := ifStmt.Consequent.(*ast.Block); !ok {
			t.Errorf("expected wrapped consequent, got %T", ifStmt.Consequent)
		}
		nested, ok := ifStmt.Alternative.(*ast.IfStatement)
		if !ok {
			t.Fatalf("expected else if, got %T", ifStmt.Alternative)
		}
		if nested.Alternative != nil {
			t.Errorf("expected no else on the last if")
		}
	})

	t.Run("block body", func(t *testing.T) {
		cfg := onlyDirective(t, "configuration { var x; if (A::a) {} }").(*ast.ConfigurationDirective)
		block, ok := cfg.Directive.(*ast.Block)
		if !ok {
			t.Fatalf("expected block, got %T", cfg.Directive)
		}
		if len(block.Directives) != 2 {
			t.Fatalf("expected 2 directives, got %d", len(block.Directives))
		}
		nested, ok := block.Directives[1].(*ast.ConfigurationDirective)
		if !ok {
			t.Fatalf("expected nested configuration, got %T", block.Directives[1])
		}
		if _, ok := nested.Directive.(*ast.IfStatement); !ok {
			t.Errorf("expected nested configuration if")
		}
	})

	t.Run("shorthand block", func(t *testing.T) {
		cfg := onlyDirective(t, "CONFIG::debug { trace(1) }").(*ast.ConfigurationDirective)
		ifStmt := cfg.Directive.(*ast.IfStatement)
		test := ifStmt.Test.(*ast.QualifiedIdentifier)
		if test.Namespace != "CONFIG" || test.Name != "debug" {
			t.Errorf("expected CONFIG::debug, got %s::%s", test.Namespace, test.Name)
		}
		if ifStmt.Alternative != nil {
			t.Errorf("expected no alternative")
		}
	})

	t.Run("shorthand definition", func(t *testing.T) {
		cfg := onlyDirective(t, "CONFIG::debug public function log() {}").(*ast.ConfigurationDirective)
		ifStmt := cfg.Directive.(*ast.IfStatement)
		block := ifStmt.Consequent.(*ast.Block)
		if _, ok := block.Directives[0].(*ast.FunctionDefinition); !ok {
			t.Errorf("expected function definition, got %T", block.Directives[0])
		}
	})

	t.Run("qualified expression statement", func(t *testing.T) {
		stmt, ok := onlyDirective(t, "CONFIG::debug;").(*ast.ExpressionStatement)
		if !ok {
			t.Fatalf("expected expression statement")
		}
		if _, ok := stmt.Expr.(*ast.QualifiedIdentifier); !ok {
			t.Errorf("expected qualified identifier, got %T", stmt.Expr)
		}
	})
}

func TestStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"{}", &ast.Block{}},
		{";", &ast.EmptyStatement{}},
		{"if (a) b(); else c()", &ast.IfStatement{}},
		{"switch (x) { case 1: a(); break; default: b() }", &ast.SwitchStatement{}},
		{"switch type (x) { case (s:String) {} default {} }", &ast.SwitchTypeStatement{}},
		{"do { i++ } while (i < 10)", &ast.DoStatement{}},
		{"while (true) continue", &ast.WhileStatement{}},
		{"for (var i = 0; i < 10; i++) {}", &ast.ForStatement{}},
		{"for (;;) break", &ast.ForStatement{}},
		{"for (var k in o) {}", &ast.ForInStatement{}},
		{"for each (var v in o) {}", &ast.ForInStatement{}},
		{"with (o) { x = 1 }", &ast.WithStatement{}},
		{"try {} catch (e:Error) {} finally {}", &ast.TryStatement{}},
		{"outer: while (a) break outer", &ast.LabeledStatement{}},
		{"throw new Error(\"x\")", &ast.ThrowStatement{}},
		{"return", &ast.ReturnStatement{}},
		{"a.b[c](d)", &ast.ExpressionStatement{}},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			directive := onlyDirective(t, test.input)
			if got, want := typeName(directive), typeName(test.expected); got != want {
				t.Errorf("expected %s, got %s", want, got)
			}
		})
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *ast.Block:
		return "Block"
	case *ast.EmptyStatement:
		return "EmptyStatement"
	case *ast.IfStatement:
		return "IfStatement"
	case *ast.SwitchStatement:
		return "SwitchStatement"
	case *ast.SwitchTypeStatement:
		return "SwitchTypeStatement"
	case *ast.DoStatement:
		return "DoStatement"
	case *ast.WhileStatement:
		return "WhileStatement"
	case *ast.ForStatement:
		return "ForStatement"
	case *ast.ForInStatement:
		return "ForInStatement"
	case *ast.WithStatement:
		return "WithStatement"
	case *ast.TryStatement:
		return "TryStatement"
	case *ast.LabeledStatement:
		return "LabeledStatement"
	case *ast.ThrowStatement:
		return "ThrowStatement"
	case *ast.ReturnStatement:
		return "ReturnStatement"
	case *ast.ExpressionStatement:
		return "ExpressionStatement"
	}
	return "unknown"
}

func TestForInEach(t *testing.T) {
	forIn := onlyDirective(t, "for each (var v in items) trace(v)").(*ast.ForInStatement)
	if !forIn.Each {
		t.Errorf("expected for each")
	}
	if _, ok := forIn.Left.(*ast.VariableDefinition); !ok {
		t.Errorf("expected variable definition on the left, got %T", forIn.Left)
	}
	if id, ok := forIn.Right.(*ast.IdentifierExpr); !ok || id.Name != "items" {
		t.Errorf("expected items on the right, got %v", forIn.Right)
	}
}

func TestSemicolonInsertion(t *testing.T) {
	unit := mustParse(t, "var a = 1\nvar b = 2\na = b\nreturn\nx")
	if len(unit.Directives) != 5 {
		t.Fatalf("expected 5 directives, got %d", len(unit.Directives))
	}
	ret := unit.Directives[3].(*ast.ReturnStatement)
	if ret.Value != nil {
		t.Errorf("expected line break to end the return statement")
	}
}

func TestExpressions(t *testing.T) {
	tests := []struct {
		input string
		check func(t *testing.T, expr ast.Expr)
	}{
		{
			input: "1 + 2 * 3",
			check: func(t *testing.T, expr ast.Expr) {
				bin := expr.(*ast.BinaryExpr)
				if bin.Op != token.PLUS {
					t.Errorf("expected + at the root, got %s", bin.Op)
				}
				if right := bin.Right.(*ast.BinaryExpr); right.Op != token.STAR {
					t.Errorf("expected * on the right, got %s", right.Op)
				}
			},
		},
		{
			input: "a || b && c",
			check: func(t *testing.T, expr ast.Expr) {
				bin := expr.(*ast.BinaryExpr)
				if bin.Op != token.OR_OR {
					t.Errorf("expected || at the root, got %s", bin.Op)
				}
			},
		},
		{
			input: "1 - 2 - 3",
			check: func(t *testing.T, expr ast.Expr) {
				bin := expr.(*ast.BinaryExpr)
				if _, ok := bin.Left.(*ast.BinaryExpr); !ok {
					t.Errorf("expected left associativity")
				}
			},
		},
		{
			input: "2 ** 3 ** 2",
			check: func(t *testing.T, expr ast.Expr) {
				bin := expr.(*ast.BinaryExpr)
				if _, ok := bin.Right.(*ast.BinaryExpr); !ok {
					t.Errorf("expected right associativity")
				}
			},
		},
		{
			input: "a = b = 1",
			check: func(t *testing.T, expr ast.Expr) {
				assign := expr.(*ast.AssignmentExpr)
				if _, ok := assign.Value.(*ast.AssignmentExpr); !ok {
					t.Errorf("expected nested assignment")
				}
			},
		},
		{
			input: "!CONFIG::debug",
			check: func(t *testing.T, expr ast.Expr) {
				unary := expr.(*ast.UnaryExpr)
				if unary.Op != token.BANG {
					t.Errorf("expected !, got %s", unary.Op)
				}
				if _, ok := unary.Operand.(*ast.QualifiedIdentifier); !ok {
					t.Errorf("expected qualified operand, got %T", unary.Operand)
				}
			},
		},
		{
			input: "i++",
			check: func(t *testing.T, expr ast.Expr) {
				unary := expr.(*ast.UnaryExpr)
				if !unary.Postfix {
					t.Errorf("expected postfix")
				}
			},
		},
		{
			input: "0x1F",
			check: func(t *testing.T, expr ast.Expr) {
				num := expr.(*ast.NumberLiteral)
				if num.Value != 31 || num.Raw != "0x1F" {
					t.Errorf("expected 31 from 0x1F, got %v from %s", num.Value, num.Raw)
				}
			},
		},
		{
			input: "new a.B(1, 2)",
			check: func(t *testing.T, expr ast.Expr) {
				newExpr := expr.(*ast.NewExpr)
				if _, ok := newExpr.Callee.(*ast.MemberExpr); !ok {
					t.Errorf("expected member callee, got %T", newExpr.Callee)
				}
				if len(newExpr.Args) != 2 {
					t.Errorf("expected 2 args, got %d", len(newExpr.Args))
				}
			},
		},
		{
			input: "(\"a\" + 'b')",
			check: func(t *testing.T, expr ast.Expr) {
				paren := expr.(*ast.ParenExpr)
				if _, ok := paren.Expr.(*ast.BinaryExpr); !ok {
					t.Errorf("expected binary expression in parens")
				}
			},
		},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			test.check(t, parseExprForTest(t, test.input))
		})
	}
}

func TestNodeIdsAreUnique(t *testing.T) {
	collector := diagnostics.New()
	program := ast.NewProgram()
	loc := &ast.Loc{Name: defaultFilename}
	first, err := ParseSource(program, loc, []byte("var a = 1 + 2;"), collector)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ParseSource(program, loc, []byte("var a = 1 + 2;"), collector)
	if err != nil {
		t.Fatal(err)
	}
	if len(program.Units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(program.Units))
	}

	seen := map[ast.NodeID]bool{}
	for _, unit := range []*ast.CompilationUnit{first, second} {
		def := unit.Directives[0].(*ast.VariableDefinition)
		binding := def.Bindings[0]
		for _, id := range []ast.NodeID{unit.ID(), def.ID(), binding.ID(), binding.Init.ID()} {
			if id == ast.NO_NODE {
				t.Errorf("node without id")
			}
			if seen[id] {
				t.Errorf("node id %d handed out twice", id)
			}
			seen[id] = true
		}
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		input string
		diag  diagnostics.Diag
	}{
		{
			input: "var 1",
			diag:  diagnostics.NewDiag(diagnostics.EXPECTED_TOKEN, token.NewPosition(defaultFilename, 5, 1), "identifier", "number 1"),
		},
		{
			input: "class C {",
			diag:  diagnostics.NewDiag(diagnostics.EXPECTED_TOKEN, token.NewPosition(defaultFilename, 10, 1), "'}'", "end of file"),
		},
		{
			input: "a b",
			diag:  diagnostics.NewDiag(diagnostics.EXPECTED_TOKEN, token.NewPosition(defaultFilename, 3, 1), "';'", "'b'"),
		},
		{
			input: "import a.;",
			diag:  diagnostics.NewDiag(diagnostics.EXPECTED_TOKEN, token.NewPosition(defaultFilename, 10, 1), "identifier", "';'"),
		},
		{
			input: "x = )",
			diag:  diagnostics.NewDiag(diagnostics.UNEXPECTED_TOKEN, token.NewPosition(defaultFilename, 5, 1), "')'"),
		},
		{
			input: "try {}",
			diag:  diagnostics.NewDiag(diagnostics.EXPECTED_TOKEN, token.NewPosition(defaultFilename, 7, 1), "'catch' or 'finally'", "end of file"),
		},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, collector, err := parseForTest(t, test.input)
			if err != diagnostics.COMPILER_ERROR_FOUND {
				t.Fatalf("expected COMPILER_ERROR_FOUND, got %v", err)
			}
			if len(collector.Diags) != 1 {
				t.Fatalf("expected 1 diagnostic, got %d: %v", len(collector.Diags), collector.Diags)
			}
			got := collector.Diags[0]
			if got.Kind != test.diag.Kind || got.Message != test.diag.Message {
				t.Errorf("\nexpected: %s\ngot:      %s", test.diag.Message, got.Message)
			}
		})
	}
}
