package verifier_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HicaroD/razen/internal/config"
	"github.com/HicaroD/razen/internal/host"
	"github.com/HicaroD/razen/internal/testutil"
)

const packageP = "package p { public class C {} }"

// packageLate only gets its member once CONFIG::late is known.
const packageLate = "package p { CONFIG::late { public class C {} } }"

func TestImportDiagnostics(t *testing.T) {
	tests := []struct {
		name     string
		srcs     []string
		expected []string
	}{
		{
			name: "used property import",
			srcs: []string{packageP, "import p.C;\nvar x = new C();"},
		},
		{
			name: "used wildcard import",
			srcs: []string{packageP, "import p.*;\nnew C()"},
		},
		{
			name: "used recursive import",
			srcs: []string{"package p.sub { public class D {} }", "import p.**;\nnew D()"},
		},
		{
			name: "used alias import",
			srcs: []string{packageP, "import K = p.C;\nnew K()"},
		},
		{
			name: "used package alias",
			srcs: []string{packageP, "import P = p.*;\nP.C"},
		},
		{
			name: "import inside a package",
			srcs: []string{"package a { public class A {} }", "package b { import a.A; public class B { var x = new A() } }"},
		},
		{
			name:     "unused property import",
			srcs:     []string{packageP, "import p.C;"},
			expected: []string{"warning: test2.as:1:1: unused import 'p.C'"},
		},
		{
			name:     "unused wildcard import",
			srcs:     []string{packageP, "import p.*;"},
			expected: []string{"warning: test2.as:1:1: unused import 'p.*'"},
		},
		{
			name:     "unused alias import",
			srcs:     []string{packageP, "import K = p.C;"},
			expected: []string{"warning: test2.as:1:1: unused import 'K = p.C'"},
		},
		{
			name:     "import is visible in its block only",
			srcs:     []string{packageP, "{ import p.C; }\nnew C()"},
			expected: []string{"warning: test2.as:1:3: unused import 'p.C'"},
		},
		{
			name:     "imported definition not found",
			srcs:     []string{packageP, "import p.Missing;\nMissing"},
			expected: []string{"error: test2.as:1:10: imported definition 'p.Missing' not found"},
		},
		{
			name:     "alias target not found",
			srcs:     []string{packageP, "import K = p.Nope;\nK"},
			expected: []string{"error: test2.as:1:14: imported definition 'p.Nope' not found"},
		},
		{
			name: "empty wildcard package",
			srcs: []string{"import q.*;"},
			expected: []string{
				"warning: test.as:1:1: package 'q' contains no definitions",
				"warning: test.as:1:1: unused import 'q.*'",
			},
		},
		{
			name: "empty recursive package",
			srcs: []string{"package r.s {}", "import r.**;"},
			expected: []string{
				"warning: test2.as:1:1: package 'r' contains no definitions",
				"warning: test2.as:1:1: unused import 'r.**'",
			},
		},
		{
			name:     "package members defined in a later pass",
			srcs:     []string{packageLate, "import p.C;\nCONFIG const late = CONFIG::b;\nCONFIG const b = true;\nnew C();\n{ import p.*; }"},
			expected: []string{"warning: test2.as:5:3: unused import 'p.*'"},
		},
		{
			name: "package alias members defined in a later pass",
			srcs: []string{packageLate, "CONFIG const late = CONFIG::b;\nCONFIG const b = true;\nimport P = p.*;\nP"},
		},
		{
			name:     "recursive alias",
			srcs:     []string{"import R = p.**;"},
			expected: []string{"error: test.as:1:14: recursive import 'p.**' cannot be aliased"},
		},
		{
			name: "alias clashing with a definition",
			srcs: []string{packageP, "var K;\nimport K = p.C;\nK"},
			expected: []string{
				"warning: test2.as:2:1: unused import 'K = p.C'",
				"error: test2.as:2:8: 'K' is already defined in this scope",
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := verify(t, nil, test.srcs...)
			require.NoError(t, r.err)
			if diff := cmp.Diff(test.expected, testutil.Messages(r.collector.Sorted()), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnusedImportWarningsCanBeDisabled(t *testing.T) {
	opts := testutil.Options(func(opts *config.CompilerOptions) { opts.Warnings.Unused = false })
	r := verify(t, opts, packageP, "import p.C;\nimport K = p.*;")
	require.NoError(t, r.err)
	assert.Empty(t, r.collector.Diags)
	assert.Equal(t, 2, r.host.Unused().Len())
}

func TestPropertyImportIsResolved(t *testing.T) {
	r := verify(t, nil, packageP, "import p.C;\nnew C()")
	require.NoError(t, r.err)

	imp := r.program.Units[1].Directives[0]
	annotation, ok := r.host.NodeMapping().Get(imp.ID())
	require.True(t, ok)
	object, ok := annotation.(*host.PropertyImport)
	require.True(t, ok, "got %T", annotation)
	require.True(t, object.IsResolved())
	assert.Equal(t, host.SYMBOL_CLASS, object.Resolved.Kind)
	assert.Equal(t, "p", object.Package.Name)

	assert.Equal(t, []host.Import{object}, r.unitScope(1).Imports)
	assert.False(t, r.host.Unused().Contains(object))
	assert.Equal(t, host.PHASE_FINISHED, r.host.Phase(imp.ID()))
}

func TestAliasImportIsResolved(t *testing.T) {
	r := verify(t, nil, packageP, "import K = p.C;\nimport P = p.*;\nnew K();\nP")
	require.NoError(t, r.err)
	assert.Empty(t, r.collector.Diags)

	sym, err := r.unitScope(1).LookupCurrentScope("K")
	require.NoError(t, err)
	assert.Equal(t, host.SYMBOL_ALIAS, sym.Kind)
	alias, ok := sym.Import.(*host.AliasImport)
	require.True(t, ok)
	require.True(t, alias.IsResolved())
	assert.Equal(t, "C", alias.Resolved.Name)

	sym, err = r.unitScope(1).LookupCurrentScope("P")
	require.NoError(t, err)
	pckgAlias := sym.Import.(*host.AliasImport)
	assert.True(t, pckgAlias.IsPackageAlias())
	require.NotNil(t, pckgAlias.ResolvedPackage)
	assert.Equal(t, "p", pckgAlias.ResolvedPackage.Name)

	// Aliases are properties of the scope, not open imports.
	assert.Empty(t, r.unitScope(1).Imports)
}

func TestRecursiveAliasCreatesNoImport(t *testing.T) {
	r := verify(t, nil, "import R = p.**;")
	require.NoError(t, r.err)
	_, ok := r.host.LookupPackage("p")
	assert.False(t, ok)
	assert.Zero(t, r.host.Unused().Len())
	assert.False(t, r.defines(t, 0, "R"))
}
