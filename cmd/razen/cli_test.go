package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HicaroD/razen/internal/diagnostics"
)

const testdata = "../../internal/integration/testdata"

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestVerifyCommand(t *testing.T) {
	stdout, stderr, err := run(t, "verify", filepath.Join(testdata, "app"), "--define", "CONFIG::debug=true", "--define", "CONFIG::level,3")
	require.NoError(t, err, stderr)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestVerifyCommandReportsDiagnostics(t *testing.T) {
	_, stderr, err := run(t, "verify", filepath.Join(testdata, "errors"), "--define", "CONFIG::level=3")
	assert.ErrorIs(t, err, diagnostics.COMPILER_ERROR_FOUND)
	assert.Contains(t, stderr, "error: unresolved.as:1:20: imported definition 'com.missing.Thing' not found")
	assert.Contains(t, stderr, "warning: unresolved.as:2:1: package 'flash.display' contains no definitions")
}

func TestVerifyCommandFlags(t *testing.T) {
	_, stderr, err := run(t, "verify", filepath.Join(testdata, "errors"), "--define", "CONFIG::level=3", "--no-unused-warnings")
	assert.Error(t, err)
	assert.NotContains(t, stderr, "unused import")

	_, _, err = run(t, "verify", filepath.Join(testdata, "app"), "--define", "CONFIG::debug")
	assert.ErrorContains(t, err, "invalid define")

	_, _, err = run(t, "verify", filepath.Join(testdata, "app"), "--log-level", "loud")
	assert.Error(t, err)

	_, _, err = run(t, "verify")
	assert.Error(t, err)
}

func TestVerifyCommandMetrics(t *testing.T) {
	stdout, stderr, err := run(t, "verify", filepath.Join(testdata, "app"), "--define", "CONFIG::debug=false", "--define", "CONFIG::level=1", "--metrics")
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "razen_verifier_passes_total")
	assert.Contains(t, stdout, `razen_verifier_diagnostics_total{kind="UnusedImport"} 1`)
}

func TestScopesCommand(t *testing.T) {
	stdout, stderr, err := run(t, "scopes", filepath.Join(testdata, "app"), "--define", "CONFIG::debug=true", "--define", "CONFIG::level=3")
	require.NoError(t, err, stderr)
	for _, want := range []string{"global", "unit main.as", "import com.example.util.Logger", "var logger", "packages", "com.example.util", "class Logger"} {
		assert.Contains(t, stdout, want)
	}
}

func TestEnvCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "razen.toml")
	require.NoError(t, os.WriteFile(path, []byte("as3 = false\n[defines]\n\"CONFIG::debug\" = \"true\"\n"), 0644))

	t.Setenv("RAZEN_MAX_CYCLES", "7")
	stdout, _, err := run(t, "env", "--config", path, "--define", `CONFIG::name=app`)
	require.NoError(t, err)
	assert.Contains(t, stdout, "# "+path)
	assert.Contains(t, stdout, "as3 = false")
	assert.Contains(t, stdout, "max-cycles = 7")
	assert.Contains(t, stdout, `"CONFIG::debug" = "true"`)
	assert.Contains(t, stdout, `"CONFIG::name" = "\"app\""`)
}

func TestEnvCommandDefaults(t *testing.T) {
	stdout, _, err := run(t, "env")
	require.NoError(t, err)
	assert.Contains(t, stdout, "# (defaults)")
	assert.Contains(t, stdout, "max-cycles = 32")
}
