package eval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/config"
	"github.com/HicaroD/razen/internal/constant"
	"github.com/HicaroD/razen/internal/eval"
	"github.com/HicaroD/razen/internal/host"
	"github.com/HicaroD/razen/internal/testutil"
)

func newEvaluator(t *testing.T) (*eval.Evaluator, *host.Host, *ast.Program) {
	t.Helper()
	opts := testutil.Options(func(opts *config.CompilerOptions) {
		opts.Defines = map[string]string{
			"CONFIG::debug": "true",
			"CONFIG::level": "3",
			"CONFIG::name":  `"app"`,
		}
	})
	h, _ := testutil.NewHost(t, opts)
	return eval.New(h), h, ast.NewProgram()
}

func TestVerifyExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected constant.Value
	}{
		{"true", constant.Boolean(true)},
		{"1 + 2 * 3", constant.Number(7)},
		{"(1 + 2) * 3", constant.Number(9)},
		{"\"a\" + 1", constant.String("a1")},
		{"10 % 4", constant.Number(2)},
		{"2 ** 10", constant.Number(1024)},
		{"7 / 2", constant.Number(3.5)},
		{"-CONFIG::level", constant.Number(-3)},
		{"+\"12\"", constant.Number(12)},
		{"!CONFIG::debug", constant.Boolean(false)},
		{"CONFIG::debug && CONFIG::level > 2", constant.Boolean(true)},
		{"CONFIG::level >= 3 && CONFIG::level <= 3", constant.Boolean(true)},
		{"CONFIG::name", constant.String("app")},
		{"CONFIG::name + \"-\" + CONFIG::level", constant.String("app-3")},
		{"'b' > 'a'", constant.Boolean(true)},
		{"1 == \"1\"", constant.Boolean(true)},
		{"1 === \"1\"", constant.Boolean(false)},
		{"1 !== 2", constant.Boolean(true)},
		{"null == undefined", constant.Boolean(true)},
		{"null === undefined", constant.Boolean(false)},
		{"null != 0", constant.Boolean(true)},
		{"0 || \"fallback\"", constant.String("fallback")},
		{"0 && CONFIG::debug", constant.Number(0)},
		{"undefined < 1", constant.Boolean(false)},
		{"x.y", constant.Undefined{}},
		{"f(1)", constant.Undefined{}},
		{"i++", constant.Undefined{}},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			evaluator, _, program := newEvaluator(t)
			expr := testutil.ParseExpr(t, program, test.input)

			value, err := evaluator.VerifyExpression(expr, eval.Context{})
			require.NoError(t, err)
			assert.Equal(t, test.expected, value)
		})
	}
}

func TestNaN(t *testing.T) {
	evaluator, _, program := newEvaluator(t)
	value, err := evaluator.VerifyExpression(testutil.ParseExpr(t, program, "\"x\" * 2"), eval.Context{})
	require.NoError(t, err)
	require.Equal(t, constant.NUMBER, value.Kind())
	assert.True(t, math.IsNaN(constant.ToNumber(value)))
	assert.Equal(t, "NaN", value.String())
}

func TestUnknownConstant(t *testing.T) {
	evaluator, h, program := newEvaluator(t)

	value, err := evaluator.VerifyExpression(testutil.ParseExpr(t, program, "CONFIG::missing"), eval.Context{})
	assert.NoError(t, err)
	assert.Nil(t, value)

	// The unknown operand makes the whole expression unknown.
	value, err = evaluator.VerifyExpression(testutil.ParseExpr(t, program, "CONFIG::debug && !CONFIG::missing"), eval.Context{})
	assert.NoError(t, err)
	assert.Nil(t, value)

	h.SetLastChance(true)
	value, err = evaluator.VerifyExpression(testutil.ParseExpr(t, program, "CONFIG::missing"), eval.Context{})
	assert.ErrorIs(t, err, host.ERR_DEFER)
	assert.Nil(t, value)
}

func TestShortCircuit(t *testing.T) {
	evaluator, h, program := newEvaluator(t)
	h.SetLastChance(true)

	tests := []struct {
		input    string
		expected constant.Value
	}{
		{"false && CONFIG::missing", constant.Boolean(false)},
		{"CONFIG::debug || CONFIG::missing", constant.Boolean(true)},
	}
	for _, test := range tests {
		value, err := evaluator.VerifyExpression(testutil.ParseExpr(t, program, test.input), eval.Context{})
		require.NoError(t, err, test.input)
		assert.Equal(t, test.expected, value, test.input)
	}
}

func TestResultIsAnnotated(t *testing.T) {
	evaluator, h, program := newEvaluator(t)
	expr := testutil.ParseExpr(t, program, "CONFIG::late == 1")

	value, err := evaluator.VerifyExpression(expr, eval.Context{})
	require.NoError(t, err)
	require.Nil(t, value)
	assert.False(t, h.NodeMapping().Has(expr.ID()), "unknown results are not annotated")

	require.True(t, h.DefineConstant("CONFIG", "late", constant.Number(1)))
	value, err = evaluator.VerifyExpression(expr, eval.Context{})
	require.NoError(t, err)
	assert.Equal(t, constant.Boolean(true), value)

	annotation, ok := h.NodeMapping().Get(expr.ID())
	require.True(t, ok)
	assert.Equal(t, constant.Boolean(true), annotation)

	// The annotation wins over the current constants.
	h.NodeMapping().Set(expr.ID(), constant.Boolean(false))
	value, err = evaluator.VerifyExpression(expr, eval.Context{})
	require.NoError(t, err)
	assert.Equal(t, constant.Boolean(false), value)
}
