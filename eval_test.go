package parseva_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/parseva"
)

func num(x float64) parseva.Node {
	return &parseva.Number{Value: x}
}

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "42.0", 42},
		{"add", "2 + 2", 4},
		{"sub", "2 - 2", 0},
		{"mul", "2 * 3", 6},
		{"div", "2 / 2", 1},
		{"prec", "2 + 2 * 4", 10},
		{"left", "8 - 2 - 1", 5},
		{"alt", "6 × 2 ÷ 4", 3},
		{"neg", "2 + -1", 1},
		{"plus", "+3", 3},
		{"group", "(2 + 5) * 3", 21},
		{"fact", "5!", 120},
		{"fact-group", "(5 + 1)!", 720},
		{"neg-fact", "-3!", -6},
		{"pi", "pi", math.Pi},
		{"PI", "PI", math.Pi},
		{"e", "e", math.E},
		{"E", "2 * E", 2 * math.E},
		{"abs", "abs(-30.0)", 30},
		{"pow", "pow(2, 10)", 1024},
		{"max", "max(3, -4)", 3},
		{"fma", "fma(2, 3, 4)", 10},
		{"signum", "signum(-0.5)", -1},
		{"toDegrees", "toDegrees(pi)", 180},
		{"div-zero", "1/0", math.Inf(1)},
		{"div-negzero", "-1/0", math.Inf(-1)},
		{"inf-fact", "1e999!", math.Inf(1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := parseva.EvalString(c.src)
			require.NoError(t, err)
			require.Equal(t, c.r, r, "evaluating %q", c.src)
		})
	}
}

func TestEvalNaN(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"div-zero", "0/0"},
		{"sqrt-neg", "sqrt(-1)"},
		{"log-neg", "log(-1)"},
		{"unknown", "nosuch(2)"},
		{"arity", "sqrt(2, 3)"},
		{"case", "SQRT(4)"},
		{"tainted", "1 + 2 * nosuch() - 3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := parseva.EvalString(c.src)
			require.NoError(t, err)
			require.True(t, math.IsNaN(r), "evaluating %q gave %g", c.src, r)
		})
	}
}

func TestEvalArithmetic(t *testing.T) {
	cases := []struct {
		a, b float64
	}{
		{0.1, 0.2},
		{1, 3},
		{-7.5, 2.25},
		{1e308, 1e308},
		{5e-324, 0.5},
		{123456789, -987654321},
		{0, -0},
	}
	for _, c := range cases {
		a, b := num(c.a), num(c.b)
		require.Equal(t, math.Float64bits(c.a+c.b), math.Float64bits(parseva.Eval(&parseva.Add{L: a, R: b})), "%g + %g", c.a, c.b)
		require.Equal(t, math.Float64bits(c.a-c.b), math.Float64bits(parseva.Eval(&parseva.Sub{L: a, R: b})), "%g - %g", c.a, c.b)
		require.Equal(t, math.Float64bits(c.a*c.b), math.Float64bits(parseva.Eval(&parseva.Mul{L: a, R: b})), "%g * %g", c.a, c.b)
		if c.b != 0 {
			require.Equal(t, math.Float64bits(c.a/c.b), math.Float64bits(parseva.Eval(&parseva.Div{L: a, R: b})), "%g / %g", c.a, c.b)
		}
		require.Equal(t, math.Float64bits(-c.a), math.Float64bits(parseva.Eval(&parseva.Negate{X: a})), "-%g", c.a)
	}
	require.True(t, math.IsNaN(parseva.Eval(&parseva.Div{L: num(0), R: num(0)})))
}

func TestEvalFactorial(t *testing.T) {
	cases := []struct {
		x, r float64
	}{
		{5, 120},
		{0, 1},
		{1, 1},
		{3.5, 6},
		{-2, 1},
		{0.5, 1},
		{20, 2432902008176640000},
		{170, 7.257415615307994e306},
		{171, math.Inf(1)},
		{1e300, math.Inf(1)},
		{math.Inf(1), math.Inf(1)},
		{math.NaN(), 1},
	}
	for _, c := range cases {
		got := parseva.Eval(&parseva.Factorial{X: num(c.x)})
		require.Equal(t, c.r, got, "%g!", c.x)
	}
}

func TestEvalCall(t *testing.T) {
	sqrt := parseva.DefaultFuncs().Resolve("sqrt", 1)
	require.NotNil(t, sqrt)
	n := &parseva.Call{Name: "sqrt", Args: []parseva.Node{num(7)}, Func: sqrt}
	require.Equal(t, math.Sqrt(7), parseva.Eval(n))

	var got []float64
	spy := parseva.Triadic(func(x, y, z float64) float64 {
		got = append(got, x, y, z)
		return x - y - z
	})
	n = &parseva.Call{Name: "spy", Args: []parseva.Node{num(1), num(2), num(3)}, Func: spy}
	require.Equal(t, -4.0, parseva.Eval(n))
	require.Equal(t, []float64{1, 2, 3}, got)

	n = &parseva.Call{Name: "nosuch", Args: []parseva.Node{num(1)}}
	require.True(t, math.IsNaN(parseva.Eval(n)))
}

func TestEvalInvalid(t *testing.T) {
	require.Panics(t, func() { parseva.Eval(nil) })
}
