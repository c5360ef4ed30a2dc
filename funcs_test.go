package parseva_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zephyrtronium/bigfloat"

	"github.com/zephyrtronium/parseva"
)

const refPrec = 256

func bf(x float64) *big.Float {
	return new(big.Float).SetPrec(refPrec).SetFloat64(x)
}

// requireClose checks that got is within a few ulps of the high-precision
// reference want.
func requireClose(t *testing.T, want *big.Float, got float64, msgAndArgs ...interface{}) {
	t.Helper()
	w, _ := want.Float64()
	tol := 4 * (math.Nextafter(math.Abs(w), math.Inf(1)) - math.Abs(w))
	require.InDelta(t, w, got, tol, msgAndArgs...)
}

func TestResolve(t *testing.T) {
	fs := parseva.DefaultFuncs()
	cases := []struct {
		name  string
		arity int
		ok    bool
	}{
		{"sqrt", 1, true},
		{"sqrt", 0, false},
		{"sqrt", 2, false},
		{"SQRT", 1, false},
		{"Sqrt", 1, false},
		{"pow", 2, true},
		{"pow", 1, false},
		{"random", 0, true},
		{"fma", 3, true},
		{"IEEEremainder", 2, true},
		{"ieeeremainder", 2, false},
		{"nosuch", 1, false},
		{"", 0, false},
	}
	for _, c := range cases {
		f := fs.Resolve(c.name, c.arity)
		if c.ok {
			require.NotNil(t, f, "%s/%d", c.name, c.arity)
			require.Equal(t, c.arity, f.Arity())
		} else {
			require.Nil(t, f, "%s/%d", c.name, c.arity)
		}
	}
}

func TestResolveNilRegistry(t *testing.T) {
	var fs parseva.Funcs
	require.Nil(t, fs.Resolve("sqrt", 1))
}

func TestDefaultFuncsCopy(t *testing.T) {
	fs := parseva.DefaultFuncs()
	delete(fs, "sqrt")
	require.NotNil(t, parseva.DefaultFuncs().Resolve("sqrt", 1))
	r, err := parseva.EvalString("sqrt(4)")
	require.NoError(t, err)
	require.Equal(t, 2.0, r)
}

func TestFuncsAgainstReference(t *testing.T) {
	fs := parseva.DefaultFuncs()
	call := func(name string, args ...float64) float64 {
		f := fs.Resolve(name, len(args))
		require.NotNil(t, f, name)
		return f.Call(args)
	}
	for _, x := range []float64{-1, 0.5, 1, 2.5, 10, 100} {
		want := bigfloat.Exp(new(big.Float).SetPrec(refPrec), bf(x))
		requireClose(t, want, call("exp", x), "exp(%g)", x)
	}
	for _, x := range []float64{0.5, 2, 10, 12345.678, 1e10} {
		want := bigfloat.Log(new(big.Float).SetPrec(refPrec), bf(x))
		requireClose(t, want, call("log", x), "log(%g)", x)
	}
	for _, c := range [][2]float64{{2, 10}, {1.5, 2.5}, {10, 0.5}, {7, 3.25}} {
		want := bigfloat.Pow(new(big.Float).SetPrec(refPrec), bf(c[0]), bf(c[1]))
		requireClose(t, want, call("pow", c[0], c[1]), "pow(%g, %g)", c[0], c[1])
	}
	for _, x := range []float64{2, 7, 1e-10, 12345.678} {
		want := new(big.Float).SetPrec(refPrec).Sqrt(bf(x))
		w, _ := want.Float64()
		require.Equal(t, w, call("sqrt", x), "sqrt(%g)", x)
	}
}

func TestConstantsAgainstReference(t *testing.T) {
	pi, _ := bigfloat.Pi(new(big.Float).SetPrec(refPrec)).Float64()
	e, _ := bigfloat.Exp(new(big.Float).SetPrec(refPrec), bf(1)).Float64()
	r, err := parseva.EvalString("pi")
	require.NoError(t, err)
	require.Equal(t, pi, r)
	r, err = parseva.EvalString("e")
	require.NoError(t, err)
	require.Equal(t, e, r)
}

func TestFuncsEdgeCases(t *testing.T) {
	fs := parseva.DefaultFuncs()
	call := func(name string, args ...float64) float64 {
		return fs.Resolve(name, len(args)).Call(args)
	}
	require.Equal(t, 1.0, call("signum", 3))
	require.Equal(t, -1.0, call("signum", -math.MaxFloat64))
	require.True(t, math.Signbit(call("signum", math.Copysign(0, -1))))
	require.True(t, math.IsNaN(call("signum", math.NaN())))
	require.Equal(t, math.SmallestNonzeroFloat64, call("ulp", 0))
	require.Equal(t, math.Ldexp(1, -52), call("ulp", 1))
	require.Equal(t, math.Ldexp(1, -52), call("ulp", -1))
	require.Equal(t, math.Ldexp(1, 971), call("ulp", math.MaxFloat64))
	require.Equal(t, math.Inf(1), call("ulp", math.Inf(-1)))
	require.Equal(t, 2.0, call("rint", 2.5))
	require.Equal(t, 4.0, call("rint", 3.5))
	require.Equal(t, math.Nextafter(1, 2), call("nextUp", 1))
	require.Equal(t, math.Nextafter(1, 0), call("nextDown", 1))
	require.Equal(t, -1.0, call("IEEEremainder", 5, 3))
	require.Equal(t, 5.0, call("hypot", 3, 4))
	require.Equal(t, math.Pi/2, call("toRadians", 90))
	r := call("random")
	require.True(t, 0 <= r && r < 1, "random() = %g", r)
}
