package parseva

import (
	"math"
	"math/rand"
)

// Func is a function from reals to reals.
type Func interface {
	// Call evaluates the function. len(args) is always Arity(). Call may
	// modify the elements of args. Arguments outside the function's domain
	// should produce NaN rather than panicking.
	Call(args []float64) float64

	// Arity returns the number of arguments the function accepts.
	Arity() int
}

type (
	niladic func() float64
	monadic func(x float64) float64
	dyadic  func(x, y float64) float64
	triadic func(x, y, z float64) float64
)

func (f niladic) Call(args []float64) float64 { return f() }
func (f monadic) Call(args []float64) float64 { return f(args[0]) }
func (f dyadic) Call(args []float64) float64  { return f(args[0], args[1]) }
func (f triadic) Call(args []float64) float64 { return f(args[0], args[1], args[2]) }

func (niladic) Arity() int { return 0 }
func (monadic) Arity() int { return 1 }
func (dyadic) Arity() int  { return 2 }
func (triadic) Arity() int { return 3 }

// Niladic wraps a function of no arguments into a Func.
func Niladic(f func() float64) Func {
	return niladic(f)
}

// Monadic wraps a function of one argument into a Func.
func Monadic(f func(x float64) float64) Func {
	return monadic(f)
}

// Dyadic wraps a function of two arguments into a Func.
func Dyadic(f func(x, y float64) float64) Func {
	return dyadic(f)
}

// Triadic wraps a function of three arguments into a Func.
func Triadic(f func(x, y, z float64) float64) Func {
	return triadic(f)
}

// Funcs maps function names to functions.
type Funcs map[string]Func

// Resolve finds the function named name that accepts arity arguments. Names
// are case-sensitive. The result is nil if there is no such function.
func (fs Funcs) Resolve(name string, arity int) Func {
	f := fs[name]
	if f == nil || f.Arity() != arity {
		return nil
	}
	return f
}

var globalfuncs = Funcs{
	"abs":           Monadic(math.Abs),
	"acos":          Monadic(math.Acos),
	"asin":          Monadic(math.Asin),
	"atan":          Monadic(math.Atan),
	"atan2":         Dyadic(math.Atan2),
	"cbrt":          Monadic(math.Cbrt),
	"ceil":          Monadic(math.Ceil),
	"copySign":      Dyadic(math.Copysign),
	"cos":           Monadic(math.Cos),
	"cosh":          Monadic(math.Cosh),
	"exp":           Monadic(math.Exp),
	"expm1":         Monadic(math.Expm1),
	"floor":         Monadic(math.Floor),
	"fma":           Triadic(math.FMA),
	"hypot":         Dyadic(math.Hypot),
	"IEEEremainder": Dyadic(math.Remainder),
	"log":           Monadic(math.Log),
	"log10":         Monadic(math.Log10),
	"log1p":         Monadic(math.Log1p),
	"max":           Dyadic(math.Max),
	"min":           Dyadic(math.Min),
	"nextAfter":     Dyadic(math.Nextafter),
	"nextDown":      Monadic(func(x float64) float64 { return math.Nextafter(x, math.Inf(-1)) }),
	"nextUp":        Monadic(func(x float64) float64 { return math.Nextafter(x, math.Inf(1)) }),
	"pow":           Dyadic(math.Pow),
	"random":        Niladic(rand.Float64),
	"rint":          Monadic(math.RoundToEven),
	"signum":        Monadic(signum),
	"sin":           Monadic(math.Sin),
	"sinh":          Monadic(math.Sinh),
	"sqrt":          Monadic(math.Sqrt),
	"tan":           Monadic(math.Tan),
	"tanh":          Monadic(math.Tanh),
	"toDegrees":     Monadic(func(x float64) float64 { return x * (180 / math.Pi) }),
	"toRadians":     Monadic(func(x float64) float64 { return x * (math.Pi / 180) }),
	"ulp":           Monadic(ulp),
}

// DefaultFuncs returns a copy of the built-in functions.
func DefaultFuncs() Funcs {
	m := make(Funcs, len(globalfuncs))
	for k, v := range globalfuncs {
		m[k] = v
	}
	return m
}

// signum returns -1, 0, or 1 according to the sign of x. Zeros and NaN are
// returned unchanged.
func signum(x float64) float64 {
	if x == 0 || math.IsNaN(x) {
		return x
	}
	return math.Copysign(1, x)
}

// ulp returns the distance from |x| to the next larger float64.
func ulp(x float64) float64 {
	x = math.Abs(x)
	switch {
	case math.IsNaN(x):
		return x
	case math.IsInf(x, 0):
		return math.Inf(1)
	case x == math.MaxFloat64:
		return math.Ldexp(1, 971)
	}
	return math.Nextafter(x, math.Inf(1)) - x
}
