package parseva

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/zephyrtronium/parseva/syntax"
)

// Eval evaluates a typed tree. Evaluation uses float64 arithmetic throughout
// and never fails: division by zero, calls with a nil Func, and arguments
// outside a function's domain produce NaN or infinities. Eval panics only if n
// is nil or not one of the node types defined in this package.
func Eval(n Node) float64 {
	switch n := n.(type) {
	case *Number:
		return n.Value
	case *Constant:
		return n.Value
	case *Negate:
		return -Eval(n.X)
	case *Add:
		return Eval(n.L) + Eval(n.R)
	case *Sub:
		return Eval(n.L) - Eval(n.R)
	case *Mul:
		// The conversion keeps the product rounded even if the caller's
		// addition is fused.
		return float64(Eval(n.L) * Eval(n.R))
	case *Div:
		return Eval(n.L) / Eval(n.R)
	case *Factorial:
		return factorial(Eval(n.X))
	case *Call:
		if n.Func == nil {
			return math.NaN()
		}
		args := make([]float64, len(n.Args))
		for i, a := range n.Args {
			args[i] = Eval(a)
		}
		return n.Func.Call(args)
	default:
		panic(fmt.Sprintf("parseva: invalid node %T", n))
	}
}

// factorial multiplies the integers from 1 through v. Non-integer v is
// effectively floored, and v < 1 (including NaN) gives 1.
func factorial(v float64) float64 {
	r := 1.0
	for i := 1.0; i <= v; i++ {
		r *= i
		if math.IsInf(r, 1) {
			break
		}
	}
	return r
}

// Compile parses an expression and builds its typed tree.
func Compile(src io.RuneScanner, opts ...BuildOption) (Node, error) {
	e, err := syntax.Parse(src)
	if err != nil {
		return nil, err
	}
	return Build(e, opts...)
}

// EvalString is a shortcut to parse, build, and evaluate a string expression.
func EvalString(src string, opts ...BuildOption) (float64, error) {
	n, err := Compile(strings.NewReader(src), opts...)
	if err != nil {
		return math.NaN(), err
	}
	return Eval(n), nil
}
