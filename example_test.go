package parseva_test

import (
	"fmt"
	"strings"

	"github.com/zephyrtronium/parseva"
	"github.com/zephyrtronium/parseva/syntax"
)

func ExampleEvalString() {
	r, err := parseva.EvalString("2 + 2 * 4")
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: 10
}

func ExampleTreeString() {
	s, err := parseva.TreeString("(5 + 1)!")
	if err != nil {
		panic(err)
	}
	fmt.Print(s)
	// Output:
	// '- OP_FACT -> !
	//    '- LPAREN -> (
	//       |- OP_ADD -> +
	//       |  |- NUM -> 5
	//       |  '- NUM -> 1
	//       '- RPAREN -> )
}

func ExampleWithFunc() {
	cube := parseva.Monadic(func(x float64) float64 { return x * x * x })
	r, err := parseva.EvalString("cube(3) - 1", parseva.WithFunc("cube", cube))
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: 26
}

func ExampleBuild() {
	e, err := syntax.Parse(strings.NewReader("-sqrt(16)!"))
	if err != nil {
		panic(err)
	}
	n, err := parseva.Build(e)
	if err != nil {
		panic(err)
	}
	fmt.Println(n)
	fmt.Println(parseva.Eval(n))
	// Output:
	// (-[(sqrt[(16)])!])
	// -24
}
