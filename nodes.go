package parseva

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is a node in the typed abstract syntax tree of an expression. The set
// of node types is closed: *Number, *Constant, *Negate, *Add, *Sub, *Mul,
// *Div, *Factorial, and *Call. Nodes are not modified after they are built,
// and each node owns its children exclusively.
type Node interface {
	// String formats the subtree with every term bracketed, alternating
	// round and square brackets by depth.
	String() string

	node()
}

// Number is a numeric literal.
type Number struct {
	Value float64
	// Text is the literal as written, if the node came from source text.
	Text string
}

// Constant is a named constant such as pi.
type Constant struct {
	Name  string
	Value float64
}

// Negate is unary minus.
type Negate struct {
	X Node
}

// Add is L + R.
type Add struct {
	L, R Node
}

// Sub is L - R.
type Sub struct {
	L, R Node
}

// Mul is L * R.
type Mul struct {
	L, R Node
}

// Div is L / R.
type Div struct {
	L, R Node
}

// Factorial is X!.
type Factorial struct {
	X Node
}

// Call is a function call. The arity of the call is len(Args).
type Call struct {
	Name string
	Args []Node
	// Func is the function resolved for Name and the call's arity, or nil if
	// there is no such function. Evaluating a call with a nil Func produces
	// NaN.
	Func Func
}

func (*Number) node()    {}
func (*Constant) node()  {}
func (*Negate) node()    {}
func (*Add) node()       {}
func (*Sub) node()       {}
func (*Mul) node()       {}
func (*Div) node()       {}
func (*Factorial) node() {}
func (*Call) node()      {}

func (n *Number) String() string    { return str(n) }
func (n *Constant) String() string  { return str(n) }
func (n *Negate) String() string    { return str(n) }
func (n *Add) String() string       { return str(n) }
func (n *Sub) String() string       { return str(n) }
func (n *Mul) String() string       { return str(n) }
func (n *Div) String() string       { return str(n) }
func (n *Factorial) String() string { return str(n) }
func (n *Call) String() string      { return str(n) }

func str(n Node) string {
	var b strings.Builder
	format(&b, n, false)
	return b.String()
}

func format(b *strings.Builder, n Node, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n := n.(type) {
	case *Number:
		if n.Text != "" {
			b.WriteString(n.Text)
		} else {
			b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
		}
	case *Constant:
		b.WriteString(n.Name)
	case *Negate:
		b.WriteByte('-')
		format(b, n.X, !square)
	case *Add:
		binary(b, n.L, " + ", n.R, square)
	case *Sub:
		binary(b, n.L, " - ", n.R, square)
	case *Mul:
		binary(b, n.L, " * ", n.R, square)
	case *Div:
		binary(b, n.L, " / ", n.R, square)
	case *Factorial:
		format(b, n.X, !square)
		b.WriteByte('!')
	case *Call:
		b.WriteString(n.Name)
		formatargs(b, n.Args, !square)
	default:
		panic(fmt.Sprintf("parseva: invalid node %T after writing %s", n, b.String()))
	}
}

func binary(b *strings.Builder, l Node, op string, r Node, square bool) {
	format(b, l, !square)
	b.WriteString(op)
	format(b, r, !square)
}

func formatargs(b *strings.Builder, args []Node, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		format(b, a, !square)
	}
}
