package parseva

import (
	"errors"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/zephyrtronium/parseva/syntax"
)

// BuildOption is an option for building typed trees.
type BuildOption interface {
	buildOption(*buildctx)
}

type (
	funcopt struct {
		name string
		fn   Func
	}
	funcsopt Funcs
	logopt   struct {
		l *log.Logger
	}
)

// buildctx holds the configuration for one call to Build.
type buildctx struct {
	// funcs is the registry used to resolve calls.
	funcs Funcs
	// owned indicates that funcs is a private copy that options may modify.
	owned bool
	// log, if not nil, receives a line for each unresolved call.
	log *log.Logger
}

// WithFunc adds a function to the registry used to resolve calls. To remove a
// function, including a built-in one, pass nil for fn.
func WithFunc(name string, fn Func) BuildOption {
	return &funcopt{name, fn}
}

func (o *funcopt) buildOption(b *buildctx) {
	if !b.owned {
		m := make(Funcs, len(b.funcs)+1)
		for k, v := range b.funcs {
			m[k] = v
		}
		b.funcs, b.owned = m, true
	}
	if o.fn == nil {
		delete(b.funcs, o.name)
		return
	}
	b.funcs[o.name] = o.fn
}

// WithFuncs replaces the registry used to resolve calls, including the
// built-in functions. Use DefaultFuncs to extend the defaults.
func WithFuncs(fs Funcs) BuildOption {
	return funcsopt(fs)
}

func (o funcsopt) buildOption(b *buildctx) {
	b.funcs, b.owned = Funcs(o), false
}

// WithLogger logs calls to functions that cannot be resolved. Such calls
// evaluate to NaN.
func WithLogger(l *log.Logger) BuildOption {
	return logopt{l}
}

func (o logopt) buildOption(b *buildctx) {
	b.log = o.l
}

// Build converts a parse result into a typed tree. Parentheses and unary
// plus do not produce nodes. Calls are built even when no function of the
// right name and arity exists; see Call.
//
// The error, if any, is a *TokenError, *ConstantError, or *NumberError, all
// of which indicate a tree that the parser would not produce.
func Build(e *syntax.Expr, opts ...BuildOption) (Node, error) {
	b := buildctx{funcs: globalfuncs}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.buildOption(&b)
	}
	return b.build(e)
}

var infixes = map[syntax.TokenKind]func(l, r Node) Node{
	syntax.TokenAdd: func(l, r Node) Node { return &Add{L: l, R: r} },
	syntax.TokenSub: func(l, r Node) Node { return &Sub{L: l, R: r} },
	syntax.TokenMul: func(l, r Node) Node { return &Mul{L: l, R: r} },
	syntax.TokenDiv: func(l, r Node) Node { return &Div{L: l, R: r} },
}

func (b *buildctx) build(e *syntax.Expr) (Node, error) {
	if e == nil {
		panic("parseva: nil expression")
	}
	switch e.Kind {
	case syntax.KindInfix:
		mk := infixes[e.Tok.Kind]
		if mk == nil {
			return nil, unexpected(e)
		}
		l, err := b.build(e.Left())
		if err != nil {
			return nil, err
		}
		r, err := b.build(e.Right())
		if err != nil {
			return nil, err
		}
		return mk(l, r), nil
	case syntax.KindUnary:
		switch e.Tok.Kind {
		case syntax.TokenAdd:
			return b.build(e.Operand())
		case syntax.TokenSub:
			x, err := b.build(e.Operand())
			if err != nil {
				return nil, err
			}
			return &Negate{X: x}, nil
		default:
			return nil, unexpected(e)
		}
	case syntax.KindCall:
		args := make([]Node, 0, len(e.Args))
		for _, a := range e.Args {
			x, err := b.build(a)
			if err != nil {
				return nil, err
			}
			args = append(args, x)
		}
		fn := b.funcs.Resolve(e.Tok.Text, len(args))
		if fn == nil && b.log != nil {
			b.log.Printf("unresolved function %q with %d arguments at column %d", e.Tok.Text, len(args), e.Tok.Pos)
		}
		return &Call{Name: e.Tok.Text, Args: args, Func: fn}, nil
	case syntax.KindNumber:
		v, err := strconv.ParseFloat(e.Tok.Text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &NumberError{Col: e.Tok.Pos, Text: e.Tok.Text, Err: err}
		}
		// Out of range literals are already ±Inf or 0.
		return &Number{Value: v, Text: e.Tok.Text}, nil
	case syntax.KindConstant:
		var v float64
		switch strings.ToUpper(e.Tok.Text) {
		case "E":
			v = math.E
		case "PI":
			v = math.Pi
		default:
			return nil, &ConstantError{Col: e.Tok.Pos, Name: e.Tok.Text}
		}
		return &Constant{Name: e.Tok.Text, Value: v}, nil
	case syntax.KindGroup:
		return b.build(e.Operand())
	case syntax.KindFactorial:
		if e.Tok.Kind != syntax.TokenBang {
			return nil, unexpected(e)
		}
		x, err := b.build(e.Operand())
		if err != nil {
			return nil, err
		}
		return &Factorial{X: x}, nil
	default:
		panic("parseva: invalid expression kind " + e.Kind.String())
	}
}
