package syntax

import (
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Expr = num | const | Call | Unary | Infix | Factorial | Group
// Call = ident '(' [ Expr { ',' Expr } ] ')'
// Unary = ('+' | '-') Expr
// Infix = Expr ('+' | '-' | '*' | '×' | '/' | '÷') Expr
// Factorial = Expr '!'
// Group = '(' Expr ')'

// Kind is the production that an Expr matched.
type Kind int8

const (
	KindInvalid Kind = iota
	// KindInfix is a binary operator expression. Args holds the left and
	// right operands.
	KindInfix
	// KindUnary is a prefix + or - expression. Args holds the operand.
	KindUnary
	// KindCall is a function call. Tok is the function name, Args holds the
	// arguments, and Commas holds the separators between them.
	KindCall
	// KindNumber is a numeric literal.
	KindNumber
	// KindConstant is a named constant.
	KindConstant
	// KindGroup is a parenthesized expression. Args holds the inner
	// expression.
	KindGroup
	// KindFactorial is a postfix ! expression. Args holds the operand.
	KindFactorial
)

//go:generate stringer -type=Kind -trimprefix=Kind

// Expr is a node in the concrete syntax tree of an expression. Each Expr
// records the tokens that make up its production so that consumers can
// recover the source text exactly.
type Expr struct {
	// Kind is the production the node matched.
	Kind Kind
	// Tok is the token identifying the production: the operator for infix,
	// unary, and factorial expressions, the name of a called function, the
	// literal text of a number or constant, or the open parenthesis of a
	// group.
	Tok Token
	// Args are the sub-expressions in source order.
	Args []*Expr
	// Commas are the separators between call arguments, in source order.
	Commas []Token
	// Open and Close are the parentheses of a call or group.
	Open, Close Token
}

// Op returns the token identifying the production.
func (e *Expr) Op() Token {
	return e.Tok
}

// Left returns the left operand of an infix expression.
func (e *Expr) Left() *Expr {
	return e.arg(0)
}

// Right returns the right operand of an infix expression.
func (e *Expr) Right() *Expr {
	return e.arg(1)
}

// Operand returns the single operand of a unary, factorial, or group
// expression.
func (e *Expr) Operand() *Expr {
	return e.arg(0)
}

func (e *Expr) arg(i int) *Expr {
	if i >= len(e.Args) {
		return nil
	}
	return e.Args[i]
}

// String formats the expression with its structure made explicit: infix and
// unary expressions in prefix notation, groups in braces, and call arguments
// in square brackets.
func (e *Expr) String() string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (e *Expr) fmt(b *strings.Builder) {
	if e == nil {
		b.WriteString("<nil>")
		return
	}
	switch e.Kind {
	case KindNumber, KindConstant:
		b.WriteString(e.Tok.Text)
	case KindInfix:
		b.WriteByte('(')
		b.WriteString(e.Tok.Text)
		b.WriteByte(' ')
		e.Left().fmt(b)
		b.WriteByte(' ')
		e.Right().fmt(b)
		b.WriteByte(')')
	case KindUnary:
		b.WriteByte('(')
		b.WriteString(e.Tok.Text)
		e.Operand().fmt(b)
		b.WriteByte(')')
	case KindFactorial:
		b.WriteByte('(')
		e.Operand().fmt(b)
		b.WriteString(e.Tok.Text)
		b.WriteByte(')')
	case KindGroup:
		b.WriteByte('{')
		e.Operand().fmt(b)
		b.WriteByte('}')
	case KindCall:
		b.WriteString(e.Tok.Text)
		b.WriteByte('[')
		for i, a := range e.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.fmt(b)
		}
		b.WriteByte(']')
	default:
		b.WriteString("$" + e.Kind.String() + "$")
	}
}

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type eofopt struct {
	ws string
}

// parsectx holds general data for parsing.
type parsectx struct {
	// wseof is a string containing the whitespace characters that trigger an
	// EOF token from the lexer.
	wseof string
}

// StopOn tells the parser to treat a list of whitespace characters as ending
// the expression. Whitespace does not end an expression where a term is
// expected, e.g. at the beginning of an expression or following an operator
// or parenthesis.
//
// StopOn overrides the effect of any previous StopOn in the parsing options.
// With no arguments, StopOn produces the default termination behavior, which
// is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	v := make([]rune, 0, len(chars))
	have := func(r rune) bool {
		for _, c := range v {
			if r == c {
				return true
			}
		}
		return false
	}
	for _, r := range chars {
		if !unicode.IsSpace(r) {
			panic("syntax: cannot stop on " + strconv.QuoteRune(r))
		}
		if have(r) {
			continue
		}
		v = append(v, r)
	}
	return &eofopt{ws: string(v)}
}

func (o *eofopt) parseOption(p parsectx) parsectx {
	p.wseof = o.ws
	return p
}

// Parse parses an expression. The given options are applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	scan := lex(src)
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	n, err := parseterm(scan, &p, exprprec)
	if err != nil {
		return nil, err
	}
	tok := scan.must()
	if tok.Kind != TokenEOF || n == nil {
		return nil, itShouldNotHaveEndedThisWay(tok, false)
	}
	return n, nil
}

// ParseString is a shortcut to parse an expression held in a string.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last token it scans, including EOF. If the input is an empty
// subexpression, the result is nil with no error; callers must create an error
// in contexts where empty subexpressions are illegal.
func parseterm(scan *lexer, p *parsectx, until operator) (*Expr, error) {
	n, err := parselhs(scan, p, until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case TokenAdd, TokenSub, TokenMul, TokenDiv:
			prec := binop(tok.Kind)
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				end := scan.must()
				return nil, &EmptyExpressionError{Col: end.Pos, End: end.Text}
			}
			n = &Expr{Kind: KindInfix, Tok: tok, Args: []*Expr{n, rhs}}
		case TokenBang:
			if !factprec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			n = &Expr{Kind: KindFactorial, Tok: tok, Args: []*Expr{n}}
		case TokenNum, TokenIdent, TokenConst, TokenOpen:
			// There is no implicit multiplication.
			return nil, &TokenError{Col: tok.Pos, Text: tok.Text}
		case TokenClose, TokenComma, TokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("syntax: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary,
// any encountered token must be valid as the start of a subexpression, and
// whitespace normally lexed as EOF is ignored.
func parselhs(scan *lexer, p *parsectx, until operator) (*Expr, error) {
	// Don't use EOF whitespace for LHS.
	tok, err := scan.next("")
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case TokenNum:
		return &Expr{Kind: KindNumber, Tok: tok}, nil
	case TokenConst:
		return &Expr{Kind: KindConstant, Tok: tok}, nil
	case TokenIdent:
		return parsecall(scan, p, tok)
	case TokenAdd, TokenSub:
		prec := unop(tok.Kind)
		if !prec.moreBinding(until) {
			// 2*-3 -> 2*(-3)
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, p, prec)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			end := scan.must()
			return nil, &EmptyExpressionError{Col: end.Pos, End: end.Text}
		}
		return &Expr{Kind: KindUnary, Tok: tok, Args: []*Expr{rhs}}, nil
	case TokenMul, TokenDiv, TokenBang:
		return nil, &OperatorError{Col: tok.Pos, Operator: tok.Text, Unary: true}
	case TokenOpen:
		rhs, err := parseterm(scan, p, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if end.Kind != TokenClose {
			return nil, itShouldNotHaveEndedThisWay(end, true)
		}
		if rhs == nil {
			return nil, &EmptyExpressionError{Col: end.Pos, End: end.Text}
		}
		return &Expr{Kind: KindGroup, Tok: tok, Args: []*Expr{rhs}, Open: tok, Close: end}, nil
	case TokenClose, TokenComma:
		// This might be an empty argument list, so let the caller decide
		// what to do.
		scan.push(tok)
		return nil, nil
	case TokenEOF:
		return nil, &EmptyExpressionError{Col: tok.Pos}
	default:
		panic("syntax: unknown token: " + tok.String())
	}
}

// parsecall parses the argument list following a function name.
func parsecall(scan *lexer, p *parsectx, name Token) (*Expr, error) {
	open, err := scan.next(p.wseof)
	if err != nil {
		return nil, err
	}
	if open.Kind != TokenOpen {
		return nil, &NameError{Col: name.Pos, Name: name.Text}
	}
	args, commas, end, err := parsearglist(scan, p, open)
	if err != nil {
		return nil, err
	}
	n := Expr{
		Kind:   KindCall,
		Tok:    name,
		Args:   args,
		Commas: commas,
		Open:   open,
		Close:  end,
	}
	return &n, nil
}

// parsearglist parses a parenthesized list of zero or more args up to and
// including the close parenthesis.
func parsearglist(scan *lexer, p *parsectx, open Token) ([]*Expr, []Token, Token, error) {
	var (
		args   []*Expr
		commas []Token
	)
	for {
		rhs, err := parseterm(scan, p, exprprec)
		if err != nil {
			// As a special case, reporting an unclosed parenthesis is more
			// helpful than empty expression, if that's what we'd do here.
			if ee, _ := err.(*EmptyExpressionError); ee != nil && ee.End == "" {
				err = &BracketError{Col: ee.Col, Left: open.Text}
			}
			return nil, nil, Token{}, err
		}
		end := scan.must()
		switch end.Kind {
		case TokenClose:
			if rhs == nil {
				// f() is allowed, but f(a,) isn't.
				if len(args) != 0 {
					return nil, nil, Token{}, &EmptyExpressionError{Col: end.Pos, End: end.Text}
				}
				return nil, nil, end, nil
			}
			return append(args, rhs), commas, end, nil
		case TokenComma:
			if rhs == nil {
				return nil, nil, Token{}, &EmptyExpressionError{Col: end.Pos, End: end.Text}
			}
			args = append(args, rhs)
			commas = append(commas, end)
		case TokenEOF:
			return nil, nil, Token{}, &BracketError{Col: end.Pos, Left: open.Text}
		default:
			panic("syntax: argument list ended on non-end token " + end.String())
		}
	}
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression. open indicates whether the
// subexpression began with an open parenthesis.
func itShouldNotHaveEndedThisWay(tok Token, open bool) error {
	left := ""
	if open {
		left = "("
	}
	switch tok.Kind {
	case TokenEOF:
		// Unexpected EOF implies an open parenthesis that was not closed.
		return &BracketError{Col: tok.Pos, Left: left}
	case TokenClose:
		return &BracketError{Col: tok.Pos, Left: left, Right: tok.Text}
	case TokenComma:
		// Separator outside a function call.
		return &SeparatorError{Col: tok.Pos, Sep: tok.Text}
	default:
		panic("syntax: it really should not have ended this way: " + tok.String())
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets the binary operator for a token kind.
func binop(k TokenKind) operator {
	switch k {
	case TokenAdd, TokenSub:
		return operator{1, false}
	case TokenMul, TokenDiv:
		return operator{5, false}
	default:
		panic("syntax: no binary operator for " + k.String())
	}
}

// unop gets the unary operator for a token kind.
func unop(k TokenKind) operator {
	switch k {
	case TokenAdd, TokenSub:
		return operator{10, true}
	default:
		panic("syntax: no unary operator for " + k.String())
	}
}

var (
	// factprec is the precedence of postfix factorial, which binds tighter
	// than any prefix or infix operator.
	factprec = operator{20, false}
	// exprprec is the precedence required to parse an entire subexpression.
	exprprec = operator{-128, true}
)
