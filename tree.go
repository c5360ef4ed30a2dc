package parseva

import (
	"strings"

	"github.com/zephyrtronium/parseva/syntax"
)

// Tree is a homogeneous syntax tree. Every node carries a token type, the
// source text of its token, its source column, and an ordered list of
// children. Unlike the typed tree, a Tree keeps parentheses and commas, so it
// mirrors the punctuation of the input one to one.
//
// The nodes live in a single slice. Links to parents are indices into it, so
// a node never owns its parent.
type Tree struct {
	nodes []tnode
}

type tnode struct {
	typ  TokenType
	text string
	col  int
	// parent is the index of the parent node, or -1 for the root.
	parent int
	kids   []int
	// closed is set once kids has been attached.
	closed bool
}

// TreeNode refers to a node of a Tree. The zero TreeNode refers to nothing.
type TreeNode struct {
	t *Tree
	i int
}

// Root returns the root of the tree. The root of an empty tree is the zero
// TreeNode.
func (t *Tree) Root() TreeNode {
	if t == nil || len(t.nodes) == 0 {
		return TreeNode{}
	}
	return TreeNode{t, 0}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// String draws the tree as Print does.
func (t *Tree) String() string {
	return Print(t.Root())
}

// Valid returns whether n refers to a node.
func (n TreeNode) Valid() bool {
	return n.t != nil
}

func (n TreeNode) node() *tnode {
	return &n.t.nodes[n.i]
}

// Type returns the token type of the node.
func (n TreeNode) Type() TokenType {
	return n.node().typ
}

// Text returns the source text of the node's token.
func (n TreeNode) Text() string {
	return n.node().text
}

// Col returns the source column of the node's token, or 0 if unknown.
func (n TreeNode) Col() int {
	return n.node().col
}

// Parent returns the node's parent. The second result is false for the root.
func (n TreeNode) Parent() (TreeNode, bool) {
	p := n.node().parent
	if p < 0 {
		return TreeNode{}, false
	}
	return TreeNode{n.t, p}, true
}

// NumChildren returns the number of children of the node.
func (n TreeNode) NumChildren() int {
	return len(n.node().kids)
}

// Child returns the i'th child of the node.
func (n TreeNode) Child(i int) TreeNode {
	return TreeNode{n.t, n.node().kids[i]}
}

// Children returns the node's children in source order.
func (n TreeNode) Children() []TreeNode {
	kids := n.node().kids
	r := make([]TreeNode, len(kids))
	for i, k := range kids {
		r[i] = TreeNode{n.t, k}
	}
	return r
}

func (n TreeNode) String() string {
	if !n.Valid() {
		return "<invalid>"
	}
	return n.Type().Name() + " -> " + n.Text()
}

// BuildTree converts a parse result into a homogeneous tree.
//
// Operators, numbers, constants, and factorials each become one node holding
// the token as written. A call becomes a FUNCTION node whose children are the
// open parenthesis, the arguments separated by COMMA nodes, and the close
// parenthesis. A parenthesized expression becomes an LPAREN node whose
// children are the inner expression and the RPAREN.
//
// The error, if any, is a *TokenError.
func BuildTree(e *syntax.Expr) (*Tree, error) {
	var b treebuilder
	if _, err := b.build(e); err != nil {
		return nil, err
	}
	return &b.t, nil
}

type treebuilder struct {
	t Tree
}

// add appends a node with no children.
func (b *treebuilder) add(typ TokenType, tok syntax.Token) int {
	b.t.nodes = append(b.t.nodes, tnode{typ: typ, text: tok.Text, col: tok.Pos, parent: -1})
	return len(b.t.nodes) - 1
}

// attach sets the children of p and then links each child back to p. Panics
// if p already has children attached.
func (b *treebuilder) attach(p int, kids ...int) {
	n := &b.t.nodes[p]
	if n.closed {
		panic("parseva: children attached twice to " + n.typ.Name() + " " + n.text)
	}
	n.kids, n.closed = kids, true
	for _, k := range kids {
		b.t.nodes[k].parent = p
	}
}

var infixTypes = map[syntax.TokenKind]TokenType{
	syntax.TokenAdd: TokenAdd,
	syntax.TokenSub: TokenSub,
	syntax.TokenMul: TokenMul,
	syntax.TokenDiv: TokenDiv,
}

func (b *treebuilder) build(e *syntax.Expr) (int, error) {
	if e == nil {
		panic("parseva: nil expression")
	}
	switch e.Kind {
	case syntax.KindInfix:
		typ, ok := infixTypes[e.Tok.Kind]
		if !ok {
			return -1, unexpected(e)
		}
		p := b.add(typ, e.Tok)
		l, err := b.build(e.Left())
		if err != nil {
			return -1, err
		}
		r, err := b.build(e.Right())
		if err != nil {
			return -1, err
		}
		b.attach(p, l, r)
		return p, nil
	case syntax.KindUnary:
		var typ TokenType
		switch e.Tok.Kind {
		case syntax.TokenAdd:
			typ = TokenAdd
		case syntax.TokenSub:
			typ = TokenNegate
		default:
			return -1, unexpected(e)
		}
		return b.wrap(typ, e)
	case syntax.KindFactorial:
		if e.Tok.Kind != syntax.TokenBang {
			return -1, unexpected(e)
		}
		return b.wrap(TokenFact, e)
	case syntax.KindCall:
		p := b.add(TokenFunction, e.Tok)
		kids := make([]int, 0, 2*len(e.Args)+1)
		kids = append(kids, b.add(TokenLParen, e.Open))
		for i, a := range e.Args {
			k, err := b.build(a)
			if err != nil {
				return -1, err
			}
			kids = append(kids, k)
			if i < len(e.Commas) {
				kids = append(kids, b.add(TokenComma, e.Commas[i]))
			}
		}
		kids = append(kids, b.add(TokenRParen, e.Close))
		b.attach(p, kids...)
		return p, nil
	case syntax.KindNumber:
		p := b.add(TokenNum, e.Tok)
		b.attach(p)
		return p, nil
	case syntax.KindConstant:
		p := b.add(TokenConstant, e.Tok)
		b.attach(p)
		return p, nil
	case syntax.KindGroup:
		p := b.add(TokenLParen, e.Open)
		x, err := b.build(e.Operand())
		if err != nil {
			return -1, err
		}
		r := b.add(TokenRParen, e.Close)
		b.attach(p, x, r)
		return p, nil
	default:
		panic("parseva: invalid expression kind " + e.Kind.String())
	}
}

// wrap adds a node of type typ for e's token with e's operand as its only
// child.
func (b *treebuilder) wrap(typ TokenType, e *syntax.Expr) (int, error) {
	p := b.add(typ, e.Tok)
	x, err := b.build(e.Operand())
	if err != nil {
		return -1, err
	}
	b.attach(p, x)
	return p, nil
}

// TreeString is a shortcut to parse an expression and draw its homogeneous
// tree.
func TreeString(src string) (string, error) {
	e, err := syntax.Parse(strings.NewReader(src))
	if err != nil {
		return "", err
	}
	t, err := BuildTree(e)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}
