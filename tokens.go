package parseva

import (
	"strconv"

	"github.com/zephyrtronium/parseva/syntax"
)

// TokenType tags a node of a homogeneous Tree.
type TokenType int8

const (
	TokenAdd      TokenType = iota // OP_ADD
	TokenSub                       // OP_SUB
	TokenMul                       // OP_MUL
	TokenDiv                       // OP_DIV
	TokenNum                       // NUM
	TokenNegate                    // NEGATE
	TokenFunction                  // FUNCTION
	TokenConstant                  // CONSTANT
	TokenFact                      // OP_FACT
	TokenLParen                    // LPAREN
	TokenRParen                    // RPAREN
	TokenComma                     // COMMA
)

//go:generate stringer -type=TokenType -linecomment

// Valid returns whether t is in the token catalog.
func (t TokenType) Valid() bool {
	return 0 <= t && int(t) < len(_TokenType_index)-1
}

// Name returns the display name of t. Panics if t is not in the catalog.
func (t TokenType) Name() string {
	if !t.Valid() {
		panic("parseva: token type " + strconv.Itoa(int(t)) + " has no name")
	}
	return t.String()
}

// TokenTypes returns every token type in the catalog in tag order.
func TokenTypes() []TokenType {
	r := make([]TokenType, len(_TokenType_index)-1)
	for i := range r {
		r[i] = TokenType(i)
	}
	return r
}

// LookupToken returns the token type with the given display name.
func LookupToken(name string) (TokenType, bool) {
	for _, t := range TokenTypes() {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

// lexical maps each token the parser can produce to the catalog entry that
// displays it.
var lexical = map[syntax.TokenKind]TokenType{
	syntax.TokenAdd:   TokenAdd,
	syntax.TokenSub:   TokenSub,
	syntax.TokenMul:   TokenMul,
	syntax.TokenDiv:   TokenDiv,
	syntax.TokenNum:   TokenNum,
	syntax.TokenIdent: TokenFunction,
	syntax.TokenConst: TokenConstant,
	syntax.TokenBang:  TokenFact,
	syntax.TokenOpen:  TokenLParen,
	syntax.TokenClose: TokenRParen,
	syntax.TokenComma: TokenComma,
}

// displayName names a lexical token for error messages.
func displayName(k syntax.TokenKind) string {
	if t, ok := lexical[k]; ok {
		return t.Name()
	}
	return k.String()
}
