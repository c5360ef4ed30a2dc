package parseva

import (
	"strconv"

	"github.com/zephyrtronium/parseva/syntax"
)

// TokenError is an error indicating a token that cannot appear in the
// production that contains it, e.g. a comma as the operator of an infix
// expression. The parser never produces such trees, so a TokenError means the
// parser and the tree builders disagree about the grammar. It implements
// syntax.InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the display name of the token.
	Token string
	// Text is the source text of the token.
	Text string
	// Production is the kind of expression containing the token.
	Production syntax.Kind
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unexpected token: "+err.Token+" in "+err.Production.String()+" expression")
}

func (err *TokenError) Pos() int {
	return err.Col
}

func unexpected(e *syntax.Expr) error {
	return &TokenError{
		Col:        e.Tok.Pos,
		Token:      displayName(e.Tok.Kind),
		Text:       e.Tok.Text,
		Production: e.Kind,
	}
}

// ConstantError is an error indicating a constant name with no known value.
// It implements syntax.InputError.
type ConstantError struct {
	// Col is the position of the constant.
	Col int
	// Name is the unrecognized name.
	Name string
}

func (err *ConstantError) Error() string {
	return errpos(err.Col, "unexpected value: "+strconv.Quote(err.Name)+" is not a constant")
}

func (err *ConstantError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a numeric literal that cannot be
// converted to a float64. It implements syntax.InputError.
type NumberError struct {
	// Col is the position of the literal.
	Col int
	// Text is the literal.
	Text string
	// Err is the conversion error.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text)+": "+err.Err.Error())
}

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ syntax.InputError = (*TokenError)(nil)
	_ syntax.InputError = (*ConstantError)(nil)
	_ syntax.InputError = (*NumberError)(nil)
)
