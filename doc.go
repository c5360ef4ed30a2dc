// Package parseva evaluates arithmetic expressions and draws their syntax
// trees.
//
// Expressions use the usual infix operators + - * / (also × and ÷), unary +
// and -, postfix factorial !, parentheses, the constants e and pi, and calls
// to real functions like sqrt(2) or pow(2, 10). Package syntax parses the
// text; this package turns the result into one of two trees. Build produces a
// typed tree of Nodes that Eval reduces to a float64. BuildTree produces a
// homogeneous Tree that keeps every parenthesis and comma of the input, and
// Print draws it:
//
//	'- OP_ADD -> +
//	   |- NUM -> 2
//	   '- OP_MUL -> *
//	      |- NUM -> 2
//	      '- NUM -> 4
//
// Evaluation never fails. Division by zero, calls to unknown functions, and
// arguments outside a function's domain produce NaN or infinities the way
// IEEE-754 arithmetic does.
package parseva
