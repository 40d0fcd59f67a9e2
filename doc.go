// Package calc implements an interactive floating-point calculator with
// variables.
//
// A line like "x = (2+3)*4" is split into tokens, evaluated left to right with
// an operator stack and a value stack, and the result is stored in x. The
// operators are + - * / with the usual precedence; equal precedence
// associates to the left. Every value is a float64.
//
// Tokens are not classified when they are scanned. A token is a number if it
// is a plain decimal literal like 12, 1.5, .5, or 2e10, or one of inf,
// infinity, and nan in any case; otherwise a variable if the environment has
// it, otherwise an operator or bracket. This means a variable named "3" can
// be assigned but is never read back.
//
// Session runs the read-evaluate-print loop used by cmd/calc.
package calc
