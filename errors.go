package calc

import "errors"

// Sentinel errors for matching with errors.Is. The typed errors below carry
// the same messages plus the position of the failure.
var (
	ErrInvalidToken      = errors.New("Invalid token")
	ErrInvalidExpression = errors.New("Invalid expression")
	ErrDivisionByZero    = errors.New("Division by zero")
	ErrUnknownOperator   = errors.New("Unknown operator")
)

// TokenError indicates a token that is not a number, a defined variable, an
// operator, or a bracket. It implements InputError.
type TokenError struct {
	// Index is the position of the token in the line.
	Index int
	// Token is the token that was not understood.
	Token string
}

func (err *TokenError) Error() string {
	return ErrInvalidToken.Error()
}

func (err *TokenError) Is(target error) bool {
	return target == ErrInvalidToken
}

func (err *TokenError) Pos() int {
	return err.Index
}

// ExpressionError indicates an operator without two operands, or a line that
// produced no value. It implements InputError.
type ExpressionError struct {
	// Index is the position of the token being processed, or the number of
	// tokens if the error happened after the last one.
	Index int
}

func (err *ExpressionError) Error() string {
	return ErrInvalidExpression.Error()
}

func (err *ExpressionError) Is(target error) bool {
	return target == ErrInvalidExpression
}

func (err *ExpressionError) Pos() int {
	return err.Index
}

// DivisionError indicates a division whose right operand is zero. It
// implements InputError.
type DivisionError struct {
	// Index is the position of the token being processed when the division
	// was applied.
	Index int
	// X is the dividend.
	X float64
}

func (err *DivisionError) Error() string {
	return ErrDivisionByZero.Error()
}

func (err *DivisionError) Is(target error) bool {
	return target == ErrDivisionByZero
}

func (err *DivisionError) Pos() int {
	return err.Index
}

// OperatorError indicates an attempt to apply something other than one of
// the four operators. The only way to reach it is an unmatched open bracket
// left on the operator stack. It implements InputError.
type OperatorError struct {
	// Index is the position of the token being processed when the operator
	// was applied.
	Index int
	// Operator is the token that was applied.
	Operator string
}

func (err *OperatorError) Error() string {
	return ErrUnknownOperator.Error()
}

func (err *OperatorError) Is(target error) bool {
	return target == ErrUnknownOperator
}

func (err *OperatorError) Pos() int {
	return err.Index
}

// InputError is an error with position information. Every error resulting
// from evaluating a line implements InputError.
type InputError interface {
	error
	// Pos returns the index of the token that was being processed when the
	// error occurred, counted from the start of the line.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*ExpressionError)(nil)
	_ InputError = (*DivisionError)(nil)
	_ InputError = (*OperatorError)(nil)
)
