package calc

import (
	"errors"
	"strconv"
	"strings"
)

// Parse evaluates a tokenized line. If the line has the form "name = expr",
// then expr is evaluated and, only if that succeeds, its value is assigned
// to name in env. Any token is accepted as the name. Otherwise the whole
// line is evaluated as an expression and env is not modified. A nil env has
// no variables, and an assignment to it only returns the value.
func Parse(tokens []string, env *Env) (float64, error) {
	if len(tokens) > 2 && tokens[1] == "=" {
		r, err := eval(tokens[2:], 2, env)
		if err != nil {
			return 0, err
		}
		if env == nil {
			env = NewEnv()
		}
		env.Set(tokens[0], r)
		return r, nil
	}
	return eval(tokens, 0, env)
}

// EvalString is a shortcut to tokenize and parse a line.
func EvalString(src string, env *Env) (float64, error) {
	return Parse(Tokenize(src), env)
}

// Eval evaluates an expression. Unlike Parse, it does not treat = specially,
// so = is an invalid token like any other unknown name. env is never
// modified and may be nil.
func Eval(tokens []string, env *Env) (float64, error) {
	return eval(tokens, 0, env)
}

// eval evaluates tokens with an operator stack. base is the index of
// tokens[0] in the line, for error positions.
func eval(tokens []string, base int, env *Env) (float64, error) {
	vals := newValueStack()
	ops := newOpStack()
	for i, tok := range tokens {
		k := base + i
		if v, ok := number(tok); ok {
			vals.push(v)
			continue
		}
		if v, ok := env.Lookup(tok); ok {
			vals.push(v)
			continue
		}
		switch tok {
		case "(":
			ops.push(tok)
		case ")":
			// An unmatched close bracket just empties the stack.
			for {
				op, ok := ops.pop()
				if !ok || op == "(" {
					break
				}
				if err := apply(vals, op, k); err != nil {
					return 0, err
				}
			}
		case "+", "-", "*", "/":
			p := precedence(tok)
			for {
				op, ok := ops.top()
				if !ok || precedence(op) < p {
					break
				}
				ops.pop()
				if err := apply(vals, op, k); err != nil {
					return 0, err
				}
			}
			ops.push(tok)
		default:
			return 0, &TokenError{Index: k, Token: tok}
		}
	}
	end := base + len(tokens)
	for {
		op, ok := ops.pop()
		if !ok {
			break
		}
		if err := apply(vals, op, end); err != nil {
			return 0, err
		}
	}
	r, ok := vals.pop()
	if !ok {
		return 0, &ExpressionError{Index: end}
	}
	return r, nil
}

// number parses a numeric token. Literals too large for a float64 evaluate
// to an infinity.
func number(tok string) (float64, bool) {
	if !decimal(tok) {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// decimal reports whether tok is written as a plain decimal float: digits
// with an optional point and fraction, at least one digit in all, then an
// optional exponent; or inf, infinity, or nan in any case. strconv.ParseFloat
// also takes underscores and hex mantissas, which are names here.
func decimal(tok string) bool {
	switch strings.ToLower(tok) {
	case "inf", "infinity", "nan":
		return true
	}
	i, n := digits(tok, 0)
	if i < len(tok) && tok[i] == '.' {
		var m int
		i, m = digits(tok, i+1)
		n += m
	}
	if n == 0 {
		return false
	}
	if i < len(tok) && (tok[i] == 'e' || tok[i] == 'E') {
		i++
		if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
			i++
		}
		var m int
		i, m = digits(tok, i)
		if m == 0 {
			return false
		}
	}
	return i == len(tok)
}

// digits scans ASCII digits in s from i. It returns the index after them and
// how many there were.
func digits(s string, i int) (int, int) {
	j := i
	for j < len(s) && '0' <= s[j] && s[j] <= '9' {
		j++
	}
	return j, j - i
}

// precedence gives the binding strength of an operator. Anything that is not
// an operator, i.e. an open bracket, binds least.
func precedence(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	default:
		return 0
	}
}

// apply pops two operands, combines them with op, and pushes the result. k is
// the token index to report in errors.
func apply(vals valueStack, op string, k int) error {
	if vals.len() < 2 {
		return &ExpressionError{Index: k}
	}
	b, _ := vals.pop()
	a, _ := vals.pop()
	var r float64
	switch op {
	case "+":
		r = a + b
	case "-":
		r = a - b
	case "*":
		r = a * b
	case "/":
		if b == 0 {
			return &DivisionError{Index: k, X: a}
		}
		r = a / b
	default:
		return &OperatorError{Index: k, Operator: op}
	}
	vals.push(r)
	return nil
}
