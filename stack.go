package calc

import "github.com/edwingeng/deque"

// valueStack holds operands during evaluation.
type valueStack struct {
	dq deque.Deque
}

func newValueStack() valueStack {
	return valueStack{dq: deque.NewDeque()}
}

func (s valueStack) push(v float64) {
	s.dq.PushBack(v)
}

// pop removes the top value. ok is false if the stack is empty.
func (s valueStack) pop() (v float64, ok bool) {
	if s.dq.Empty() {
		return 0, false
	}
	return s.dq.PopBack().(float64), true
}

func (s valueStack) len() int {
	return s.dq.Len()
}

// opStack holds pending operators and open brackets during evaluation.
type opStack struct {
	dq deque.Deque
}

func newOpStack() opStack {
	return opStack{dq: deque.NewDeque()}
}

func (s opStack) push(op string) {
	s.dq.PushBack(op)
}

// pop removes the top operator. ok is false if the stack is empty.
func (s opStack) pop() (op string, ok bool) {
	if s.dq.Empty() {
		return "", false
	}
	return s.dq.PopBack().(string), true
}

// top returns the top operator without removing it.
func (s opStack) top() (op string, ok bool) {
	if s.dq.Empty() {
		return "", false
	}
	return s.dq.Back().(string), true
}
