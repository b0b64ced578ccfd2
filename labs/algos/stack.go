package algos

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// Stack is a slice-backed LIFO. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

// Push adds v to the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// ErrStackFull is returned by BoundedStack.Push at capacity.
var ErrStackFull = errors.New("stack full")

// BoundedStack refuses pushes beyond a fixed capacity.
type BoundedStack[T any] struct {
	inner Stack[T]
	max   int
}

// NewBoundedStack creates a BoundedStack holding at most max elements.
func NewBoundedStack[T any](max int) *BoundedStack[T] {
	return &BoundedStack[T]{max: max}
}

// Push adds v, or returns ErrStackFull at capacity.
func (s *BoundedStack[T]) Push(v T) error {
	if s.inner.Len() >= s.max {
		return ErrStackFull
	}
	s.inner.Push(v)
	return nil
}

// Pop removes and returns the top element.
func (s *BoundedStack[T]) Pop() (T, bool) {
	return s.inner.Pop()
}

// Len returns the number of stacked elements.
func (s *BoundedStack[T]) Len() int {
	return s.inner.Len()
}

// balanced reports whether every bracket in s closes in the right order.
// Non-bracket characters are ignored.
func balanced(s string) bool {
	pairs := map[rune]rune{')': '(', ']': '[', '}': '{'}
	var st Stack[rune]
	for _, r := range s {
		switch r {
		case '(', '[', '{':
			st.Push(r)
		case ')', ']', '}':
			open, ok := st.Pop()
			if !ok || open != pairs[r] {
				return false
			}
		}
	}
	return st.Len() == 0
}

// evalPostfix evaluates a space-separated postfix expression supporting
// + - * / ^.
func evalPostfix(expr string) (float64, error) {
	var st Stack[float64]
	for _, tok := range strings.Fields(expr) {
		switch tok {
		case "+", "-", "*", "/", "^":
			b, okB := st.Pop()
			a, okA := st.Pop()
			if !okA || !okB {
				return 0, fmt.Errorf("operator %q needs two operands", tok)
			}
			var v float64
			switch tok {
			case "+":
				v = a + b
			case "-":
				v = a - b
			case "*":
				v = a * b
			case "/":
				if b == 0 {
					return 0, fmt.Errorf("division by zero")
				}
				v = a / b
			case "^":
				v = math.Pow(a, b)
			}
			st.Push(v)
		default:
			n, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return 0, fmt.Errorf("bad token %q", tok)
			}
			st.Push(n)
		}
	}
	v, ok := st.Pop()
	if !ok {
		return 0, fmt.Errorf("empty expression")
	}
	if st.Len() != 0 {
		return 0, fmt.Errorf("expression left %d extra operands", st.Len())
	}
	return v, nil
}

// toPostfix converts a space-separated infix expression to postfix with the
// shunting-yard algorithm. ^ binds tightest and associates right.
func toPostfix(expr string) (string, error) {
	prec := map[string]int{"+": 1, "-": 1, "*": 2, "/": 2, "^": 3}
	rightAssoc := map[string]bool{"^": true}

	var out []string
	var ops Stack[string]
	for _, tok := range strings.Fields(expr) {
		switch {
		case tok == "(":
			ops.Push(tok)
		case tok == ")":
			for {
				top, ok := ops.Pop()
				if !ok {
					return "", fmt.Errorf("unmatched )")
				}
				if top == "(" {
					break
				}
				out = append(out, top)
			}
		case prec[tok] > 0:
			for {
				top, ok := ops.Peek()
				if !ok || top == "(" {
					break
				}
				if prec[top] > prec[tok] || (prec[top] == prec[tok] && !rightAssoc[tok]) {
					ops.Pop()
					out = append(out, top)
				} else {
					break
				}
			}
			ops.Push(tok)
		default:
			if _, err := strconv.ParseFloat(tok, 64); err != nil {
				return "", fmt.Errorf("bad token %q", tok)
			}
			out = append(out, tok)
		}
	}
	for {
		top, ok := ops.Pop()
		if !ok {
			break
		}
		if top == "(" {
			return "", fmt.Errorf("unmatched (")
		}
		out = append(out, top)
	}
	return strings.Join(out, " "), nil
}

func runStack(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Push and pop are mirror images")
	var st Stack[string]
	for _, v := range []string{"first", "second", "third"} {
		st.Push(v)
		p.Printf("  push %q (len %d)\n", v, st.Len())
	}
	for st.Len() > 0 {
		v, _ := st.Pop()
		p.Printf("  pop  %q (len %d)\n", v, st.Len())
	}

	p.Section("A bounded stack refuses overflow")
	bs := NewBoundedStack[int](3)
	for i := 1; i <= 4; i++ {
		if err := bs.Push(i); err != nil {
			p.KV(fmt.Sprintf("push %d", i), "error: %v", err)
		} else {
			p.KV(fmt.Sprintf("push %d", i), "ok (len %d)", bs.Len())
		}
	}

	p.Section("Balanced brackets")
	for _, s := range []string{"(a[b]c)", "{[()]}", "(]", "((", "[a](b){c}"} {
		p.KV(s, "%t", balanced(s))
	}

	p.Section("Postfix evaluation")
	for _, expr := range []string{"3 4 +", "5 1 2 + 4 * + 3 -", "2 3 ^"} {
		v, err := evalPostfix(expr)
		if err != nil {
			return fmt.Errorf("evaluating %q: %w", expr, err)
		}
		p.KV(expr, "%g", v)
	}

	p.Section("Infix to postfix by shunting yard")
	for _, expr := range []string{"3 + 4 * 2", "( 3 + 4 ) * 2", "2 ^ 3 ^ 2"} {
		post, err := toPostfix(expr)
		if err != nil {
			return fmt.Errorf("converting %q: %w", expr, err)
		}
		v, err := evalPostfix(post)
		if err != nil {
			return fmt.Errorf("evaluating %q: %w", post, err)
		}
		p.KV(expr, "-> %q = %g", post, v)
	}

	return nil
}
