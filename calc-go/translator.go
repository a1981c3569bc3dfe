package calc_go

import (
	"github.com/ahrtr/gocontainer/stack"
)

// ToPostfix translates an infix expression into postfix order with the
// shunting-yard algorithm. Operators of equal precedence group left to
// right, '^' included, so 2^3^2 becomes "2 3 ^ 2 ^".
//
// ToPostfix does not run Validate, but it still reports parentheses it
// cannot match.
func ToPostfix(expr string) (Postfix, error) {
	lexer := NewLexer(expr)
	ops := stack.New() // of Token: OPERATOR or LPAREN
	var out Postfix

	for {
		tok, err := lexer.ReadToken()
		if err != nil {
			return nil, err
		}

		switch tok.Type {
		case NUMBER:
			out = append(out, tok)

		case LPAREN:
			ops.Push(tok)

		case RPAREN:
			matched := false
			for !ops.IsEmpty() {
				top := ops.Pop().(Token)
				if top.Type == LPAREN {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched {
				return nil, newEvalError(ErrUnbalancedParentheses, tok.Pos, "')' without matching '('")
			}

		case OPERATOR:
			prec := Precedence(tok.Op())
			for !ops.IsEmpty() {
				top := ops.Peek().(Token)
				// '(' has precedence 0 and so is never popped here.
				if prec > Precedence(top.Op()) {
					break
				}
				out = append(out, ops.Pop().(Token))
			}
			ops.Push(tok)

		case TEOF:
			for !ops.IsEmpty() {
				top := ops.Pop().(Token)
				if top.Type != OPERATOR {
					return nil, newEvalError(ErrUnbalancedParentheses, top.Pos, "unclosed '('")
				}
				out = append(out, top)
			}
			return out, nil
		}
	}
}
