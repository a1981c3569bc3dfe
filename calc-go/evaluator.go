package calc_go

import (
	"github.com/edwingeng/deque"
)

// EvalPostfix evaluates a postfix token sequence on an operand stack.
// Each operator pops a (top) and then b, and pushes b op a.
func EvalPostfix(tokens Postfix) (int64, error) {
	operands := deque.NewDeque() // of int64, back is the top

	for _, tok := range tokens {
		switch tok.Type {
		case NUMBER:
			operands.PushBack(tok.Value)
		case OPERATOR:
			if operands.Len() < 2 {
				return 0, newEvalError(ErrInsufficientOperands, tok.Pos,
					"%q needs two operands, have %d", tok.Op(), operands.Len())
			}
			a := operands.PopBack().(int64)
			b := operands.PopBack().(int64)
			v, err := Apply(tok.Op(), b, a)
			if err != nil {
				return 0, newEvalError(err, tok.Pos, "%d %c %d", b, tok.Op(), a)
			}
			operands.PushBack(v)
		default:
			return 0, newEvalError(ErrMalformedExpression, tok.Pos,
				"unexpected %s in postfix", TokenName(tok.Type))
		}
	}

	switch operands.Len() {
	case 1:
		return operands.PopBack().(int64), nil
	case 0:
		return 0, newEvalError(ErrMalformedExpression, -1, "no value")
	default:
		return 0, newEvalError(ErrMalformedExpression, -1,
			"%d values left on the stack", operands.Len())
	}
}
