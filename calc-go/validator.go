package calc_go

// Validate checks the structure of an infix expression before it is
// translated. It does not transform the input.
//
// Whitespace is ignored when looking for the leading character, and an
// expression made only of whitespace counts as empty.
func Validate(expr string) error {
	first := 0
	for first < len(expr) && isSpace(expr[first]) {
		first++
	}
	if first == len(expr) {
		return newEvalError(ErrEmptyExpression, -1, "")
	}

	c := expr[first]
	if c == '-' {
		return newEvalError(ErrUnaryMinus, first, "")
	}
	if IsOperator(c) {
		return newEvalError(ErrInvalidLeadingOperator, first, "%q", c)
	}

	depth := 0
	for i := first; i < len(expr); i++ {
		c := expr[i]
		switch {
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth < 0 {
				return newEvalError(ErrUnbalancedParentheses, i, "too many closing parentheses")
			}
		case isDigit(c), isSpace(c), IsOperator(c):
		default:
			return newEvalError(ErrInvalidCharacter, i, "%q", c)
		}
	}
	if depth != 0 {
		return newEvalError(ErrUnbalancedParentheses, len(expr), "%d unclosed '('", depth)
	}
	return nil
}
