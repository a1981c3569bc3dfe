package calc_go

import (
	"math"

	"github.com/ahrtr/gocontainer/set"
	"lukechampine.com/uint128"
)

const kOperators = "+-*/%^"

// operators_ is filled once at init and only read afterwards.
var operators_ = newOperatorSet()

func newOperatorSet() set.Interface {
	ret := set.New()
	for i := 0; i < len(kOperators); i++ {
		ret.Add(kOperators[i])
	}
	return ret
}

// IsOperator reports whether ch is one of the binary operators.
func IsOperator(ch byte) bool {
	return operators_.Contains(ch)
}

// / Precedence of an operator. Anything that is not an operator, including
// / parentheses, binds weakest.
func Precedence(ch byte) int {
	switch ch {
	case '+', '-':
		return 1
	case '*', '/', '%':
		return 2
	case '^':
		return 3
	default:
		return 0
	}
}

// Apply computes b op a, where a is the operand that was on top of the
// stack. The returned error is one of the kind sentinels, without position.
func Apply(op byte, b, a int64) (int64, error) {
	switch op {
	case '+':
		sum := b + a
		if (a > 0 && sum < b) || (a < 0 && sum > b) {
			return 0, ErrOverflow
		}
		return sum, nil
	case '-':
		diff := b - a
		if (a > 0 && diff > b) || (a < 0 && diff < b) {
			return 0, ErrOverflow
		}
		return diff, nil
	case '*':
		return mulChecked(b, a)
	case '/':
		if a == 0 {
			return 0, ErrDivisionByZero
		}
		if b == math.MinInt64 && a == -1 {
			return 0, ErrOverflow
		}
		return b / a, nil
	case '%':
		if a == 0 {
			return 0, ErrModuloByZero
		}
		return b % a, nil
	case '^':
		return powChecked(b, a)
	}
	return 0, ErrMalformedExpression
}

func magnitude(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}

// mulChecked multiplies in 128 bits and fails if the product leaves the
// int64 range.
func mulChecked(x, y int64) (int64, error) {
	p := uint128.From64(magnitude(x)).MulWrap64(magnitude(y))
	negative := (x < 0) != (y < 0)
	limit := uint64(math.MaxInt64)
	if negative {
		limit++
	}
	if p.Hi != 0 || p.Lo > limit {
		return 0, ErrOverflow
	}
	if negative {
		return -int64(p.Lo), nil
	}
	return int64(p.Lo), nil
}

// powChecked raises base to exp, truncating fractional results of negative
// exponents toward zero.
func powChecked(base, exp int64) (int64, error) {
	if exp < 0 {
		switch base {
		case 0:
			return 0, ErrDivisionByZero
		case 1:
			return 1, nil
		case -1:
			if exp%2 == 0 {
				return 1, nil
			}
			return -1, nil
		}
		return 0, nil
	}
	result := int64(1)
	for exp > 0 {
		var err error
		if exp&1 == 1 {
			if result, err = mulChecked(result, base); err != nil {
				return 0, err
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, err = mulChecked(base, base); err != nil {
				return 0, err
			}
		}
	}
	return result, nil
}
