package calc_go

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr    string
		postfix string
		want    int64
	}{
		{"3+4*2", "3 4 2 * +", 11},
		{"2^3^2", "2 3 ^ 2 ^", 64},
		{"10-4-3", "10 4 - 3 -", 3},
		{"100/10/5", "100 10 / 5 /", 2},
		{"(1+2)*3", "1 2 + 3 *", 9},
		{"2*(3+4)^2", "2 3 4 + 2 ^ *", 98},
		{"7%3", "7 3 %", 1},
		{"8/3", "8 3 /", 2},
		{"2-5", "2 5 -", -3},
		{"(2-5)/2", "2 5 - 2 /", -1},
		{"(2-5)%2", "2 5 - 2 %", -1},
		{"2^10", "2 10 ^", 1024},
		{"0^0", "0 0 ^", 1},
		{"2^(1-2)", "2 1 2 - ^", 0},
		{"1^(0-5)", "1 0 5 - ^", 1},
		{"(0-1)^(0-3)", "0 1 - 0 3 - ^", -1},
		{"(0-1)^(0-4)", "0 1 - 0 4 - ^", 1},
		{"12 + 34", "12 34 +", 46},
		{" 6 * 7 ", "6 7 *", 42},
		{"((42))", "42", 42},
		{"007+1", "007 1 +", 8},
		{"2^62", "2 62 ^", 1 << 62},
		{"(0-2)^63", "0 2 - 63 ^", math.MinInt64},
		{"0-9223372036854775807-1", "0 9223372036854775807 - 1 -", math.MinInt64},
		{"1+2*3-4/2%3^2", "1 2 3 * + 4 2 / 3 2 ^ % -", 5},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			ev, err := Run(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.postfix, ev.Postfix.String())
			assert.Equal(t, tt.want, ev.Result)
			assert.Equal(t, tt.expr, ev.Expression)

			got, err := Evaluate(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		expr string
		kind error
		pos  int
	}{
		{"", ErrEmptyExpression, -1},
		{"   ", ErrEmptyExpression, -1},
		{"*5+3", ErrInvalidLeadingOperator, 0},
		{" ^2", ErrInvalidLeadingOperator, 1},
		{"-5", ErrUnaryMinus, 0},
		{"(1+2", ErrUnbalancedParentheses, 4},
		{"1+2)", ErrUnbalancedParentheses, 3},
		{")1(", ErrUnbalancedParentheses, 0},
		{"5/0", ErrDivisionByZero, 1},
		{"5%0", ErrModuloByZero, 1},
		{"5/(3-3)", ErrDivisionByZero, 1},
		{"0^(0-1)", ErrDivisionByZero, 1},
		{"3+", ErrInsufficientOperands, 1},
		{"3++4", ErrInsufficientOperands, 1},
		{"3 4", ErrMalformedExpression, -1},
		{"()", ErrMalformedExpression, -1},
		{"3+a", ErrInvalidCharacter, 2},
		{"3.5", ErrInvalidCharacter, 1},
		{"9223372036854775808", ErrNumberTooLarge, 0},
		{"9223372036854775807+1", ErrOverflow, 19},
		{"2^63", ErrOverflow, 1},
		{"(0-9223372036854775807-1)/(0-1)", ErrOverflow, 25},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := Evaluate(tt.expr)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.pos, ErrorPos(err))
		})
	}
}

// refParser evaluates infix text directly by precedence climbing, with
// every operator left-associative. It shares Apply with the pipeline so
// arithmetic errors line up.
type refParser struct {
	s string
	i int
}

func (p *refParser) expr(minPrec int) (int64, error) {
	lhs, err := p.atom()
	if err != nil {
		return 0, err
	}
	for p.i < len(p.s) && IsOperator(p.s[p.i]) && Precedence(p.s[p.i]) >= minPrec {
		op := p.s[p.i]
		p.i++
		rhs, err := p.expr(Precedence(op) + 1)
		if err != nil {
			return 0, err
		}
		if lhs, err = Apply(op, lhs, rhs); err != nil {
			return 0, err
		}
	}
	return lhs, nil
}

func (p *refParser) atom() (int64, error) {
	if p.s[p.i] == '(' {
		p.i++
		v, err := p.expr(1)
		p.i++ // ')'
		return v, err
	}
	start := p.i
	for p.i < len(p.s) && isDigit(p.s[p.i]) {
		p.i++
	}
	return strconv.ParseInt(p.s[start:p.i], 10, 64)
}

func randomExpr(r *rand.Rand, depth int) string {
	if depth == 0 || r.Intn(4) == 0 {
		return strconv.Itoa(r.Intn(12))
	}
	if r.Intn(5) == 0 {
		return "(" + randomExpr(r, depth-1) + ")"
	}
	return randomExpr(r, depth-1) + string(kOperators[r.Intn(len(kOperators))]) + randomExpr(r, depth-1)
}

func TestPostfixMatchesDirectEvaluation(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		expr := randomExpr(r, 5)

		ref := refParser{s: expr}
		want, wantErr := ref.expr(1)

		postfix, err := ToPostfix(expr)
		require.NoError(t, err, expr)

		operands, operators := postfix.Counts()
		assert.Equal(t, operands-1, operators, expr)
		depth := 0
		for _, tok := range postfix {
			require.NotEqual(t, LPAREN, tok.Type, expr)
			require.NotEqual(t, RPAREN, tok.Type, expr)
			if tok.Type == OPERATOR {
				require.GreaterOrEqual(t, depth, 2, expr)
				depth--
			} else {
				depth++
			}
		}

		got, err := EvalPostfix(postfix)
		if wantErr != nil {
			assert.ErrorIs(t, err, wantErr, expr)
			continue
		}
		require.NoError(t, err, expr)
		assert.Equal(t, want, got, expr)
	}
}

func TestTranslate(t *testing.T) {
	postfix, err := Translate("(1+2)*(3+4)")
	require.NoError(t, err)
	assert.Equal(t, "1 2 + 3 4 + *", postfix.String())

	_, err = Translate("*1")
	assert.ErrorIs(t, err, ErrInvalidLeadingOperator)
}

func TestRunTimedRecordsPhases(t *testing.T) {
	metrics := NewMetrics()
	_, err := RunTimed("1+1", metrics)
	require.NoError(t, err)
	_, err = RunTimed("1/0", metrics)
	require.Error(t, err)

	assert.Equal(t, 2, metrics.NewMetric("validate").count)
	assert.Equal(t, 2, metrics.NewMetric("translate").count)
	assert.Equal(t, 2, metrics.NewMetric("evaluate").count)
}

func TestRunPostfix(t *testing.T) {
	ev, err := RunPostfix("3 4 2 * +", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 11, ev.Result)

	_, err = RunPostfix("1 0 /", nil)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, 4, ErrorPos(err))
}
