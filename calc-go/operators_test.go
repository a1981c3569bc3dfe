package calc_go

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOperator(t *testing.T) {
	for _, c := range []byte(kOperators) {
		assert.True(t, IsOperator(c), string(c))
	}
	for _, c := range []byte("()0 a.=") {
		assert.False(t, IsOperator(c), string(c))
	}
	assert.Equal(t, 0, Precedence('('))
	assert.Less(t, Precedence('-'), Precedence('%'))
	assert.Less(t, Precedence('/'), Precedence('^'))
}

func TestApply(t *testing.T) {
	tests := []struct {
		op   byte
		b, a int64
		want int64
		err  error
	}{
		{'+', 2, 3, 5, nil},
		{'-', 2, 3, -1, nil},
		{'*', -4, 3, -12, nil},
		{'/', -7, 2, -3, nil},
		{'%', -7, 2, -1, nil},
		{'%', 7, -2, 1, nil},
		{'^', -3, 3, -27, nil},
		{'^', 5, 0, 1, nil},
		{'^', 7, -1, 0, nil},
		{'^', -1, -7, -1, nil},
		{'/', 1, 0, 0, ErrDivisionByZero},
		{'%', 1, 0, 0, ErrModuloByZero},
		{'^', 0, -2, 0, ErrDivisionByZero},
		{'+', math.MaxInt64, 1, 0, ErrOverflow},
		{'+', math.MinInt64, -1, 0, ErrOverflow},
		{'-', math.MinInt64, 1, 0, ErrOverflow},
		{'-', 0, math.MinInt64, 0, ErrOverflow},
		{'*', math.MinInt64, -1, 0, ErrOverflow},
		{'*', math.MinInt64, 1, math.MinInt64, nil},
		{'*', 1 << 32, 1 << 31, 0, ErrOverflow},
		{'*', -(1 << 32), 1 << 31, math.MinInt64, nil},
		{'/', math.MinInt64, -1, 0, ErrOverflow},
		{'%', math.MinInt64, -1, 0, nil},
		{'^', 3, 40, 0, ErrOverflow},
		{'^', 3, 39, 4052555153018976267, nil},
		{'=', 1, 1, 0, ErrMalformedExpression},
	}
	for _, tt := range tests {
		got, err := Apply(tt.op, tt.b, tt.a)
		if tt.err != nil {
			assert.ErrorIs(t, err, tt.err, "%d %c %d", tt.b, tt.op, tt.a)
			continue
		}
		if assert.NoError(t, err, "%d %c %d", tt.b, tt.op, tt.a) {
			assert.Equal(t, tt.want, got, "%d %c %d", tt.b, tt.op, tt.a)
		}
	}
}
