package calc_go

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error returned by the pipeline wraps exactly one of
// these, so callers match with errors.Is.
var (
	ErrEmptyExpression        = errors.New("empty expression")
	ErrInvalidLeadingOperator = errors.New("expression starts with invalid operator")
	ErrUnaryMinus             = errors.New("unary minus is not supported")
	ErrUnbalancedParentheses  = errors.New("unbalanced parentheses")
	ErrInvalidCharacter       = errors.New("invalid character")
	ErrNumberTooLarge         = errors.New("number too large")
	ErrInsufficientOperands   = errors.New("insufficient operands")
	ErrDivisionByZero         = errors.New("division by zero")
	ErrModuloByZero           = errors.New("modulo by zero")
	ErrOverflow               = errors.New("integer overflow")
	ErrMalformedExpression    = errors.New("malformed expression")
)

var kindNames = map[error]string{
	ErrEmptyExpression:        "EmptyExpression",
	ErrInvalidLeadingOperator: "InvalidLeadingOperator",
	ErrUnaryMinus:             "UnaryMinus",
	ErrUnbalancedParentheses:  "UnbalancedParentheses",
	ErrInvalidCharacter:       "InvalidCharacter",
	ErrNumberTooLarge:         "NumberTooLarge",
	ErrInsufficientOperands:   "InsufficientOperands",
	ErrDivisionByZero:         "DivisionByZero",
	ErrModuloByZero:           "ModuloByZero",
	ErrOverflow:               "Overflow",
	ErrMalformedExpression:    "MalformedExpression",
}

// EvalError is the failure value of every pipeline stage. Pos is the byte
// offset into the source text the error refers to, or -1 when the error
// is not tied to a single position.
type EvalError struct {
	Kind   error
	Pos    int
	Detail string
}

func newEvalError(kind error, pos int, detail string, args ...interface{}) *EvalError {
	ret := EvalError{Kind: kind, Pos: pos}
	if detail != "" {
		ret.Detail = fmt.Sprintf(detail, args...)
	}
	return &ret
}

func (this *EvalError) Error() string {
	if this.Detail == "" {
		return this.Kind.Error()
	}
	return this.Kind.Error() + ": " + this.Detail
}

func (this *EvalError) Unwrap() error { return this.Kind }

// KindName returns the stable name of the error kind carried by err, or
// "" if err did not come from the pipeline.
func KindName(err error) string {
	var evalErr *EvalError
	if errors.As(err, &evalErr) {
		return kindNames[evalErr.Kind]
	}
	for kind, name := range kindNames {
		if errors.Is(err, kind) {
			return name
		}
	}
	return ""
}

// ErrorPos returns the source offset recorded in err, or -1.
func ErrorPos(err error) int {
	var evalErr *EvalError
	if errors.As(err, &evalErr) {
		return evalErr.Pos
	}
	return -1
}

// DescribeError renders err together with the offending source line and a
// caret under the reported position, if there is one.
func DescribeError(src string, err error) string {
	pos := ErrorPos(err)
	if pos < 0 || pos > len(src) || strings.ContainsAny(src, "\r\n") {
		return err.Error()
	}
	return fmt.Sprintf("%s\n%s\n%s^", err.Error(), src, strings.Repeat(" ", pos))
}
