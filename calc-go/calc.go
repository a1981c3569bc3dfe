package calc_go

import (
	"time"
)

// Evaluation is the outcome of running one expression through the whole
// pipeline.
type Evaluation struct {
	Expression string
	Postfix    Postfix
	Result     int64
}

// Evaluate validates, translates and evaluates an infix expression.
func Evaluate(expr string) (int64, error) {
	ev, err := Run(expr)
	if err != nil {
		return 0, err
	}
	return ev.Result, nil
}

// Translate validates expr and returns its postfix form.
func Translate(expr string) (Postfix, error) {
	if err := Validate(expr); err != nil {
		return nil, err
	}
	return ToPostfix(expr)
}

// Run is Evaluate, keeping the intermediate postfix form.
func Run(expr string) (*Evaluation, error) {
	return RunTimed(expr, nil)
}

// RunTimed is Run with each phase recorded in metrics, if not nil.
func RunTimed(expr string, metrics *Metrics) (*Evaluation, error) {
	start := time.Now()
	err := Validate(expr)
	metrics.Record("validate", start)
	if err != nil {
		return nil, err
	}

	start = time.Now()
	postfix, err := ToPostfix(expr)
	metrics.Record("translate", start)
	if err != nil {
		return nil, err
	}

	start = time.Now()
	result, err := EvalPostfix(postfix)
	metrics.Record("evaluate", start)
	if err != nil {
		return nil, err
	}
	return &Evaluation{Expression: expr, Postfix: postfix, Result: result}, nil
}

// RunPostfix evaluates text already written in postfix form.
func RunPostfix(text string, metrics *Metrics) (*Evaluation, error) {
	start := time.Now()
	postfix, err := ParsePostfix(text)
	metrics.Record("parse postfix", start)
	if err != nil {
		return nil, err
	}

	start = time.Now()
	result, err := EvalPostfix(postfix)
	metrics.Record("evaluate", start)
	if err != nil {
		return nil, err
	}
	return &Evaluation{Expression: text, Postfix: postfix, Result: result}, nil
}
