package calc_go

import (
	"fmt"

	"github.com/fatih/color"
)

// StatusPrinter turns evaluation outcomes into console output. Results go
// to standard output, errors and diagnostics to the error stream.
type StatusPrinter struct {
	config_  *Config
	printer_ *LinePrinter

	result_  *color.Color
	error_   *color.Color
	warning_ *color.Color
	faint_   *color.Color
}

func NewStatusPrinter(config *Config, printer *LinePrinter) *StatusPrinter {
	ret := StatusPrinter{config_: config, printer_: printer}
	ret.result_ = color.New(color.FgGreen, color.Bold)
	ret.error_ = color.New(color.FgRed, color.Bold)
	ret.warning_ = color.New(color.FgYellow)
	ret.faint_ = color.New(color.Faint)
	for _, c := range []*color.Color{ret.result_, ret.error_, ret.warning_, ret.faint_} {
		if printer.supports_color() {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &ret
}

// EvaluationFinished prints the postfix form and the value of ev.
func (this *StatusPrinter) EvaluationFinished(ev *Evaluation, postfixOnly bool) {
	if postfixOnly {
		this.printer_.PrintLine(ev.Postfix.String())
		return
	}
	if this.config_.Verbosity == QUIET {
		this.printer_.PrintLine(fmt.Sprint(ev.Result))
		return
	}
	if this.config_.Verbosity == VERBOSE {
		this.printer_.PrintLine(this.faint_.Sprint("Expression: ") + ev.Expression)
	}
	this.printer_.PrintLine("Postfix expression: " + ev.Postfix.String())
	this.printer_.PrintLine("Evaluated Result: " + this.result_.Sprint(ev.Result))
}

// EvaluationFailed prints err; in verbose mode the source line is shown
// with a caret under the failing position.
func (this *StatusPrinter) EvaluationFailed(src string, err error) {
	msg := err.Error()
	if this.config_.Verbosity == VERBOSE {
		msg = DescribeError(src, err)
	}
	this.printer_.PrintError(this.error_.Sprint("Error: ") + msg)
}

func (this *StatusPrinter) Info(msg string, args ...interface{}) {
	this.printer_.PrintLine("calc: " + fmt.Sprintf(msg, args...))
}

func (this *StatusPrinter) Warning(msg string, args ...interface{}) {
	this.printer_.PrintError(this.warning_.Sprint("calc: warning: ") + fmt.Sprintf(msg, args...))
}

func (this *StatusPrinter) Error(msg string, args ...interface{}) {
	this.printer_.PrintError(this.error_.Sprint("calc: error: ") + fmt.Sprintf(msg, args...))
}
