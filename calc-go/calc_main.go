package calc_go

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// / The type of functions that are the entry points to tools (subcommands).
type ToolFunc func(calc *CalcMain, args []string) int

type Tool struct {
	/// Short name of the tool.
	Name string
	/// Description (shown in "-t list").
	Desc string
	Func ToolFunc
}

var kTools []*Tool

func init() {
	kTools = []*Tool{
		{"list", "list available tools", (*CalcMain).ToolList},
		{"log", "show the evaluation log (requires -L)", (*CalcMain).ToolLog},
		{"clean", "clear the evaluation log (requires -L)", (*CalcMain).ToolClean},
	}
}

// / Find the function to execute for tool_name and return it via its return
// / value. Returns nil for an unknown tool.
func ChooseTool(tool_name string) *Tool {
	for _, tool := range kTools {
		if tool.Name == tool_name {
			return tool
		}
	}
	return nil
}

// / The CLI main() loads up a series of data structures; various tools need
// / to poke into these, so store them as fields on an object.
type CalcMain struct {
	config_  *Config
	options_ *Options
	printer_ *LinePrinter
	status_  *StatusPrinter
	log_     *EvalLog
	metrics_ *Metrics
}

func NewCalcMain(config *Config, options *Options, out, err io.Writer) *CalcMain {
	ret := CalcMain{config_: config, options_: options}
	ret.printer_ = NewLinePrinter(out, err)
	ret.status_ = NewStatusPrinter(config, ret.printer_)
	if config.ShowStats {
		ret.metrics_ = NewMetrics()
	}
	return &ret
}

func (this *CalcMain) Status() *StatusPrinter { return this.status_ }

// / Open the evaluation log if one was requested.
func (this *CalcMain) OpenEvalLog() error {
	if this.options_.LogFile == "" || this.log_ != nil {
		return nil
	}
	log, err := OpenEvalLog(this.options_.LogFile)
	if err != nil {
		return err
	}
	this.log_ = log
	return nil
}

func (this *CalcMain) Close() error {
	if this.log_ == nil {
		return nil
	}
	return this.log_.Close()
}

// / Evaluate one input and report it. Returns false if it failed.
func (this *CalcMain) RunOne(src string) bool {
	var ev *Evaluation
	var err error
	if this.options_.ReadPostfix {
		ev, err = RunPostfix(src, this.metrics_)
	} else if this.options_.PostfixOnly {
		var postfix Postfix
		start := time.Now()
		postfix, err = Translate(src)
		this.metrics_.Record("translate", start)
		if err == nil {
			ev = &Evaluation{Expression: src, Postfix: postfix}
		}
	} else {
		ev, err = RunTimed(src, this.metrics_)
	}

	if this.log_ != nil && !this.options_.PostfixOnly {
		if logErr := this.log_.Record(src, ev, err); logErr != nil {
			this.status_.Warning("%v", logErr)
		}
	}

	if err != nil {
		this.status_.EvaluationFailed(src, err)
		return false
	}
	this.status_.EvaluationFinished(ev, this.options_.PostfixOnly)
	return true
}

// / Evaluate every expression in exprs.
func (this *CalcMain) RunExpressions(exprs []string) int {
	status := ExitSuccess
	for _, expr := range exprs {
		if !this.RunOne(expr) {
			status = ExitFailure
		}
	}
	return int(status)
}

// / Evaluate one expression per line of r, skipping blank lines.
func (this *CalcMain) RunStream(r io.Reader) int {
	status := ExitSuccess
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !this.RunOne(line) {
			status = ExitFailure
		}
	}
	if err := scanner.Err(); err != nil {
		this.status_.Error("reading input: %v", err)
		return int(ExitFailure)
	}
	return int(status)
}

// / Dump the output requested by '-d stats'.
func (this *CalcMain) DumpMetrics(w io.Writer) {
	if this.metrics_ != nil {
		this.metrics_.Report(w)
	}
}

func (this *CalcMain) ToolList(args []string) int {
	this.printer_.PrintLine("calc subtools:")
	for _, tool := range kTools {
		this.printer_.PrintLine(fmt.Sprintf("%10s  %s", tool.Name, tool.Desc))
	}
	return 0
}

func (this *CalcMain) ToolLog(args []string) int {
	if this.options_.LogFile == "" {
		this.status_.Error("no evaluation log; use -L FILE")
		return 1
	}
	if err := this.OpenEvalLog(); err != nil {
		this.status_.Error("%v", err)
		return 1
	}
	entries, err := this.log_.Entries(1000)
	if err != nil {
		this.status_.Error("reading log: %v", err)
		return 1
	}
	for _, e := range entries {
		outcome := fmt.Sprintf("= %d", e.Result)
		if e.Error != "" {
			outcome = "! " + e.Error
		}
		when := time.Unix(e.LastAccess, 0).Format(time.DateTime)
		this.printer_.PrintLine(fmt.Sprintf("%s  %4d  %s  %s", when, e.Hits, e.Expression, outcome))
	}
	return 0
}

func (this *CalcMain) ToolClean(args []string) int {
	if this.options_.LogFile == "" {
		this.status_.Error("no evaluation log; use -L FILE")
		return 1
	}
	if err := this.OpenEvalLog(); err != nil {
		this.status_.Error("%v", err)
		return 1
	}
	if err := this.log_.Clear(); err != nil {
		this.status_.Error("cleaning log: %v", err)
		return 1
	}
	this.status_.Info("evaluation log cleaned")
	return 0
}
