package calc_go

import (
	"fmt"
	"io"

	"git.sr.ht/~sircmpwn/getopt"
)

// / The version number of the current calc release.
const kCalcVersion = "1.0.0"

type ExitStatus int8

const (
	ExitSuccess     ExitStatus = 0
	ExitFailure     ExitStatus = 1
	ExitInterrupted ExitStatus = 2
)

type Verbosity int8

const (
	QUIET   Verbosity = 0 // result only
	NORMAL  Verbosity = 1
	VERBOSE Verbosity = 2 // echo input, show error positions
)

type Config struct {
	Verbosity Verbosity
	ShowStats bool
}

func NewConfig() Config {
	return Config{Verbosity: NORMAL}
}

// / Command-line options.
type Options struct {
	/// Local evaluation log, -L.
	LogFile string
	/// Inputs are written in postfix, -r.
	ReadPostfix bool
	/// Print only the postfix form, -p.
	PostfixOnly bool
	/// Tool to run rather than evaluating.
	Tool *Tool
}

// / Parse argv for command-line options. On return *args holds the
// / remaining operands.
// / Returns an exit code, or -1 if calc should continue.
func ReadFlags(args *[]string, options *Options, config *Config, stderr io.Writer) int {
	opts, optind, err := getopt.Getopts(*args, "d:L:t:prqvVh")
	if err != nil {
		fmt.Fprintf(stderr, "calc: %v\n", err)
		Usage(stderr)
		return int(ExitInterrupted)
	}
	*args = (*args)[optind:]
	for _, optV := range opts {
		optarg := optV.Value
		switch optV.Option {
		case 'd':
			if !DebugEnable(optarg, config, stderr) {
				return 1
			}
		case 'L':
			options.LogFile = optarg
		case 'p':
			options.PostfixOnly = true
		case 'r':
			options.ReadPostfix = true
		case 't':
			options.Tool = ChooseTool(optarg)
			if options.Tool == nil {
				fmt.Fprintf(stderr, "calc: unknown tool '%s'\n", optarg)
				return 1
			}
		case 'q':
			config.Verbosity = QUIET
		case 'v':
			config.Verbosity = VERBOSE
		case 'V':
			fmt.Fprintf(stderr, "%s\n", kCalcVersion)
			return 0
		default: // case 'h':
			Usage(stderr)
			return 1
		}
	}
	if options.ReadPostfix && options.PostfixOnly {
		fmt.Fprintf(stderr, "calc: -p and -r cannot be combined\n")
		return int(ExitInterrupted)
	}
	return -1
}

// / Enable a debugging mode. Returns false if calc should exit instead
// / of continuing.
func DebugEnable(name string, config *Config, stderr io.Writer) bool {
	switch name {
	case "list":
		fmt.Fprintf(stderr, "debugging modes:\n"+
			"  stats        print per-phase timing statistics\n")
		return false
	case "stats":
		config.ShowStats = true
		return true
	}
	fmt.Fprintf(stderr, "calc: unknown debug setting '%s'\n", name)
	return false
}

// / Print usage information.
func Usage(w io.Writer) {
	fmt.Fprintf(w,
		"usage: calc [options] [expressions...]\n"+
			"\n"+
			"if no expressions are given, one expression per line is read from stdin.\n"+
			"\n"+
			"options:\n"+
			"  -V       print calc version (\"%s\")\n"+
			"  -v       verbose: echo expressions, point at errors\n"+
			"  -q       quiet: print results only\n"+
			"\n"+
			"  -p       print the postfix form only\n"+
			"  -r       read expressions in postfix form\n"+
			"  -L FILE  record evaluations in the log FILE\n"+
			"\n"+
			"  -d MODE  enable debugging (use '-d list' to list modes)\n"+
			"  -t TOOL  run a subtool (use '-t list' to list subtools)\n",
		kCalcVersion)
}
