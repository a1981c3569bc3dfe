package main

import (
	"fmt"
	"infix-calc-go/calc-go"
	"os"
	"os/signal"
	"syscall"
)

func TerminateHandler() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	s := <-quit
	fmt.Fprintln(os.Stderr, "calc: interrupted by", s)
	os.Exit(int(calc_go.ExitInterrupted))
}

func real_main() int {
	config := calc_go.NewConfig()
	options := calc_go.Options{}
	args := os.Args

	exit_code := calc_go.ReadFlags(&args, &options, &config, os.Stderr)
	if exit_code >= 0 {
		return exit_code
	}

	calc := calc_go.NewCalcMain(&config, &options, os.Stdout, os.Stderr)
	defer calc.Close()

	if options.Tool != nil {
		return options.Tool.Func(calc, args)
	}

	if err := calc.OpenEvalLog(); err != nil {
		calc.Status().Error("%v", err)
		return int(calc_go.ExitFailure)
	}

	var result int
	if len(args) > 0 {
		result = calc.RunExpressions(args)
	} else {
		result = calc.RunStream(os.Stdin)
	}
	calc.DumpMetrics(os.Stdout)
	return result
}

func main() {
	go TerminateHandler()
	os.Exit(real_main())
}
