package calc_go

import (
	"fmt"
	"io"
	"os"
)

type LinePrinter struct {
	/// Whether we can use ISO 6429 (ANSI) color sequences.
	supports_color_ bool

	out_ io.Writer
	err_ io.Writer
}

// isatty reports whether w is a character device such as a terminal.
func isatty(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}

func NewLinePrinter(out, err io.Writer) *LinePrinter {
	ret := LinePrinter{out_: out, err_: err}
	term := os.Getenv("TERM")
	ret.supports_color_ = isatty(out) && term != "" && term != "dumb"
	if !ret.supports_color_ {
		clicolor_force := os.Getenv("CLICOLOR_FORCE")
		ret.supports_color_ = clicolor_force != "" && clicolor_force != "0"
	}
	return &ret
}

func (this *LinePrinter) supports_color() bool { return this.supports_color_ }

// / Print a line to standard output.
func (this *LinePrinter) PrintLine(to_print string) {
	fmt.Fprintln(this.out_, to_print)
}

// / Print a line to the error stream.
func (this *LinePrinter) PrintError(to_print string) {
	fmt.Fprintln(this.err_, to_print)
}
