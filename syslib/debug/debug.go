// Doost!

package debug

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Debug output is off while Writer is nil. Set by the wahl command's
// --debug flag (stderr), or by tests.
var Writer io.Writer

// source paths are emitted relative to the module root.
const modroot = "wahl/"

type Printer interface {
	Printf(string, ...interface{})
}

type fnPrinter string

// For returns a Printer that prefixes output with fname.
func For(fname string) Printer { return fnPrinter(fname) }
func (v fnPrinter) Printf(fmtstr string, a ...interface{}) {
	printf(2, string(v)+": "+fmtstr, a...)
}

func Printf(fmtstr string, a ...interface{}) {
	printf(2, fmtstr, a...)
}

// Enabled is a guard for debug output that is costly to compute.
func Enabled() bool { return Writer != nil }

func printf(level int, fmtstr string, a ...interface{}) {
	if Writer == nil {
		return
	}
	var prefix = "debug: "
	if _, file, line, ok := runtime.Caller(level); ok {
		if cpx := strings.LastIndex(file, modroot); cpx >= 0 {
			file = file[cpx+len(modroot):]
		}
		prefix = fmt.Sprintf("debug [%s:%d]: ", file, line)
	}
	fmt.Fprintf(Writer, prefix+fmtstr+"\n", a...)
}
