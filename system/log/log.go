// Doost!

package log

import (
	"fmt"
	"io"
)

// Log is the op log of the wahl command. Quiet unless Verbose is called.
var Log func(string, ...interface{})

func init() {
	Quiet()
}

func quietLog() func(string, ...interface{}) {
	return func(string, ...interface{}) {}
}

func verboseLog(w io.Writer) func(string, ...interface{}) {
	return func(fmtstr string, a ...interface{}) {
		fmt.Fprintf(w, fmtstr+"\n", a...)
	}
}

// Verbose directs the op log to w.
func Verbose(w io.Writer) {
	Log = verboseLog(w)
}

// Quiet discards the op log.
func Quiet() {
	Log = quietLog()
}
