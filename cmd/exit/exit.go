// Doost!

package exit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// exit codes
const (
	EC_OK = iota
	EC_ERROR
	EC_USAGE
	EC_INTERRUPT
)

// ErrUsage marks command line errors. Wrap it to exit with EC_USAGE.
var ErrUsage = errors.New("usage")

// Code returns the exit code for the (command) error e.
func Code(e error) int {
	switch {
	case e == nil:
		return EC_OK
	case errors.Is(e, context.Canceled):
		return EC_INTERRUPT
	case errors.Is(e, ErrUsage):
		return EC_USAGE
	}
	return EC_ERROR
}

// On emits e to w, if not nil, and exits the process with the code for e.
func On(w io.Writer, e error) {
	var code = Code(e)
	switch code {
	case EC_OK:
	case EC_INTERRUPT:
		emit(w, "interrupt: %v", e)
	case EC_USAGE:
		emit(w, "usage: %v", e)
	default:
		emit(w, "err - %v", e)
	}
	os.Exit(code)
}

func emit(w io.Writer, fmtstr string, args ...interface{}) (int, error) {
	return fmt.Fprintf(w, fmtstr+"\n", args...)
}
