// Doost!

package errors

import (
	stdlib "errors"
	"fmt"
)

/// defined generic errors /////////////////////////////////////////////////////

var (
	ErrInvalidArg = Error("invalid argument")
)

/// defined bitmap errors //////////////////////////////////////////////////////

var (
	// ErrRange: a literal pattern or run count does not fit its field.
	ErrRange = Error("value out of range")
	// ErrDomain: run-only accessor applied to a literal element.
	ErrDomain = Error("not defined for element kind")
)

/// defined generic bugs ///////////////////////////////////////////////////////

var (
	// ErrInvariant is raised (panic) on malformed internal state.
	ErrInvariant = Bug("invariant violation")
)

/// function specific errors ///////////////////////////////////////////////////

type fnErrors string

func For(fname string) Errors {
	return fnErrors(fname)
}
func (fn fnErrors) InvalidArg(fs string, a ...interface{}) error {
	return Wrap(ErrInvalidArg, string(fn)+": "+fs, a...)
}
func (fn fnErrors) Range(fs string, a ...interface{}) error {
	return Wrap(ErrRange, string(fn)+": "+fs, a...)
}
func (fn fnErrors) Domain(fs string, a ...interface{}) error {
	return Wrap(ErrDomain, string(fn)+": "+fs, a...)
}
func (fn fnErrors) Invariant(fs string, a ...interface{}) error {
	return Wrap(ErrInvariant, string(fn)+": "+fs, a...)
}
func (fn fnErrors) Bug(fs string, a ...interface{}) error { return Bug(string(fn)+": "+fs, a...) }
func (fn fnErrors) ErrorWithCause(e error, fs string, a ...interface{}) error {
	return ErrorWithCause(e, string(fn)+": "+fs, a...)
}

type Errors interface {
	InvalidArg(fmtstr string, a ...interface{}) error
	Range(fmtstr string, a ...interface{}) error
	Domain(fmtstr string, a ...interface{}) error
	Invariant(fmtstr string, a ...interface{}) error
	Bug(fmtstr string, a ...interface{}) error
	ErrorWithCause(e error, fmtstr string, a ...interface{}) error
}

/// err/bug uniform formatters /////////////////////////////////////////////////

func Error(fmtstr string, a ...interface{}) error {
	return fmterr("err", fmtstr, a...)
}

func Bug(fmtstr string, a ...interface{}) error {
	return fmterr("bug", fmtstr, a...)
}

func ErrorWithCause(e error, fmtstr string, a ...interface{}) error {
	return fmterr("err", fmtstr+" - cause: %w", append(a, e)...)
}

// Wrap qualifies the defined error 'kind' with detail. The result
// matches kind under Is.
func Wrap(kind error, fmtstr string, a ...interface{}) error {
	return fmt.Errorf("%w - "+fmtstr, append([]interface{}{kind}, a...)...)
}

// Is is errors.Is of the std-lib, here to spare importers the alias.
func Is(e, target error) bool { return stdlib.Is(e, target) }

func fmterr(what, fmtstr string, a ...interface{}) error {
	return fmt.Errorf(what+": "+fmtstr, a...)
}
