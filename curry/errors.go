package curry

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned by Curry, CurryDefault and Reflect
	// when they are given something that cannot be curried.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotReady is returned by Result when the call produced
	// another partial application rather than a final value.
	ErrNotReady = errors.New("not enough arguments")
)

// The following errors are produced when arguments are bound to a
// Signature. They are always wrapped in an *ArgumentError.
var (
	ErrMissingArgument    = errors.New("missing required argument")
	ErrUnexpectedArgument = errors.New("unexpected keyword argument")
	ErrDuplicateArgument  = errors.New("multiple values for argument")
	ErrTooManyArguments   = errors.New("too many positional arguments")
	ErrArgumentType       = errors.New("argument has wrong type")
)

// ArgumentError describes a failure to bind or convert an argument
// for a call to the named function.
type ArgumentError struct {
	// Func holds the name of the function being called.
	Func string
	// Param holds the parameter concerned; for ErrMissingArgument
	// it may hold several comma-separated names.
	Param string
	// Detail optionally holds more information.
	Detail string
	Err    error
}

func (e *ArgumentError) Error() string {
	msg := e.Err.Error()
	if e.Param != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Param)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Func != "" {
		msg = e.Func + ": " + msg
	}
	return msg
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
