package argot

import (
	"errors"
	"fmt"
)

// Sentinel values classifying the user-input failures that ParseArgs can
// return. Match them with errors.Is; the message carried by the ParseError
// wrapper is what an application should show the user.
var (
	ErrUnknownOption         = errors.New("unknown option")
	ErrDuplicateOption       = errors.New("duplicate option")
	ErrMissingArgument       = errors.New("missing argument")
	ErrInvalidNumericLiteral = errors.New("invalid numeric literal")
	ErrEmptyValue            = errors.New("empty value")
	ErrTypeMismatch          = errors.New("type mismatch")
	ErrUnknownCommand        = errors.New("unknown command")
	ErrMissingHelpTarget     = errors.New("missing help target")
)

// ParseError reports invalid user input encountered while parsing. It wraps
// one of the sentinel classification values above.
type ParseError struct {
	sentinel error
	msg      string
}

func (e *ParseError) Error() string { return e.msg }

func (e *ParseError) Unwrap() error { return e.sentinel }

func parseErrorf(sentinel error, format string, args ...any) *ParseError {
	return &ParseError{sentinel: sentinel, msg: fmt.Sprintf(format, args...)}
}

// HelpRequest is returned from ParseArgs when the input asked for help text,
// either via the automatic --help option or the 'help <command>' command.
// The caller is expected to print Text and exit successfully.
type HelpRequest struct {
	Text string
}

func (e *HelpRequest) Error() string { return "help requested" }

// VersionRequest is returned from ParseArgs when the input asked for the
// version string via the automatic --version option. The caller is expected
// to print Version and exit successfully.
type VersionRequest struct {
	Version string
}

func (e *VersionRequest) Error() string { return "version requested" }

// APIError reports a library contract violation by the hosting application,
// such as reading an alias that was never registered. These are raised as
// panics at the offending call site rather than returned as user-facing
// errors, since they indicate a misconfigured parser, not bad input.
type APIError struct {
	msg string
}

func (e *APIError) Error() string { return e.msg }

func apiPanic(format string, args ...any) {
	panic(&APIError{msg: fmt.Sprintf(format, args...)})
}
