package live

import (
	"errors"
	"fmt"
)

// Kind identifies the category of a failure surfaced by an adapter or helper.
type Kind uint8

const (
	// KindNotFound means the room does not exist or the platform cannot resolve it.
	KindNotFound Kind = iota + 1
	// KindNetwork means the upstream platform could not be reached.
	KindNetwork
	// KindParse means the upstream response did not have the expected shape.
	KindParse
	// KindType means a Url was asserted to be of a format it does not have.
	KindType
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindNetwork:
		return "network"
	case KindParse:
		return "parse"
	case KindType:
		return "type"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Error is the failure type of the Live contract.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Sentinels usable with errors.Is; each matches every *Error of the same Kind.
var (
	ErrNotFound = &Error{Kind: KindNotFound}
	ErrNetwork  = &Error{Kind: KindNetwork}
	ErrParse    = &Error{Kind: KindParse}
	ErrType     = &Error{Kind: KindType}
)

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf extracts the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// NotFound returns a KindNotFound error.
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Network returns a KindNetwork error caused by err.
func Network(err error, format string, args ...any) error {
	return &Error{Kind: KindNetwork, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Parse returns a KindParse error caused by err, which may be nil.
func Parse(err error, format string, args ...any) error {
	return &Error{Kind: KindParse, Msg: fmt.Sprintf(format, args...), Err: err}
}

// TypeMismatch returns a KindType error for a Url expected to be of format want.
func TypeMismatch(want, got Format) error {
	return &Error{Kind: KindType, Msg: fmt.Sprintf("format mismatch: want %s, got %s", want, got)}
}
