package infra

import (
	"errors"

	"cancha-client/internal/pkg/errs"
)

type RemoteErrorKind string

// RemoteError is the single vocabulary every repository collapses transport
// failures into. Callers branch on Kind (and Status for HTTP), never on the
// underlying mechanics.
type RemoteError struct {
	Kind   RemoteErrorKind
	Status int // HTTP status, zero unless Kind is HTTP or Conflict
	msg    string
	err    error // wrapped low-level error
}

func (e RemoteError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	if e.err != nil {
		return e.err.Error()
	}
	return string(e.Kind)
}

func (e RemoteError) Unwrap() error {
	return e.err
}

func NewRemoteErr(kind RemoteErrorKind, status int, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RemoteError{Kind: kind, Status: status, msg: msg, err: err}
}

func IsKind(err error, kind RemoteErrorKind) bool {
	var e RemoteError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// StatusOf returns the HTTP status carried by err, or zero.
func StatusOf(err error) int {
	var e RemoteError
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// Message returns the user-facing message carried by err, or fallback when
// err carries none.
func Message(err error, fallback string) string {
	var e RemoteError
	if errors.As(err, &e) && e.msg != "" {
		return e.msg
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}

const (
	// KindValidation: a local precondition failed before any network call.
	KindValidation RemoteErrorKind = "VALIDATION"
	// KindNetwork: transport-level failure (timeout, unreachable).
	KindNetwork RemoteErrorKind = "NETWORK"
	// KindHTTP: the service answered with a non-success status.
	KindHTTP RemoteErrorKind = "HTTP"
	// KindConflict: reservation create rejected for an overlapping slot.
	KindConflict RemoteErrorKind = "CONFLICT"
	// KindDecode: success status but the required body was missing or unusable.
	KindDecode RemoteErrorKind = "DECODE"
)
