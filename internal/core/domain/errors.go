package domain

import (
	"errors"
	"net/http"
)

// Kind classifies a failure so the HTTP boundary can pick a status code
// without knowing which use case produced it.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindAuth
	KindTooManyRequests
)

// Status returns the HTTP status code associated with the kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindAuth:
		return http.StatusUnauthorized
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindAuth:
		return "auth"
	case KindTooManyRequests:
		return "too_many_requests"
	default:
		return "internal"
	}
}

// Error is the typed failure returned by every use case.
// Message is safe to show to clients; Err is the cause and is only logged.
type Error struct {
	Kind    Kind
	Message string
	Details []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches two *Error values by kind and message so sentinels below work
// with errors.Is even when a fresh copy carries extra details.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

func newError(kind Kind, msg string, err error, details ...string) *Error {
	return &Error{Kind: kind, Message: msg, Err: err, Details: details}
}

func Validation(msg string, details ...string) *Error {
	return newError(KindValidation, msg, nil, details...)
}

func Conflict(msg string) *Error { return newError(KindConflict, msg, nil) }

func NotFound(msg string) *Error { return newError(KindNotFound, msg, nil) }

// Unauthorized builds an auth failure. A non-nil cause is kept for logging
// and, for token verification failures, surfaced as the message detail.
func Unauthorized(msg string, err error) *Error { return newError(KindAuth, msg, err) }

func TooManyRequests(msg string) *Error { return newError(KindTooManyRequests, msg, nil) }

func Internal(msg string, err error) *Error { return newError(KindInternal, msg, err) }

// KindOf reports the kind carried by err, defaulting to KindInternal for
// anything that is not a *Error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

var (
	ErrFieldsRequired       = Validation("All fields are required")
	ErrIdentifierRequired   = Validation("username or email is required")
	ErrUserExists           = Conflict("user with email or username already exists")
	ErrUserNotFound         = NotFound("user does not exist")
	ErrInvalidCredentials   = Unauthorized("invalid user credentials", nil)
	ErrUnauthorizedRequest  = Unauthorized("unauthorized request", nil)
	ErrInvalidRefreshToken  = Unauthorized("invalid refresh token", nil)
	ErrRefreshTokenReused   = Unauthorized("refresh token is expired or used", nil)
	ErrInvalidAccessToken   = Unauthorized("invalid access token", nil)
	ErrTooManyLoginAttempts = TooManyRequests("too many login attempts, try again later")
	ErrGameExists           = Conflict("game with this title already exists")
)
