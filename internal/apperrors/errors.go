package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates that the backend refused the request with a
// 401/403. Outside the auth endpoints this tears down the current session.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRejected indicates a business rejection from the backend (a 4xx with a
// message body). The backend message must be surfaced verbatim to the caller.
var ErrRejected = errors.New("rejected by backend")

// RejectionError carries the backend's own rejection message so the portal
// can surface it verbatim. It matches ErrRejected under errors.Is.
type RejectionError struct {
	Msg string
}

func (e *RejectionError) Error() string { return e.Msg }

func (e *RejectionError) Is(target error) bool { return target == ErrRejected }
