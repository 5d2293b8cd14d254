package apperr

import "errors"

// NotAuthenticated is returned when no session user id is available.
// Fatal for the attempted operation; recoverable only by logging in again.
var NotAuthenticated = errors.New("not authenticated")

// NotFound indicates that the requested delivery does not exist.
var NotFound = errors.New("not found")

// Invalid is returned when the input fails domain validation.
var Invalid = errors.New("invalid input")

// IncompleteProof is returned when a confirmation is attempted before
// all proof fields and the photo are in place. No backend call is made.
var IncompleteProof = errors.New("incomplete proof")

// Unavailable indicates a transport-level failure talking to the
// backend: timeout, network loss, or an unexpected response status.
var Unavailable = errors.New("backend unavailable")
