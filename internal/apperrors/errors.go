package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDecode indicates that persisted or imported data could not be decoded.
// Lets callers tell a corrupt ledger apart from a legitimately empty one.
var ErrDecode = errors.New("decode error")

// ErrStorage indicates that the underlying store is unavailable or unwritable.
var ErrStorage = errors.New("storage error")
