package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the account's tier does not grant the requested feature.
var ErrForbidden = errors.New("feature not available on current tier")

// ErrQuotaExceeded indicates the account's monthly usage allowance is spent.
var ErrQuotaExceeded = errors.New("monthly usage quota exceeded")
