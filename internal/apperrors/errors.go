package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates an attempt to create a resource that already
// exists, such as re-registering an account identity hash or a currency code.
var ErrDuplicate = errors.New("resource already exists")
