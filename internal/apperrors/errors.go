package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the acting user is not in the required approver
// set for the operation, or that login credentials could not be verified.
var ErrUnauthorized = errors.New("not authorized")

// ErrForbidden indicates that the authenticated user's role does not permit the operation.
var ErrForbidden = errors.New("forbidden")
