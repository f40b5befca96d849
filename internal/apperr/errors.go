// Package apperr defines the error taxonomy shared by services, repositories
// and the HTTP layer. Callers classify failures with errors.Is against the
// sentinels; anything that matches none of them is treated as unexpected.
package apperr

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrConcurrencyConflict = errors.New("concurrent update detected")
)
