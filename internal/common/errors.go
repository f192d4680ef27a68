// Package common defines shared constants and sentinel errors used across
// filedeck components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Service-error kinds. The file-service client maps transport
	// responses onto these sentinels so callers never match on
	// message text.
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation error")
	ErrTransient  = errors.New("transient error")
	ErrUnknown    = errors.New("unknown error")

	// Client-side availability errors.
	ErrUnavailable = errors.New("file service unavailable")
)
