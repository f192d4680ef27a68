package client

import (
	"fmt"
	"net/http"

	"github.com/filedeck/filedeck/internal/common"
)

// kindForStatus maps an HTTP status code to a structured error kind.
func kindForStatus(status int) error {
	switch {
	case status == http.StatusNotFound:
		return common.ErrNotFound
	case status == http.StatusForbidden || status == http.StatusUnauthorized:
		return common.ErrForbidden
	case status == http.StatusBadRequest ||
		status == http.StatusRequestEntityTooLarge ||
		status == http.StatusUnprocessableEntity:
		return common.ErrValidation
	case status == http.StatusRequestTimeout ||
		status == http.StatusTooManyRequests ||
		status >= 500:
		return common.ErrTransient
	default:
		return common.ErrUnknown
	}
}

// statusError builds an error matching the right sentinel via errors.Is
// while preserving the server's message for display.
func statusError(status int, serverMsg string) error {
	kind := kindForStatus(status)
	if serverMsg == "" {
		return fmt.Errorf("%w: HTTP %d", kind, status)
	}
	return fmt.Errorf("%w: %s", kind, serverMsg)
}
