package client

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/qradmin/internal/common"
)

// APIError describes a failed API call.
type APIError struct {
	// Kind is one of the common.Err* sentinels.
	Kind      error
	Status    int
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// kindForStatus maps an HTTP status to an error kind.
func kindForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return common.ErrUnauthorized
	case status == http.StatusForbidden:
		return common.ErrForbidden
	case status == http.StatusNotFound:
		return common.ErrNotFound
	case status == http.StatusConflict:
		return common.ErrConflict
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return common.ErrValidation
	default:
		return common.ErrServer
	}
}
