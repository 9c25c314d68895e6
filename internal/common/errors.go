package common

import "errors"

// Error kinds shared by the REST client, the session store and the list
// controllers. Callers match them with errors.Is; the client wraps them in
// an *APIError that carries the HTTP status and server message.
var (
	// session invalid or expired; always forces logout
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// form-level problems, reported inline
	ErrValidation = errors.New("validation error")

	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	// transport failures and timeouts
	ErrNetwork = errors.New("network error")
	ErrServer  = errors.New("server error")

	// a login that succeeded for a non-admin principal
	ErrAdminRequired = errors.New("access denied: admin privileges required")
)
