// Package client is the console's view of the platform REST API.
//
// # Overview
//
// HTTPClient owns the transport: it resolves paths against the configured
// base URL, attaches the bearer token read from a TokenSource, stamps every
// call with an X-Request-ID, unwraps the {success,message,data} envelope and
// maps HTTP statuses to the error kinds in package common.
//
// Collection is the typed, paged view over one resource family (users,
// QR codes, landing pages): List, GetByID, Update, Delete. List/detail
// endpoints for dashboard statistics and system analytics live on
// HTTPClient directly.
//
// # Error Handling
//
// Every failure is an *APIError whose Unwrap returns one of
// common.ErrUnauthorized, ErrForbidden, ErrValidation, ErrNotFound,
// ErrConflict, ErrNetwork or ErrServer. A 401 on an authenticated call runs
// the hook registered with OnUnauthorized exactly once and is not retried.
// The login call itself is unauthenticated: a 401 there means bad
// credentials and does not run the hook.
//
// # Concurrency
//
// HTTPClient and Collection are safe for concurrent use. The token is read,
// never written.
package client
