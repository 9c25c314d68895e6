package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/qradmin/internal/admin/client"
	"github.com/dmitrijs2005/qradmin/internal/admin/listing"
	"github.com/dmitrijs2005/qradmin/internal/common"
)

// errorMessage turns an error into the line shown to the user.
func errorMessage(err error) string {
	var apiErr *client.APIError
	detail := err.Error()
	if errors.As(err, &apiErr) {
		detail = apiErr.Message
	}

	switch {
	case errors.Is(err, common.ErrAdminRequired):
		return "Access denied. Admin privileges required."
	case errors.Is(err, common.ErrUnauthorized):
		return "Session expired. Please log in again."
	case errors.Is(err, common.ErrForbidden):
		return "Access denied: " + detail
	case errors.Is(err, common.ErrValidation):
		return "Invalid input: " + detail
	case errors.Is(err, common.ErrNotFound):
		return "Not found: " + detail
	case errors.Is(err, common.ErrConflict):
		return "Conflict: " + detail
	case errors.Is(err, common.ErrNetwork), errors.Is(err, common.ErrServer):
		return "Something went wrong. Please try again."
	case errors.Is(err, listing.ErrNoSelection):
		return "Nothing selected."
	}
	return "Error: " + detail
}

// report prints err for the user and logs it. Stale-page errors are silent;
// an unauthorized error also moves the console to /login.
func (a *App) report(ctx context.Context, err error) error {
	if err == nil || errors.Is(err, listing.ErrSuperseded) {
		return nil
	}
	a.logger.Debug(ctx, "command failed", "error", err)
	a.println(errorMessage(err))
	if errors.Is(err, common.ErrUnauthorized) {
		a.route = RouteLogin
	}
	return err
}
