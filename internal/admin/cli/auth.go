package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/qradmin/internal/common"
)

const sessionTimeLayout = "2006-01-02 15:04"

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for email and password and opens a session. Only admins
// are let in; on success the dashboard is shown. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		a.println("Already logged in.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	p, err := a.session.Login(ctx, email, password)
	if err != nil {
		a.logger.Info(ctx, "login failed", "user", email, "error", err)
		// here a 401 means bad credentials, not an expired session
		if errors.Is(err, common.ErrUnauthorized) {
			a.println("Invalid email or password.")
			return err
		}
		a.println(errorMessage(err))
		return err
	}

	a.println("Welcome, " + p.Name + "!")
	return a.Navigate(ctx, RouteDashboard)
}

// Logout ends the session and returns to the login route.
func (a *App) Logout(ctx context.Context) error {
	err := a.session.Logout(ctx)
	a.route = RouteLogin
	if err != nil {
		a.logger.Error(ctx, "logout failed to clear credential", "error", err)
		return err
	}
	a.println("Logged out.")
	return nil
}

// WhoAmI prints the signed-in admin.
func (a *App) WhoAmI(ctx context.Context) error {
	p, ok := a.session.Principal()
	if !ok {
		a.println("Not logged in.")
		return nil
	}
	a.println(p.Name + " <" + p.Email + "> (" + p.Role + ")")
	if at, ok := a.session.SignedInAt(); ok {
		a.println("Signed in: " + at.Local().Format(sessionTimeLayout))
	}
	if at, ok := a.session.ExpiresAt(); ok {
		a.println("Session expires: " + at.Local().Format(sessionTimeLayout))
	}
	return nil
}
