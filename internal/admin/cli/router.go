package cli

import "strings"

const (
	RouteLogin        = "/login"
	RouteDashboard    = "/"
	RouteUsers        = "/users"
	RouteQRCodes      = "/qr-codes"
	RouteLandingPages = "/landing-pages"
	RouteAnalytics    = "/analytics"
)

var protectedRoutes = map[string]bool{
	RouteDashboard:    true,
	RouteUsers:        true,
	RouteQRCodes:      true,
	RouteLandingPages: true,
	RouteAnalytics:    true,
}

// resolveRoute maps a requested path to the route actually shown. Unknown
// paths go to the dashboard, protected routes need a session, and the login
// page is skipped when already signed in.
func resolveRoute(path string, authenticated bool) string {
	p := strings.TrimSpace(path)
	if p != "/" {
		p = strings.TrimRight(p, "/")
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	switch {
	case p == RouteLogin:
		if authenticated {
			return RouteDashboard
		}
		return RouteLogin
	case !protectedRoutes[p]:
		p = RouteDashboard
	}
	if !authenticated {
		return RouteLogin
	}
	return p
}
