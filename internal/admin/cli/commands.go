package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/qradmin/internal/common"
)

// Navigate resolves path, makes it the current route and shows it.
func (a *App) Navigate(ctx context.Context, path string) error {
	a.route = resolveRoute(path, a.isLoggedIn())

	switch a.route {
	case RouteLogin:
		a.println("Please log in (type 'login').")
		return nil
	case RouteDashboard:
		return a.showDashboard(ctx)
	case RouteAnalytics:
		return a.showAnalytics(ctx)
	}
	if s := a.currentScreen(); s != nil {
		return s.show(ctx)
	}
	return nil
}

// withScreen runs fn against the current list screen, or explains that the
// command needs one.
func (a *App) withScreen(fn func(s screen) error) error {
	s := a.currentScreen()
	if s == nil {
		a.println("This command works on " + RouteUsers + ", " + RouteQRCodes + " and " + RouteLandingPages + ".")
		return nil
	}
	return fn(s)
}

func (a *App) Refresh(ctx context.Context) error {
	switch a.currentRoute() {
	case RouteDashboard:
		return a.showDashboard(ctx)
	case RouteAnalytics:
		return a.showAnalytics(ctx)
	}
	return a.withScreen(func(s screen) error { return s.show(ctx) })
}

func (a *App) Search(ctx context.Context, text string) error {
	return a.withScreen(func(s screen) error { return s.search(ctx, text) })
}

// Filter sets key to value; "-" or a missing value removes the filter.
func (a *App) Filter(ctx context.Context, key, value string) error {
	if value == clearValue {
		value = ""
	}
	return a.withScreen(func(s screen) error {
		if key == "" {
			a.println("Usage: filter <" + strings.Join(s.filters(), "|") + "> [value]")
			return nil
		}
		return s.filter(ctx, key, value)
	})
}

func (a *App) Page(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return a.report(ctx, fmt.Errorf("%w: page must be a number", common.ErrValidation))
	}
	return a.withScreen(func(s screen) error { return s.page(ctx, n) })
}

func (a *App) Next(ctx context.Context) error {
	return a.withScreen(func(s screen) error { return s.next(ctx) })
}

func (a *App) Prev(ctx context.Context) error {
	return a.withScreen(func(s screen) error { return s.prev(ctx) })
}

func (a *App) Edit(ctx context.Context, row string) error {
	return a.withScreen(func(s screen) error { return s.edit(ctx, row) })
}

func (a *App) Delete(ctx context.Context, row string) error {
	return a.withScreen(func(s screen) error { return s.remove(ctx, row) })
}

func (a *App) View(ctx context.Context, row string) error {
	return a.withScreen(func(s screen) error { return s.view(ctx, row) })
}
