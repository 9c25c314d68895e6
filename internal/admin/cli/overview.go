package cli

import (
	"context"

	"github.com/dmitrijs2005/qradmin/internal/admin/models"
	"github.com/dmitrijs2005/qradmin/internal/admin/views"
	"golang.org/x/sync/errgroup"
)

// showDashboard fetches stats and the device analytics together.
func (a *App) showDashboard(ctx context.Context) error {
	var (
		stats     models.DashboardStats
		analytics models.SystemAnalytics
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = a.stats.DashboardStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		analytics, err = a.stats.Analytics(gctx, models.DateRange{})
		return err
	})
	if err := g.Wait(); err != nil {
		return a.report(ctx, err)
	}

	a.println(views.Dashboard(stats, &analytics))
	return nil
}

func (a *App) showAnalytics(ctx context.Context) error {
	res, err := a.stats.Analytics(ctx, a.dates)
	if err != nil {
		return a.report(ctx, err)
	}
	a.println(views.Analytics(res, a.dates))
	return nil
}

// Range sets the analytics date range; "-" or "" leaves a bound open.
func (a *App) Range(ctx context.Context, start, end string) error {
	if start == clearValue {
		start = ""
	}
	if end == clearValue {
		end = ""
	}
	r, err := models.ParseDateRange(start, end)
	if err != nil {
		return a.report(ctx, err)
	}
	a.dates = r
	return a.Navigate(ctx, RouteAnalytics)
}
