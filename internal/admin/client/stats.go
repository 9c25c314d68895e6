package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/qradmin/internal/admin/models"
)

func (c *HTTPClient) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.call(ctx, http.MethodGet, "/admin/dashboard/stats", nil, nil, true, &stats); err != nil {
		return stats, fmt.Errorf("dashboard stats: %w", err)
	}
	return stats, nil
}

// Analytics fetches system-wide breakdowns, optionally bounded by r.
func (c *HTTPClient) Analytics(ctx context.Context, r models.DateRange) (models.SystemAnalytics, error) {
	q := url.Values{}
	if !r.Start.IsZero() {
		q.Set("startDate", r.Start.Format(models.DateLayout))
	}
	if !r.End.IsZero() {
		q.Set("endDate", r.End.Format(models.DateLayout))
	}
	var out models.SystemAnalytics
	if err := c.call(ctx, http.MethodGet, "/admin/analytics", q, nil, true, &out); err != nil {
		return out, fmt.Errorf("analytics: %w", err)
	}
	return out, nil
}

// QRCodeDetails fetches a QR code together with its scan breakdown.
func (c *HTTPClient) QRCodeDetails(ctx context.Context, id string) (models.QRCodeDetails, error) {
	var out models.QRCodeDetails
	path := QRCodesResource.Path + "/" + url.PathEscape(id)
	if err := c.call(ctx, http.MethodGet, path, nil, nil, true, &out); err != nil {
		return out, fmt.Errorf("qr code details %s: %w", id, err)
	}
	return out, nil
}
