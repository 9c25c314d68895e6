package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/qradmin/internal/admin/models"
)

// Dashboard renders the overview page. analytics may be nil when that fetch
// was not made.
func Dashboard(stats models.DashboardStats, analytics *models.SystemAnalytics) string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Total Users", stats.Stats.TotalUsers),
		statCard("Active QR Codes", stats.Stats.TotalQRCodes),
		statCard("Published Pages", stats.Stats.TotalLandingPages),
		statCard("Total Scans", stats.Stats.TotalScans),
	)

	parts := []string{titleStyle.Render("Dashboard"), cards}

	scans := titleStyle.Render("Scan Performance") + "\n"
	if len(stats.ScansOverTime) == 0 {
		scans += mutedStyle.Render("No scans recorded")
	} else {
		t := newTable("Date", "Scans")
		for _, d := range stats.ScansOverTime {
			t.Row(d.Label(), strconv.FormatInt(d.Count, 10))
		}
		scans += t.Render()
	}
	parts = append(parts, scans)

	recentUsers := titleStyle.Render("Recent Users") + "\n"
	if len(stats.RecentUsers) == 0 {
		recentUsers += emptyLine("users")
	} else {
		t := newTable("Name", "Email", "Joined")
		for _, u := range stats.RecentUsers {
			t.Row(u.Name, u.Email, formatDate(u.CreatedAt))
		}
		recentUsers += t.Render()
	}

	recentQR := titleStyle.Render("Recent QR Codes") + "\n"
	if len(stats.RecentQRCodes) == 0 {
		recentQR += emptyLine("QR codes")
	} else {
		t := newTable("Name", "Owner", "Scans")
		for _, q := range stats.RecentQRCodes {
			t.Row(q.Name, q.Owner.Label(), strconv.FormatInt(q.ScanCount, 10))
		}
		recentQR += t.Render()
	}
	parts = append(parts, recentUsers, recentQR)

	if analytics != nil {
		parts = append(parts, bucketList("Device Types", analytics.DeviceBreakdown, 0, "No device data available"))
	}
	return strings.Join(parts, "\n\n")
}

// Analytics renders the system-wide breakdowns for the given range.
func Analytics(a models.SystemAnalytics, r models.DateRange) string {
	return strings.Join([]string{
		titleStyle.Render("Analytics") + "\n" + mutedStyle.Render(rangeLabel(r)),
		bucketList("Device Types", a.DeviceBreakdown, 0, "No device data available"),
		bucketList("Browsers", a.BrowserBreakdown, 0, "No browser data available"),
		bucketList("Top Locations", a.LocationBreakdown, 0, "No location data available"),
		bucketList("Operating Systems", a.OSBreakdown, 0, "No OS data available"),
	}, "\n\n")
}

func rangeLabel(r models.DateRange) string {
	start, end := "beginning", "today"
	if !r.Start.IsZero() {
		start = r.Start.Format(models.DateLayout)
	}
	if !r.End.IsZero() {
		end = r.End.Format(models.DateLayout)
	}
	return "From " + start + " to " + end
}
