package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/qradmin/internal/admin/models"
)

const topLocations = 5

func bucketList(title string, buckets []models.Bucket, limit int, empty string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")
	if len(buckets) == 0 {
		b.WriteString(mutedStyle.Render(empty))
		return b.String()
	}
	if limit > 0 && len(buckets) > limit {
		buckets = buckets[:limit]
	}
	t := newTable("Name", "Count")
	for _, bk := range buckets {
		t.Row(bk.Label(), strconv.FormatInt(bk.Count, 10))
	}
	b.WriteString(t.Render())
	return b.String()
}

// QRCodeDetail renders the scan analysis of one QR code.
func QRCodeDetail(d models.QRCodeDetails) string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render("Total Scans\n"+strconv.FormatInt(d.Analytics.TotalScans, 10)),
		cardStyle.Render("Short ID\n"+d.QRCode.ShortID),
		cardStyle.Render("Owner\n"+d.QRCode.Owner.Label()),
	)

	return strings.Join([]string{
		titleStyle.Render("QR Analysis: " + d.QRCode.Name),
		cards,
		bucketList("Device Breakdown", d.Analytics.DeviceBreakdown, 0, "No device data available"),
		bucketList("Top Locations", d.Analytics.LocationBreakdown, topLocations, "No location data available"),
	}, "\n\n")
}

func statCard(title string, v int64) string {
	return cardStyle.Render(fmt.Sprintf("%s\n%d", title, v))
}
