package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/qradmin/internal/admin/listing"
	"github.com/dmitrijs2005/qradmin/internal/admin/models"
)

// Rows are numbered from 1; the number is what edit, delete and view take.

func listFrame[T any](snap listing.Snapshot[T], what string, body func() string) string {
	var b strings.Builder
	switch {
	case snap.Status == listing.Failed && snap.Err != nil:
		b.WriteString(warningStyle.Render("Failed to load "+what+": "+snap.Err.Error()) + "\n")
	case snap.Status == listing.Loading:
		b.WriteString(mutedStyle.Render("Loading...") + "\n")
	}
	if len(snap.Items) == 0 {
		b.WriteString(emptyLine(what) + "\n")
	} else {
		b.WriteString(body() + "\n")
	}
	b.WriteString(pageFooter(snap.Criteria.Page, snap.TotalPages))
	return b.String()
}

func UsersTable(snap listing.Snapshot[models.User]) string {
	return listFrame(snap, "users", func() string {
		t := newTable("#", "User", "Email", "Role", "Status", "Joined")
		for i, u := range snap.Items {
			t.Row(strconv.Itoa(i+1), u.Name, u.Email, u.Role, activeLabel(u.IsActive), formatDate(u.CreatedAt))
		}
		return t.Render()
	})
}

func QRCodesTable(snap listing.Snapshot[models.QRCode]) string {
	return listFrame(snap, "QR codes", func() string {
		t := newTable("#", "QR Code", "Owner", "Short ID", "Scans", "Status", "Created")
		for i, q := range snap.Items {
			t.Row(strconv.Itoa(i+1), q.Name, q.Owner.Label(), q.ShortID,
				strconv.FormatInt(q.ScanCount, 10), activeLabel(q.IsActive), formatDate(q.CreatedAt))
		}
		return t.Render()
	})
}

func LandingPagesTable(snap listing.Snapshot[models.LandingPage]) string {
	return listFrame(snap, "landing pages", func() string {
		t := newTable("#", "Landing Page", "Owner", "Template", "Views", "Status", "AI", "Created")
		for i, l := range snap.Items {
			t.Row(strconv.Itoa(i+1), l.Name, l.Owner.Label(), l.Template,
				strconv.FormatInt(l.Views, 10), activeLabel(l.IsActive), yesNo(l.IsAIGenerated), formatDate(l.CreatedAt))
		}
		return t.Render()
	})
}

// DeleteWarning is the confirmation text shown before a delete.
func DeleteWarning(resource, name string) string {
	var consequence string
	switch resource {
	case "users":
		consequence = "This will also delete all their QR codes, landing pages, and analytics."
	case "qrCodes":
		consequence = "This will permanently remove all associated analytics data. This action cannot be undone."
	case "landingPages":
		consequence = "This action is irreversible and the page will stop working immediately."
	default:
		consequence = "This action cannot be undone."
	}
	return warningStyle.Render(fmt.Sprintf("Are you sure you want to delete %s?", name)) + "\n" + consequence
}
