package models

import (
	"fmt"
	"time"
)

// Bucket is one row of an aggregation: a category label and its count.
type Bucket struct {
	ID    string `json:"_id"`
	Count int64  `json:"count"`
}

func (b Bucket) Label() string {
	if b.ID == "" {
		return "Unknown"
	}
	return b.ID
}

type Totals struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalQRCodes      int64 `json:"totalQRCodes"`
	TotalLandingPages int64 `json:"totalLandingPages"`
	TotalScans        int64 `json:"totalScans"`
}

type DailyScans struct {
	Day struct {
		Month int `json:"month"`
		Day   int `json:"day"`
	} `json:"_id"`
	Count int64 `json:"count"`
}

func (d DailyScans) Label() string {
	return fmt.Sprintf("%d/%d", d.Day.Month, d.Day.Day)
}

type DashboardStats struct {
	Stats         Totals       `json:"stats"`
	ScansOverTime []DailyScans `json:"scansOverTime"`
	RecentUsers   []User       `json:"recentUsers"`
	RecentQRCodes []QRCode     `json:"recentQRCodes"`
}

type SystemAnalytics struct {
	DeviceBreakdown   []Bucket `json:"deviceBreakdown"`
	BrowserBreakdown  []Bucket `json:"browserBreakdown"`
	LocationBreakdown []Bucket `json:"locationBreakdown"`
	OSBreakdown       []Bucket `json:"osBreakdown"`
}

// DateRange bounds the analytics query. Zero times are omitted.
type DateRange struct {
	Start time.Time
	End   time.Time
}

const DateLayout = "2006-01-02"

// ParseDateRange parses two optional YYYY-MM-DD values.
func ParseDateRange(start, end string) (DateRange, error) {
	var r DateRange
	if start != "" {
		t, err := time.Parse(DateLayout, start)
		if err != nil {
			return r, validationErr("start date %q: expected YYYY-MM-DD", start)
		}
		r.Start = t
	}
	if end != "" {
		t, err := time.Parse(DateLayout, end)
		if err != nil {
			return r, validationErr("end date %q: expected YYYY-MM-DD", end)
		}
		r.End = t
	}
	if !r.Start.IsZero() && !r.End.IsZero() && r.End.Before(r.Start) {
		return r, validationErr("end date is before start date")
	}
	return r, nil
}
