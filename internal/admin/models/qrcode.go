package models

import "time"

type QRCode struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Owner       OwnerRef  `json:"userId"`
	ShortID     string    `json:"shortId"`
	ScanCount   int64     `json:"scanCount"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (q QRCode) EntityID() string    { return q.ID }
func (q QRCode) DisplayName() string { return q.Name }

type QRCodePatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func (p QRCodePatch) Validate() error {
	return requireNonEmpty("name", p.Name)
}

// QRAnalytics is the scan breakdown returned with a single QR code.
type QRAnalytics struct {
	TotalScans        int64    `json:"totalScans"`
	DeviceBreakdown   []Bucket `json:"deviceBreakdown"`
	LocationBreakdown []Bucket `json:"locationBreakdown"`
}

type QRCodeDetails struct {
	QRCode    QRCode      `json:"qrCode"`
	Analytics QRAnalytics `json:"analytics"`
}
