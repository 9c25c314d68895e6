package models

import "time"

// Theme is the visual configuration of a landing page. The API sends these
// fields flat on the landing page object.
type Theme struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	Image           string `json:"image,omitempty"`
	ButtonText      string `json:"buttonText,omitempty"`
	ButtonLink      string `json:"buttonLink,omitempty"`
	ButtonColor     string `json:"buttonColor,omitempty"`
	ButtonTextColor string `json:"buttonTextColor,omitempty"`
}

type Section struct {
	Content string `json:"content"`
}

type LandingPage struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle"`
	Description   string   `json:"description"`
	Owner         OwnerRef `json:"userId"`
	Template      string   `json:"template"`
	Views         int64    `json:"views"`
	IsActive      bool     `json:"isActive"`
	IsAIGenerated bool     `json:"isAIGenerated"`
	Theme
	Sections  []Section `json:"sections"`
	CreatedAt time.Time `json:"createdAt"`
}

func (l LandingPage) EntityID() string    { return l.ID }
func (l LandingPage) DisplayName() string { return l.Name }

type LandingPagePatch struct {
	Name        *string `json:"name,omitempty"`
	Title       *string `json:"title,omitempty"`
	Subtitle    *string `json:"subtitle,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func (p LandingPagePatch) Validate() error {
	if err := requireNonEmpty("name", p.Name); err != nil {
		return err
	}
	return requireNonEmpty("title", p.Title)
}
