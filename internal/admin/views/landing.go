package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/qradmin/internal/admin/models"
	"github.com/dmitrijs2005/qradmin/internal/admin/preview"
)

const (
	fieldWidth  = 48
	fieldHeight = 6
)

// particleField plots particles on a fieldWidth x fieldHeight grid; larger
// particles get a heavier glyph.
func particleField(ps []preview.Particle) []string {
	grid := make([][]rune, fieldHeight)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", fieldWidth))
	}
	for _, p := range ps {
		x := min(int(p.Left/100*fieldWidth), fieldWidth-1)
		y := min(int(p.Top/100*fieldHeight), fieldHeight-1)
		glyph := '·'
		if p.Size >= 50 {
			glyph = 'o'
		}
		grid[y][x] = glyph
	}
	lines := make([]string, fieldHeight)
	for i, row := range grid {
		lines[i] = string(row)
	}
	return lines
}

// LandingPreview renders a landing page the way a visitor would see it:
// a two-stop background built from the page colour and a darker shade of it,
// floating particles, then image, title, subtitle, description, call to
// action and sections.
func LandingPreview(lp models.LandingPage, particles []preview.Particle) string {
	pal := preview.PaletteFor(lp.Theme)

	top := lipgloss.NewStyle().Background(lipgloss.Color(pal.Background)).Foreground(lipgloss.Color(pal.Text))
	bottom := lipgloss.NewStyle().Background(lipgloss.Color(pal.BackgroundDark)).Foreground(lipgloss.Color(pal.Text))
	center := lipgloss.NewStyle().Width(fieldWidth).Align(lipgloss.Center)

	var body []string
	for i, line := range particleField(particles) {
		st := top
		if i >= fieldHeight/2 {
			st = bottom
		}
		body = append(body, st.Render(line))
	}

	if lp.Image != "" {
		body = append(body, center.Render("[image] "+lp.Image))
	}
	body = append(body, center.Bold(true).Render(lp.Title))
	if lp.Subtitle != "" {
		body = append(body, center.Render(lp.Subtitle))
	}
	if lp.Description != "" {
		body = append(body, center.Faint(true).Render(lp.Description))
	}
	if lp.ButtonText != "" {
		btn := lipgloss.NewStyle().
			Background(lipgloss.Color(pal.ButtonColor)).
			Foreground(lipgloss.Color(pal.ButtonTextColor)).
			Bold(true).Padding(0, 3).
			Render(lp.ButtonText)
		line := center.Render(btn)
		if lp.ButtonLink != "" {
			line += "\n" + center.Render(mutedStyle.Render("-> "+lp.ButtonLink))
		}
		body = append(body, line)
	}
	for _, s := range lp.Sections {
		body = append(body, cardStyle.Width(fieldWidth-2).Render(s.Content))
	}

	header := titleStyle.Render("Preview: "+lp.Name) + "\n" +
		mutedStyle.Render("background "+pal.Background+" -> "+pal.BackgroundDark+", text "+pal.Text)

	return header + "\n\n" + strings.Join(body, "\n")
}
