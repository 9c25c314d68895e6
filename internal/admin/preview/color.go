// Package preview computes the presentation values of a landing page
// preview: its colour palette and the decorative particle layout.
package preview

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/qradmin/internal/admin/models"
)

const (
	DefaultBackground      = "#1f2937"
	DefaultText            = "#ffffff"
	DefaultButtonColor     = "#ffffff"
	DefaultButtonTextColor = "#000000"

	// darkenPercent is the shade applied to the background for the
	// second gradient stop.
	darkenPercent = -20
)

// parseHex accepts #rrggbb and #rgb, with or without the leading '#'.
func parseHex(color string) (r, g, b int, ok bool) {
	s := strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(n >> 16), int(n >> 8 & 0xff), int(n & 0xff), true
}

func clampChannel(v int) int {
	return min(255, max(0, v))
}

// ShadeColor lightens (percent > 0) or darkens (percent < 0) a hex colour by
// adding round(2.55*percent) to each channel, clamped to [0,255]. Halves
// round up, so -0.5 becomes 0. An unparseable colour is shaded from
// DefaultBackground.
func ShadeColor(color string, percent float64) string {
	r, g, b, ok := parseHex(color)
	if !ok {
		r, g, b, _ = parseHex(DefaultBackground)
	}
	amt := int(math.Floor(2.55*percent + 0.5))
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(r+amt), clampChannel(g+amt), clampChannel(b+amt))
}

// Palette is the set of colours a landing page renders with.
type Palette struct {
	Background      string
	BackgroundDark  string
	Text            string
	ButtonColor     string
	ButtonTextColor string
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func PaletteFor(t models.Theme) Palette {
	bg := orDefault(t.BackgroundColor, DefaultBackground)
	return Palette{
		Background:      bg,
		BackgroundDark:  ShadeColor(bg, darkenPercent),
		Text:            orDefault(t.TextColor, DefaultText),
		ButtonColor:     orDefault(t.ButtonColor, DefaultButtonColor),
		ButtonTextColor: orDefault(t.ButtonTextColor, DefaultButtonTextColor),
	}
}
