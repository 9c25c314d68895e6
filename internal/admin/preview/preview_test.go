package preview

import (
	"math/rand/v2"
	"testing"

	"github.com/dmitrijs2005/qradmin/internal/admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShadeColor(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		percent float64
		want    string
	}{
		{"default darkened", "#1f2937", -20, "#000004"},
		{"lighten clamps at white", "#f0f0f0", 20, "#ffffff"},
		{"zero is identity", "#123abc", 0, "#123abc"},
		{"shorthand", "#fff", -20, "#cccccc"},
		{"no hash", "336699", 10, "#4d80b3"},
		{"rounds to nearest", "#000000", 0.2, "#010101"},
		{"negative rounds to nearest", "#101010", -1, "#0d0d0d"},
		{"invalid falls back to default", "not-a-color", -20, "#000004"},
		{"empty falls back to default", "", 0, "#1f2937"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShadeColor(tt.color, tt.percent))
		})
	}
}

func TestPaletteFor_Defaults(t *testing.T) {
	p := PaletteFor(models.Theme{})
	assert.Equal(t, Palette{
		Background:      "#1f2937",
		BackgroundDark:  "#000004",
		Text:            "#ffffff",
		ButtonColor:     "#ffffff",
		ButtonTextColor: "#000000",
	}, p)

	p = PaletteFor(models.Theme{BackgroundColor: "#336699", TextColor: "#eeeeee"})
	assert.Equal(t, "#336699", p.Background)
	assert.Equal(t, "#003366", p.BackgroundDark)
	assert.Equal(t, "#eeeeee", p.Text)
}

func TestParticles_RangesAndDeterminism(t *testing.T) {
	a := Particles(rand.New(rand.NewPCG(1, 2)))
	b := Particles(rand.New(rand.NewPCG(1, 2)))
	require.Len(t, a, ParticleCount)
	assert.Equal(t, a, b)

	for i, p := range a {
		assert.Equal(t, i, p.ID)
		assert.GreaterOrEqual(t, p.Size, 20.0)
		assert.Less(t, p.Size, 80.0)
		assert.GreaterOrEqual(t, p.Left, 0.0)
		assert.Less(t, p.Left, 100.0)
		assert.GreaterOrEqual(t, p.Top, 0.0)
		assert.Less(t, p.Top, 100.0)
		assert.GreaterOrEqual(t, p.Delay, 0.0)
		assert.Less(t, p.Delay, 6.0)
	}
}
