package preview

import "math/rand/v2"

const ParticleCount = 10

// Particle is one floating decoration. Left and Top are percentages of the
// container, Size is in pixels and Delay in seconds.
type Particle struct {
	ID    int
	Size  float64
	Left  float64
	Top   float64
	Delay float64
}

// Particles lays out ParticleCount particles using rnd, so a seeded source
// gives a reproducible layout.
func Particles(rnd *rand.Rand) []Particle {
	out := make([]Particle, ParticleCount)
	for i := range out {
		out[i] = Particle{
			ID:    i,
			Size:  rnd.Float64()*60 + 20,
			Left:  rnd.Float64() * 100,
			Top:   rnd.Float64() * 100,
			Delay: rnd.Float64() * 6,
		}
	}
	return out
}
