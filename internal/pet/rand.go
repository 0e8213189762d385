package pet

import "math/rand/v2"

// Rand is the randomness source for the illness draw.
type Rand interface {
	// Intn returns a uniform int in [0, n). n > 0.
	Intn(n int) int
}

type pcgRand struct {
	r *rand.Rand
}

// NewRand returns a Rand backed by a PCG generator seeded with seed.
func NewRand(seed uint64) Rand {
	return &pcgRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *pcgRand) Intn(n int) int {
	return p.r.IntN(n)
}

// illnessDraw returns a uniform int in [0, IllnessDrawMax].
func illnessDraw(r Rand) int {
	return r.Intn(IllnessDrawMax + 1)
}
