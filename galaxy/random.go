package galaxy

import "math/rand/v2"

// Random is the only source of randomness the galaxy draws from. *rand.Rand
// satisfies it.
type Random interface {
	Float64() float64
}

// NewRandom returns a deterministic source for seed.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newEntropyRandom() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
