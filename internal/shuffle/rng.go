package shuffle

import (
	"log/slog"
	"math/rand/v2"
)

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n). n must be positive.
	Intn(n int) int
}

// coin flips a fair coin
func coin(rng RNG) bool {
	return rng.Intn(2) == 1
}

type randRNG struct {
	r *rand.Rand
}

func (r randRNG) Intn(n int) int { return r.r.IntN(n) }

// NewRNG returns a pseudo-random source seeded with seed
func NewRNG(seed uint64) RNG {
	return randRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type globalRNG struct{}

func (globalRNG) Intn(n int) int { return rand.IntN(n) }

// DefaultRNG returns the auto-seeded global source
func DefaultRNG() RNG {
	return globalRNG{}
}

// LoggingRNG logs every draw made through it at debug level.
type LoggingRNG struct {
	RNG    RNG
	Logger *slog.Logger
}

func (l LoggingRNG) Intn(n int) int {
	v := l.RNG.Intn(n)
	l.Logger.Debug("random draw", "range", n, "value", v)
	return v
}
