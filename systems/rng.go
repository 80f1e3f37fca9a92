package systems

// RNG is the randomness source used by every spawn rule.
// *rand.Rand satisfies it; tests supply fixed sequences.
type RNG interface {
	Float32() float32
}

// uniform draws from [lo, hi).
func uniform(rng RNG, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

// signed returns v or -v with equal probability.
func signed(rng RNG, v float32) float32 {
	if rng.Float32() < 0.5 {
		return -v
	}
	return v
}
