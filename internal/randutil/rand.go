// Package randutil provides the seeded pseudo-random generator consumed by
// every stochastic decision in the battle engine. All draws are a pure
// function of (seed, call sequence): two PRNGs constructed from the same
// seed and driven through the same call sequence produce identical results.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// PRNG is the single seeded generator used for every stochastic decision
// inside a battle. It wraps math/rand/v2's PCG source so the sequence is
// stable across Go versions, and tracks how many values it has produced so
// callers and tests can assert the fixed draw ordering required by §4.1.
type PRNG struct {
	src   *rand.PCG
	r     *rand.Rand
	seed  int64
	draws uint64
}

// New returns a *PRNG seeded deterministically from the provided int64. The
// helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *PRNG {
	u := uint64(seed)
	src := rand.NewPCG(mix(u), mix(u+goldenRatio64))
	return &PRNG{
		src:  src,
		r:    rand.New(src),
		seed: seed,
	}
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Seed returns the seed this PRNG was constructed from.
func (p *PRNG) Seed() int64 { return p.seed }

// Draws returns the number of values produced so far. Tests use this to
// assert the fixed consultation order within a turn without re-deriving it.
func (p *PRNG) Draws() uint64 { return p.draws }

// Next returns an integer in [0, bound). bound must be > 0.
func (p *PRNG) Next(bound int) int {
	if bound <= 0 {
		panic("randutil: Next bound must be > 0")
	}
	p.draws++
	return int(p.r.Uint64N(uint64(bound)))
}

// Chance returns true with probability num/den, consuming exactly one draw.
func (p *PRNG) Chance(num, den int) bool {
	if den <= 0 {
		panic("randutil: Chance den must be > 0")
	}
	return p.Next(den) < num
}

// RangeInclusive returns an integer in [lo, hi].
func (p *PRNG) RangeInclusive(lo, hi int) int {
	if hi < lo {
		panic("randutil: RangeInclusive hi < lo")
	}
	return lo + p.Next(hi-lo+1)
}

// Clone returns an independent copy of the PRNG, for speculative rollouts
// that must not perturb the original sequence. The underlying PCG state is
// snapshotted via its binary marshaler so the clone continues the exact
// same sequence the original would have produced.
func (p *PRNG) Clone() *PRNG {
	state, err := p.src.MarshalBinary()
	if err != nil {
		panic("randutil: PCG state marshal failed: " + err.Error())
	}
	clonedSrc := new(rand.PCG)
	if err := clonedSrc.UnmarshalBinary(state); err != nil {
		panic("randutil: PCG state unmarshal failed: " + err.Error())
	}
	return &PRNG{
		src:   clonedSrc,
		r:     rand.New(clonedSrc),
		seed:  p.seed,
		draws: p.draws,
	}
}
