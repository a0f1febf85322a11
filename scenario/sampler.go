package scenario

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0,
// mirroring tsp/rng.go's rngFromSeed policy.
const defaultSeed int64 = 1

// ScenarioSampler produces S independent Scenario tuples from a caller seed
// (spec.md §4.2). Scenarios are pure data with no graph dependency and are
// shared across every edge within a single solve.
type ScenarioSampler struct {
	base *rand.Rand
}

// NewScenarioSampler constructs a sampler seeded deterministically. seed==0
// falls back to a fixed default seed rather than a time-based source, so
// an unseeded call is still reproducible.
func NewScenarioSampler(seed int64) *ScenarioSampler {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return &ScenarioSampler{base: rand.New(rand.NewSource(s))}
}

// Sample returns n independently-derived Scenario values. Each scenario is
// generated from its own RNG substream (deriveRNG-style SplitMix64
// derivation) keyed by its index, so on two samplers built from the same
// seed, Sample(50) returns exactly the first 50 elements Sample(100)
// returns. Each call draws from the sampler's base stream, so repeated
// calls on one sampler return different scenarios.
func (s *ScenarioSampler) Sample(n int) []Scenario {
	out := make([]Scenario, n)
	for i := 0; i < n; i++ {
		r := deriveRNG(s.base, uint64(i))
		out[i] = Scenario{
			VisibilityMult: visibilityMultMin + r.Float64()*(visibilityMultMax-visibilityMultMin),
			DetectionMult:  detectionMultMin + r.Float64()*(detectionMultMax-detectionMultMin),
			PatrolPresence: patrolPresenceLevels[r.Intn(len(patrolPresenceLevels))],
		}
	}

	return out
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style avalanche mix, adapted verbatim from
// tsp/rng.go's deriveSeed (same constants, same rationale: strong bit
// diffusion so small index changes never correlate).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic RNG stream from base and a
// stream identifier, adapted from tsp/rng.go's deriveRNG.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := base.Int63()

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
