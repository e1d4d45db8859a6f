package satune

import (
	"math"
	"math/rand"
)

// delta returns the signed energy change such that delta > 0 always means
// "improvement", normalizing Throughput (larger is better) and Latency
// (smaller is better) to the same sign convention (spec.md §4.2 step 1).
func delta(energyType EnergyType, current, candidate float64) float64 {
	d := candidate - current
	if energyType == Latency {
		d = -d
	}
	return d
}

// acceptanceProbability returns the Metropolis acceptance probability in
// (0,1] for a non-improving delta (delta <= 0), or 1 for an improving one.
//
// Generalizes the teacher's acceptanceProbability (annealing.go), which
// only ever minimized a single cost; here delta is already signed so that
// positive always means improvement, regardless of Throughput/Latency.
func acceptanceProbability(deltaVal, temperature float64) float64 {
	if deltaVal > 0 {
		return 1.0
	}
	return math.Exp(deltaVal / temperature)
}

// shouldAccept applies the Metropolis criterion: unconditional accept on
// improvement, probabilistic accept otherwise via a uniform draw from rng.
func shouldAccept(energyType EnergyType, current, candidate, temperature float64, rng *rand.Rand) (accept bool, deltaVal float64) {
	deltaVal = delta(energyType, current, candidate)
	if deltaVal > 0 {
		return true, deltaVal
	}
	p := acceptanceProbability(deltaVal, temperature)
	return rng.Float64() <= p, deltaVal
}
