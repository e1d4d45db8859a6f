package satune

import "math"

// Cooler computes temperature as a function of step (Linear, Exponential)
// or of the prior temperature (BasicExp), parameterized by the bounds and
// horizon fixed at construction.
//
// This generalizes the teacher's AnnealingScheduler.Update dispatch: Linear
// and Exponential are closed-form functions of the step index, while
// BasicExp is the teacher's own exponential decay (T' = T * alpha), kept
// stateful because it depends on the prior temperature rather than the
// step.
type Cooler struct {
	maxSteps uint64
	minTemp  float64
	maxTemp  float64
	alpha    float64 // only used by BasicExp
}

// NewCooler builds a Cooler for the given TuningParameters.
func NewCooler(p TuningParameters) Cooler {
	return Cooler{
		maxSteps: p.MaxStep,
		minTemp:  p.MinTemp,
		maxTemp:  p.MaxTemp,
		alpha:    p.BasicExpAlpha,
	}
}

// Linear computes T(s) = max_temp - (max_temp - min_temp) * s / max_steps.
func (c Cooler) Linear(step uint64) float64 {
	frac := float64(step) / float64(c.maxSteps)
	return c.maxTemp - (c.maxTemp-c.minTemp)*frac
}

// Exponential computes T(s) = max_temp * (min_temp/max_temp)^(s/max_steps).
func (c Cooler) Exponential(step uint64) float64 {
	frac := float64(step) / float64(c.maxSteps)
	return c.maxTemp * math.Pow(c.minTemp/c.maxTemp, frac)
}

// BasicExp computes the next temperature from the current one: T' = T * alpha.
// Unlike Linear and Exponential it ignores the step index entirely.
func (c Cooler) BasicExp(current float64) float64 {
	return current * c.alpha
}
