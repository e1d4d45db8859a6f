package satune

import (
	"math"
	"sync/atomic"
)

// Temperature is a shareable, mutable temperature cell driven by a Cooler
// and a schedule tag. Concurrent readers observe a recent but not
// necessarily linearized value: in SPIS every worker calls Update with the
// global elapsed-step count during a round, so the temperature one worker
// reads may already reflect another worker's later step.
//
// Grounded on niceyeti-tabular/atomic_helpers/atomic_float.go's
// CAS-loop float atomics, modernized to the typed sync/atomic API.
type Temperature struct {
	bits     atomic.Uint64
	cooler   Cooler
	schedule CoolingSchedule
}

// NewTemperature creates a Temperature cell starting at MaxTemp.
func NewTemperature(p TuningParameters) *Temperature {
	t := &Temperature{
		cooler:   NewCooler(p),
		schedule: p.Cooling,
	}
	t.bits.Store(math.Float64bits(p.MaxTemp))
	return t
}

// Get returns the current temperature without modifying it.
func (t *Temperature) Get() float64 {
	return math.Float64frombits(t.bits.Load())
}

// Update advances the temperature to step's value per the configured
// schedule. BasicExp instead reads the current value and decays it.
func (t *Temperature) Update(step uint64) {
	var next float64
	switch t.schedule {
	case Linear:
		next = t.cooler.Linear(step)
	case Exponential:
		next = t.cooler.Exponential(step)
	case BasicExp:
		next = t.cooler.BasicExp(t.Get())
	default:
		next = t.cooler.Linear(step)
	}
	t.bits.Store(math.Float64bits(next))
}
