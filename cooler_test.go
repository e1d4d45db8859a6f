package satune

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoolerLinearEndpoints(t *testing.T) {
	c := NewCooler(TuningParameters{MinTemp: 1, MaxTemp: 100, MaxStep: 1000})

	require.InDelta(t, 100.0, c.Linear(0), 1e-9)
	require.InDelta(t, 1.0, c.Linear(1000), 1e-9)
	require.InDelta(t, 50.5, c.Linear(500), 1e-9)
}

func TestCoolerLinearMonotoneDecreasing(t *testing.T) {
	c := NewCooler(TuningParameters{MinTemp: 1, MaxTemp: 100, MaxStep: 1000})

	prev := c.Linear(0)
	for step := uint64(1); step <= 1000; step += 37 {
		cur := c.Linear(step)
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestCoolerExponentialEndpoints(t *testing.T) {
	c := NewCooler(TuningParameters{MinTemp: 1, MaxTemp: 100, MaxStep: 1000})

	require.InDelta(t, 100.0, c.Exponential(0), 1e-9)
	require.InDelta(t, 1.0, c.Exponential(1000), 1e-9)
}

func TestCoolerExponentialMonotoneDecreasing(t *testing.T) {
	c := NewCooler(TuningParameters{MinTemp: 1, MaxTemp: 100, MaxStep: 1000})

	prev := c.Exponential(0)
	for step := uint64(1); step <= 1000; step += 37 {
		cur := c.Exponential(step)
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestCoolerBasicExpDecaysByAlpha(t *testing.T) {
	c := NewCooler(TuningParameters{MinTemp: 0.1, MaxTemp: 100, MaxStep: 1000, BasicExpAlpha: 0.9})

	require.InDelta(t, 90.0, c.BasicExp(100), 1e-9)
	require.InDelta(t, 81.0, c.BasicExp(90), 1e-9)
}

func TestTemperatureUpdateDispatchesBySchedule(t *testing.T) {
	p := TuningParameters{MinTemp: 1, MaxTemp: 100, MaxStep: 100, Cooling: Linear}
	temp := NewTemperature(p)
	require.InDelta(t, 100.0, temp.Get(), 1e-9)

	temp.Update(100)
	require.InDelta(t, 1.0, temp.Get(), 1e-9)
}

func TestTemperatureBasicExpReadsPriorValue(t *testing.T) {
	p := TuningParameters{MinTemp: 0.1, MaxTemp: 100, MaxStep: 100, Cooling: BasicExp, BasicExpAlpha: 0.5}
	temp := NewTemperature(p)

	temp.Update(0)
	require.InDelta(t, 50.0, temp.Get(), 1e-9)
	temp.Update(1)
	require.InDelta(t, 25.0, temp.Get(), 1e-9)
}
