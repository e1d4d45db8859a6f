package satune

import (
	"context"
	"math/rand"
	"sync"
)

// testProblem is a minimal, configurable Problem[int] double used across
// this package's unit and integration tests. State is an int representing
// a position on a 1-D line; NewState/NeighSpace walk it by small steps.
type testProblem struct {
	mu sync.Mutex

	initial  int
	energies map[int]float64 // optional fixed energy table
	energyFn func(state int) (float64, bool)
	neighN   int
	calls    int // number of Energy invocations, for assertions
}

func newTestProblem(initial int, energyFn func(int) (float64, bool)) *testProblem {
	return &testProblem{initial: initial, energyFn: energyFn, neighN: 8}
}

func (p *testProblem) InitialState() int { return p.initial }

func (p *testProblem) RandState() int { return p.initial + rand.Intn(21) - 10 }

func (p *testProblem) NewState(current int, maxSteps, step uint64) int {
	if current%2 == 0 {
		return current + 1
	}
	return current - 1
}

func (p *testProblem) Energy(_ context.Context, state int, _ int) (float64, bool) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	return p.energyFn(state)
}

func (p *testProblem) NeighSpace(_ context.Context, state int) []int {
	out := make([]int, 0, p.neighN)
	for i := 0; i < p.neighN; i++ {
		out = append(out, state+i-p.neighN/2)
	}
	return out
}

func (p *testProblem) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// alwaysFeasible returns an Energy function mapping state to its own
// float64 value, always feasible: useful for Latency-minimization tests
// where the state value doubles as its cost.
func alwaysFeasible(state int) (float64, bool) {
	return float64(state), true
}

// constantEnergy returns an Energy function that ignores state entirely.
func constantEnergy(v float64) func(int) (float64, bool) {
	return func(int) (float64, bool) { return v, true }
}

// neverFeasible reports every state as infeasible.
func neverFeasible(int) (float64, bool) {
	return 0, false
}

// maxSource is a math/rand.Source whose Float64() draws are always just
// under 1.0, so shouldAccept's u <= p comparison fails for any p < 1: it
// deterministically forces every non-improving draw to reject.
type maxSource struct{}

func (maxSource) Int63() int64 { return 1<<63 - 1<<10 }
func (maxSource) Seed(int64)   {}

func alwaysRejectRand() *rand.Rand { return rand.New(maxSource{}) }

// minSource is the inverse of maxSource: Float64() always draws 0, so
// shouldAccept's u <= p comparison succeeds for any p > 0.
type minSource struct{}

func (minSource) Int63() int64 { return 0 }
func (minSource) Seed(int64)   {}

func alwaysAcceptRand() *rand.Rand { return rand.New(minSource{}) }

// recordingEmitter collects every IntermediateResult sent to it.
type recordingEmitter[S any] struct {
	mu      sync.Mutex
	records []IntermediateResult[S]
}

func (e *recordingEmitter[S]) SendUpdate(_ context.Context, r IntermediateResult[S]) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.records = append(e.records, r)
}

func (e *recordingEmitter[S]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.records)
}
