// Command satune-demo anneals a toy quadratic landscape with all three
// solvers and prints their final results, in the style of the teacher's
// examples/main.go runOptimization reporting.
package main

import (
	"context"
	"math"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cwbudde/satune"
)

// quadraticProblem searches for the x in [-50, 50] minimizing (x-7)^2,
// expressed as a Latency-type energy (smaller is better).
type quadraticProblem struct {
	rng *rand.Rand
}

func (q *quadraticProblem) InitialState() float64 {
	return 0
}

func (q *quadraticProblem) RandState() float64 {
	return q.rng.Float64()*100 - 50
}

func (q *quadraticProblem) NewState(current float64, maxSteps, step uint64) float64 {
	span := 10.0 * (1.0 - float64(step)/float64(maxSteps))
	delta := (q.rng.Float64()*2 - 1) * span
	next := current + delta
	if next < -50 {
		next = -50
	}
	if next > 50 {
		next = 50
	}
	return next
}

func (q *quadraticProblem) Energy(_ context.Context, state float64, _ int) (float64, bool) {
	return math.Pow(state-7, 2), true
}

func (q *quadraticProblem) NeighSpace(_ context.Context, state float64) []float64 {
	const n = 16
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, q.NewState(state, 1, 0))
	}
	return out
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	params := satune.TuningParameters{
		MinTemp: 0.01,
		MaxTemp: 100,
		MaxStep: 2000,
		Cooling: satune.Exponential,
		Energy:  satune.Latency,
	}
	if err := params.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid tuning parameters")
	}

	problem := &quadraticProblem{rng: rand.New(rand.NewSource(42))}
	ctx := context.Background()

	seqsa := satune.NewSEQSA[float64](params)
	seqsa.Logger = log.Logger
	runOptimization(ctx, "SEQSA", seqsa, problem, 1)

	mir := satune.NewMIR[float64](params)
	mir.Logger = log.Logger
	runOptimization(ctx, "MIR", mir, problem, 4)

	spis := satune.NewSPIS[float64](params)
	spis.Logger = log.Logger
	runOptimization(ctx, "SPIS", spis, problem, runtime.NumCPU())
}

func runOptimization(ctx context.Context, name string, solver satune.Solver[float64], problem satune.Problem[float64], workers int) {
	start := time.Now()
	result, err := solver.Solve(ctx, problem, workers)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Str("solver", name).Err(err).Msg("solve failed")
		return
	}
	log.Info().
		Str("solver", name).
		Float64("energy", result.Energy).
		Float64("state", result.State).
		Dur("elapsed", elapsed).
		Msg("solve complete")
}
