package satune

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog"
)

// subsequentRejectThreshold is SEQSA's convergence short-circuit: once more
// than this many rejects have accumulated since the last improving accept
// (a probabilistic accept does not reset the count), the run terminates
// early (spec.md §4.3 step 6).
const subsequentRejectThreshold = 400

// SEQSA is the single-threaded Sequential Simulated Annealing solver.
// NumWorkers is ignored by Solve.
//
// Grounded on the teacher's mayfly.go Optimize main-loop shape (validate
// → initialize → bounded iteration loop → per-iteration schedule update)
// and annealing.go's acceptance functions.
type SEQSA[S any] struct {
	Params TuningParameters
	Emit   Emitter[S]
	Rand   *rand.Rand
	Logger zerolog.Logger
}

// NewSEQSA constructs a SEQSA solver with the given tuning parameters. A
// NopEmitter and an RNG with the fixed seed 1 are used if Emit/Rand are
// left nil.
func NewSEQSA[S any](params TuningParameters) *SEQSA[S] {
	return &SEQSA[S]{Params: params}
}

func (s *SEQSA[S]) emitter() Emitter[S] {
	if s.Emit == nil {
		return NopEmitter[S]{}
	}
	return s.Emit
}

func (s *SEQSA[S]) rng() *rand.Rand {
	if s.Rand == nil {
		return defaultRand()
	}
	return s.Rand
}

// Solve runs SEQSA to completion or until its convergence short-circuit
// fires. numWorkers is ignored: SEQSA is intrinsically single-threaded.
func (s *SEQSA[S]) Solve(ctx context.Context, problem Problem[S], numWorkers int) (MrResult[S], error) {
	if problem == nil {
		return MrResult[S]{}, ErrNilProblem
	}
	if err := s.Params.Validate(); err != nil {
		return MrResult[S]{}, err
	}

	rng := s.rng()
	emit := s.emitter()

	current := problem.InitialState()
	currentEnergy, ok := problem.Energy(ctx, current, 0)
	if !ok {
		return MrResult[S]{}, ErrInfeasibleInitial
	}

	temp := NewTemperature(s.Params)
	var accepted, subsequentRejected SharedCounter

	s.Logger.Info().
		Float64("max_temp", s.Params.MaxTemp).
		Uint64("max_step", s.Params.MaxStep).
		Msg("seqsa: starting")

	for step := uint64(0); step < s.Params.MaxStep; step++ {
		select {
		case <-ctx.Done():
			return MrResult[S]{Energy: currentEnergy, State: current, Found: true}, ctx.Err()
		default:
		}

		candidate := problem.NewState(current, s.Params.MaxStep, step)
		candEnergy, feasible := problem.Energy(ctx, candidate, 0)

		if feasible {
			accept, d := shouldAccept(s.Params.Energy, currentEnergy, candEnergy, temp.Get(), rng)
			if accept {
				current, currentEnergy = candidate, candEnergy
				accepted.Increment()
				if d > 0 {
					subsequentRejected.Reset()
				}
			} else {
				subsequentRejected.Increment()
			}
		}

		emit.SendUpdate(ctx, IntermediateResult[S]{
			Temperature:  temp.Get(),
			LastEnergy:   currentEnergy,
			LastState:    current,
			BestEnergy:   currentEnergy,
			BestState:    current,
			ElapsedSteps: step + 1,
			WorkerID:     0,
		})

		temp.Update(step)

		if subsequentRejected.Get() > subsequentRejectThreshold {
			s.Logger.Debug().Uint64("step", step).Msg("seqsa: convergence short-circuit")
			break
		}
	}

	s.Logger.Info().
		Float64("final_energy", currentEnergy).
		Uint64("accepted", accepted.Get()).
		Msg("seqsa: done")

	return MrResult[S]{Energy: currentEnergy, State: current, Found: true}, nil
}

func defaultRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}
