package satune

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// mirRejectThreshold bounds a single MIR chain: it stops once its own
// subsequent-reject counter (reset on every improving accept) exceeds
// this, independent of every other chain (spec.md §4.4).
const mirRejectThreshold = 300

// MIR is the Multiple Independent Runs solver: numWorkers independent
// annealing chains, each seeded from its own state and RNG, reduced to the
// single best result at the end.
//
// Grounded on niceyeti-tabular/tabular/server/fastview/client.go's
// errgroup.WithContext + group.Go + group.Wait fan-out/join pattern, with
// counters and pools supplied by this package's own primitives rather than
// the teacher (which has no concurrency of its own).
type MIR[S any] struct {
	Params TuningParameters
	Emit   Emitter[S]
	Seed   int64
	Logger zerolog.Logger
}

// NewMIR constructs a MIR solver with the given tuning parameters.
func NewMIR[S any](params TuningParameters) *MIR[S] {
	return &MIR[S]{Params: params, Seed: 1}
}

func (m *MIR[S]) emitter() Emitter[S] {
	if m.Emit == nil {
		return NopEmitter[S]{}
	}
	return m.Emit
}

// Solve spawns numWorkers independent chains and returns the best of their
// final results.
func (m *MIR[S]) Solve(ctx context.Context, problem Problem[S], numWorkers int) (MrResult[S], error) {
	if problem == nil {
		return MrResult[S]{}, ErrNilProblem
	}
	if numWorkers < 1 {
		return MrResult[S]{}, ErrInvalidWorkers
	}
	if err := m.Params.Validate(); err != nil {
		return MrResult[S]{}, err
	}

	seeds := NewStatesPool[S](problem.InitialState())
	for i := 1; i < numWorkers; i++ {
		seeds.Push(problem.RandState())
	}

	m.Logger.Info().
		Int("num_workers", numWorkers).
		Uint64("max_step", m.Params.MaxStep).
		Msg("mir: starting")

	results := &ThreadsResults[S]{}
	emit := m.emitter()

	group, gctx := errgroup.WithContext(ctx)
	for w := 0; w < numWorkers; w++ {
		workerID := w
		seed, ok := seeds.RemoveOne()
		if !ok {
			break
		}
		group.Go(func() (err error) {
			defer recoverWorkerPanic(workerID, &err)
			r := m.runChain(gctx, problem, workerID, seed, emit)
			results.Push(r)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return MrResult[S]{}, err
	}

	best, found := reduceBest(m.Params.Energy, results.Drain())
	if !found {
		return MrResult[S]{}, ErrEmptyResults
	}

	m.Logger.Info().Float64("final_energy", best.Energy).Msg("mir: done")
	return best, nil
}

// runChain executes a single independent annealing chain until it exceeds
// max_step or accumulates more than mirRejectThreshold consecutive-eligible
// rejects, returning its own final (energy, state).
func (m *MIR[S]) runChain(ctx context.Context, problem Problem[S], workerID int, current S, emit Emitter[S]) MrResult[S] {
	rng := rand.New(rand.NewSource(m.Seed + int64(workerID)))
	temp := NewTemperature(m.Params)

	currentEnergy, ok := problem.Energy(ctx, current, workerID)
	if !ok {
		return MrResult[S]{Energy: 0, State: current, Found: false}
	}

	var rejected SharedCounter

	for step := uint64(0); step <= m.Params.MaxStep; step++ {
		if rejected.Get() > mirRejectThreshold {
			break
		}
		select {
		case <-ctx.Done():
			return MrResult[S]{Energy: currentEnergy, State: current, Found: true}
		default:
		}

		candidate := problem.NewState(current, m.Params.MaxStep, step)
		candEnergy, feasible := problem.Energy(ctx, candidate, workerID)
		if feasible {
			accept, d := shouldAccept(m.Params.Energy, currentEnergy, candEnergy, temp.Get(), rng)
			if accept {
				current, currentEnergy = candidate, candEnergy
				if d > 0 {
					rejected.Reset()
				}
			} else {
				rejected.Increment()
			}
		}

		emit.SendUpdate(ctx, IntermediateResult[S]{
			Temperature:  temp.Get(),
			LastEnergy:   currentEnergy,
			LastState:    current,
			BestEnergy:   currentEnergy,
			BestState:    current,
			ElapsedSteps: step + 1,
			WorkerID:     workerID,
		})

		temp.Update(step)
	}

	return MrResult[S]{Energy: currentEnergy, State: current, Found: true}
}
