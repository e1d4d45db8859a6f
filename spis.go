package satune

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// spisGlobalRejectLimit is the per-round early-exit threshold shared by
// every worker: once the round's global reject count reaches this, idle
// workers stop pulling from the pool rather than exhaust it (spec.md §4.5).
const spisGlobalRejectLimit = 50

// SPIS is the Simultaneous Periodically Interacting Searchers solver: a master state drives
// successive rounds, each round's neighborhood is drained by a fixed crew
// of workers that each seed their own intensifying chain from the round's
// master and judge every candidate against their own evolving (state,
// energy), and the round's best worker result becomes the next master.
//
// Grounded on niceyeti-tabular/tabular/server/fastview/client.go's
// errgroup fan-out/join shape, reused here for a worker crew that drains a
// shared NeighborhoodsPool instead of holding a fixed per-worker chain.
type SPIS[S any] struct {
	Params TuningParameters
	Emit   Emitter[S]
	Seed   int64
	Logger zerolog.Logger
}

// NewSPIS constructs an SPIS solver with the given tuning parameters.
func NewSPIS[S any](params TuningParameters) *SPIS[S] {
	return &SPIS[S]{Params: params, Seed: 1}
}

func (s *SPIS[S]) emitter() Emitter[S] {
	if s.Emit == nil {
		return NopEmitter[S]{}
	}
	return s.Emit
}

// Solve runs successive master/worker rounds until the global elapsed-step
// counter passes max_step. numWorkers is the fixed crew size per round; the
// per-core design intent (spec.md §4.5) is realized by passing
// runtime.NumCPU() as numWorkers.
func (s *SPIS[S]) Solve(ctx context.Context, problem Problem[S], numWorkers int) (MrResult[S], error) {
	if problem == nil {
		return MrResult[S]{}, ErrNilProblem
	}
	if numWorkers < 1 {
		return MrResult[S]{}, ErrInvalidWorkers
	}
	if err := s.Params.Validate(); err != nil {
		return MrResult[S]{}, err
	}

	master := problem.InitialState()
	masterEnergy, ok := problem.Energy(ctx, master, 0)
	if !ok {
		return MrResult[S]{}, ErrInfeasibleInitial
	}

	temp := NewTemperature(s.Params)
	var elapsedSteps, accepted, rejected SharedCounter
	emit := s.emitter()

	s.Logger.Info().
		Int("num_workers", numWorkers).
		Uint64("max_step", s.Params.MaxStep).
		Msg("spis: starting")

	for round := 0; elapsedSteps.Get() <= s.Params.MaxStep; round++ {
		neighbors := problem.NeighSpace(ctx, master)
		if len(neighbors) == 0 {
			break
		}
		pool := NewNeighborhoodsPool(neighbors)
		roundResults := &ThreadsResults[S]{}
		rejected.Reset()

		roundMaster, roundMasterEnergy := master, masterEnergy

		group, gctx := errgroup.WithContext(ctx)
		for w := 0; w < numWorkers; w++ {
			workerID := w
			group.Go(func() (err error) {
				defer recoverWorkerPanic(workerID, &err)
				rng := rand.New(rand.NewSource(s.Seed + int64(round)*int64(numWorkers) + int64(workerID)))

				// Each worker runs its own intensifying chain, seeded from
				// the round's master and judged against its own evolving
				// (state, energy) rather than the fixed master (spec.md
				// §4.5 step 2).
				workerState, workerEnergy := roundMaster, roundMasterEnergy

				for {
					if rejected.Get() >= spisGlobalRejectLimit {
						break
					}
					if elapsedSteps.Get() > s.Params.MaxStep {
						break
					}
					select {
					case <-gctx.Done():
						return nil
					default:
					}

					cand, found := pool.RemoveOne()
					if !found {
						break
					}

					step := elapsedSteps.Increment()
					lastEnergy, lastState := workerEnergy, workerState
					candEnergy, feasible := problem.Energy(gctx, cand, workerID)
					if feasible {
						lastEnergy, lastState = candEnergy, cand
						accept, _ := shouldAccept(s.Params.Energy, workerEnergy, candEnergy, temp.Get(), rng)
						if accept {
							workerState, workerEnergy = cand, candEnergy
							accepted.Increment()
							rejected.Reset()
						} else {
							rejected.Increment()
						}
					}

					emit.SendUpdate(gctx, IntermediateResult[S]{
						Temperature:  temp.Get(),
						LastEnergy:   lastEnergy,
						LastState:    lastState,
						BestEnergy:   workerEnergy,
						BestState:    workerState,
						ElapsedSteps: step,
						WorkerID:     workerID,
					})

					temp.Update(step)
				}

				roundResults.Push(MrResult[S]{Energy: workerEnergy, State: workerState, Found: true})
				return nil
			})
		}

		if err := group.Wait(); err != nil {
			return MrResult[S]{}, err
		}

		if winner, found := reduceBest(s.Params.Energy, roundResults.Drain()); found {
			master, masterEnergy = winner.State, winner.Energy
		}

		s.Logger.Debug().
			Int("round", round).
			Uint64("elapsed_steps", elapsedSteps.Get()).
			Float64("master_energy", masterEnergy).
			Msg("spis: round complete")
	}

	s.Logger.Info().
		Float64("final_energy", masterEnergy).
		Uint64("accepted", accepted.Get()).
		Msg("spis: done")

	return MrResult[S]{Energy: masterEnergy, State: master, Found: true}, nil
}
