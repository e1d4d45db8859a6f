// Package satune implements the core of a parallel simulated-annealing
// auto-tuner: a family of stochastic optimization engines that search a
// discrete parameter space of a user-supplied Problem to maximize
// throughput (or minimize latency).
//
// Three interchangeable solver strategies are provided, all built on the
// same Metropolis acceptance criterion atop a temperature schedule:
//
//   - SEQSA: single-threaded annealing with subsequent-rejection convergence.
//   - MIR: multiple independent annealing chains, best-of reduction.
//   - SPIS: simultaneous periodically interacting searchers, sharing a
//     neighborhood pool across per-round workers.
//
// The Problem abstraction (state generator and energy oracle), the
// results emitter, CLI front-ends, configuration parsing, and progress-bar
// rendering are external collaborators; satune supplies the Problem and
// Emitter contracts plus the solvers and their shared concurrency
// primitives.
package satune
