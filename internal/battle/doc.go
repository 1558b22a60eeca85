// Package battle implements the deterministic, replayable turn-based battle
// engine: the Pokémon record, battle state, damage pipeline, target
// resolver, action scheduler, turn executor, residuals engine, forced-switch
// loop, event log, and the engine facade that ties them together.
//
// # Determinism
//
// Every stochastic decision is drawn from a single seeded *randutil.PRNG in
// the fixed order documented on ExecuteTurn. Two engines constructed with
// the same seed, the same teams, and fed the same sequence of choices
// produce byte-identical state transitions and identical event logs.
//
// # Basic usage
//
//	reg := data.Builtin()
//	eng, err := battle.NewEngine(reg, battle.Format{Slots: 1, TeamSize: 6})
//	obs := eng.Reset(42, nil, battle.Format{}, teamA, teamB)
//	...
//	result, err := eng.Step(choices, pick)
//
// # Architecture
//
// Engine delegates to focused per-concern files in this package:
//   - State: the two-sided battle state (state.go)
//   - Scheduler: priority/speed ordering of submitted choices (scheduler.go)
//   - Executor: per-action resolution (executor.go)
//   - Damage pipeline: ordered-modifier damage calculation (damage.go)
//   - Residuals: end-of-turn upkeep (residuals.go)
//   - Forced switches: faint-queue draining (switches.go)
//   - Event log: append-only structured record (events.go)
package battle
