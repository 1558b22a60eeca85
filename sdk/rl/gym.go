package rl

import (
	"github.com/dougwinr/vgcsim/internal/battle"
	"github.com/dougwinr/vgcsim/internal/data"
)

// Env is a gym-style Reset/Step adapter over battle.Engine, the shape
// most RL training loops expect (OpenAI Gym/Gymnasium's env.reset()/
// env.step(action) contract) instead of the engine's own two-sided,
// slot-addressed Step. Env pins one side as "the agent" and drives the
// other side with a fixed opponent policy supplied at construction.
type Env struct {
	Registry *data.Registry
	Format   battle.Format
	Opponent ActionFunc

	engine *battle.Engine
	side   int
	obs    [2]battle.Observation
}

// ActionFunc selects a Choice for one active slot given the current
// observation and legal-action list, matching sdk.Agent.Decide's shape
// without importing the sdk package (keeping this adapter usable from
// training code that has no reason to depend on the rest of the SDK).
type ActionFunc func(obs battle.Observation, legal []battle.Choice) battle.Choice

// NewEnv constructs an Env with the agent pinned to side (0 or 1).
func NewEnv(reg *data.Registry, format battle.Format, side int, opponent ActionFunc) *Env {
	return &Env{Registry: reg, Format: format, Opponent: opponent, side: side}
}

// Reset starts a fresh battle from seed and returns the agent-side
// observation and its legal actions for slot 0, the gym "initial
// observation" step.
func (env *Env) Reset(seed int64, teamA, teamB []*battle.Pokemon) (battle.Observation, []battle.Choice) {
	e, err := battle.NewEngine(env.Registry, env.Format)
	if err != nil {
		panic(err)
	}
	env.engine = e
	env.obs = e.Reset(seed, env.Registry, env.Format, teamA, teamB)
	return env.obs[env.side], e.LegalActions(env.side, 0)
}

// StepResult is the gym-style tuple: next observation, reward, done, and
// an info map, mirroring battle.StepResult but collapsed to the one side
// the training loop cares about.
type StepResult struct {
	Observation battle.Observation
	Reward      float64
	Done        bool
	Info        map[string]any
}

// Step applies action for the agent's slot 0, drives the opponent side
// (and any other agent-side active slots, via Opponent as a fallback
// policy) with Opponent, and advances the engine one turn. Forced
// switches are resolved automatically by picking the first available
// bench Pokémon, so a training loop never has to special-case the
// fainted-and-must-switch branch of the turn loop.
func (env *Env) Step(action battle.Choice) (StepResult, error) {
	e := env.engine
	agentChoices := env.driveSide(env.side, env.obs[env.side], true, action)
	oppChoices := env.driveSide(1-env.side, env.obs[1-env.side], false, battle.Choice{})

	choices := map[int][]battle.Choice{
		env.side:     agentChoices,
		1 - env.side: oppChoices,
	}
	result, err := e.Step(choices, env.defaultPick)
	if err != nil {
		return StepResult{}, err
	}
	env.obs = result.Observations
	return StepResult{
		Observation: result.Observations[env.side],
		Reward:      result.Rewards[env.side],
		Done:        result.Done,
		Info:        result.Info,
	}, nil
}

// driveSide builds one side's per-slot choice list. Slot 0 on the
// agent's own side takes forceSlotZero's explicit action verbatim
// (Step's one action parameter only ever targets slot 0); every other
// active slot, on either side, is filled by Opponent as the fallback
// policy, so doubles formats still get a choice per active Pokémon.
func (env *Env) driveSide(side int, obs battle.Observation, forceSlotZero bool, forcedAction battle.Choice) []battle.Choice {
	e := env.engine
	slots := e.State.Sides[side].Active
	choices := make([]battle.Choice, 0, len(slots))
	for slot := range slots {
		if slot == 0 && forceSlotZero {
			choices = append(choices, forcedAction)
			continue
		}
		legal := e.LegalActions(side, slot)
		if len(legal) == 0 {
			choices = append(choices, battle.Choice{Kind: battle.ChoicePass, Slot: slot})
			continue
		}
		choices = append(choices, env.Opponent(obs, legal))
	}
	return choices
}

func (env *Env) defaultPick(side, slot int) int {
	st := env.engine.State
	for idx, mon := range st.Sides[side].Team {
		if mon.Fainted() {
			continue
		}
		alreadyActive := false
		for _, a := range st.Sides[side].Active {
			if a == idx {
				alreadyActive = true
				break
			}
		}
		if !alreadyActive {
			return idx
		}
	}
	return -1
}
