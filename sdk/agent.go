// Package sdk is the out-of-process-facing surface consumers build agents
// against (§1: "the core consumes them through one operation: given an
// observation and a legal-action list, return a choice"). The core itself
// (internal/battle) never imports this package; Agent is the seam.
package sdk

import "github.com/dougwinr/vgcsim/internal/battle"

// Agent is the one operation every decision-making entity implements,
// whether it is backed by a random source, a hand-written heuristic, an
// LLM call, a human at a terminal, or a trained RL policy. Decide is given
// the caller's own observation of the battle and the exhaustive legal
// action set for one of its active slots, and must return exactly one of
// the offered choices (or the zero value to mean "pass", when Legal
// contains only a PASS choice).
type Agent interface {
	Decide(obs battle.Observation, legal []battle.Choice) battle.Choice
}

// Lifecycle is an optional extension an Agent may additionally implement
// to observe battle boundaries without affecting decisions: battle start
// and end notifications. Mirrors the teacher's Handler's
// OnHandStart/OnGameCompleted-style lifecycle hooks (sdk/bots/*/handler.go
// in the retrieved corpus), generalized from "hand" to "battle".
type Lifecycle interface {
	OnBattleStart(obs battle.Observation)
	OnBattleEnd(result battle.StepResult)
}

// AgentFunc adapts a plain decision function to the Agent interface, for
// the common case of a stateless policy.
type AgentFunc func(obs battle.Observation, legal []battle.Choice) battle.Choice

func (f AgentFunc) Decide(obs battle.Observation, legal []battle.Choice) battle.Choice {
	return f(obs, legal)
}

// Pass returns the degenerate PASS choice for a slot, used by agents (and
// tests) when Decide is handed a legal set containing only PASS.
func Pass(slot int) battle.Choice {
	return battle.Choice{Kind: battle.ChoicePass, Slot: slot}
}

// DriveSide runs one Agent across every active slot in a side's legal
// action sets, returning the []Choice ready to place into the map
// Engine.Step expects. This is the thin loop every cmd/vgc-* driver and
// internal/tournament runner shares instead of re-deriving it.
func DriveSide(e *battle.Engine, side int, obs battle.Observation, agent Agent) []battle.Choice {
	slots := e.State.Sides[side].Active
	choices := make([]battle.Choice, 0, len(slots))
	for slot := range slots {
		legal := e.LegalActions(side, slot)
		if len(legal) == 0 {
			choices = append(choices, Pass(slot))
			continue
		}
		choices = append(choices, agent.Decide(obs, legal))
	}
	return choices
}
