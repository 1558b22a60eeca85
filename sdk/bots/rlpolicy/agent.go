// Package rlpolicy implements an Agent backed by a trained RL policy
// (spec.md §1 "agent implementations (..., RL-policy)"). The policy
// itself is an injected interface so this package carries no training
// code of its own — training consumes internal/replay's trajectories
// (sdk/rl), this package only evaluates an already-trained policy at
// decision time, the same "thin consumer" split the spec draws around
// every non-core agent.
package rlpolicy

import (
	rand "math/rand/v2"
	"time"

	"github.com/dougwinr/vgcsim/internal/battle"
)

// Policy scores one legal action given an observation; higher is more
// preferred. A real implementation might wrap a learned value network; a
// trivial scoring function is enough to exercise the Agent plumbing
// without depending on any particular ML framework.
type Policy interface {
	Score(obs battle.Observation, action battle.Choice) float64
}

// Agent greedily selects the highest-scoring legal action under Policy,
// breaking ties uniformly at random (so a flat/untrained policy still
// behaves like a random agent rather than always picking legal[0]).
type Agent struct {
	Policy Policy
	rng    *rand.Rand
}

func New(policy Policy) *Agent {
	return &Agent{Policy: policy, rng: rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))}
}

func (a *Agent) Decide(obs battle.Observation, legal []battle.Choice) battle.Choice {
	if len(legal) == 0 {
		return battle.Choice{Kind: battle.ChoicePass}
	}

	bestScore := 0.0
	var tied []battle.Choice
	for i, c := range legal {
		score := a.Policy.Score(obs, c)
		switch {
		case i == 0 || score > bestScore:
			bestScore = score
			tied = tied[:0]
			tied = append(tied, c)
		case score == bestScore:
			tied = append(tied, c)
		}
	}
	if len(tied) == 1 {
		return tied[0]
	}
	return tied[a.rng.IntN(len(tied))]
}
