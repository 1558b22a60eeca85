// Package random implements the simplest Agent: pick uniformly among the
// legal actions offered (spec.md §1 "agent implementations (random, ...)").
// Grounded on the teacher's sdk/bots/random/handler.go, which does the
// same uniform pick over req.ValidActions.
package random

import (
	rand "math/rand/v2"
	"time"

	"github.com/dougwinr/vgcsim/internal/battle"
)

// Agent picks a uniformly random legal choice every turn.
type Agent struct {
	rng *rand.Rand
}

// New returns an Agent seeded from the wall clock, matching the teacher's
// own NewHandler (a fresh, unseeded-by-battle source is fine for an agent
// that is not itself part of the deterministic core).
func New() *Agent {
	return &Agent{rng: rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))}
}

// NewSeeded returns an Agent with a caller-controlled seed, for
// reproducible agent-vs-agent test battles.
func NewSeeded(seed uint64) *Agent {
	return &Agent{rng: rand.New(rand.NewPCG(seed, 0))}
}

func (a *Agent) Decide(_ battle.Observation, legal []battle.Choice) battle.Choice {
	if len(legal) == 0 {
		return battle.Choice{Kind: battle.ChoicePass}
	}
	return legal[a.rng.IntN(len(legal))]
}
