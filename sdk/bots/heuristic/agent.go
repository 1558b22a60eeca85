// Package heuristic implements a damage-greedy Agent: it favors the
// legal move with the highest raw power most of the time, falling back to
// a random legal choice otherwise. Grounded on the teacher's
// sdk/bots/aggressive/handler.go ("raise 70% of the time when possible"),
// generalized from "always prefer the most aggressive legal action" to
// "prefer the highest-power legal move".
package heuristic

import (
	rand "math/rand/v2"
	"time"

	"github.com/dougwinr/vgcsim/internal/battle"
	"github.com/dougwinr/vgcsim/internal/data"
)

// Agent greedily picks the highest-power legal move with probability
// AggressionRate, otherwise a uniformly random legal choice (matching the
// teacher's fixed 0.7 aggression constant, but exposed as a field so
// callers can tune it).
type Agent struct {
	Registry       *data.Registry
	AggressionRate float64
	rng            *rand.Rand
	lastObs        *battle.Observation
}

// New returns a heuristic Agent with the teacher's 0.7 aggression rate.
func New(reg *data.Registry) *Agent {
	return &Agent{
		Registry:       reg,
		AggressionRate: 0.7,
		rng:            rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
}

func (a *Agent) Decide(obs battle.Observation, legal []battle.Choice) battle.Choice {
	a.lastObs = &obs
	if len(legal) == 0 {
		return battle.Choice{Kind: battle.ChoicePass}
	}

	if a.rng.Float64() < a.AggressionRate {
		if best, ok := a.bestMove(legal); ok {
			return best
		}
	}
	return legal[a.rng.IntN(len(legal))]
}

// bestMove returns the legal MOVE choice whose registry power is highest,
// breaking ties by first occurrence for determinism given a fixed legal
// ordering.
func (a *Agent) bestMove(legal []battle.Choice) (battle.Choice, bool) {
	bestPower := -1
	var best battle.Choice
	found := false
	for _, c := range legal {
		if c.Kind != battle.ChoiceMove {
			continue
		}
		md := a.moveFor(c)
		if md == nil {
			continue
		}
		if md.Power > bestPower {
			bestPower = md.Power
			best = c
			found = true
		}
	}
	return best, found
}

// moveFor resolves a MOVE choice's slot index back to registry move data,
// via the active Pokémon's MonView from the observation Decide was just
// called with (a Choice only carries a move *slot*, not a move id).
func (a *Agent) moveFor(c battle.Choice) *data.MoveData {
	if a.lastObs == nil {
		return nil
	}
	mon, ok := a.lastObs.ActiveOwn(c.Slot)
	if !ok || c.MoveSlot < 0 || c.MoveSlot >= len(mon.Moves) {
		return nil
	}
	md, ok := a.Registry.Move(mon.Moves[c.MoveSlot].ID)
	if !ok {
		return nil
	}
	return md
}
