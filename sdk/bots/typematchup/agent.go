// Package typematchup implements an Agent that always picks the legal
// move with the best type-effectiveness multiplier against the opponent's
// active Pokémon, ignoring power/accuracy/everything else — the simplest
// "play the type chart" policy (spec.md §1 "agent implementations
// (random, heuristic, type-matchup, ...)"). Grounded on the teacher's
// sdk/bots/callingstation/handler.go shape (a single-rule, no-lifecycle
// Handler), with the rule itself drawn from internal/typechart instead of
// a fixed poker action.
package typematchup

import (
	rand "math/rand/v2"
	"time"

	"github.com/dougwinr/vgcsim/internal/battle"
	"github.com/dougwinr/vgcsim/internal/data"
	"github.com/dougwinr/vgcsim/internal/typechart"
)

// Agent always takes the legal MOVE choice whose type lands the strongest
// hit on the opponent's (first) active Pokémon, falling back to a random
// legal choice when no MOVE choice is offered (e.g. only switches remain).
type Agent struct {
	Registry *data.Registry
	rng      *rand.Rand
}

func New(reg *data.Registry) *Agent {
	return &Agent{Registry: reg, rng: rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))}
}

func (a *Agent) Decide(obs battle.Observation, legal []battle.Choice) battle.Choice {
	if len(legal) == 0 {
		return battle.Choice{Kind: battle.ChoicePass}
	}

	defenderT1, defenderT2, haveDefender := a.primaryOpponentTypes(obs)

	bestMult := -1.0
	var best battle.Choice
	found := false
	for _, c := range legal {
		if c.Kind != battle.ChoiceMove || !haveDefender {
			continue
		}
		mon, ok := obs.ActiveOwn(c.Slot)
		if !ok || c.MoveSlot < 0 || c.MoveSlot >= len(mon.Moves) {
			continue
		}
		md, ok := a.Registry.Move(mon.Moves[c.MoveSlot].ID)
		if !ok || md.Category == data.CategoryStatus {
			continue
		}
		mult := typechart.Dual(md.Type, defenderT1, defenderT2)
		if mult > bestMult {
			bestMult = mult
			best = c
			found = true
		}
	}
	if found {
		return best
	}
	return legal[a.rng.IntN(len(legal))]
}

// primaryOpponentTypes resolves the opponent's first active Pokémon's
// defensive typing from the observation's redacted/unredacted view (§6:
// active opponents are always fully visible).
func (a *Agent) primaryOpponentTypes(obs battle.Observation) (typechart.Type, typechart.Type, bool) {
	for _, m := range obs.Opponent() {
		if !m.Active {
			continue
		}
		sp, ok := a.Registry.Species(m.Species)
		if !ok {
			continue
		}
		return sp.Type1, sp.Type2, true
	}
	return 0, 0, false
}
