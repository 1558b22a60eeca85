package battle

import (
	"sort"

	"github.com/dougwinr/vgcsim/internal/data"
)

// Action is one scheduled, ready-to-execute unit of work, resolved from a
// Choice by the Action Scheduler (§4.4).
type Action struct {
	Side, Slot int
	Choice     Choice

	// PriorityBracket, SpeedKey and TieBreak are the resolved sort key
	// tuple, recorded so observers/tests can assert ordering without
	// re-deriving it (§4.4 final paragraph).
	PriorityBracket int
	SpeedKey        int
	TieBreak        int
}

// effectiveSpeedKey computes a Pokémon's sortable speed value: the Spe stat
// after stage multiplier, halved by paralysis unless the Pokémon has
// Quick Feet, doubled by Tailwind, x1.5 for
// Choice Scarf, with the sign flipped under Trick Room so slower movers
// sort first (§4.4 key 3).
func effectiveSpeedKey(s *State, side, slot int, mon *Pokemon) int {
	spe := float64(mon.Stat(StatSpe, mon.Stages[StatSpe]))

	if it, ok := s.Registry.Item(mon.Item); ok && it.Kind == data.ItemKindChoice && it.StatBoost[StatSpe] != 0 {
		spe *= it.StatBoost[StatSpe]
	}

	if mon.Status == data.StatusParalysis && !mon.hasAbility(AbilityQuickFeet) {
		spe *= 0.5
	}
	if s.Sides[side].Cond.Tailwind > 0 {
		spe *= 2
	}

	key := int(spe)
	if s.TrickRoomTurns > 0 {
		key = -key
	}
	return key
}

// Schedule converts each side's submitted choices into a totally ordered
// list of Actions (§4.4): switches precede moves by a fixed priority
// bracket, moves are ordered by their own priority bracket, then by
// effective speed (inverted under Trick Room), with PRNG tie-breaks for
// exact equality.
func Schedule(s *State, choices map[int][]Choice) []Action {
	var actions []Action
	for side, list := range choices {
		for _, c := range list {
			if c.Kind == ChoicePass {
				continue
			}
			a := Action{Side: side, Slot: c.Slot, Choice: c}
			switch c.Kind {
			case ChoiceSwitch:
				a.PriorityBracket = switchPriorityBracket
				a.SpeedKey = 0
			case ChoiceMove:
				mon := s.ActivePokemon(side, c.Slot)
				if mon != nil {
					if md := moveData(s.Registry, mon, c.MoveSlot); md != nil {
						a.PriorityBracket = md.Priority
					}
					a.SpeedKey = effectiveSpeedKey(s, side, c.Slot, mon)
				}
			}
			actions = append(actions, a)
		}
	}

	// Stable sort on bracket+speed first so equal keys keep submission
	// order, then resolve exact ties with one PRNG draw per tied group.
	sort.SliceStable(actions, func(i, j int) bool {
		if actions[i].PriorityBracket != actions[j].PriorityBracket {
			return actions[i].PriorityBracket > actions[j].PriorityBracket
		}
		return actions[i].SpeedKey > actions[j].SpeedKey
	})

	breakTies(s, actions)
	return actions
}

// breakTies finds runs of exactly equal (bracket, speed) keys and
// shuffles each run with the battle PRNG, recording the draw on TieBreak so
// it is visible to tests without needing to replay the shuffle.
func breakTies(s *State, actions []Action) {
	i := 0
	for i < len(actions) {
		j := i + 1
		for j < len(actions) &&
			actions[j].PriorityBracket == actions[i].PriorityBracket &&
			actions[j].SpeedKey == actions[i].SpeedKey {
			j++
		}
		if j-i > 1 {
			run := actions[i:j]
			for k := len(run) - 1; k > 0; k-- {
				pick := s.PRNG.Next(k + 1)
				run[k].TieBreak = pick
				run[k], run[pick] = run[pick], run[k]
			}
		}
		i = j
	}
}
