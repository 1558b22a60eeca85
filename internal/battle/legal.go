package battle

import "github.com/dougwinr/vgcsim/internal/data"

// LegalActions enumerates every Choice an agent may legally submit for one
// of its own active slots (§1: "given an observation and a legal-action
// list, return a choice"). It never mutates state and is safe to call
// speculatively between Step invocations.
//
// The set always includes PASS when the slot holds no fainted-free option
// (e.g. the active Pokémon is fainted and no forced switch is pending
// yet), mirroring Choice's own "no legal action is possible" case (§6).
func (e *Engine) LegalActions(side, slot int) []Choice {
	s := e.State
	if s == nil || slot < 0 || slot >= len(s.Sides[side].Active) {
		return nil
	}
	mon := s.ActivePokemon(side, slot)
	if mon == nil || mon.Fainted() {
		return []Choice{{Kind: ChoicePass, Slot: slot}}
	}

	var out []Choice
	for moveSlot, ms := range mon.Moves {
		if ms.Empty() || ms.PP <= 0 || ms.Disabled {
			continue
		}
		targets := legalTargetsFor(s, side, slot, moveSlot)
		if len(targets) == 0 {
			out = append(out, Choice{Kind: ChoiceMove, Slot: slot, MoveSlot: moveSlot, Target: 0})
			continue
		}
		for _, t := range targets {
			out = append(out, Choice{Kind: ChoiceMove, Slot: slot, MoveSlot: moveSlot, Target: t})
		}
	}

	for teamIdx, bench := range s.Sides[side].Team {
		if bench.Fainted() {
			continue
		}
		alreadyActive := false
		for _, a := range s.Sides[side].Active {
			if a == teamIdx {
				alreadyActive = true
				break
			}
		}
		if alreadyActive {
			continue
		}
		out = append(out, Choice{Kind: ChoiceSwitch, Slot: slot, SwitchTo: teamIdx})
	}

	if len(out) == 0 {
		out = append(out, Choice{Kind: ChoicePass, Slot: slot})
	}
	return out
}

// legalTargetsFor returns the signed Choice.Target encodings worth
// offering an agent for a given move slot: 0 ("default target") always,
// plus, for single-target moves, one entry per non-fainted opponent active
// slot (and per other non-fainted ally slot for ally-targeting moves), in
// singles as in doubles, so an agent can express an explicit choice
// instead of always taking the resolver's default.
func legalTargetsFor(s *State, side, slot, moveSlot int) []int {
	mon := s.ActivePokemon(side, slot)
	md := moveData(s.Registry, mon, moveSlot)
	if md == nil {
		return nil
	}
	switch md.Target {
	case data.TargetSelf, data.TargetAllySide, data.TargetFoeSide, data.TargetAllyTeam,
		data.TargetAllAdjacentFoes, data.TargetAllAdjacent, data.TargetAllAllies, data.TargetAll,
		data.TargetRandomNormal, data.TargetScripted:
		return []int{0}
	}

	oppSide := 1 - side
	out := []int{0}
	for oppSlot, teamIdx := range s.Sides[oppSide].Active {
		if teamIdx < 0 || s.Sides[oppSide].Team[teamIdx].Fainted() {
			continue
		}
		out = append(out, oppSlot+1)
	}
	if md.Target == data.TargetAdjacentAlly || md.Target == data.TargetAdjacentAllyOrSelf {
		for allySlot, teamIdx := range s.Sides[side].Active {
			if allySlot == slot || teamIdx < 0 || s.Sides[side].Team[teamIdx].Fainted() {
				continue
			}
			out = append(out, -(allySlot + 1))
		}
	}
	return out
}
