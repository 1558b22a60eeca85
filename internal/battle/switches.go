package battle

import (
	"github.com/dougwinr/vgcsim/internal/data"
	"github.com/dougwinr/vgcsim/internal/typechart"
)

// ForcedSwitches returns the currently pending (side, slot) pairs awaiting a
// replacement, built by draining the faint queue (§4.6 step 1). Slots with
// no non-fainted teammates left are cleared immediately and never appear in
// the returned set.
func (s *State) ForcedSwitches() []FaintEntry {
	var pending []FaintEntry
	remaining := s.Faints[:0]
	for _, f := range s.Faints {
		mon := s.ActivePokemon(f.Side, f.Slot)
		if mon == nil || !mon.Fainted() {
			continue
		}
		if s.NonFaintedCount(f.Side) == 0 {
			s.Sides[f.Side].Active[f.Slot] = -1
			continue
		}
		pending = append(pending, f)
	}
	s.Faints = remaining
	return pending
}

// ApplyForcedSwitch validates and applies one pending replacement (§4.6
// step 3). newTeamIndex must reference a non-fainted, not-currently-active
// team member belonging to side. A slot whose active Pokémon has not
// fainted is not pending and yields ErrIllegalState.
func (s *State) ApplyForcedSwitch(side, slot, newTeamIndex int) error {
	team := s.Sides[side].Team
	if newTeamIndex < 0 || newTeamIndex >= len(team) {
		return ErrInvalidChoice
	}
	if team[newTeamIndex].Fainted() {
		return ErrInvalidChoice
	}
	for _, activeIdx := range s.Sides[side].Active {
		if activeIdx == newTeamIndex {
			return ErrInvalidChoice
		}
	}
	if slot < 0 || slot >= len(s.Sides[side].Active) {
		return ErrIllegalState
	}
	if mon := s.ActivePokemon(side, slot); mon != nil && !mon.Fainted() {
		return ErrIllegalState
	}

	s.Sides[side].Active[slot] = newTeamIndex
	s.Sides[side].SlotCond[slot] = SlotCondition{}
	s.Log.Append(Event{Type: EventSwitch, Turn: s.Turn, Side: side, Slot: slot,
		Data: map[string]any{"team_index": newTeamIndex}})

	ApplyEntryHazards(s, side, slot)
	return nil
}

// DrainForcedSwitches repeatedly applies any switches the caller already
// queued via a side's auto-replacement policy; engines that want manual
// control should instead call ForcedSwitches/ApplyForcedSwitch directly
// between steps, per §4.6 step 2's "yields control to the caller" note.
// This helper exists for callers (e.g. Engine.Step's pick) that supply a
// replacement-picking function instead of driving the loop themselves.
func (s *State) DrainForcedSwitches(pick func(side, slot int) int) {
	for {
		pending := s.ForcedSwitches()
		if len(pending) == 0 {
			return
		}
		for _, f := range pending {
			newIdx := pick(f.Side, f.Slot)
			_ = s.ApplyForcedSwitch(f.Side, f.Slot, newIdx)
		}
	}
}

// ApplyEntryHazards applies Stealth Rock, Spikes, Toxic Spikes, and Sticky
// Web to a freshly switched-in Pokémon, in that fixed order (§4.6). If the
// switch-in faints from hazard damage, it is re-queued onto the faint queue.
func ApplyEntryHazards(s *State, side, slot int) {
	mon := s.ActivePokemon(side, slot)
	if mon == nil || mon.Fainted() {
		return
	}
	cond := &s.Sides[side].Cond
	grounded := s.grounded(mon)

	if cond.StealthRock {
		eff := typechart.Dual(typechart.Rock, mon.EffectiveType1(), mon.EffectiveType2())
		dmg := int(float64(mon.MaxHP) * eff / 8)
		if dmg > 0 {
			removed := mon.Damage(dmg)
			s.Log.Append(Event{Type: EventHazardDamage, Turn: s.Turn, Side: side, Slot: slot,
				Data: map[string]any{"source": "stealth_rock", "amount": removed}})
		}
	}
	if mon.Fainted() {
		s.EnqueueFaint(side, slot)
		return
	}

	if cond.Spikes > 0 && grounded {
		fractions := [4]int{0, 8, 6, 4}
		den := fractions[cond.Spikes]
		dmg := mon.MaxHP / den
		removed := mon.Damage(dmg)
		s.Log.Append(Event{Type: EventHazardDamage, Turn: s.Turn, Side: side, Slot: slot,
			Data: map[string]any{"source": "spikes", "amount": removed}})
	}
	if mon.Fainted() {
		s.EnqueueFaint(side, slot)
		return
	}

	if cond.ToxicSpikes > 0 {
		switch {
		case mon.EffectiveType1() == typechart.Poison || mon.EffectiveType2() == typechart.Poison:
			cond.ToxicSpikes = 0
		case mon.EffectiveType1() == typechart.Steel || mon.EffectiveType2() == typechart.Steel:
			// immune, no effect
		case !grounded:
			// Flying/Levitate skip
		case cond.ToxicSpikes >= 2:
			if mon.SetStatus(data.StatusBadlyPoisoned) {
				s.Log.Append(Event{Type: EventStatus, Turn: s.Turn, Side: side, Slot: slot,
					Data: map[string]any{"status": "tox"}})
			}
		default:
			if mon.SetStatus(data.StatusPoison) {
				s.Log.Append(Event{Type: EventStatus, Turn: s.Turn, Side: side, Slot: slot,
					Data: map[string]any{"status": "psn"}})
			}
		}
	}

	if cond.StickyWeb && grounded {
		applied := mon.ApplyBoost(int(StatSpe), -1)
		if applied != 0 {
			s.Log.Append(Event{Type: EventUnboost, Turn: s.Turn, Side: side, Slot: slot,
				Data: map[string]any{"stat": int(StatSpe), "amount": applied, "source": "sticky_web"}})
		}
	}
}
