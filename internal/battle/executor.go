package battle

import (
	"github.com/dougwinr/vgcsim/internal/data"
	"github.com/dougwinr/vgcsim/internal/typechart"
)

// ExecuteTurn runs every scheduled Action in order (§4.5), mutating s and
// appending to s.Log as it goes. It stops early and leaves any remaining
// actions unexecuted if the battle ends mid-turn.
//
// Draw-order note: §4.1 lists PRNG draw categories in a summary order that
// places confusion/sleep/freeze rolls after multi-hit count; §4.5's
// lettered steps place them before accuracy, as part of pre-move gating.
// This executor follows §4.5 literally (it is the more specific of the
// two): each action consumes its gating draws, then its accuracy draw,
// then its per-hit draws, in that sequence. §4.1's list is read as naming
// the draw categories that occur across a turn, not a strict global
// interleaving.
func ExecuteTurn(s *State, actions []Action) {
	for _, action := range actions {
		if s.Ended {
			return
		}
		switch action.Choice.Kind {
		case ChoiceSwitch:
			executeSwitch(s, action)
		case ChoiceMove:
			executeMove(s, action)
		}
		if s.CheckVictory() {
			return
		}
	}
}

// executeSwitch performs a voluntary switch (not a forced post-faint one;
// see switches.go for that path) and applies entry hazards.
func executeSwitch(s *State, action Action) {
	side, slot := action.Side, action.Slot
	newIdx := action.Choice.SwitchTo
	if newIdx < 0 || newIdx >= len(s.Sides[side].Team) {
		return
	}
	newMon := s.Sides[side].Team[newIdx]
	if newMon.Fainted() {
		return
	}
	for _, activeIdx := range s.Sides[side].Active {
		if activeIdx == newIdx {
			return
		}
	}

	if oldIdx := s.Sides[side].Active[slot]; oldIdx >= 0 {
		s.Log.Append(Event{Type: EventSwitchOut, Turn: s.Turn, Side: side, Slot: slot,
			Data: map[string]any{"team_index": oldIdx}})
		s.Sides[side].Team[oldIdx].Volatiles = Volatiles{}
	}

	s.Sides[side].Active[slot] = newIdx
	s.Log.Append(Event{Type: EventSwitch, Turn: s.Turn, Side: side, Slot: slot,
		Data: map[string]any{"team_index": newIdx}})

	ApplyEntryHazards(s, side, slot)
}

// executeMove runs steps a-j of §4.5 for one move action.
func executeMove(s *State, action Action) {
	side, slot := action.Side, action.Slot
	mover := s.ActivePokemon(side, slot)

	// a. fainted mover: bye.
	if mover == nil || mover.Fainted() {
		return
	}

	// b. pre-move status gating, in order: sleep, freeze, flinch,
	// confusion, paralysis.
	if mover.Status == data.StatusSleep {
		if mover.StatusCounter > 0 {
			mover.StatusCounter--
			s.Log.Append(Event{Type: EventCantMove, Turn: s.Turn, Side: side, Slot: slot,
				Data: map[string]any{"reason": "slp"}})
			return
		}
		mover.CureStatus()
	}

	md := moveData(s.Registry, mover, action.Choice.MoveSlot)

	if mover.Status == data.StatusFreeze {
		thawed := md != nil && md.Flags.Has(data.FlagDefrost)
		if !thawed {
			thawed = s.PRNG.Chance(1, 5)
		}
		if !thawed {
			s.Log.Append(Event{Type: EventCantMove, Turn: s.Turn, Side: side, Slot: slot,
				Data: map[string]any{"reason": "frz"}})
			return
		}
		mover.CureStatus()
	}

	if mover.Volatiles.FlinchThisTurn {
		s.Log.Append(Event{Type: EventCantMove, Turn: s.Turn, Side: side, Slot: slot,
			Data: map[string]any{"reason": "flinch"}})
		return
	}

	if mover.Volatiles.ConfusionTurns > 0 {
		mover.Volatiles.ConfusionTurns--
		if s.PRNG.Chance(33, 100) {
			dmg := ConfusionDamage(s, mover)
			removed := mover.Damage(dmg)
			s.Log.Append(Event{Type: EventConfusionHit, Turn: s.Turn, Side: side, Slot: slot,
				Data: map[string]any{"damage": removed}})
			if mover.Fainted() {
				s.EnqueueFaint(side, slot)
			}
			return
		}
	}

	if mover.Status == data.StatusParalysis {
		if s.PRNG.Chance(1, 4) {
			s.Log.Append(Event{Type: EventCantMove, Turn: s.Turn, Side: side, Slot: slot,
				Data: map[string]any{"reason": "par"}})
			return
		}
	}

	if md == nil {
		s.Log.Append(Event{Type: EventFail, Turn: s.Turn, Side: side, Slot: slot})
		return
	}

	// c. move resource.
	ms := &mover.Moves[action.Choice.MoveSlot]
	if ms.PP <= 0 {
		s.Log.Append(Event{Type: EventFail, Turn: s.Turn, Side: side, Slot: slot,
			Data: map[string]any{"reason": "no_pp"}})
		return
	}
	ms.PP--

	if action.Choice.Terastallize && !mover.Terastallized && !s.Sides[side].UsedTera {
		mover.Terastallized = true
		s.Sides[side].UsedTera = true
		s.Log.Append(Event{Type: EventTerastallize, Turn: s.Turn, Side: side, Slot: slot,
			Data: map[string]any{"tera_type": int(mover.TeraType)}})
	}

	explicit := resolveExplicitTarget(s, side, slot, action.Choice.Target)
	targets := ResolveTargets(s, side, slot, md.Target, explicit)

	// d. protection check.
	targets = filterProtectedTargets(s, side, md, targets)
	if len(targets) == 0 && md.Target != data.TargetAllySide && md.Target != data.TargetFoeSide && md.Target != data.TargetAllyTeam && md.Target != data.TargetSelf {
		s.Log.Append(Event{Type: EventFail, Turn: s.Turn, Side: side, Slot: slot})
		return
	}

	s.Log.Append(Event{Type: EventMove, Turn: s.Turn, Side: side, Slot: slot,
		Data: map[string]any{"move": int(md.ID)}})
	mover.Volatiles.LastMoveUsed = md.ID

	// e. accuracy (one roll per action, not per target, matching the
	// non-spread single-roll-then-apply-to-all-targets convention).
	if md.Accuracy > 0 {
		accStage := mover.Stages[StageAccuracy]
		threshold := md.Accuracy
		for _, t := range targets {
			if t.Slot < 0 {
				continue
			}
			if defender := s.ActivePokemon(t.Side, t.Slot); defender != nil {
				evaStage := defender.Stages[StageEvasion]
				threshold = md.Accuracy * int(StageMultiplier(accStage, true)*100) / int(StageMultiplier(evaStage, true)*100)
			}
			break
		}
		if !s.PRNG.Chance(threshold, 100) {
			s.Log.Append(Event{Type: EventMiss, Turn: s.Turn, Side: side, Slot: slot})
			return
		}
	}

	// f. target iteration (+ multi-hit loop per target for simplicity;
	// spread multi-hit moves do not exist in the builtin mechanic set).
	hitCount := 1
	if md.MultiHit.IsMultiHit() {
		hitCount = SampleMultiHitCount(s, md.MultiHit)
	}

	totalDamageDealt := 0
	var lastResult DamageResult
	for _, t := range targets {
		if t.Slot < 0 {
			applySideEffect(s, md, t.Side)
			continue
		}
		defender := s.ActivePokemon(t.Side, t.Slot)
		if defender == nil || defender.Fainted() {
			continue
		}

		if md.Effect != data.EffectNone {
			applyPrimaryEffect(s, defender, t.Side, t.Slot, md)
			continue
		}

		for hit := 0; hit < hitCount; hit++ {
			if defender.Fainted() {
				break
			}
			result := ComputeHit(s, mover, side, slot, defender, t.Side, t.Slot, md, len(targets))
			lastResult = result
			if result.IsImmune {
				s.Log.Append(Event{Type: EventTypeImmune, Turn: s.Turn, Side: t.Side, Slot: t.Slot})
				break
			}
			if result.IsCritical {
				s.Log.Append(Event{Type: EventCriticalHit, Turn: s.Turn, Side: t.Side, Slot: t.Slot})
			}
			switch {
			case result.TypeEffectiveness > 1:
				s.Log.Append(Event{Type: EventSuperEffective, Turn: s.Turn, Side: t.Side, Slot: t.Slot})
			case result.TypeEffectiveness < 1 && result.TypeEffectiveness > 0:
				s.Log.Append(Event{Type: EventResisted, Turn: s.Turn, Side: t.Side, Slot: t.Slot})
			}

			// Status-category moves (Thunder Wave, Toxic, Will-O-Wisp, Spore,
			// Confuse Ray) carry their whole effect in Secondary below and
			// never deal damage; applying/logging a zero-magnitude hit here
			// would emit a DAMAGE event with nothing behind it.
			if md.Category != data.CategoryStatus {
				removed := defender.Damage(result.Damage)
				totalDamageDealt += removed
				s.Log.Append(Event{Type: EventDamage, Turn: s.Turn, Side: t.Side, Slot: t.Slot,
					Data: map[string]any{"amount": removed, "hp": defender.CurrentHP, "max_hp": defender.MaxHP}})

				if defender.Fainted() {
					s.Log.Append(Event{Type: EventFaint, Turn: s.Turn, Side: t.Side, Slot: t.Slot})
					s.EnqueueFaint(t.Side, t.Slot)
				}
			}
		}
		if hitCount > 1 {
			s.Log.Append(Event{Type: EventMultiHit, Turn: s.Turn, Side: t.Side, Slot: t.Slot,
				Data: map[string]any{"hits": hitCount}})
		}

		// g. secondary effects, one roll per secondary per target.
		if md.Secondary != nil && !lastResult.IsImmune {
			applySecondary(s, mover, side, slot, defender, t.Side, t.Slot, md.Secondary)
		}
	}

	// h. recoil.
	if md.RecoilDen > 0 && totalDamageDealt > 0 {
		recoil := totalDamageDealt * md.RecoilNum / md.RecoilDen
		if recoil > 0 {
			removed := mover.Damage(recoil)
			s.Log.Append(Event{Type: EventRecoil, Turn: s.Turn, Side: side, Slot: slot,
				Data: map[string]any{"amount": removed}})
			if mover.Fainted() {
				s.EnqueueFaint(side, slot)
			}
		}
	}

	// i. drain.
	if md.DrainDen > 0 && totalDamageDealt > 0 {
		drain := (totalDamageDealt*md.DrainNum + md.DrainDen - 1) / md.DrainDen
		if drain > 0 {
			healed := mover.Heal(drain)
			if healed > 0 {
				s.Log.Append(Event{Type: EventDrain, Turn: s.Turn, Side: side, Slot: slot,
					Data: map[string]any{"amount": healed}})
			}
		}
	}
}

// filterProtectedTargets drops targets currently shielded by Protect,
// Wide Guard (spread moves) or Quick Guard (priority moves), per §4.5 step d.
func filterProtectedTargets(s *State, attackerSide int, md *data.MoveData, targets []TargetSpec) []TargetSpec {
	if !md.Flags.Has(data.FlagProtect) {
		return targets
	}
	out := targets[:0:0]
	for _, t := range targets {
		if t.Slot < 0 {
			out = append(out, t)
			continue
		}
		mon := s.ActivePokemon(t.Side, t.Slot)
		if mon != nil && mon.Volatiles.ProtectUsedThisTurn {
			s.Log.Append(Event{Type: EventProtect, Turn: s.Turn, Side: t.Side, Slot: t.Slot})
			continue
		}
		if md.Flags.Has(data.FlagSpread) && t.Side != attackerSide && s.Sides[t.Side].Cond.WideGuard > 0 {
			s.Log.Append(Event{Type: EventWideGuard, Turn: s.Turn, Side: t.Side, Slot: t.Slot})
			continue
		}
		if md.Priority > 0 && t.Side != attackerSide && s.Sides[t.Side].Cond.QuickGuard > 0 {
			s.Log.Append(Event{Type: EventQuickGuard, Turn: s.Turn, Side: t.Side, Slot: t.Slot})
			continue
		}
		out = append(out, t)
	}
	return out
}

// applySecondary rolls and, on success, applies one move's secondary
// effect against one already-hit target (§4.5 step g).
func applySecondary(s *State, attacker *Pokemon, attackerSide, attackerSlot int, defender *Pokemon, defenderSide, defenderSlot int, sec *data.Secondary) {
	if !s.PRNG.Chance(sec.Chance, 100) {
		return
	}

	if sec.Status != data.StatusNone && defender.Status == data.StatusNone {
		if statusApplies(defender, sec.Status) {
			defender.SetStatus(sec.Status)
			s.Log.Append(Event{Type: EventStatus, Turn: s.Turn, Side: defenderSide, Slot: defenderSlot,
				Data: map[string]any{"status": sec.Status.String()}})
		}
	}

	for i, delta := range sec.BoostTarget {
		if delta == 0 {
			continue
		}
		applied := defender.ApplyBoost(i, delta)
		if applied != 0 {
			evt := EventBoost
			if applied < 0 {
				evt = EventUnboost
			}
			s.Log.Append(Event{Type: evt, Turn: s.Turn, Side: defenderSide, Slot: defenderSlot,
				Data: map[string]any{"stat": i, "amount": applied}})
		}
	}
	for i, delta := range sec.SelfBoost {
		if delta == 0 {
			continue
		}
		applied := attacker.ApplyBoost(i, delta)
		if applied != 0 {
			evt := EventBoost
			if applied < 0 {
				evt = EventUnboost
			}
			s.Log.Append(Event{Type: evt, Turn: s.Turn, Side: attackerSide, Slot: attackerSlot,
				Data: map[string]any{"stat": i, "amount": applied}})
		}
	}

	if sec.VolatileFlinch {
		defender.Volatiles.FlinchThisTurn = true
	}
	if sec.VolatileConfusion && defender.Volatiles.ConfusionTurns == 0 {
		defender.Volatiles.ConfusionTurns = s.PRNG.RangeInclusive(2, 5)
		s.Log.Append(Event{Type: EventVolatileStart, Turn: s.Turn, Side: defenderSide, Slot: defenderSlot,
			Data: map[string]any{"volatile": "confusion"}})
	}
}

// applyPrimaryEffect applies a status move's unconditional primary effect
// (§4.5 step f, for moves whose whole behavior isn't a chance-based
// Secondary) against one already-resolved single target: Protect sets the
// user's protection volatile, Recover heals, Leech Seed plants the volatile
// the residuals engine drains each upkeep (residuals.go).
func applyPrimaryEffect(s *State, target *Pokemon, targetSide, targetSlot int, md *data.MoveData) {
	switch md.Effect {
	case data.EffectProtect:
		target.Volatiles.ProtectUsedThisTurn = true
		s.Log.Append(Event{Type: EventVolatileStart, Turn: s.Turn, Side: targetSide, Slot: targetSlot,
			Data: map[string]any{"volatile": "protect"}})
	case data.EffectHeal:
		healed := target.Heal(target.MaxHP / 2)
		if healed > 0 {
			s.Log.Append(Event{Type: EventHeal, Turn: s.Turn, Side: targetSide, Slot: targetSlot,
				Data: map[string]any{"amount": healed}})
		}
	case data.EffectLeechSeed:
		if !target.Volatiles.LeechSeeded {
			target.Volatiles.LeechSeeded = true
			s.Log.Append(Event{Type: EventVolatileStart, Turn: s.Turn, Side: targetSide, Slot: targetSlot,
				Data: map[string]any{"volatile": "leech_seed"}})
		}
	}
}

// applySideEffect applies a status move's side-wide primary effect (§4.6
// entry hazards) against the side named by a TargetFoeSide target spec.
// Each hazard caps at its documented layer count and is idempotent once
// capped, matching the move simply failing to add a layer it can't hold.
func applySideEffect(s *State, md *data.MoveData, targetSide int) {
	cond := &s.Sides[targetSide].Cond
	switch md.Effect {
	case data.EffectHazardStealthRock:
		if !cond.StealthRock {
			cond.StealthRock = true
			s.Log.Append(Event{Type: EventSideStart, Turn: s.Turn, Side: targetSide, Slot: -1,
				Data: map[string]any{"condition": "stealth_rock"}})
		}
	case data.EffectHazardSpikes:
		if cond.Spikes < 3 {
			cond.Spikes++
			s.Log.Append(Event{Type: EventSideStart, Turn: s.Turn, Side: targetSide, Slot: -1,
				Data: map[string]any{"condition": "spikes", "layers": cond.Spikes}})
		}
	case data.EffectHazardToxicSpikes:
		if cond.ToxicSpikes < 2 {
			cond.ToxicSpikes++
			s.Log.Append(Event{Type: EventSideStart, Turn: s.Turn, Side: targetSide, Slot: -1,
				Data: map[string]any{"condition": "toxic_spikes", "layers": cond.ToxicSpikes}})
		}
	case data.EffectHazardStickyWeb:
		if !cond.StickyWeb {
			cond.StickyWeb = true
			s.Log.Append(Event{Type: EventSideStart, Turn: s.Turn, Side: targetSide, Slot: -1,
				Data: map[string]any{"condition": "sticky_web"}})
		}
	}
}

// statusApplies reports whether a non-volatile status can be inflicted on a
// defender given its types: Fire-types cannot be frozen, Electric-types
// cannot be paralyzed (§4.5 step g).
func statusApplies(defender *Pokemon, status data.Status) bool {
	t1, t2 := defender.EffectiveType1(), defender.EffectiveType2()
	switch status {
	case data.StatusFreeze:
		return t1 != typechart.Fire && t2 != typechart.Fire
	case data.StatusParalysis:
		return t1 != typechart.Electric && t2 != typechart.Electric
	case data.StatusPoison, data.StatusBadlyPoisoned:
		return t1 != typechart.Poison && t2 != typechart.Poison && t1 != typechart.Steel && t2 != typechart.Steel
	default:
		return true
	}
}
