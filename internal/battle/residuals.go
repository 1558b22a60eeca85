package battle

import (
	"sort"

	"github.com/dougwinr/vgcsim/internal/data"
	"github.com/dougwinr/vgcsim/internal/typechart"
)

// RunResiduals runs the end-of-turn residual pass (§4.7): weather and
// status damage, Leech Seed, terrain healing, then field/side counter
// tick-down, then a victory check. Faints it causes stay on the faint
// queue; Engine.Step drains that queue after this pass.
func RunResiduals(s *State) {
	slots := s.ActiveSlots()
	sort.SliceStable(slots, func(i, j int) bool {
		a, b := slots[i], slots[j]
		monA := s.ActivePokemon(a.Side, a.Slot)
		monB := s.ActivePokemon(b.Side, b.Slot)
		return effectiveSpeedKey(s, a.Side, a.Slot, monA) > effectiveSpeedKey(s, b.Side, b.Slot, monB)
	})

	for _, sl := range slots {
		mon := s.ActivePokemon(sl.Side, sl.Slot)
		if mon == nil || mon.Fainted() {
			continue
		}

		// 2. Weather damage.
		grounded := s.grounded(mon)
		switch s.Weather {
		case WeatherSand:
			if !isType(mon, typechart.Rock) && !isType(mon, typechart.Ground) && !isType(mon, typechart.Steel) {
				if damageFraction(s, mon, sl.Side, sl.Slot, 1, 16, "sand") {
					continue
				}
			}
		case WeatherHail:
			if !isType(mon, typechart.Ice) {
				if damageFraction(s, mon, sl.Side, sl.Slot, 1, 16, "hail") {
					continue
				}
			}
		}

		// 3. Status damage.
		switch mon.Status {
		case data.StatusBurn:
			if damageFraction(s, mon, sl.Side, sl.Slot, 1, 16, "brn") {
				continue
			}
		case data.StatusPoison:
			if damageFraction(s, mon, sl.Side, sl.Slot, 1, 8, "psn") {
				continue
			}
		case data.StatusBadlyPoisoned:
			mon.StatusCounter++
			dmg := mon.MaxHP * mon.StatusCounter / 16
			removed := mon.Damage(dmg)
			s.Log.Append(Event{Type: EventStatus, Turn: s.Turn, Side: sl.Side, Slot: sl.Slot,
				Data: map[string]any{"status": "tox", "amount": removed}})
			if mon.Fainted() {
				s.Log.Append(Event{Type: EventFaint, Turn: s.Turn, Side: sl.Side, Slot: sl.Slot})
				s.EnqueueFaint(sl.Side, sl.Slot)
				continue
			}
		}

		// 4. Leech Seed.
		if mon.Volatiles.LeechSeeded {
			dmg := mon.MaxHP / 8
			removed := mon.Damage(dmg)
			s.Log.Append(Event{Type: EventDamage, Turn: s.Turn, Side: sl.Side, Slot: sl.Slot,
				Data: map[string]any{"amount": removed, "source": "leech_seed"}})
			if opp := leechSeedTarget(s, sl.Side, sl.Slot); opp != nil {
				healed := opp.Heal(removed)
				if healed > 0 {
					s.Log.Append(Event{Type: EventHeal, Turn: s.Turn, Side: 1 - sl.Side, Slot: sl.Slot,
						Data: map[string]any{"amount": healed, "source": "leech_seed"}})
				}
			}
			if mon.Fainted() {
				s.Log.Append(Event{Type: EventFaint, Turn: s.Turn, Side: sl.Side, Slot: sl.Slot})
				s.EnqueueFaint(sl.Side, sl.Slot)
				continue
			}
		}

		// 5. Terrain healing.
		if s.Terrain == TerrainGrassy && grounded {
			healed := mon.Heal(mon.MaxHP / 16)
			if healed > 0 {
				s.Log.Append(Event{Type: EventHeal, Turn: s.Turn, Side: sl.Side, Slot: sl.Slot,
					Data: map[string]any{"amount": healed, "source": "grassy_terrain"}})
			}
		}
	}

	tickDownFieldCounters(s)

	// 8. Victory check; CheckVictory reports ended/winner. The faint queue
	// is drained by Engine.Step once this returns.
	s.CheckVictory()
}

func isType(mon *Pokemon, t typechart.Type) bool {
	return mon.EffectiveType1() == t || mon.EffectiveType2() == t
}

// damageFraction removes maxHP*num/den from mon, logs a STATUS/DAMAGE-style
// event, and reports whether mon fainted as a result (callers `continue` to
// skip further residuals on a fainted target, §4.7 step 6).
func damageFraction(s *State, mon *Pokemon, side, slot, num, den int, source string) bool {
	dmg := mon.MaxHP * num / den
	removed := mon.Damage(dmg)
	s.Log.Append(Event{Type: EventDamage, Turn: s.Turn, Side: side, Slot: slot,
		Data: map[string]any{"amount": removed, "source": source}})
	if mon.Fainted() {
		s.Log.Append(Event{Type: EventFaint, Turn: s.Turn, Side: side, Slot: slot})
		s.EnqueueFaint(side, slot)
		return true
	}
	return false
}

// leechSeedTarget returns the opposing active Pokémon in the same slot
// index as the seeded Pokémon, the simplifying "opposite slot" convention
// this engine uses for which side benefits from a Leech Seed tick.
func leechSeedTarget(s *State, seededSide, seededSlot int) *Pokemon {
	oppSide := 1 - seededSide
	if seededSlot >= len(s.Sides[oppSide].Active) {
		return nil
	}
	return s.ActivePokemon(oppSide, seededSlot)
}

// tickDownFieldCounters decrements every turn-based field/side counter by
// 1 (floored at 0) and emits an END-style event when one reaches 0
// (§4.7 step 7).
func tickDownFieldCounters(s *State) {
	decr := func(counter *int, evt EventType, side, slot int) {
		if *counter <= 0 {
			return
		}
		*counter--
		if *counter == 0 {
			s.Log.Append(Event{Type: evt, Turn: s.Turn, Side: side, Slot: slot})
		}
	}

	decr(&s.WeatherTurns, EventWeatherEnd, -1, -1)
	if s.WeatherTurns == 0 {
		s.Weather = NoWeather
	}
	decr(&s.TerrainTurns, EventTerrainEnd, -1, -1)
	if s.TerrainTurns == 0 {
		s.Terrain = NoTerrain
	}
	decr(&s.TrickRoomTurns, EventSideEnd, -1, -1)
	decr(&s.GravityTurns, EventSideEnd, -1, -1)
	decr(&s.MagicRoomTurns, EventSideEnd, -1, -1)
	decr(&s.WonderRoomTurns, EventSideEnd, -1, -1)

	for side := range s.Sides {
		cond := &s.Sides[side].Cond
		decr(&cond.Reflect, EventSideEnd, side, -1)
		decr(&cond.LightScreen, EventSideEnd, side, -1)
		decr(&cond.AuroraVeil, EventSideEnd, side, -1)
		decr(&cond.Safeguard, EventSideEnd, side, -1)
		decr(&cond.Mist, EventSideEnd, side, -1)
		decr(&cond.Tailwind, EventSideEnd, side, -1)
		decr(&cond.WideGuard, EventSideEnd, side, -1)
		decr(&cond.QuickGuard, EventSideEnd, side, -1)
	}
}
