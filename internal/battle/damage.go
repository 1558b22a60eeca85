package battle

import (
	"github.com/dougwinr/vgcsim/internal/data"
	"github.com/dougwinr/vgcsim/internal/typechart"
)

// DamageResult is the outcome of one damage-pipeline invocation (§4.3).
type DamageResult struct {
	Damage            int
	IsCritical        bool
	TypeEffectiveness float64
	IsImmune          bool
	Hits              int // always 1 for a single ComputeHit call; the executor accumulates across multi-hit loops
}

// moveIDsHurtByGrassyTerrain are the ground-shaking moves halved by Grassy
// Terrain against grounded targets (§4.3 step 4). Only Earthquake exists in
// the builtin mechanic set; the list is extensible.
var moveIDsHurtByGrassyTerrain = map[data.MoveID]bool{
	data.MoveEarthquake: true,
}

// ComputeHit runs one full pass of §4.3 steps 1-12 for a single hit of a
// move against a single target. targetCount is the number of targets this
// move invocation is currently hitting (for the spread modifier, step 3).
func ComputeHit(s *State, attacker *Pokemon, attackerSide, attackerSlot int, defender *Pokemon, defenderSide, defenderSlot int, move *data.MoveData, targetCount int) DamageResult {
	atkType1, atkType2 := attacker.EffectiveType1(), attacker.EffectiveType2()
	_ = atkType1
	_ = atkType2

	defType1, defType2 := defender.EffectiveType1(), defender.EffectiveType2()

	// Step 1: immunity gate.
	typeEff := typechart.Dual(move.Type, defType1, defType2)
	if typeEff == 0 {
		return DamageResult{IsImmune: true, TypeEffectiveness: 0, Hits: 1}
	}

	if move.Category == data.CategoryStatus {
		return DamageResult{TypeEffectiveness: typeEff, Hits: 1}
	}

	// Step 2: base formula.
	var A, D int
	isPhysical := move.Category == data.CategoryPhysical
	if isPhysical {
		A = attacker.Stat(StatAtk, attacker.Stages[StatAtk])
		D = defender.Stat(StatDef, defender.Stages[StatDef])
	} else {
		A = attacker.Stat(StatSpA, attacker.Stages[StatSpA])
		D = defender.Stat(StatSpD, defender.Stages[StatSpD])
	}

	if isPhysical && attacker.Status == data.StatusBurn && !attacker.hasAbility(AbilityGuts) {
		A = A / 2
	}

	if it, ok := s.Registry.Item(attacker.Item); ok && it.Kind == data.ItemKindChoice {
		switch {
		case isPhysical && it.StatBoost[StatAtk] != 0:
			A = int(float64(A) * it.StatBoost[StatAtk])
		case !isPhysical && it.StatBoost[StatSpA] != 0:
			A = int(float64(A) * it.StatBoost[StatSpA])
		}
	}

	base := ((2*attacker.Level/5 + 2) * move.Power * A / D) / 50
	base += 2

	// Step 3: spread modifier.
	if move.Flags.Has(data.FlagSpread) && targetCount > 1 {
		base = base * 75 / 100
	}

	// Step 4: weather modifier.
	base = applyWeather(s, move, defender, base)

	// Step 5: critical hit.
	critStage := move.CritStage
	if attacker.Volatiles.FocusEnergy {
		critStage += 2
	}
	isCrit := rollCrit(s, critStage)
	atkStageForCrit := attacker.Stages[atkStat(isPhysical)]
	defStageForCrit := defender.Stages[defStat(isPhysical)]
	if isCrit {
		if atkStageForCrit < 0 {
			atkStageForCrit = 0
		}
		if defStageForCrit > 0 {
			defStageForCrit = 0
		}
		// Recompute A/D ignoring unfavorable boosts, then redo step 2's base
		// with the adjusted stats before continuing, per §4.3 step 5.
		var adjA, adjD int
		if isPhysical {
			adjA = attacker.Stat(StatAtk, atkStageForCrit)
			adjD = defender.Stat(StatDef, defStageForCrit)
		} else {
			adjA = attacker.Stat(StatSpA, atkStageForCrit)
			adjD = defender.Stat(StatSpD, defStageForCrit)
		}
		if isPhysical && attacker.Status == data.StatusBurn && !attacker.hasAbility(AbilityGuts) {
			adjA = adjA / 2
		}
		base = ((2*attacker.Level/5 + 2) * move.Power * adjA / adjD) / 50
		base += 2
		if move.Flags.Has(data.FlagSpread) && targetCount > 1 {
			base = base * 75 / 100
		}
		base = applyWeather(s, move, defender, base)
		base = base * 3 / 2
	}

	// Step 6: random factor, exactly one draw per hit.
	roll := s.PRNG.RangeInclusive(85, 100)
	base = base * roll / 100

	// Step 7: STAB.
	base = int(float64(base) * stabMultiplier(attacker, move.Type))

	// Step 8: type effectiveness.
	base = int(float64(base) * typeEff)

	// Step 10: screens (bypassed on crit or vs Infiltrator).
	if !isCrit && !defender.hasAbility(AbilityInfiltrator) {
		cond := &s.Sides[defenderSide].Cond
		if isPhysical && cond.Reflect > 0 {
			base /= 2
		}
		if !isPhysical && cond.LightScreen > 0 {
			base /= 2
		}
		if cond.AuroraVeil > 0 {
			base /= 2
		}
	}

	// Step 11: item/ability finisher.
	if it, ok := s.Registry.Item(attacker.Item); ok {
		switch it.Kind {
		case data.ItemKindDamageBoostAll:
			base = int(float64(base) * it.Multiplier)
		case data.ItemKindTypeBoostPlate:
			if it.BoostType == move.Type {
				base = int(float64(base) * it.Multiplier)
			}
		}
	}

	// Step 12: minimum 1.
	if base <= 0 {
		base = 1
	}

	return DamageResult{
		Damage:            base,
		IsCritical:        isCrit,
		TypeEffectiveness: typeEff,
		Hits:              1,
	}
}

func atkStat(physical bool) Stat {
	if physical {
		return StatAtk
	}
	return StatSpA
}

func defStat(physical bool) Stat {
	if physical {
		return StatDef
	}
	return StatSpD
}

// rollCrit draws the critical-hit PRNG roll per the standard crit-stage
// table (§4.3 step 5): 0 -> 1/24, 1 -> 1/8, 2 -> 1/2, 3+ -> 1/1.
func rollCrit(s *State, stage int) bool {
	switch {
	case stage <= 0:
		return s.PRNG.Chance(1, 24)
	case stage == 1:
		return s.PRNG.Chance(1, 8)
	case stage == 2:
		return s.PRNG.Chance(1, 2)
	default:
		return true
	}
}

// stabMultiplier implements §4.3 step 7, including the doubled-STAB and
// Stellar rules from §9's Open Question (resolved in DESIGN.md): a move
// matching one of the attacker's original types gets x1.5; Terastallizing
// into that same original type doubles it to x2.0; Terastallizing into a
// new type still grants x1.5 for that new type. A Stellar Terastallization
// grants x1.2 the first time this battle the attacker hits with this move
// type, or x2.0 if the move type is one of the attacker's original types.
func stabMultiplier(attacker *Pokemon, moveType typechart.Type) float64 {
	if attacker.Terastallized && attacker.TeraType == TeraStellar {
		if attacker.StellarUsed == nil {
			attacker.StellarUsed = make(map[typechart.Type]bool)
		}
		if attacker.HasOriginalType(moveType) {
			return 2.0
		}
		if !attacker.StellarUsed[moveType] {
			attacker.StellarUsed[moveType] = true
			return 1.2
		}
		return 1.0
	}

	original := attacker.HasOriginalType(moveType)
	if attacker.Terastallized && attacker.TeraType != TeraNone {
		if attacker.TeraType == moveType {
			if original {
				return 2.0
			}
			return 1.5
		}
		if original {
			return 1.5
		}
		return 1.0
	}

	if original {
		return 1.5
	}
	return 1.0
}

// applyWeather implements §4.3 step 4.
func applyWeather(s *State, move *data.MoveData, defender *Pokemon, base int) int {
	switch s.Weather {
	case WeatherSun:
		if move.Type == typechart.Fire {
			base = base * 3 / 2
		} else if move.Type == typechart.Water {
			base = base / 2
		}
	case WeatherRain:
		if move.Type == typechart.Water {
			base = base * 3 / 2
		} else if move.Type == typechart.Fire {
			base = base / 2
		}
	}

	grounded := s.grounded(defender)
	if grounded {
		switch s.Terrain {
		case TerrainElectric:
			if move.Type == typechart.Electric {
				base = base * 13 / 10
			}
		case TerrainPsychic:
			if move.Type == typechart.Psychic {
				base = base * 13 / 10
			}
		case TerrainMisty:
			if move.Type == typechart.Dragon {
				base = base / 2
			}
		case TerrainGrassy:
			if moveIDsHurtByGrassyTerrain[move.ID] {
				base = base / 2
			}
		}
	}
	return base
}

// SampleMultiHitCount draws the hit count for a move's multi-hit
// distribution (§4.3 step 13), using the non-uniform weighting for the
// standard (2,5) case and a uniform draw otherwise.
func SampleMultiHitCount(s *State, mh data.MultiHit) int {
	if !mh.IsMultiHit() {
		return 1
	}
	if mh.Standard() {
		// 2 -> 3.5/8, 3 -> 3.5/8, 4 -> 1/8, 5 -> 1/8. Scaled to sixteenths
		// so every bucket is an integer: 2->7, 3->7, 4->1, 5->1 (sum 16).
		roll := s.PRNG.Next(16)
		switch {
		case roll < 7:
			return 2
		case roll < 14:
			return 3
		case roll < 15:
			return 4
		default:
			return 5
		}
	}
	return s.PRNG.RangeInclusive(mh.Min, mh.Max)
}

// ConfusionDamage computes the typeless physical self-hit used when a
// confused Pokémon hits itself (§4.3 "Confusion self-damage"): a physical
// 40-base-power typeless attack against the user's own Def, no STAB, no
// crit, and no random factor — the spec names this hit as the one exception
// to step 6, so it draws nothing from the PRNG and leaves the §4.1 draw
// ordering undisturbed.
func ConfusionDamage(s *State, mon *Pokemon) int {
	A := mon.Stat(StatAtk, mon.Stages[StatAtk])
	if mon.Status == data.StatusBurn && !mon.hasAbility(AbilityGuts) {
		A = A / 2
	}
	D := mon.Stat(StatDef, mon.Stages[StatDef])
	base := ((2*mon.Level/5+2)*40*A/D)/50 + 2
	if base <= 0 {
		base = 1
	}
	return base
}
