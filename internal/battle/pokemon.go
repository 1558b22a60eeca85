package battle

import (
	"github.com/dougwinr/vgcsim/internal/data"
	"github.com/dougwinr/vgcsim/internal/typechart"
)

// Stat indexes the five modifiable battle stats, used both for stage arrays
// and for Choice item / secondary-effect boost deltas ([5]int / [5]float64).
type Stat int

const (
	StatAtk Stat = iota
	StatDef
	StatSpA
	StatSpD
	StatSpe
)

// MoveSlot is one of a Pokémon's four move slots. An empty slot has ID 0
// and 0 PP (§3 invariant).
type MoveSlot struct {
	ID        data.MoveID
	PP        int
	MaxPP     int
	Disabled  bool
}

// Empty reports whether this slot holds no move.
func (s MoveSlot) Empty() bool { return s.ID == 0 }

// Volatiles holds the transient, field-presence-scoped flags and counters
// on a Pokémon (§3: "lasts only while it remains on the field").
type Volatiles struct {
	ProtectUsedThisTurn bool
	ProtectStreak       int // consecutive successful Protects this turn-chain, for breakage odds
	FlinchThisTurn      bool
	ConfusionTurns      int // remaining turns of confusion, 0 = not confused
	LeechSeeded         bool
	SubstituteHP        int
	EncoreTurns         int
	TaunTurns           int
	DisableTurns        int
	LastMoveUsed        data.MoveID
	FocusEnergy         bool
}

// Pokemon is the fixed-width battle record for one team member. Field
// layout favors semantic accessors over the source's flat numeric array
// (§9 "Mapping dynamic data"); both preserve the same invariants and the
// same serialization contract.
type Pokemon struct {
	Species    data.SpeciesID
	Level      int
	Nature     int // nature id, applied at stat-calc time outside this struct
	Ability    int
	Item       data.ItemID
	Type1      typechart.Type
	Type2      typechart.Type
	TeraType   typechart.Type // -1 (TeraNone) if the Pokémon cannot/has not Terastallized
	Terastallized bool

	BaseHP, BaseAtk, BaseDef, BaseSpA, BaseSpD, BaseSpe int
	MaxHP, CurrentHP                                    int

	Status        data.Status
	StatusCounter int // sleep turns remaining, or toxic tick counter

	Stages [7]int // index by Stat for 0..4; index 5 = Accuracy, 6 = Evasion

	Moves [4]MoveSlot

	Volatiles Volatiles

	// StellarUsed tracks, for a Stellar Terastallization, which attacking
	// types have already received the one-time 1.2x boost this battle
	// (§4.3 step 7, §9 Open Question on Stellar). Lazily initialized.
	StellarUsed map[typechart.Type]bool
}

// TeraNone is the sentinel Tera type meaning "has not Terastallized / cannot".
const TeraNone typechart.Type = -1

// TeraStellar is the sentinel Tera type for a Stellar Terastallization: it
// does not change defensive typing (EffectiveType1/2 still report the
// Pokémon's original types) but grants the Stellar STAB rule (§4.3 step 7).
const TeraStellar typechart.Type = -2

const (
	StageAccuracy = 5
	StageEvasion  = 6
)

// Fainted reports whether this Pokémon has 0 current HP (§3 invariant:
// currentHP == 0 iff fainted).
func (p *Pokemon) Fainted() bool { return p.CurrentHP <= 0 }

// EffectiveType1/EffectiveType2 return the defensive/offensive types used
// for type-chart lookups: the Tera type overrides both slots once
// Terastallized (§4.3 step 1), except for a Stellar Tera type, which keeps
// the original types; Stellar's offensive boost is applied in damage.go's
// stabMultiplier.
func (p *Pokemon) EffectiveType1() typechart.Type {
	if p.Terastallized && p.TeraType != TeraNone && p.TeraType != TeraStellar {
		return p.TeraType
	}
	return p.Type1
}

func (p *Pokemon) EffectiveType2() typechart.Type {
	if p.Terastallized && p.TeraType != TeraNone && p.TeraType != TeraStellar {
		return p.TeraType
	}
	return p.Type2
}

// HasOriginalType reports whether t was one of this Pokémon's types before
// any Terastallization, used by the STAB step (§4.3 step 7).
func (p *Pokemon) HasOriginalType(t typechart.Type) bool {
	return p.Type1 == t || p.Type2 == t
}

// StageMultiplier applies the standard Gen-6+ stage formula (§3 invariant):
// max(2, 2+s)/max(2, 2-s) for battle stats, max(3, 3+s)/max(3, 3-s) for
// accuracy/evasion.
func StageMultiplier(stage int, accuracyLike bool) float64 {
	if stage > 6 {
		stage = 6
	}
	if stage < -6 {
		stage = -6
	}
	base := 2
	if accuracyLike {
		base = 3
	}
	num := base + stage
	if num < base {
		num = base
	}
	den := base - stage
	if den < base {
		den = base
	}
	return float64(num) / float64(den)
}

// Stat returns the post-stage value of one of the five battle stats (no
// item/ability/status modifiers applied; those are folded in by the damage
// pipeline, which needs finer control over ordering).
func (p *Pokemon) Stat(s Stat, stage int) int {
	var base int
	switch s {
	case StatAtk:
		base = p.BaseAtk
	case StatDef:
		base = p.BaseDef
	case StatSpA:
		base = p.BaseSpA
	case StatSpD:
		base = p.BaseSpD
	case StatSpe:
		base = p.BaseSpe
	}
	return int(float64(base) * StageMultiplier(stage, false))
}

// ApplyBoost adds delta to the stage for stat idx (0-4 battle stats, 5
// accuracy, 6 evasion), clamped to [-6, +6] (§3 invariant). Returns the
// amount actually applied (useful for Contrary/Mist-style callers and for
// BOOST/UNBOOST event amounts).
func (p *Pokemon) ApplyBoost(idx int, delta int) int {
	before := p.Stages[idx]
	after := before + delta
	if after > 6 {
		after = 6
	}
	if after < -6 {
		after = -6
	}
	p.Stages[idx] = after
	return after - before
}

// SetStatus sets a non-volatile status if none is already present (§3: "at
// most one non-volatile status at a time"). Returns false if a status was
// already present and this call was a no-op.
func (p *Pokemon) SetStatus(s data.Status) bool {
	if p.Status != data.StatusNone {
		return false
	}
	p.Status = s
	if s == data.StatusBadlyPoisoned {
		p.StatusCounter = 0
	}
	return true
}

// CureStatus clears any non-volatile status and its counter.
func (p *Pokemon) CureStatus() {
	p.Status = data.StatusNone
	p.StatusCounter = 0
}

// Damage subtracts amount from current HP, floored at 0. Returns the
// amount actually removed (§3 invariant: 0 <= currentHP <= maxHP).
func (p *Pokemon) Damage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	before := p.CurrentHP
	p.CurrentHP -= amount
	if p.CurrentHP < 0 {
		p.CurrentHP = 0
	}
	return before - p.CurrentHP
}

// Heal adds amount to current HP, capped at max HP. Returns the amount
// actually restored.
func (p *Pokemon) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	before := p.CurrentHP
	p.CurrentHP += amount
	if p.CurrentHP > p.MaxHP {
		p.CurrentHP = p.MaxHP
	}
	return p.CurrentHP - before
}
