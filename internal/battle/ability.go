package battle

import "github.com/dougwinr/vgcsim/internal/typechart"

// AbilityID identifies one of the representative abilities this mechanic
// set recognizes (§1: "a representative, extensible mechanic set", not
// every ability interaction in the real game).
type AbilityID int

const (
	AbilityNone AbilityID = iota
	AbilityGuts
	AbilityLevitate
	AbilityInfiltrator
	AbilityQuickFeet
)

func (p *Pokemon) hasAbility(id AbilityID) bool {
	return AbilityID(p.Ability) == id
}

// grounded reports whether a Pokémon is affected by ground-based field
// effects (entry hazards other than Stealth Rock, Grassy Terrain healing,
// etc). Flying-type and Levitate both exempt a Pokémon.
func (s *State) grounded(mon *Pokemon) bool {
	if mon.hasAbility(AbilityLevitate) {
		return false
	}
	if mon.EffectiveType1() == typechart.Flying || mon.EffectiveType2() == typechart.Flying {
		return false
	}
	return true
}
