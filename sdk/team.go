package sdk

import (
	"fmt"

	"github.com/dougwinr/vgcsim/internal/battle"
	"github.com/dougwinr/vgcsim/internal/data"
)

// NewPokemon builds a level-50 battle.Pokemon from a registry species
// entry and up to four moves, the same construction internal/battle's own
// tests use (internal/battle/testutil_test.go's newMon), exported here so
// cmd/* drivers and out-of-process agents can build demo/sample teams
// without reaching into the battle package's unexported test helpers.
func NewPokemon(reg *data.Registry, species data.SpeciesID, item data.ItemID, moves ...data.MoveID) (*battle.Pokemon, error) {
	sp, ok := reg.Species(species)
	if !ok {
		return nil, fmt.Errorf("sdk: unknown species id %d", species)
	}
	p := &battle.Pokemon{
		Species:  species,
		Level:    50,
		Item:     item,
		Type1:    sp.Type1,
		Type2:    sp.Type2,
		TeraType: battle.TeraNone,
		BaseHP:   sp.BaseHP * 2,
		BaseAtk:  sp.BaseAtk,
		BaseDef:  sp.BaseDef,
		BaseSpA:  sp.BaseSpA,
		BaseSpD:  sp.BaseSpD,
		BaseSpe:  sp.BaseSpe,
	}
	p.MaxHP = p.BaseHP
	p.CurrentHP = p.MaxHP
	for i, m := range moves {
		if i >= len(p.Moves) {
			break
		}
		md, ok := reg.Move(m)
		if !ok {
			return nil, fmt.Errorf("sdk: unknown move id %d", m)
		}
		p.Moves[i] = battle.MoveSlot{ID: m, PP: md.PP, MaxPP: md.PP}
	}
	return p, nil
}

// SampleTeam builds a small fixed six-member team from the builtin
// registry, used by cmd/vgc-battle, cmd/vgc-play and cmd/vgc-tournament's
// default TeamProvider when no team file is supplied. It panics on error
// since the builtin table is the package's own data and any failure here
// is a programming bug, matching the teacher's own Builtin()'s panic on
// invalid static tables.
func SampleTeam(reg *data.Registry) []*battle.Pokemon {
	entries := []struct {
		species data.SpeciesID
		item    data.ItemID
		moves   []data.MoveID
	}{
		{data.SpeciesCharizard, data.ItemLifeOrb, []data.MoveID{data.MoveFlamethrower, data.MoveHurricane, data.MoveProtect, data.MoveSplash}},
		{data.SpeciesGarchomp, 0, []data.MoveID{data.MoveEarthquake, data.MoveDragonClaw, data.MoveRockSlide, data.MoveProtect}},
		{data.SpeciesTyranitar, 0, []data.MoveID{data.MoveCrunch, data.MoveRockSlide, data.MoveEarthquake, data.MoveProtect}},
		{data.SpeciesTogekiss, 0, []data.MoveID{data.MoveMoonblast, data.MoveHurricane, data.MoveThunderWave, data.MoveProtect}},
		{data.SpeciesGengar, 0, []data.MoveID{data.MoveShadowBall, data.MoveSludgeBomb, data.MovePsychic, data.MoveProtect}},
		{data.SpeciesSkarmory, 0, []data.MoveID{data.MoveIronHead, data.MoveStealthRock, data.MoveSpikes, data.MoveProtect}},
	}
	team := make([]*battle.Pokemon, 0, len(entries))
	for _, e := range entries {
		mon, err := NewPokemon(reg, e.species, e.item, e.moves...)
		if err != nil {
			panic("sdk: sample team invalid: " + err.Error())
		}
		team = append(team, mon)
	}
	return team
}
