package battle

import "github.com/dougwinr/vgcsim/internal/data"

func newMon(species data.SpeciesID, reg *data.Registry, moves ...data.MoveID) *Pokemon {
	sp, ok := reg.Species(species)
	if !ok {
		panic("newMon: unknown species")
	}
	p := &Pokemon{
		Species: species,
		Level:   50,
		Item:    0,
		Type1:   sp.Type1,
		Type2:   sp.Type2,
		TeraType: TeraNone,
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
			panic("newMon: unknown move")
		}
		p.Moves[i] = MoveSlot{ID: m, PP: md.PP, MaxPP: md.PP}
	}
	return p
}

func newSinglesState(seed int64, reg *data.Registry, a, b *Pokemon) *State {
	s := NewState(seed, reg, Format{Slots: 1, TeamSize: 1})
	s.LoadTeam(0, []*Pokemon{a})
	s.LoadTeam(1, []*Pokemon{b})
	s.StartBattle()
	return s
}
