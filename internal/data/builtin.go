package data

import "github.com/dougwinr/vgcsim/internal/typechart"

// Builtin move/species/item ids. These are a representative, extensible
// mechanic set (spec.md §1's explicit scoping), not a complete Pokédex —
// real deployments load their own tables via LoadJSON.
const (
	MoveTackle MoveID = iota + 1
	MoveEmber
	MoveFlamethrower
	MoveSurf
	MoveThunderbolt
	MoveEarthquake
	MoveIceBeam
	MoveRockSlide
	MovePsychic
	MoveShadowBall
	MoveDragonClaw
	MoveCrunch
	MoveIronHead
	MoveMoonblast
	MoveCloseCombat
	MoveSludgeBomb
	MoveBugBuzz
	MoveHurricane
	MoveProtect
	MoveWillOWisp
	MoveToxic
	MoveThunderWave
	MoveSpore
	MoveLeechSeed
	MoveRecover
	MoveDoubleEdge
	MoveGigaDrain
	MoveFuryAttack
	MoveStealthRock
	MoveSpikes
	MoveToxicSpikes
	MoveStickyWeb
	MoveSplash
	MoveConfuseRay
	MoveStruggle
)

const (
	SpeciesCharizard SpeciesID = iota + 1
	SpeciesBlastoise
	SpeciesVenusaur
	SpeciesPikachu
	SpeciesGengar
	SpeciesDragonite
	SpeciesTyranitar
	SpeciesSkarmory
	SpeciesGarchomp
	SpeciesTogekiss
	SpeciesExcadrill
	SpeciesVolcarona
	SpeciesGliscor
	SpeciesRotomWash
	SpeciesAegislash
)

const (
	ItemLifeOrb ItemID = iota + 1
	ItemChoiceBand
	ItemChoiceSpecs
	ItemChoiceScarf
	ItemCharcoal
	ItemMysticWater
	ItemLeftovers
)

// Almost every move that targets an opposing Pokémon can be blocked by
// Protect (FlagProtect, §4.5 step d); Struggle is the one builtin exception,
// matching the mainline rule that a forced no-PP move bypasses protection.
func builtinMoves() []*MoveData {
	return []*MoveData{
		{ID: MoveTackle, Name: "Tackle", Type: typechart.Normal, Category: CategoryPhysical, Power: 40, Accuracy: 100, PP: 35, Target: TargetNormal, Flags: FlagContact | FlagProtect},
		{ID: MoveEmber, Name: "Ember", Type: typechart.Fire, Category: CategorySpecial, Power: 40, Accuracy: 100, PP: 25, Target: TargetNormal, Flags: FlagProtect, Secondary: &Secondary{Chance: 10, Status: StatusBurn}},
		{ID: MoveFlamethrower, Name: "Flamethrower", Type: typechart.Fire, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 15, Target: TargetNormal, Flags: FlagProtect, Secondary: &Secondary{Chance: 10, Status: StatusBurn}},
		{ID: MoveSurf, Name: "Surf", Type: typechart.Water, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 15, Target: TargetAllAdjacent, Flags: FlagSpread | FlagProtect},
		{ID: MoveThunderbolt, Name: "Thunderbolt", Type: typechart.Electric, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 15, Target: TargetNormal, Flags: FlagProtect, Secondary: &Secondary{Chance: 10, Status: StatusParalysis}},
		{ID: MoveEarthquake, Name: "Earthquake", Type: typechart.Ground, Category: CategoryPhysical, Power: 100, Accuracy: 100, PP: 10, Target: TargetAllAdjacent, Flags: FlagSpread | FlagProtect},
		{ID: MoveIceBeam, Name: "Ice Beam", Type: typechart.Ice, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 10, Target: TargetNormal, Flags: FlagProtect, Secondary: &Secondary{Chance: 10, Status: StatusFreeze}},
		{ID: MoveRockSlide, Name: "Rock Slide", Type: typechart.Rock, Category: CategoryPhysical, Power: 75, Accuracy: 90, PP: 10, Target: TargetAllAdjacentFoes, Flags: FlagSpread | FlagProtect, Secondary: &Secondary{Chance: 30, VolatileFlinch: true}},
		{ID: MovePsychic, Name: "Psychic", Type: typechart.Psychic, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 10, Target: TargetNormal, Flags: FlagProtect, Secondary: &Secondary{Chance: 10, BoostTarget: [5]int{0, 0, -1, 0, 0}}},
		{ID: MoveShadowBall, Name: "Shadow Ball", Type: typechart.Ghost, Category: CategorySpecial, Power: 80, Accuracy: 100, PP: 15, Target: TargetNormal, Flags: FlagProtect, Secondary: &Secondary{Chance: 20, BoostTarget: [5]int{0, 0, -1, 0, 0}}},
		{ID: MoveDragonClaw, Name: "Dragon Claw", Type: typechart.Dragon, Category: CategoryPhysical, Power: 80, Accuracy: 100, PP: 15, Target: TargetNormal, Flags: FlagContact | FlagProtect},
		{ID: MoveCrunch, Name: "Crunch", Type: typechart.Dark, Category: CategoryPhysical, Power: 80, Accuracy: 100, PP: 15, Target: TargetNormal, Flags: FlagContact | FlagBite | FlagProtect, Secondary: &Secondary{Chance: 20, BoostTarget: [5]int{0, -1, 0, 0, 0}}},
		{ID: MoveIronHead, Name: "Iron Head", Type: typechart.Steel, Category: CategoryPhysical, Power: 80, Accuracy: 100, PP: 15, Target: TargetNormal, Flags: FlagContact | FlagProtect, Secondary: &Secondary{Chance: 30, VolatileFlinch: true}},
		{ID: MoveMoonblast, Name: "Moonblast", Type: typechart.Fairy, Category: CategorySpecial, Power: 95, Accuracy: 100, PP: 15, Target: TargetNormal, Flags: FlagProtect, Secondary: &Secondary{Chance: 30, BoostTarget: [5]int{0, 0, -1, 0, 0}}},
		{ID: MoveCloseCombat, Name: "Close Combat", Type: typechart.Fighting, Category: CategoryPhysical, Power: 120, Accuracy: 100, PP: 5, Target: TargetNormal, Flags: FlagContact | FlagProtect, Secondary: &Secondary{Chance: 100, SelfBoost: [5]int{0, -1, 0, -1, 0}}},
		{ID: MoveSludgeBomb, Name: "Sludge Bomb", Type: typechart.Poison, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 10, Target: TargetNormal, Flags: FlagProtect, Secondary: &Secondary{Chance: 30, Status: StatusPoison}},
		{ID: MoveBugBuzz, Name: "Bug Buzz", Type: typechart.Bug, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 10, Target: TargetNormal, Flags: FlagSound | FlagProtect, Secondary: &Secondary{Chance: 10, BoostTarget: [5]int{0, 0, -1, 0, 0}}},
		{ID: MoveHurricane, Name: "Hurricane", Type: typechart.Flying, Category: CategorySpecial, Power: 110, Accuracy: 70, PP: 10, Target: TargetNormal, Flags: FlagProtect, Secondary: &Secondary{Chance: 30, VolatileConfusion: true}},
		{ID: MoveProtect, Name: "Protect", Type: typechart.Typeless, Category: CategoryStatus, Power: 0, Accuracy: 0, PP: 10, Priority: 4, Target: TargetSelf, Effect: EffectProtect},
		{ID: MoveWillOWisp, Name: "Will-O-Wisp", Type: typechart.Fire, Category: CategoryStatus, Power: 0, Accuracy: 85, PP: 15, Target: TargetNormal, Flags: FlagProtect, Secondary: &Secondary{Chance: 100, Status: StatusBurn}},
		{ID: MoveToxic, Name: "Toxic", Type: typechart.Poison, Category: CategoryStatus, Power: 0, Accuracy: 90, PP: 10, Target: TargetNormal, Flags: FlagProtect, Secondary: &Secondary{Chance: 100, Status: StatusBadlyPoisoned}},
		{ID: MoveThunderWave, Name: "Thunder Wave", Type: typechart.Electric, Category: CategoryStatus, Power: 0, Accuracy: 90, PP: 20, Target: TargetNormal, Flags: FlagProtect, Secondary: &Secondary{Chance: 100, Status: StatusParalysis}},
		{ID: MoveSpore, Name: "Spore", Type: typechart.Grass, Category: CategoryStatus, Power: 0, Accuracy: 100, PP: 15, Target: TargetNormal, Flags: FlagProtect, Secondary: &Secondary{Chance: 100, Status: StatusSleep}},
		{ID: MoveLeechSeed, Name: "Leech Seed", Type: typechart.Grass, Category: CategoryStatus, Power: 0, Accuracy: 90, PP: 10, Target: TargetNormal, Flags: FlagProtect, Effect: EffectLeechSeed},
		{ID: MoveRecover, Name: "Recover", Type: typechart.Typeless, Category: CategoryStatus, Power: 0, Accuracy: 0, PP: 10, Target: TargetSelf, Flags: FlagHeal, Effect: EffectHeal},
		{ID: MoveDoubleEdge, Name: "Double-Edge", Type: typechart.Normal, Category: CategoryPhysical, Power: 120, Accuracy: 100, PP: 15, Target: TargetNormal, Flags: FlagContact | FlagProtect, RecoilNum: 1, RecoilDen: 3},
		{ID: MoveGigaDrain, Name: "Giga Drain", Type: typechart.Grass, Category: CategorySpecial, Power: 75, Accuracy: 100, PP: 10, Target: TargetNormal, Flags: FlagProtect, DrainNum: 1, DrainDen: 2},
		{ID: MoveFuryAttack, Name: "Fury Attack", Type: typechart.Normal, Category: CategoryPhysical, Power: 15, Accuracy: 85, PP: 20, Target: TargetNormal, Flags: FlagContact | FlagProtect, MultiHit: MultiHit{Min: 2, Max: 5}},
		{ID: MoveStealthRock, Name: "Stealth Rock", Type: typechart.Rock, Category: CategoryStatus, Power: 0, Accuracy: 0, PP: 20, Target: TargetFoeSide, Effect: EffectHazardStealthRock},
		{ID: MoveSpikes, Name: "Spikes", Type: typechart.Ground, Category: CategoryStatus, Power: 0, Accuracy: 0, PP: 20, Target: TargetFoeSide, Effect: EffectHazardSpikes},
		{ID: MoveToxicSpikes, Name: "Toxic Spikes", Type: typechart.Poison, Category: CategoryStatus, Power: 0, Accuracy: 0, PP: 20, Target: TargetFoeSide, Effect: EffectHazardToxicSpikes},
		{ID: MoveStickyWeb, Name: "Sticky Web", Type: typechart.Bug, Category: CategoryStatus, Power: 0, Accuracy: 0, PP: 20, Target: TargetFoeSide, Effect: EffectHazardStickyWeb},
		{ID: MoveSplash, Name: "Splash", Type: typechart.Typeless, Category: CategoryStatus, Power: 0, Accuracy: 0, PP: 40, Target: TargetSelf},
		{ID: MoveConfuseRay, Name: "Confuse Ray", Type: typechart.Ghost, Category: CategoryStatus, Power: 0, Accuracy: 100, PP: 10, Target: TargetNormal, Flags: FlagProtect, Secondary: &Secondary{Chance: 100, VolatileConfusion: true}},
		{ID: MoveStruggle, Name: "Struggle", Type: typechart.Typeless, Category: CategoryPhysical, Power: 50, Accuracy: 0, PP: 1, Target: TargetNormal, Flags: FlagContact, RecoilNum: 1, RecoilDen: 4},
	}
}

func builtinSpecies() []*SpeciesData {
	return []*SpeciesData{
		{ID: SpeciesCharizard, Name: "Charizard", Type1: typechart.Fire, Type2: typechart.Flying, BaseHP: 78, BaseAtk: 84, BaseDef: 78, BaseSpA: 109, BaseSpD: 85, BaseSpe: 100, Grounded: false},
		{ID: SpeciesBlastoise, Name: "Blastoise", Type1: typechart.Water, Type2: typechart.Water, BaseHP: 79, BaseAtk: 83, BaseDef: 100, BaseSpA: 85, BaseSpD: 105, BaseSpe: 78, Grounded: true},
		{ID: SpeciesVenusaur, Name: "Venusaur", Type1: typechart.Grass, Type2: typechart.Poison, BaseHP: 80, BaseAtk: 82, BaseDef: 83, BaseSpA: 100, BaseSpD: 100, BaseSpe: 80, Grounded: true},
		{ID: SpeciesPikachu, Name: "Pikachu", Type1: typechart.Electric, Type2: typechart.Electric, BaseHP: 35, BaseAtk: 55, BaseDef: 40, BaseSpA: 50, BaseSpD: 50, BaseSpe: 90, Grounded: true},
		{ID: SpeciesGengar, Name: "Gengar", Type1: typechart.Ghost, Type2: typechart.Poison, BaseHP: 60, BaseAtk: 65, BaseDef: 60, BaseSpA: 130, BaseSpD: 75, BaseSpe: 110, Grounded: true},
		{ID: SpeciesDragonite, Name: "Dragonite", Type1: typechart.Dragon, Type2: typechart.Flying, BaseHP: 91, BaseAtk: 134, BaseDef: 95, BaseSpA: 100, BaseSpD: 100, BaseSpe: 80, Grounded: false},
		{ID: SpeciesTyranitar, Name: "Tyranitar", Type1: typechart.Rock, Type2: typechart.Dark, BaseHP: 100, BaseAtk: 134, BaseDef: 110, BaseSpA: 95, BaseSpD: 100, BaseSpe: 61, Grounded: true},
		{ID: SpeciesSkarmory, Name: "Skarmory", Type1: typechart.Steel, Type2: typechart.Flying, BaseHP: 65, BaseAtk: 80, BaseDef: 140, BaseSpA: 40, BaseSpD: 70, BaseSpe: 70, Grounded: false},
		{ID: SpeciesGarchomp, Name: "Garchomp", Type1: typechart.Dragon, Type2: typechart.Ground, BaseHP: 108, BaseAtk: 130, BaseDef: 95, BaseSpA: 80, BaseSpD: 85, BaseSpe: 102, Grounded: true},
		{ID: SpeciesTogekiss, Name: "Togekiss", Type1: typechart.Fairy, Type2: typechart.Flying, BaseHP: 85, BaseAtk: 50, BaseDef: 95, BaseSpA: 120, BaseSpD: 115, BaseSpe: 80, Grounded: false},
		{ID: SpeciesExcadrill, Name: "Excadrill", Type1: typechart.Ground, Type2: typechart.Steel, BaseHP: 110, BaseAtk: 135, BaseDef: 60, BaseSpA: 50, BaseSpD: 65, BaseSpe: 88, Grounded: true},
		{ID: SpeciesVolcarona, Name: "Volcarona", Type1: typechart.Bug, Type2: typechart.Fire, BaseHP: 85, BaseAtk: 60, BaseDef: 65, BaseSpA: 135, BaseSpD: 105, BaseSpe: 100, Grounded: true},
		{ID: SpeciesGliscor, Name: "Gliscor", Type1: typechart.Ground, Type2: typechart.Flying, BaseHP: 75, BaseAtk: 95, BaseDef: 125, BaseSpA: 45, BaseSpD: 75, BaseSpe: 95, Grounded: false},
		{ID: SpeciesRotomWash, Name: "Rotom-Wash", Type1: typechart.Electric, Type2: typechart.Water, BaseHP: 50, BaseAtk: 65, BaseDef: 107, BaseSpA: 105, BaseSpD: 107, BaseSpe: 86, Grounded: true},
		{ID: SpeciesAegislash, Name: "Aegislash", Type1: typechart.Steel, Type2: typechart.Ghost, BaseHP: 60, BaseAtk: 50, BaseDef: 140, BaseSpA: 50, BaseSpD: 140, BaseSpe: 60, Grounded: true},
	}
}

func builtinItems() []*ItemData {
	return []*ItemData{
		{ID: ItemLifeOrb, Name: "Life Orb", Kind: ItemKindDamageBoostAll, Multiplier: 1.3},
		{ID: ItemChoiceBand, Name: "Choice Band", Kind: ItemKindChoice, StatBoost: [5]float64{1.5, 1, 1, 1, 1}},
		{ID: ItemChoiceSpecs, Name: "Choice Specs", Kind: ItemKindChoice, StatBoost: [5]float64{1, 1, 1.5, 1, 1}},
		{ID: ItemChoiceScarf, Name: "Choice Scarf", Kind: ItemKindChoice, StatBoost: [5]float64{1, 1, 1, 1, 1.5}},
		{ID: ItemCharcoal, Name: "Charcoal", Kind: ItemKindTypeBoostPlate, BoostType: typechart.Fire, Multiplier: 1.2},
		{ID: ItemMysticWater, Name: "Mystic Water", Kind: ItemKindTypeBoostPlate, BoostType: typechart.Water, Multiplier: 1.2},
		{ID: ItemLeftovers, Name: "Leftovers", Kind: ItemKindBerry},
	}
}

// Builtin returns the module's representative, extensible mechanic-set
// registry. It panics on internal construction failure (duplicate/zero ids
// would be a programming bug in this file, never a runtime condition).
func Builtin() *Registry {
	r, err := NewRegistry(builtinMoves(), builtinSpecies(), builtinItems())
	if err != nil {
		panic("data: builtin registry invalid: " + err.Error())
	}
	return r
}
