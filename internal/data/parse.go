package data

import (
	"fmt"
	"strings"

	"github.com/dougwinr/vgcsim/internal/typechart"
)

var typeNames = map[string]typechart.Type{
	"normal": typechart.Normal, "fire": typechart.Fire, "water": typechart.Water,
	"electric": typechart.Electric, "grass": typechart.Grass, "ice": typechart.Ice,
	"fighting": typechart.Fighting, "poison": typechart.Poison, "ground": typechart.Ground,
	"flying": typechart.Flying, "psychic": typechart.Psychic, "bug": typechart.Bug,
	"rock": typechart.Rock, "ghost": typechart.Ghost, "dragon": typechart.Dragon,
	"dark": typechart.Dark, "steel": typechart.Steel, "fairy": typechart.Fairy,
	"typeless": typechart.Typeless, "": typechart.Typeless,
}

func parseType(s string) (typechart.Type, error) {
	t, ok := typeNames[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown type %q", s)
	}
	return t, nil
}

func parseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "physical":
		return CategoryPhysical, nil
	case "special":
		return CategorySpecial, nil
	case "status", "":
		return CategoryStatus, nil
	default:
		return 0, fmt.Errorf("unknown category %q", s)
	}
}

var targetNames = map[string]TargetMode{
	"normal": TargetNormal, "adjacent_foe": TargetAdjacentFoe, "self": TargetSelf,
	"adjacent_ally": TargetAdjacentAlly, "adjacent_ally_or_self": TargetAdjacentAllyOrSelf,
	"all_adjacent_foes": TargetAllAdjacentFoes, "all_adjacent": TargetAllAdjacent,
	"all_allies": TargetAllAllies, "all": TargetAll, "any": TargetAny,
	"ally_side": TargetAllySide, "foe_side": TargetFoeSide, "ally_team": TargetAllyTeam,
	"random_normal": TargetRandomNormal, "scripted": TargetScripted,
}

func parseTarget(s string) (TargetMode, error) {
	if s == "" {
		return TargetNormal, nil
	}
	t, ok := targetNames[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown target mode %q", s)
	}
	return t, nil
}

var flagNames = map[string]Flag{
	"protect": FlagProtect, "contact": FlagContact, "sound": FlagSound,
	"defrost": FlagDefrost, "bite": FlagBite, "punch": FlagPunch,
	"pulse": FlagPulse, "bullet": FlagBullet, "heal": FlagHeal, "spread": FlagSpread,
}

func parseFlag(s string) (Flag, error) {
	f, ok := flagNames[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown move flag %q", s)
	}
	return f, nil
}

func parseItemKind(s string) (ItemKind, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return ItemKindNone, nil
	case "choice":
		return ItemKindChoice, nil
	case "damage_boost_all":
		return ItemKindDamageBoostAll, nil
	case "type_boost_plate":
		return ItemKindTypeBoostPlate, nil
	case "berry":
		return ItemKindBerry, nil
	default:
		return 0, fmt.Errorf("unknown item kind %q", s)
	}
}
