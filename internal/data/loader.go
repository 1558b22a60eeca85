package data

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dougwinr/vgcsim/internal/typechart"
)

// jsonMove/jsonSpecies/jsonItem mirror MoveData/SpeciesData/ItemData with
// exported primitive fields so the registry's JSON fixtures stay decoupled
// from internal representation changes (e.g. typechart.Type's numeric
// encoding).
type jsonMove struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Category  string     `json:"category"`
	Power     int        `json:"power"`
	Accuracy  int        `json:"accuracy"`
	PP        int        `json:"pp"`
	Priority  int        `json:"priority"`
	Target    string     `json:"target"`
	Flags     []string   `json:"flags"`
	Secondary *Secondary `json:"secondary,omitempty"`
	MultiHit  *MultiHit  `json:"multi_hit,omitempty"`
	RecoilNum int        `json:"recoil_num"`
	RecoilDen int        `json:"recoil_den"`
	DrainNum  int        `json:"drain_num"`
	DrainDen  int        `json:"drain_den"`
}

type jsonSpecies struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Type1    string `json:"type1"`
	Type2    string `json:"type2"`
	BaseHP   int    `json:"hp"`
	BaseAtk  int    `json:"atk"`
	BaseDef  int    `json:"def"`
	BaseSpA  int    `json:"spa"`
	BaseSpD  int    `json:"spd"`
	BaseSpe  int    `json:"spe"`
	Grounded bool   `json:"grounded"`
}

type jsonItem struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Kind       string     `json:"kind"`
	BoostType  string     `json:"boost_type,omitempty"`
	Multiplier float64    `json:"multiplier,omitempty"`
	StatBoost  [5]float64 `json:"stat_boost,omitempty"`
}

// LoadJSON builds a Registry from three JSON fixtures (moves, species,
// items). This is the extensible path for deployments that need more than
// the built-in representative set; the shapes match the teacher pack's
// convention of a separate loader module per registry.
func LoadJSON(movesR, speciesR, itemsR io.Reader) (*Registry, error) {
	var jMoves []jsonMove
	if err := json.NewDecoder(movesR).Decode(&jMoves); err != nil {
		return nil, fmt.Errorf("data: decode moves: %w", err)
	}
	var jSpecies []jsonSpecies
	if err := json.NewDecoder(speciesR).Decode(&jSpecies); err != nil {
		return nil, fmt.Errorf("data: decode species: %w", err)
	}
	var jItems []jsonItem
	if err := json.NewDecoder(itemsR).Decode(&jItems); err != nil {
		return nil, fmt.Errorf("data: decode items: %w", err)
	}

	moves := make([]*MoveData, 0, len(jMoves))
	for _, jm := range jMoves {
		typ, err := parseType(jm.Type)
		if err != nil {
			return nil, fmt.Errorf("data: move %q: %w", jm.Name, err)
		}
		cat, err := parseCategory(jm.Category)
		if err != nil {
			return nil, fmt.Errorf("data: move %q: %w", jm.Name, err)
		}
		target, err := parseTarget(jm.Target)
		if err != nil {
			return nil, fmt.Errorf("data: move %q: %w", jm.Name, err)
		}
		var flags Flag
		for _, f := range jm.Flags {
			fl, err := parseFlag(f)
			if err != nil {
				return nil, fmt.Errorf("data: move %q: %w", jm.Name, err)
			}
			flags |= fl
		}
		mh := MultiHit{Min: 1, Max: 1}
		if jm.MultiHit != nil {
			mh = *jm.MultiHit
		}
		moves = append(moves, &MoveData{
			ID: MoveID(jm.ID), Name: jm.Name, Type: typ, Category: cat,
			Power: jm.Power, Accuracy: jm.Accuracy, PP: jm.PP, Priority: jm.Priority,
			Target: target, Flags: flags, Secondary: jm.Secondary, MultiHit: mh,
			RecoilNum: jm.RecoilNum, RecoilDen: jm.RecoilDen, DrainNum: jm.DrainNum, DrainDen: jm.DrainDen,
		})
	}

	species := make([]*SpeciesData, 0, len(jSpecies))
	for _, js := range jSpecies {
		t1, err := parseType(js.Type1)
		if err != nil {
			return nil, fmt.Errorf("data: species %q: %w", js.Name, err)
		}
		t2 := t1
		if js.Type2 != "" {
			t2, err = parseType(js.Type2)
			if err != nil {
				return nil, fmt.Errorf("data: species %q: %w", js.Name, err)
			}
		}
		species = append(species, &SpeciesData{
			ID: SpeciesID(js.ID), Name: js.Name, Type1: t1, Type2: t2,
			BaseHP: js.BaseHP, BaseAtk: js.BaseAtk, BaseDef: js.BaseDef,
			BaseSpA: js.BaseSpA, BaseSpD: js.BaseSpD, BaseSpe: js.BaseSpe,
			Grounded: js.Grounded,
		})
	}

	items := make([]*ItemData, 0, len(jItems))
	for _, ji := range jItems {
		kind, err := parseItemKind(ji.Kind)
		if err != nil {
			return nil, fmt.Errorf("data: item %q: %w", ji.Name, err)
		}
		var boostType typechart.Type
		if ji.BoostType != "" {
			boostType, err = parseType(ji.BoostType)
			if err != nil {
				return nil, fmt.Errorf("data: item %q: %w", ji.Name, err)
			}
		}
		items = append(items, &ItemData{
			ID: ItemID(ji.ID), Name: ji.Name, Kind: kind, BoostType: boostType,
			Multiplier: ji.Multiplier, StatBoost: ji.StatBoost,
		})
	}

	return NewRegistry(moves, species, items)
}
