package tournament

import (
	"fmt"

	"github.com/dougwinr/vgcsim/internal/battle"
	"github.com/dougwinr/vgcsim/internal/data"
)

// Regulation is a named set of bans/clauses applied at team-load time
// (SPEC_FULL.md §10, supplemented from the original implementation's
// tournament/regulation.py), the way a VGC regulation restricts the legal
// pool before a battle ever starts. The core (internal/battle) has no
// notion of a regulation; it only ever sees teams that already passed
// Validate.
type Regulation struct {
	Name string

	// BannedSpecies excludes specific species ids outright (a "restricted
	// Pokémon" or format ban list).
	BannedSpecies map[data.SpeciesID]bool

	// SpeciesClause, when set, rejects a team with two Pokémon of the same
	// species.
	SpeciesClause bool

	// ItemClause, when set, rejects a team with two Pokémon holding the
	// same item.
	ItemClause bool
}

// Validate checks one side's team against the regulation's bans and
// clauses, returning every violation found (not just the first) so a
// team-builder can report them all at once.
func (r Regulation) Validate(team []*battle.Pokemon) []error {
	var errs []error
	seenSpecies := make(map[data.SpeciesID]int)
	seenItems := make(map[data.ItemID]int)

	for i, mon := range team {
		if r.BannedSpecies[mon.Species] {
			errs = append(errs, fmt.Errorf("regulation %s: slot %d species %d is banned", r.Name, i, mon.Species))
		}
		seenSpecies[mon.Species]++
		if mon.Item != 0 {
			seenItems[mon.Item]++
		}
	}

	if r.SpeciesClause {
		for sp, n := range seenSpecies {
			if n > 1 {
				errs = append(errs, fmt.Errorf("regulation %s: species clause violated by species %d (%d copies)", r.Name, sp, n))
			}
		}
	}
	if r.ItemClause {
		for it, n := range seenItems {
			if n > 1 {
				errs = append(errs, fmt.Errorf("regulation %s: item clause violated by item %d (%d copies)", r.Name, it, n))
			}
		}
	}
	return errs
}

// StandardDoubles is a baseline regulation matching typical VGC-style
// doubles rules: no duplicate species, no duplicate held items.
var StandardDoubles = Regulation{
	Name:          "standard-doubles",
	BannedSpecies: map[data.SpeciesID]bool{},
	SpeciesClause: true,
	ItemClause:    true,
}
