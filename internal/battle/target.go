package battle

import "github.com/dougwinr/vgcsim/internal/data"

// TargetSpec identifies one resolved target. Slot >= 0 means a concrete
// active-slot Pokémon; Slot == SideConditionsSlot means "that side's
// conditions"; Slot == TeamSlot means "that side's entire team" (§4.2).
type TargetSpec struct {
	Side, Slot int
}

const (
	SideConditionsSlot = -1
	TeamSlot           = -2
)

// ExplicitTarget is the caller-supplied target from a MOVE choice, prior to
// resolution (§6 Choice encoding: target>0 opponent slot, target<0 ally
// slot, target==0 default, out-of-range falls back to default).
type ExplicitTarget struct {
	Present bool
	Side    int
	Slot    int
}

// ResolveTargets maps a move's target mode and the user's explicit target
// (if any) to concrete target specifiers, per the policy table in §4.2.
// Fainted or empty slots are always filtered out, except for side/team
// targets which are never filtered.
func ResolveTargets(s *State, userSide, userSlot int, mode data.TargetMode, explicit ExplicitTarget) []TargetSpec {
	oppSide := 1 - userSide

	nonFainted := func(side, slot int) bool {
		mon := s.ActivePokemon(side, slot)
		return mon != nil && !mon.Fainted()
	}

	firstNonFaintedOpp := func() []TargetSpec {
		for slot := range s.Sides[oppSide].Active {
			if nonFainted(oppSide, slot) {
				return []TargetSpec{{oppSide, slot}}
			}
		}
		return nil
	}

	filterNonFainted := func(specs []TargetSpec) []TargetSpec {
		out := specs[:0:0]
		for _, spec := range specs {
			if spec.Slot >= 0 && !nonFainted(spec.Side, spec.Slot) {
				continue
			}
			out = append(out, spec)
		}
		return out
	}

	switch mode {
	case data.TargetNormal, data.TargetAdjacentFoe:
		if explicit.Present && nonFainted(explicit.Side, explicit.Slot) {
			return []TargetSpec{{explicit.Side, explicit.Slot}}
		}
		return firstNonFaintedOpp()

	case data.TargetSelf:
		return []TargetSpec{{userSide, userSlot}}

	case data.TargetAdjacentAlly:
		if s.Format.Slots < 2 {
			return nil
		}
		for slot := range s.Sides[userSide].Active {
			if slot != userSlot && nonFainted(userSide, slot) {
				return []TargetSpec{{userSide, slot}}
			}
		}
		return nil

	case data.TargetAdjacentAllyOrSelf:
		if explicit.Present {
			if nonFainted(explicit.Side, explicit.Slot) {
				return []TargetSpec{{explicit.Side, explicit.Slot}}
			}
			return nil
		}
		return []TargetSpec{{userSide, userSlot}}

	case data.TargetAllAdjacentFoes:
		var out []TargetSpec
		for slot := range s.Sides[oppSide].Active {
			if nonFainted(oppSide, slot) {
				out = append(out, TargetSpec{oppSide, slot})
			}
		}
		return out

	case data.TargetAllAdjacent:
		var out []TargetSpec
		for slot := range s.Sides[oppSide].Active {
			if nonFainted(oppSide, slot) {
				out = append(out, TargetSpec{oppSide, slot})
			}
		}
		for slot := range s.Sides[userSide].Active {
			if slot != userSlot && nonFainted(userSide, slot) {
				out = append(out, TargetSpec{userSide, slot})
			}
		}
		return out

	case data.TargetAllAllies:
		var out []TargetSpec
		for slot := range s.Sides[userSide].Active {
			if slot != userSlot && nonFainted(userSide, slot) {
				out = append(out, TargetSpec{userSide, slot})
			}
		}
		return out

	case data.TargetAll:
		var out []TargetSpec
		for side := 0; side < 2; side++ {
			for slot := range s.Sides[side].Active {
				if nonFainted(side, slot) {
					out = append(out, TargetSpec{side, slot})
				}
			}
		}
		return out

	case data.TargetAny:
		if explicit.Present && nonFainted(explicit.Side, explicit.Slot) {
			return []TargetSpec{{explicit.Side, explicit.Slot}}
		}
		return nil

	case data.TargetAllySide:
		return []TargetSpec{{userSide, SideConditionsSlot}}

	case data.TargetFoeSide:
		return []TargetSpec{{oppSide, SideConditionsSlot}}

	case data.TargetAllyTeam:
		return []TargetSpec{{userSide, TeamSlot}}

	case data.TargetRandomNormal:
		var candidates []int
		for slot := range s.Sides[oppSide].Active {
			if nonFainted(oppSide, slot) {
				candidates = append(candidates, slot)
			}
		}
		if len(candidates) == 0 {
			return nil
		}
		pick := candidates[s.PRNG.Next(len(candidates))]
		return []TargetSpec{{oppSide, pick}}

	case data.TargetScripted:
		// The move's own effect code supplies the list; the resolver has
		// nothing generic to contribute beyond filtering, which a caller
		// applies to whatever it builds.
		return filterNonFainted(nil)

	default:
		return firstNonFaintedOpp()
	}
}
