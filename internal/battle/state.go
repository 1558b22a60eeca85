package battle

import (
	"github.com/dougwinr/vgcsim/internal/data"
	"github.com/dougwinr/vgcsim/internal/randutil"
)

// WeatherID / TerrainID identify the field-wide weather and terrain, with
// NoWeather / NoTerrain as the zero-value "none" states.
type WeatherID int

const (
	NoWeather WeatherID = iota
	WeatherSun
	WeatherRain
	WeatherSand
	WeatherHail
)

type TerrainID int

const (
	NoTerrain TerrainID = iota
	TerrainElectric
	TerrainGrassy
	TerrainMisty
	TerrainPsychic
)

// SideConditions holds the per-side counters listed in §3. A counter of 0
// means the condition is inactive; all counters strictly decrease by 1 per
// end-of-turn upkeep until reaching 0 (§3 invariant), at which point the
// condition is considered cleared.
type SideConditions struct {
	Reflect      int
	LightScreen  int
	AuroraVeil   int
	Safeguard    int
	Mist         int
	Tailwind     int
	StealthRock  bool
	Spikes       int // layers, 0-3
	ToxicSpikes  int // layers, 0-2
	StickyWeb    bool
	WideGuard    int
	QuickGuard   int
	WishPending  int // amount pending to land next upkeep, 0 = none
	HealingWish  bool
	LunarDance   bool
}

// SlotCondition holds per-active-slot conditions (§3).
type SlotCondition struct {
	FutureSightTurns  int
	FutureSightDamage int
	FutureSightSide   int
	HealingWishPending bool
}

// FaintEntry is one pending (side, slot) pair awaiting forced switch (§4.6).
type FaintEntry struct {
	Side, Slot int
}

// Side is one of the two battle participants.
type Side struct {
	Team      []*Pokemon // index = team index
	Active    []int      // length K; team index per active slot, -1 if empty
	Cond      SideConditions
	SlotCond  []SlotCondition // length K
	UsedTera  bool
	UsedMega  bool
	UsedZMove bool
	UsedDyna  bool
}

// Format describes the battle's dimensions: number of simultaneous active
// slots per side (1 singles, 2 doubles) and team size.
type Format struct {
	Slots    int
	TeamSize int
	MaxTurns int // 0 means "use DefaultMaxTurns"
	FullInformation bool
	TeamPreview bool
}

// DefaultMaxTurns bounds a battle when the caller's Format leaves MaxTurns
// unset (§4.8: "If turn > maxTurns, force draw").
const DefaultMaxTurns = 1000

// State is the full two-sided battle state (§3).
type State struct {
	Sides  [2]*Side
	Format Format

	Weather      WeatherID
	WeatherTurns int
	Terrain      TerrainID
	TerrainTurns int
	TrickRoomTurns int
	GravityTurns   int
	MagicRoomTurns int
	WonderRoomTurns int
	MudSportTurns   int
	WaterSportTurns int

	Turn   int
	PRNG   *randutil.PRNG
	Faints []FaintEntry

	Ended  bool
	Winner int // -1 draw, 0 or 1 side index

	Registry *data.Registry
	Log      *EventLog
}

// NewState constructs an empty, un-started battle state: teams must still
// be loaded and StartBattle called before Step is usable.
func NewState(seed int64, reg *data.Registry, format Format) *State {
	if format.Slots <= 0 {
		format.Slots = 1
	}
	if format.TeamSize <= 0 {
		format.TeamSize = 6
	}
	if format.MaxTurns <= 0 {
		format.MaxTurns = DefaultMaxTurns
	}
	s := &State{
		Format:   format,
		PRNG:     randutil.New(seed),
		Winner:   -1,
		Registry: reg,
		Log:      NewEventLog(),
	}
	for i := range s.Sides {
		active := make([]int, format.Slots)
		for k := range active {
			active[k] = -1
		}
		s.Sides[i] = &Side{
			Active:   active,
			SlotCond: make([]SlotCondition, format.Slots),
		}
	}
	return s
}

// LoadTeam installs a side's team roster prior to StartBattle.
func (s *State) LoadTeam(side int, team []*Pokemon) {
	s.Sides[side].Team = team
}

// StartBattle places each side's leading team members (index order) into
// active slots and emits BATTLE_START (§3 lifecycle).
func (s *State) StartBattle() {
	for sideIdx, side := range s.Sides {
		slot := 0
		for teamIdx, mon := range side.Team {
			if slot >= len(side.Active) {
				break
			}
			if mon.Fainted() {
				continue
			}
			side.Active[slot] = teamIdx
			slot++
		}
		_ = sideIdx
	}
	s.Log.Append(Event{Type: EventBattleStart, Turn: -1, Side: -1, Slot: -1})
}

// ActivePokemon returns the Pokémon in (side, slot), or nil if the slot is
// empty.
func (s *State) ActivePokemon(side, slot int) *Pokemon {
	teamIdx := s.Sides[side].Active[slot]
	if teamIdx < 0 {
		return nil
	}
	return s.Sides[side].Team[teamIdx]
}

// NonFaintedCount reports how many team members on a side are still alive.
func (s *State) NonFaintedCount(side int) int {
	n := 0
	for _, mon := range s.Sides[side].Team {
		if !mon.Fainted() {
			n++
		}
	}
	return n
}

// ActiveSlots returns every (side, slot) pair currently holding a
// non-fainted Pokémon, in side-then-slot order.
func (s *State) ActiveSlots() []struct{ Side, Slot int } {
	var out []struct{ Side, Slot int }
	for side := 0; side < 2; side++ {
		for slot := range s.Sides[side].Active {
			if mon := s.ActivePokemon(side, slot); mon != nil && !mon.Fainted() {
				out = append(out, struct{ Side, Slot int }{side, slot})
			}
		}
	}
	return out
}

// CheckVictory sets Ended/Winner if either side has zero non-fainted
// Pokémon (§4.5 "mid-turn victory" and §4.7 step 8). Returns true if the
// battle just ended as a result of this call.
func (s *State) CheckVictory() bool {
	if s.Ended {
		return false
	}
	aDead := s.NonFaintedCount(0) == 0
	bDead := s.NonFaintedCount(1) == 0
	switch {
	case aDead && bDead:
		s.Ended = true
		s.Winner = -1
	case aDead:
		s.Ended = true
		s.Winner = 1
	case bDead:
		s.Ended = true
		s.Winner = 0
	default:
		return false
	}
	s.Log.Append(Event{Type: EventWin, Turn: s.Turn, Side: s.Winner, Slot: -1, Data: map[string]any{"winner": s.Winner}})
	return true
}

// EnqueueFaint pushes a (side, slot) pair onto the ordered faint queue if
// it is not already present.
func (s *State) EnqueueFaint(side, slot int) {
	for _, f := range s.Faints {
		if f.Side == side && f.Slot == slot {
			return
		}
	}
	s.Faints = append(s.Faints, FaintEntry{Side: side, Slot: slot})
}
