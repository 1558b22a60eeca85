package battle

import (
	"github.com/charmbracelet/log"

	"github.com/dougwinr/vgcsim/internal/data"
	"github.com/dougwinr/vgcsim/internal/typechart"
)

// Observation is the per-side view returned from Reset/Step (§6). Bench
// Pokémon on the opponent's side are redacted to species+HP ratio unless
// Format.FullInformation is set.
type Observation struct {
	Side  int
	Mons  []MonView
}

// MonView is one Pokémon's observable state from a given side's viewpoint.
type MonView struct {
	Side       int // which side owns this Pokémon, not which side is observing
	TeamIndex  int // index into that side's team, e.g. for a SWITCH Choice
	Species    data.SpeciesID
	HP         int
	MaxHP      int
	HPRatio    float64
	Status     data.Status
	Counter    int
	Stages     [7]int
	Active     bool
	ActiveSlot int // which active slot this Pokémon occupies, -1 if benched
	Moves      []MoveView
	Redacted   bool // true for a bench opponent mon under partial information
}

// MoveView is one observable move slot (redacted moves carry no PP info).
type MoveView struct {
	ID data.MoveID
	PP int
}

// StepResult is the tuple returned by Engine.Step (§4.8): observations and
// rewards per side, whether the battle is done, and an info map.
type StepResult struct {
	Observations [2]Observation
	Rewards      [2]float64
	Done         bool
	Info         map[string]any
}

// Engine is the single external entry point (§4.8): reset, step,
// forced-switch draining, winner query, and state cloning for speculation.
type Engine struct {
	State *State

	// Registry and Format are the construction-time defaults Reset falls
	// back to when called without its own reg/format override, so a
	// caller that built the Engine once via NewEngine can call Reset(seed,
	// nil, Format{}, teamA, teamB) on every subsequent battle.
	Registry *data.Registry
	Format   Format

	// Logger is an optional turn/engine-level debug sink, held the same
	// way the teacher's GameEngine holds its *log.Logger. Nil by default
	// so driving an Engine never requires a logger; set it with
	// SetLogger when a caller wants turn-boundary diagnostics.
	Logger *log.Logger
}

// NewEngine constructs an Engine from a registry and format; call Reset to
// load teams and start the battle. A nil registry, or one with no moves or
// no species, is refused with ErrRegistryMissing.
func NewEngine(reg *data.Registry, format Format) (*Engine, error) {
	if reg == nil || reg.MoveCount() == 0 || reg.SpeciesCount() == 0 {
		return nil, ErrRegistryMissing
	}
	return &Engine{Registry: reg, Format: format}, nil
}

// SetLogger attaches a debug logger to the engine. Passing nil disables
// logging again; Step and Reset guard every call site so a nil Logger
// never changes behavior, only the debug loop.
func (e *Engine) SetLogger(logger *log.Logger) {
	e.Logger = logger
}

// Reset builds a fresh battle state from the given seed and teams and
// returns the initial per-side observations (§4.8 "reset"). A nil reg or
// zero-value format falls back to whatever NewEngine was constructed with.
func (e *Engine) Reset(seed int64, reg *data.Registry, format Format, teamA, teamB []*Pokemon) [2]Observation {
	if reg == nil {
		reg = e.Registry
	}
	if format == (Format{}) {
		format = e.Format
	}
	e.Registry, e.Format = reg, format
	s := NewState(seed, reg, format)
	s.LoadTeam(0, teamA)
	s.LoadTeam(1, teamB)
	s.StartBattle()
	e.State = s
	if e.Logger != nil {
		e.Logger.Debug("battle reset", "seed", seed, "slots", format.Slots, "team_size", format.TeamSize)
	}
	return [2]Observation{e.observe(0), e.observe(1)}
}

// Step validates choices, schedules and executes the turn, runs residuals,
// and advances the turn counter (§4.8 "step"). A non-nil pick drains forced
// switches automatically after the actions and again after residuals; nil
// means "leave pending for the caller".
func (e *Engine) Step(choices map[int][]Choice, pick func(side, slot int) int) (StepResult, error) {
	s := e.State
	if s.Ended {
		return StepResult{}, ErrIllegalState
	}

	if err := e.validateChoices(choices); err != nil {
		return StepResult{}, err
	}

	for side, list := range choices {
		for _, c := range list {
			var evt EventType
			switch c.Kind {
			case ChoiceMove:
				evt = EventChoiceMove
			case ChoiceSwitch:
				evt = EventChoiceSwitch
			default:
				evt = EventChoicePass
			}
			// Every Choice field is recorded so a replayer can reconstruct
			// the exact map[int][]Choice to feed back into Step (§6 Replay).
			s.Log.Append(Event{Type: evt, Turn: s.Turn, Side: side, Slot: c.Slot, Data: map[string]any{
				"move_slot":    c.MoveSlot,
				"target":       c.Target,
				"switch_to":    c.SwitchTo,
				"terastallize": c.Terastallize,
				"mega":         c.Mega,
				"zmove":        c.ZMove,
				"dynamax":      c.Dynamax,
			}})
		}
	}

	s.Log.Append(Event{Type: EventTurnStart, Turn: s.Turn, Side: -1, Slot: -1})

	actions := Schedule(s, choices)
	ExecuteTurn(s, actions)

	if !s.Ended {
		if pick != nil {
			if pending := s.ForcedSwitches(); len(pending) > 0 && e.Logger != nil {
				e.Logger.Debug("draining forced switches", "turn", s.Turn, "pending", len(pending))
			}
			s.DrainForcedSwitches(pick)
		}
		if !s.Ended {
			RunResiduals(s)
			if pick != nil && !s.Ended {
				s.DrainForcedSwitches(pick)
			}
		}
	}

	s.Log.Append(Event{Type: EventTurnEnd, Turn: s.Turn, Side: -1, Slot: -1})
	s.Turn++

	if !s.Ended && s.Turn > s.Format.MaxTurns {
		s.Ended = true
		s.Winner = -1
	}

	for i := range s.Sides {
		s.resetTurnVolatiles(i)
	}

	if e.Logger != nil {
		e.Logger.Debug("turn complete", "turn", s.Turn, "ended", s.Ended, "winner", s.Winner)
	}

	info := map[string]any{
		"winner": s.Winner,
		"turn":   s.Turn,
		"events": s.Log.Len(),
	}

	return StepResult{
		Observations: [2]Observation{e.observe(0), e.observe(1)},
		Rewards:      terminalRewards(s),
		Done:         s.Ended,
		Info:         info,
	}, nil
}

// resetTurnVolatiles clears the turn-scoped flags that must not persist
// across turn boundaries (flinch, Protect's active-block flag) while
// leaving field-lifetime volatiles (confusion, Leech Seed) untouched.
func (s *State) resetTurnVolatiles(side int) {
	for _, mon := range s.Sides[side].Team {
		mon.Volatiles.FlinchThisTurn = false
		mon.Volatiles.ProtectUsedThisTurn = false
	}
}

func terminalRewards(s *State) [2]float64 {
	if !s.Ended {
		return [2]float64{0, 0}
	}
	switch s.Winner {
	case 0:
		return [2]float64{1, -1}
	case 1:
		return [2]float64{-1, 1}
	default:
		return [2]float64{0, 0}
	}
}

// ForcedSwitches exposes the pending set for callers driving the
// forced-switch loop manually instead of via Step's pick callback.
func (e *Engine) ForcedSwitches() []FaintEntry { return e.State.ForcedSwitches() }

// ApplyForcedSwitch applies one manually-driven forced switch.
func (e *Engine) ApplyForcedSwitch(side, slot, newTeamIndex int) error {
	return e.State.ApplyForcedSwitch(side, slot, newTeamIndex)
}

// Winner reports the winning side, or -1 if undecided or drawn.
func (e *Engine) Winner() int { return e.State.Winner }

// CloneState deep-copies the engine's state for speculative rollouts,
// using each Pokémon's value semantics plus an independent PRNG clone so
// the speculative branch never perturbs the original's draw sequence. The
// event log is not copied: the clone starts with an empty log.
func (e *Engine) CloneState() *State {
	s := e.State
	clone := &State{
		Format:          s.Format,
		Weather:         s.Weather,
		WeatherTurns:    s.WeatherTurns,
		Terrain:         s.Terrain,
		TerrainTurns:    s.TerrainTurns,
		TrickRoomTurns:  s.TrickRoomTurns,
		GravityTurns:    s.GravityTurns,
		MagicRoomTurns:  s.MagicRoomTurns,
		WonderRoomTurns: s.WonderRoomTurns,
		MudSportTurns:   s.MudSportTurns,
		WaterSportTurns: s.WaterSportTurns,
		Turn:            s.Turn,
		PRNG:            s.PRNG.Clone(),
		Ended:           s.Ended,
		Winner:          s.Winner,
		Registry:        s.Registry,
		Log:             NewEventLog(),
	}
	clone.Faints = append([]FaintEntry(nil), s.Faints...)
	for i := range s.Sides {
		src := s.Sides[i]
		dstTeam := make([]*Pokemon, len(src.Team))
		for j, mon := range src.Team {
			copyMon := *mon
			if mon.StellarUsed != nil {
				copyMon.StellarUsed = make(map[typechart.Type]bool, len(mon.StellarUsed))
				for k, v := range mon.StellarUsed {
					copyMon.StellarUsed[k] = v
				}
			}
			dstTeam[j] = &copyMon
		}
		clone.Sides[i] = &Side{
			Team:      dstTeam,
			Active:    append([]int(nil), src.Active...),
			Cond:      src.Cond,
			SlotCond:  append([]SlotCondition(nil), src.SlotCond...),
			UsedTera:  src.UsedTera,
			UsedMega:  src.UsedMega,
			UsedZMove: src.UsedZMove,
			UsedDyna:  src.UsedDyna,
		}
	}
	return clone
}

// validateChoices implements the legal-action gates of §4.8 "step": move
// slot PP, switch-target legality, and the once-per-battle Terastallize
// flag. The Mega, ZMove and Dynamax flags are not checked, and nothing
// records their use. Move targets are not checked here; an out-of-range
// target falls back to the default at resolution. It mutates nothing; on
// any violation it returns ErrInvalidChoice before any state change.
func (e *Engine) validateChoices(choices map[int][]Choice) error {
	s := e.State
	for side, list := range choices {
		for _, c := range list {
			mon := s.ActivePokemon(side, c.Slot)
			switch c.Kind {
			case ChoiceMove:
				if mon == nil || mon.Fainted() {
					return ErrInvalidChoice
				}
				if c.MoveSlot < 0 || c.MoveSlot >= len(mon.Moves) {
					return ErrInvalidChoice
				}
				ms := mon.Moves[c.MoveSlot]
				if !ms.Empty() && ms.PP <= 0 {
					return ErrInvalidChoice
				}
				if c.Terastallize && s.Sides[side].UsedTera {
					return ErrInvalidChoice
				}
			case ChoiceSwitch:
				if c.SwitchTo < 0 || c.SwitchTo >= len(s.Sides[side].Team) {
					return ErrInvalidChoice
				}
				target := s.Sides[side].Team[c.SwitchTo]
				if target.Fainted() {
					return ErrInvalidChoice
				}
				for _, activeIdx := range s.Sides[side].Active {
					if activeIdx == c.SwitchTo {
						return ErrInvalidChoice
					}
				}
			}
		}
	}
	return nil
}

// observe builds the Observation for one side, redacting opponent bench
// Pokémon to species+HP-ratio unless FullInformation is set (§6).
func (e *Engine) observe(side int) Observation {
	s := e.State
	obs := Observation{Side: side}
	for otherSide := 0; otherSide < 2; otherSide++ {
		own := otherSide == side
		activeSlot := func(teamIdx int) int {
			for slot, a := range s.Sides[otherSide].Active {
				if a == teamIdx {
					return slot
				}
			}
			return -1
		}
		for teamIdx, mon := range s.Sides[otherSide].Team {
			slot := activeSlot(teamIdx)
			active := slot >= 0
			redact := !own && !active && !s.Format.FullInformation
			view := MonView{
				Side:       otherSide,
				TeamIndex:  teamIdx,
				Species:    mon.Species,
				HP:         mon.CurrentHP,
				MaxHP:      mon.MaxHP,
				Active:     active,
				ActiveSlot: slot,
			}
			if mon.MaxHP > 0 {
				view.HPRatio = float64(mon.CurrentHP) / float64(mon.MaxHP)
			}
			if redact {
				view.Redacted = true
				view.HP = 0
			} else {
				view.Status = mon.Status
				view.Counter = mon.StatusCounter
				view.Stages = mon.Stages
				for _, ms := range mon.Moves {
					view.Moves = append(view.Moves, MoveView{ID: ms.ID, PP: ms.PP})
				}
			}
			obs.Mons = append(obs.Mons, view)
		}
	}
	return obs
}
