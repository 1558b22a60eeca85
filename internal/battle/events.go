package battle

import "encoding/json"

// EventType enumerates the observable things that happen during a battle
// (§6). Names are illustrative, not bit-exact with any other
// implementation; what matters is that the same EventType always carries
// the same Data shape.
type EventType int

const (
	EventBattleStart EventType = iota
	EventTeamPreview
	EventTurnStart
	EventTurnEnd
	EventUpkeep
	EventSwitch
	EventSwitchOut
	EventMove
	EventTerastallize
	EventCantMove
	EventDamage
	EventHeal
	EventFaint
	EventRecoil
	EventDrain
	EventStatus
	EventCureStatus
	EventVolatileStart
	EventVolatileEnd
	EventConfusionHit
	EventBoost
	EventUnboost
	EventClearBoost
	EventWeatherStart
	EventWeatherEnd
	EventWeatherUpkeep
	EventTerrainStart
	EventTerrainEnd
	EventSideStart
	EventSideEnd
	EventHazardDamage
	EventProtect
	EventWideGuard
	EventQuickGuard
	EventImmune
	EventSuperEffective
	EventResisted
	EventTypeImmune
	EventCriticalHit
	EventMiss
	EventFail
	EventNoEffect
	EventMultiHit
	EventSwitchRequired
	EventWin
	EventTie
	EventChoiceMove
	EventChoiceSwitch
	EventChoicePass
)

var eventTypeNames = [...]string{
	"BATTLE_START", "TEAM_PREVIEW", "TURN_START", "TURN_END", "UPKEEP",
	"SWITCH", "SWITCH_OUT", "MOVE", "TERASTALLIZE", "CANT_MOVE",
	"DAMAGE", "HEAL", "FAINT", "RECOIL", "DRAIN",
	"STATUS", "CURE_STATUS", "VOLATILE_START", "VOLATILE_END", "CONFUSION_HIT",
	"BOOST", "UNBOOST", "CLEAR_BOOST",
	"WEATHER_START", "WEATHER_END", "WEATHER_UPKEEP", "TERRAIN_START", "TERRAIN_END",
	"SIDE_START", "SIDE_END", "HAZARD_DAMAGE",
	"PROTECT", "WIDE_GUARD", "QUICK_GUARD", "IMMUNE",
	"SUPER_EFFECTIVE", "RESISTED", "TYPE_IMMUNE", "CRITICAL_HIT",
	"MISS", "FAIL", "NO_EFFECT", "MULTI_HIT",
	"SWITCH_REQUIRED",
	"WIN", "TIE",
	"CHOICE_MOVE", "CHOICE_SWITCH", "CHOICE_PASS",
}

func (t EventType) String() string {
	if int(t) < 0 || int(t) >= len(eventTypeNames) {
		return "UNKNOWN"
	}
	return eventTypeNames[t]
}

func eventTypeFromName(name string) (EventType, bool) {
	for i, n := range eventTypeNames {
		if n == name {
			return EventType(i), true
		}
	}
	return 0, false
}

// Event is one entry in the append-only event log (§6). Timestamp is a
// per-log monotonic counter, not a wall-clock time: this keeps the log a
// pure function of the battle's PRNG-and-choice sequence (§5 "Event
// timestamps within a step are assigned monotonically from a per-log
// counter").
type Event struct {
	Type      EventType
	Turn      int
	Side      int
	Slot      int
	Data      map[string]any
	Timestamp int
}

// MarshalJSON implements the self-describing serialization contract of §6:
// {type, type_id, turn, side, slot, data, timestamp}.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string         `json:"type"`
		TypeID    int            `json:"type_id"`
		Turn      int            `json:"turn"`
		Side      int            `json:"side"`
		Slot      int            `json:"slot"`
		Data      map[string]any `json:"data,omitempty"`
		Timestamp int            `json:"timestamp"`
	}{
		Type:      e.Type.String(),
		TypeID:    int(e.Type),
		Turn:      e.Turn,
		Side:      e.Side,
		Slot:      e.Slot,
		Data:      e.Data,
		Timestamp: e.Timestamp,
	})
}

// UnmarshalJSON restores an Event, preferring type_id (the authoritative
// field per §6) when both it and the name are present and disagree.
func (e *Event) UnmarshalJSON(b []byte) error {
	var raw struct {
		Type      string         `json:"type"`
		TypeID    *int           `json:"type_id"`
		Turn      int            `json:"turn"`
		Side      int            `json:"side"`
		Slot      int            `json:"slot"`
		Data      map[string]any `json:"data,omitempty"`
		Timestamp int            `json:"timestamp"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch {
	case raw.TypeID != nil:
		e.Type = EventType(*raw.TypeID)
	default:
		if t, ok := eventTypeFromName(raw.Type); ok {
			e.Type = t
		}
	}
	e.Turn = raw.Turn
	e.Side = raw.Side
	e.Slot = raw.Slot
	e.Data = raw.Data
	e.Timestamp = raw.Timestamp
	return nil
}

// EventLog is the append-only ordered event stream for one battle.
type EventLog struct {
	events  []Event
	counter int
}

// NewEventLog returns an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Append assigns the event the next monotonic timestamp and records it.
func (l *EventLog) Append(e Event) Event {
	e.Timestamp = l.counter
	l.counter++
	l.events = append(l.events, e)
	return e
}

// Events returns the full ordered event slice. Callers must not mutate it.
func (l *EventLog) Events() []Event { return l.events }

// Len reports the number of recorded events.
func (l *EventLog) Len() int { return len(l.events) }

// ChoiceEvents extracts CHOICE_MOVE/CHOICE_SWITCH/CHOICE_PASS events in
// turn-then-timestamp order, the replay source documented in §6.
func (l *EventLog) ChoiceEvents() []Event {
	var out []Event
	for _, e := range l.events {
		switch e.Type {
		case EventChoiceMove, EventChoiceSwitch, EventChoicePass:
			out = append(out, e)
		}
	}
	return out
}
