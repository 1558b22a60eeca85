package replay

import (
	"fmt"

	"github.com/dougwinr/vgcsim/internal/battle"
	"github.com/dougwinr/vgcsim/internal/data"
)

// TurnChoices groups every CHOICE_* event belonging to one turn, keyed by
// side, in the shape Engine.Step expects.
type TurnChoices map[int][]battle.Choice

// ExtractTurns groups a log's ChoiceEvents by turn number, in ascending
// turn order, decoding each event's recorded Data back into a battle.Choice
// (§6 "Replay": "extract CHOICE_* events in turn-order").
func ExtractTurns(log *battle.EventLog) ([]TurnChoices, error) {
	var turns []TurnChoices
	turnIndex := map[int]int{}

	for _, e := range log.ChoiceEvents() {
		idx, ok := turnIndex[e.Turn]
		if !ok {
			idx = len(turns)
			turnIndex[e.Turn] = idx
			turns = append(turns, TurnChoices{})
		}

		c, err := decodeChoice(e)
		if err != nil {
			return nil, fmt.Errorf("replay: turn %d: %w", e.Turn, err)
		}
		turns[idx][e.Side] = append(turns[idx][e.Side], c)
	}

	return turns, nil
}

func decodeChoice(e battle.Event) (battle.Choice, error) {
	var kind battle.ChoiceKind
	switch e.Type {
	case battle.EventChoiceMove:
		kind = battle.ChoiceMove
	case battle.EventChoiceSwitch:
		kind = battle.ChoiceSwitch
	case battle.EventChoicePass:
		kind = battle.ChoicePass
	default:
		return battle.Choice{}, fmt.Errorf("not a choice event: %s", e.Type)
	}

	c := battle.Choice{Kind: kind, Slot: e.Slot}
	if e.Data == nil {
		return c, nil
	}
	if v, ok := e.Data["move_slot"]; ok {
		c.MoveSlot = toInt(v)
	}
	if v, ok := e.Data["target"]; ok {
		c.Target = toInt(v)
	}
	if v, ok := e.Data["switch_to"]; ok {
		c.SwitchTo = toInt(v)
	}
	if v, ok := e.Data["terastallize"]; ok {
		c.Terastallize, _ = v.(bool)
	}
	if v, ok := e.Data["mega"]; ok {
		c.Mega, _ = v.(bool)
	}
	if v, ok := e.Data["zmove"]; ok {
		c.ZMove, _ = v.(bool)
	}
	if v, ok := e.Data["dynamax"]; ok {
		c.Dynamax, _ = v.(bool)
	}
	return c, nil
}

// toInt handles both the in-process representation (plain int, when the
// log was never round-tripped through JSON) and the JSON representation
// (float64, per encoding/json's default number decoding).
func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	default:
		return 0
	}
}

// Rebuild replays a recorded battle from scratch: a fresh Engine is
// constructed with the same seed, format, and teams, and every turn's
// choices are fed back through Step in order. The resulting engine's state
// and event log MUST equal the original's (§6 "Replay"), which callers
// typically verify with a structural diff (see the determinism tests in
// internal/replay/replay_test.go for the go-cmp-based comparison this
// enables).
func Rebuild(seed int64, reg *data.Registry, format battle.Format, teamA, teamB []*battle.Pokemon, turns []TurnChoices, pick func(side, slot int) int) (*battle.Engine, error) {
	e, err := battle.NewEngine(reg, format)
	if err != nil {
		return nil, err
	}
	e.Reset(seed, reg, format, teamA, teamB)

	for i, choices := range turns {
		if _, err := e.Step(choices, pick); err != nil {
			return nil, fmt.Errorf("replay: turn %d: %w", i, err)
		}
		if e.State.Ended {
			break
		}
	}
	return e, nil
}
