package replay

import "github.com/dougwinr/vgcsim/internal/battle"

// Transition is one per-(side, turn) step for an RL replay buffer: its
// reward and done flag plus the bounds of that turn's slice of the event
// log, from which the observation and action are read. It is derived from
// a recorded battle without needing to re-simulate anything (§1 "the RL
// replay buffer... consume the Event Log").
type Transition struct {
	Side         int
	Turn         int
	Reward       float64
	Done         bool
	EventsBefore int // index into the log's Events() where this turn's slice starts
	EventsAfter  int // exclusive end index
}

// Trajectory slices a finished battle's event log into one Transition per
// (side, turn), using TURN_START/TURN_END markers to bound each slice and
// WIN/TIE to assign terminal reward.
func Trajectory(log *battle.EventLog) []Transition {
	events := log.Events()
	var out []Transition

	turnStart := -1
	currentTurn := -1
	winner := -2 // sentinel: no WIN/TIE event seen

	flush := func(endIdx int) {
		if turnStart < 0 || currentTurn < 0 {
			return
		}
		for side := 0; side < 2; side++ {
			out = append(out, Transition{
				Side:         side,
				Turn:         currentTurn,
				EventsBefore: turnStart,
				EventsAfter:  endIdx,
			})
		}
	}

	for i, e := range events {
		switch e.Type {
		case battle.EventTurnStart:
			turnStart = i
			currentTurn = e.Turn
		case battle.EventTurnEnd:
			flush(i + 1)
			turnStart = -1
		case battle.EventWin:
			if w, ok := e.Data["winner"].(int); ok {
				winner = w
			}
		case battle.EventTie:
			winner = -1
		}
	}
	if turnStart >= 0 {
		flush(len(events))
	}

	if winner != -2 && len(out) > 0 {
		last := out[len(out)-1].Turn
		for i := range out {
			if out[i].Turn != last {
				continue
			}
			out[i].Done = true
			switch {
			case winner == -1:
				out[i].Reward = 0
			case winner == out[i].Side:
				out[i].Reward = 1
			default:
				out[i].Reward = -1
			}
		}
	}

	return out
}
