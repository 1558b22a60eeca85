package battle

import "github.com/dougwinr/vgcsim/internal/data"

// ChoiceKind distinguishes the three shapes a per-slot Choice can take
// (§6).
type ChoiceKind int

const (
	ChoiceMove ChoiceKind = iota
	ChoiceSwitch
	ChoicePass
)

// Choice is one caller-submitted decision for one active slot (§6). Target
// follows the signed encoding: target>0 selects the opponent's active slot
// (target-1), target<0 selects the ally's active slot (-target-1), target==0
// means "move's default target", and out-of-range values fall back to
// default.
type Choice struct {
	Kind          ChoiceKind
	Slot          int
	MoveSlot      int // index into Pokemon.Moves, valid for ChoiceMove
	Target        int
	SwitchTo      int // team index, valid for ChoiceSwitch
	Terastallize  bool
	Mega          bool
	ZMove         bool
	Dynamax       bool
}

// resolveExplicitTarget decodes Choice.Target into an ExplicitTarget for
// the caller's side, per the signed encoding documented on Choice.
func resolveExplicitTarget(s *State, side, slot int, target int) ExplicitTarget {
	if target == 0 {
		return ExplicitTarget{}
	}
	oppSide := 1 - side
	if target > 0 {
		oppSlot := target - 1
		if oppSlot < 0 || oppSlot >= len(s.Sides[oppSide].Active) {
			return ExplicitTarget{}
		}
		return ExplicitTarget{Present: true, Side: oppSide, Slot: oppSlot}
	}
	allySlot := -target - 1
	if allySlot < 0 || allySlot >= len(s.Sides[side].Active) {
		return ExplicitTarget{}
	}
	return ExplicitTarget{Present: true, Side: side, Slot: allySlot}
}

// switchPriorityBracket is added on top of every move's priority so a
// switch always resolves ahead of any move, matching §4.4's "+6 relative
// to all moves" rule without colliding with the legal move priority range
// of [-7, 5].
const switchPriorityBracket = 13

// moveData resolves a move slot to its registry record, or nil if the
// chosen slot is empty/unknown (MoveUnknown, §7).
func moveData(reg *data.Registry, mon *Pokemon, moveSlot int) *data.MoveData {
	if moveSlot < 0 || moveSlot >= len(mon.Moves) {
		return nil
	}
	id := mon.Moves[moveSlot].ID
	if id == 0 {
		return nil
	}
	m, ok := reg.Move(id)
	if !ok {
		return nil
	}
	return m
}
