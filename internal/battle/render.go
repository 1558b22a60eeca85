package battle

import (
	"fmt"
	"strings"

	"github.com/dougwinr/vgcsim/internal/data"
)

// RenderOptions is the formatting options value Render accepts, mirroring
// the teacher's FormattingOptions (internal/game/event_formatter.go).
// Render does not read it: every event is rendered in full whatever
// Perspective holds.
type RenderOptions struct {
	Perspective int // side whose view to render from; -1 for "omniscient"
}

// Render produces a human-readable line-per-event transcript of a
// finished (or in-progress) battle, the supplemental "hand-history-style
// battle log rendering" of SPEC_FULL.md §10, grounded on the teacher's
// EventFormatter: one function per event family, falling back to a
// generic key=value dump for anything it doesn't special-case.
func Render(log *EventLog, reg *data.Registry, opts RenderOptions) string {
	var b strings.Builder
	for _, e := range log.Events() {
		line := renderEvent(e, reg)
		if line == "" {
			continue
		}
		fmt.Fprintf(&b, "[turn %d] %s\n", e.Turn, line)
	}
	return b.String()
}

func renderEvent(e Event, reg *data.Registry) string {
	switch e.Type {
	case EventBattleStart:
		return "Battle started."
	case EventTeamPreview:
		return "Team preview."
	case EventTurnStart:
		return fmt.Sprintf("-- Turn %d --", e.Turn)
	case EventSwitch:
		return fmt.Sprintf("Side %d slot %d: switched in team index %v", e.Side, e.Slot, e.Data["team_index"])
	case EventSwitchOut:
		return fmt.Sprintf("Side %d slot %d: switched out team index %v", e.Side, e.Slot, e.Data["team_index"])
	case EventMove:
		return fmt.Sprintf("Side %d slot %d used %s", e.Side, e.Slot, moveName(reg, e.Data["move"]))
	case EventTerastallize:
		return fmt.Sprintf("Side %d slot %d Terastallized (type %v)", e.Side, e.Slot, e.Data["tera_type"])
	case EventCantMove:
		return fmt.Sprintf("Side %d slot %d can't move (%v)", e.Side, e.Slot, e.Data["reason"])
	case EventDamage:
		return fmt.Sprintf("Side %d slot %d took %v damage (%v/%v HP)", e.Side, e.Slot, e.Data["amount"], e.Data["hp"], e.Data["max_hp"])
	case EventHeal:
		return fmt.Sprintf("Side %d slot %d healed %v", e.Side, e.Slot, e.Data["amount"])
	case EventFaint:
		return fmt.Sprintf("Side %d slot %d fainted!", e.Side, e.Slot)
	case EventRecoil:
		return fmt.Sprintf("Side %d slot %d took %v recoil damage", e.Side, e.Slot, e.Data["amount"])
	case EventDrain:
		return fmt.Sprintf("Side %d slot %d drained %v HP", e.Side, e.Slot, e.Data["amount"])
	case EventStatus:
		return fmt.Sprintf("Side %d slot %d was afflicted with %v", e.Side, e.Slot, e.Data["status"])
	case EventCureStatus:
		return fmt.Sprintf("Side %d slot %d's status was cured", e.Side, e.Slot)
	case EventMultiHit:
		return fmt.Sprintf("Hit %v times", e.Data["hits"])
	case EventMiss:
		return fmt.Sprintf("Side %d slot %d's move missed", e.Side, e.Slot)
	case EventFail:
		return fmt.Sprintf("Side %d slot %d's move failed (%v)", e.Side, e.Slot, e.Data["reason"])
	case EventTypeImmune:
		return fmt.Sprintf("It doesn't affect side %d slot %d...", e.Side, e.Slot)
	case EventCriticalHit:
		return "A critical hit!"
	case EventSuperEffective:
		return "It's super effective!"
	case EventResisted:
		return "It's not very effective..."
	case EventProtect:
		return fmt.Sprintf("Side %d slot %d protected itself!", e.Side, e.Slot)
	case EventHazardDamage:
		return fmt.Sprintf("Side %d slot %d was hurt by entry hazards (%v)", e.Side, e.Slot, e.Data["amount"])
	case EventSwitchRequired:
		return fmt.Sprintf("Side %d slot %d must send out a replacement!", e.Side, e.Slot)
	case EventWin:
		return fmt.Sprintf("Side %v wins!", e.Data["winner"])
	case EventTie:
		return "The battle ended in a tie."
	default:
		return ""
	}
}

func moveName(reg *data.Registry, raw any) string {
	id, ok := raw.(int)
	if !ok {
		if f, ok := raw.(float64); ok {
			id = int(f)
		}
	}
	if reg == nil {
		return fmt.Sprintf("move %d", id)
	}
	if md, ok := reg.Move(data.MoveID(id)); ok {
		return md.Name
	}
	return fmt.Sprintf("move %d", id)
}
