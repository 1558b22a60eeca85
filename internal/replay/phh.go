package replay

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dougwinr/vgcsim/internal/battle"
)

// BattleHistory is a TOML-encodable record of one finished battle, in the
// spirit of the teacher's PHH poker hand-history format (internal/phh):
// a flat, human-readable record of the inputs (seed, teams, choices) needed
// to reproduce a battle exactly, plus a denormalized summary for quick
// inspection without replaying.
type BattleHistory struct {
	Seed      int64    `toml:"seed"`
	Format    string   `toml:"format"`
	TeamA     []string `toml:"team_a"`
	TeamB     []string `toml:"team_b"`
	Actions   []string `toml:"actions"`
	Winner    int      `toml:"winner"`
	Turns     int      `toml:"turns"`
	Metadata  map[string]any `toml:"metadata,omitempty"`
}

// FormatChoiceAction renders one Choice as a compact PHH-style action token
// (e.g. "p1.0 move 0>1" or "p2.0 switch 3"), mirroring the teacher's
// phh.FormatAction convention of one short string per recorded action.
func FormatChoiceAction(side, slot int, c battle.Choice) string {
	player := fmt.Sprintf("p%d.%d", side+1, slot)
	switch c.Kind {
	case battle.ChoiceMove:
		tag := ""
		if c.Terastallize {
			tag = "+tera"
		}
		return fmt.Sprintf("%s move %d>%d%s", player, c.MoveSlot, c.Target, tag)
	case battle.ChoiceSwitch:
		return fmt.Sprintf("%s switch %d", player, c.SwitchTo)
	default:
		return fmt.Sprintf("%s pass", player)
	}
}

// BuildHistory assembles a BattleHistory from a finished engine's recorded
// choices, the same data ExtractTurns produces, so encoding never needs to
// re-derive anything from the event log.
func BuildHistory(seed int64, teamA, teamB []string, turns []TurnChoices, winner, turnCount int) *BattleHistory {
	h := &BattleHistory{
		Seed:   seed,
		TeamA:  teamA,
		TeamB:  teamB,
		Winner: winner,
		Turns:  turnCount,
	}
	for _, turn := range turns {
		for side, choices := range turn {
			for _, c := range choices {
				h.Actions = append(h.Actions, FormatChoiceAction(side, c.Slot, c))
			}
		}
	}
	return h
}

// Encode writes h in TOML form, matching the teacher's phh.Encode
// convention of a tab-indented encoder over a plain io.Writer.
func Encode(w io.Writer, h *BattleHistory) error {
	if h == nil {
		return fmt.Errorf("replay: battle history is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(h)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(h *BattleHistory) ([]byte, error) {
	var buf strings.Builder
	if err := Encode(&buf, h); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// Decode reads a BattleHistory back from TOML.
func Decode(r io.Reader) (*BattleHistory, error) {
	var h BattleHistory
	if _, err := toml.NewDecoder(r).Decode(&h); err != nil {
		return nil, err
	}
	return &h, nil
}
