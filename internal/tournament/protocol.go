// Package tournament is the thin driver over internal/battle the core
// deliberately excludes from its own scope (spec.md §1: "Tournament
// pairing and standings computation ... is a thin driver"). It adds Swiss
// pairing, tiebreakers, format regulation, and an optional out-of-process
// wire protocol so remote agents (LLM/human/RL clients) can sit on the
// other end of a battle the core itself knows nothing about.
package tournament

import (
	"encoding/json"
	"time"
)

// MessageType enumerates the tournament server's wire protocol messages
// (SPEC_FULL.md §6A), grounded on the teacher's sdk.MessageType envelope
// (sdk/protocol.go) but carrying battle.Observation/Choice payloads
// instead of poker table-state payloads.
type MessageType string

const (
	MessageHello                MessageType = "hello"
	MessageObservation           MessageType = "observation"
	MessageChoice                MessageType = "choice"
	MessageForcedSwitchRequest   MessageType = "forced_switch_request"
	MessageForcedSwitch          MessageType = "forced_switch"
	MessageBattleEnd             MessageType = "battle_end"
	MessageError                 MessageType = "error"
)

// Message is the self-describing envelope every wire message travels in,
// matching the teacher's own Message{Type, Data, Timestamp} shape
// (sdk/protocol.go's Message) field for field.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage marshals data into a Message envelope, mirroring the
// teacher's sdk.NewMessage helper.
func NewMessage(t MessageType, data any) (*Message, error) {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	return &Message{Type: t, Data: raw, Timestamp: time.Now().UTC()}, nil
}

// HelloData is the server's greeting to a freshly connected agent: which
// battle/side it has been assigned and the format it's playing under.
type HelloData struct {
	BattleID string `json:"battle_id"`
	Side     int    `json:"side"`
	Format   string `json:"format"`
}

// ObservationData wraps a battle.Observation for the wire; the battle
// package type itself is reused verbatim rather than re-declared, per
// "keep HOW, replace WHAT" — the envelope is new, the payload is not.
type ObservationData struct {
	Turn int             `json:"turn"`
	Obs  json.RawMessage `json:"obs"`
}

// ChoiceData wraps a battle.Choice for the wire.
type ChoiceData struct {
	Slot     int             `json:"slot"`
	Choice   json.RawMessage `json:"choice"`
}

// ForcedSwitchRequestData lists the pending slots on the receiving agent's
// own side that it must resolve before the battle continues (§4.6).
type ForcedSwitchRequestData struct {
	Slots []int `json:"slots"`
}

// ForcedSwitchData is an agent's reply naming the replacement team index.
type ForcedSwitchData struct {
	Slot        int `json:"slot"`
	NewTeamIdx  int `json:"new_team_index"`
}

// BattleEndData reports the terminal outcome and a pointer to the
// serialized event log (§6 "Event Log").
type BattleEndData struct {
	Winner   int    `json:"winner"`
	Turn     int    `json:"turn"`
	LogBytes []byte `json:"log,omitempty"`
}
