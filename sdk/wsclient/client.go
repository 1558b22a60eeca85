// Package wsclient is a remote Agent: it drives battle.Choice decisions
// by speaking internal/tournament's JSON-over-WebSocket wire protocol to
// a tournament server instead of computing choices locally, so an LLM or
// human operator can sit on a machine other than the one hosting the
// battle. Grounded on the teacher's sdk.WSClient (Connect/Disconnect/
// SendMessage/readMessages/dispatchMessage, one handler map per message
// type), adapted to the tournament package's message envelope and a
// synchronous request/reply pattern instead of the teacher's
// fire-and-forget handler dispatch, since every message in this protocol
// expects exactly one reply before the battle can advance.
package wsclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/dougwinr/vgcsim/internal/battle"
	"github.com/dougwinr/vgcsim/internal/tournament"
)

// Decider supplies the local decision logic for each observation/legal
// pair the server sends over the wire; typically an sdk.Agent's Decide
// method, kept as a narrower function type here so this package doesn't
// need to import sdk.
type Decider func(obs battle.Observation, legal []battle.Choice) battle.Choice

// Client is a single battle-side connection to a tournament server.
type Client struct {
	serverURL string
	conn      *websocket.Conn
	logger    *log.Logger
	mu        sync.Mutex
	connected bool

	BattleID string
	Side     int
}

// New returns a Client ready to Connect to serverURL.
func New(serverURL string, logger *log.Logger) *Client {
	return &Client{serverURL: serverURL, logger: logger}
}

// Connect dials the server, normalizing http(s) schemes to ws(s) exactly
// as the teacher's WSClient.Connect does.
func (c *Client) Connect() error {
	u, err := url.Parse(c.serverURL)
	if err != nil {
		return fmt.Errorf("wsclient: invalid server URL: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		u.Scheme = "ws"
	}

	if c.logger != nil {
		c.logger.Info("connecting to tournament server", "url", u.String())
	}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return fmt.Errorf("wsclient: dial failed: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.mu.Unlock()
	return nil
}

// Disconnect closes the connection, sending a normal-closure control
// frame first.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return nil
	}
	c.connected = false
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}

func (c *Client) send(t tournament.MessageType, data any) error {
	msg, err := tournament.NewMessage(t, data)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return fmt.Errorf("wsclient: not connected")
	}
	return c.conn.WriteJSON(msg)
}

func (c *Client) recv() (*tournament.Message, error) {
	var msg tournament.Message
	if err := c.conn.ReadJSON(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Hello sends the handshake naming c.BattleID (set it before calling),
// then reads the server's greeting, recording the assigned battle ID and
// side for subsequent calls.
func (c *Client) Hello() (tournament.HelloData, error) {
	c.mu.Lock()
	err := c.conn.WriteJSON(map[string]string{"battle_id": c.BattleID})
	c.mu.Unlock()
	if err != nil {
		return tournament.HelloData{}, fmt.Errorf("wsclient: send hello: %w", err)
	}
	msg, err := c.recv()
	if err != nil {
		return tournament.HelloData{}, fmt.Errorf("wsclient: hello: %w", err)
	}
	var hello tournament.HelloData
	if err := json.Unmarshal(msg.Data, &hello); err != nil {
		return tournament.HelloData{}, fmt.Errorf("wsclient: decode hello: %w", err)
	}
	c.BattleID = hello.BattleID
	c.Side = hello.Side
	return hello, nil
}

// Run drives the battle loop for this side: read an observation, ask
// decide for a choice per active slot it's prompted for, reply, and
// repeat until the server sends MessageBattleEnd. A forced-switch
// request is answered with pick(slot), the same two-callback shape
// battle.Engine.Step itself uses locally.
func (c *Client) Run(decide Decider, pick func(slot int) int) (tournament.BattleEndData, error) {
	for {
		msg, err := c.recv()
		if err != nil {
			return tournament.BattleEndData{}, fmt.Errorf("wsclient: read: %w", err)
		}

		switch msg.Type {
		case tournament.MessageObservation:
			var od tournament.ObservationData
			if err := json.Unmarshal(msg.Data, &od); err != nil {
				return tournament.BattleEndData{}, fmt.Errorf("wsclient: decode observation: %w", err)
			}
			var obs battle.Observation
			if err := json.Unmarshal(od.Obs, &obs); err != nil {
				return tournament.BattleEndData{}, fmt.Errorf("wsclient: decode observation payload: %w", err)
			}
			if err := c.replyChoice(obs, decide); err != nil {
				return tournament.BattleEndData{}, err
			}

		case tournament.MessageForcedSwitchRequest:
			var req tournament.ForcedSwitchRequestData
			if err := json.Unmarshal(msg.Data, &req); err != nil {
				return tournament.BattleEndData{}, fmt.Errorf("wsclient: decode forced switch request: %w", err)
			}
			for _, slot := range req.Slots {
				newIdx := pick(slot)
				if err := c.send(tournament.MessageForcedSwitch, tournament.ForcedSwitchData{Slot: slot, NewTeamIdx: newIdx}); err != nil {
					return tournament.BattleEndData{}, fmt.Errorf("wsclient: send forced switch: %w", err)
				}
			}

		case tournament.MessageBattleEnd:
			var end tournament.BattleEndData
			if err := json.Unmarshal(msg.Data, &end); err != nil {
				return tournament.BattleEndData{}, fmt.Errorf("wsclient: decode battle end: %w", err)
			}
			return end, nil

		case tournament.MessageError:
			return tournament.BattleEndData{}, fmt.Errorf("wsclient: server error: %s", string(msg.Data))

		default:
			if c.logger != nil {
				c.logger.Warn("wsclient: unexpected message type", "type", msg.Type)
			}
		}
	}
}

// replyChoice asks decide for this side's active slot's choice and sends
// it back as a MessageChoice. The observation carries one entry per
// active slot on the driven side, so this loop fans out to however many
// slots the current format has (1 in Singles, 2 in Doubles).
func (c *Client) replyChoice(obs battle.Observation, decide Decider) error {
	own := obs.Own()
	for _, mon := range own {
		if !mon.Active {
			continue
		}
		legal := legalFromMon(mon)
		choice := decide(obs, legal)
		raw, err := json.Marshal(choice)
		if err != nil {
			return fmt.Errorf("wsclient: marshal choice: %w", err)
		}
		if err := c.send(tournament.MessageChoice, tournament.ChoiceData{Slot: mon.ActiveSlot, Choice: raw}); err != nil {
			return fmt.Errorf("wsclient: send choice: %w", err)
		}
	}
	return nil
}

// legalFromMon is a placeholder legal-action builder for a remote client
// that only has the wire Observation, not a live *battle.Engine to call
// LegalActions on; a real deployment has the server include the legal
// list in ObservationData so the client never has to recompute it. Until
// that wire extension lands, callers should pass their own decide that
// ignores the legal slice and sources legality from elsewhere.
func legalFromMon(mon battle.MonView) []battle.Choice {
	var out []battle.Choice
	for i, ms := range mon.Moves {
		if ms.PP <= 0 {
			continue
		}
		out = append(out, battle.Choice{Kind: battle.ChoiceMove, Slot: mon.ActiveSlot, MoveSlot: i})
	}
	if len(out) == 0 {
		out = append(out, battle.Choice{Kind: battle.ChoicePass, Slot: mon.ActiveSlot})
	}
	return out
}
