package tournament

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/dougwinr/vgcsim/internal/battle"
	"github.com/dougwinr/vgcsim/internal/data"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Server exposes a running battle to out-of-process agents over the
// JSON-over-WebSocket wire protocol of SPEC_FULL.md §6A, grounded on the
// teacher's internal/server.Server (websocket.Upgrader, net.Listen/Serve
// split, zerolog.Logger field). internal/battle.Engine has no network
// dependency of its own; Server is purely an ambient transport wrapped
// around it, exactly as §6A requires.
type Server struct {
	Registry *data.Registry
	Format   battle.Format
	Clock    Clock

	logger   zerolog.Logger
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

// NewServer builds a Server ready to Serve, defaulting Clock to the real
// wall clock when unset.
func NewServer(reg *data.Registry, format battle.Format, logger zerolog.Logger) *Server {
	s := &Server{
		Registry: reg,
		Format:   format,
		Clock:    NewRealClock(),
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		mux: http.NewServeMux(),
	}
	s.mux.HandleFunc("/battle", s.handleWebSocket)
	return s
}

// Serve listens on addr and blocks, accepting one WebSocket connection per
// side of each battle it is asked to host via HostBattle.
func (s *Server) Serve(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return http.Serve(listener, s.mux)
}

// pendingBattle pairs the first connecting client with the second for one
// battle id, keyed by a caller-supplied id (e.g. a tournament table name).
type pendingBattle struct {
	id       string
	teamA    []*battle.Pokemon
	teamB    []*battle.Pokemon
	seed     int64
	conns    [2]*websocket.Conn
}

var battles = map[string]*pendingBattle{}

// HostBattle registers the teams and seed for battle id so that the next
// two WebSocket connections naming it in their hello handshake are seated
// as side 0 and side 1.
func (s *Server) HostBattle(id string, seed int64, teamA, teamB []*battle.Pokemon) {
	battles[id] = &pendingBattle{id: id, teamA: teamA, teamB: teamB, seed: seed}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	var hello struct {
		BattleID string `json:"battle_id"`
	}
	if err := conn.ReadJSON(&hello); err != nil {
		s.logger.Error().Err(err).Msg("failed to read hello handshake")
		_ = conn.Close()
		return
	}

	pb, ok := battles[hello.BattleID]
	if !ok {
		s.writeError(conn, fmt.Sprintf("unknown battle id %q", hello.BattleID))
		_ = conn.Close()
		return
	}

	side := 0
	if pb.conns[0] != nil {
		side = 1
	}
	pb.conns[side] = conn

	helloMsg, _ := NewMessage(MessageHello, HelloData{BattleID: pb.id, Side: side})
	_ = conn.WriteJSON(helloMsg)

	if pb.conns[0] != nil && pb.conns[1] != nil {
		delete(battles, hello.BattleID)
		go s.runBattle(pb)
	}
}

func (s *Server) writeError(conn *websocket.Conn, msg string) {
	errMsg, _ := NewMessage(MessageError, map[string]string{"error": msg})
	_ = conn.WriteJSON(errMsg)
}

// runBattle drives one Engine to completion, relaying observations to each
// connected side and reading back its Choice for every active slot each
// turn, implementing the hello/observation/choice/forced_switch/battle_end
// sequence of §6A end to end.
func (s *Server) runBattle(pb *pendingBattle) {
	defer pb.conns[0].Close()
	defer pb.conns[1].Close()

	e, err := battle.NewEngine(s.Registry, s.Format)
	if err != nil {
		s.logger.Error().Err(err).Msg("engine construction failed")
		return
	}
	obs := e.Reset(pb.seed, s.Registry, s.Format, pb.teamA, pb.teamB)

	for !e.State.Ended {
		choices := map[int][]battle.Choice{}
		for side := 0; side < 2; side++ {
			choices[side] = s.collectChoices(e, side, obs[side], pb.conns[side])
		}

		pick := func(side, slot int) int { return s.requestForcedSwitch(e, side, slot, pb.conns[side]) }
		result, err := e.Step(choices, pick)
		if err != nil {
			s.logger.Error().Err(err).Msg("step failed")
			return
		}
		obs = result.Observations
		if result.Done {
			s.broadcastEnd(pb, result, e.State.Log)
			return
		}
	}
}

func (s *Server) collectChoices(e *battle.Engine, side int, obs battle.Observation, conn *websocket.Conn) []battle.Choice {
	obsBytes, _ := json.Marshal(obs)
	msg, _ := NewMessage(MessageObservation, ObservationData{Turn: e.State.Turn, Obs: obsBytes})
	_ = conn.WriteJSON(msg)

	slots := e.State.Sides[side].Active
	out := make([]battle.Choice, 0, len(slots))
	for slot := range slots {
		var incoming Message
		if err := conn.ReadJSON(&incoming); err != nil {
			out = append(out, battle.Choice{Kind: battle.ChoicePass, Slot: slot})
			continue
		}
		var cd ChoiceData
		_ = json.Unmarshal(incoming.Data, &cd)
		var c battle.Choice
		_ = json.Unmarshal(cd.Choice, &c)
		out = append(out, c)
	}
	return out
}

func (s *Server) requestForcedSwitch(e *battle.Engine, side, slot int, conn *websocket.Conn) int {
	msg, _ := NewMessage(MessageForcedSwitchRequest, ForcedSwitchRequestData{Slots: []int{slot}})
	_ = conn.WriteJSON(msg)

	var incoming Message
	if err := conn.ReadJSON(&incoming); err != nil {
		return -1
	}
	var fsd ForcedSwitchData
	_ = json.Unmarshal(incoming.Data, &fsd)
	return fsd.NewTeamIdx
}

func (s *Server) broadcastEnd(pb *pendingBattle, result battle.StepResult, log *battle.EventLog) {
	logBytes, _ := json.Marshal(log.Events())
	msg, _ := NewMessage(MessageBattleEnd, BattleEndData{Winner: result.Info["winner"].(int), Turn: result.Info["turn"].(int), LogBytes: logBytes})
	for _, c := range pb.conns {
		if c != nil {
			_ = c.WriteJSON(msg)
		}
	}
}
