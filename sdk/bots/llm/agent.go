// Package llm implements an Agent backed by an external decision service
// (spec.md §1 "agent implementations (..., LLM, ...)"). The core never
// imports this package or anything it depends on; an LLM agent is exactly
// as out-of-scope as a human or a trained RL policy, consumed only
// through the Agent interface. Grounded on the teacher's network-backed
// bot pattern (sdk/bots/complex/handler.go calling out to
// sdk/analysis/sdk/config for its decision inputs) but replacing the
// poker-specific inputs with a JSON Observation/Choice payload posted to
// an HTTP endpoint.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dougwinr/vgcsim/internal/battle"
)

// request is the payload posted to the decision endpoint.
type request struct {
	Observation battle.Observation `json:"observation"`
	Legal       []battle.Choice    `json:"legal_actions"`
}

// response names the chosen legal action by index into the request's
// Legal slice, so the service never has to round-trip a full Choice.
type response struct {
	Index int `json:"index"`
}

// Agent posts the observation and legal-action list to Endpoint and
// returns whichever legal choice the service names. On any transport or
// decode failure, or an out-of-range index, it falls back to the first
// legal choice (conservatively "do the safest available thing") rather
// than stalling the battle on a flaky external call.
type Agent struct {
	Endpoint string
	Client   *http.Client
	Logger   *log.Logger
	Timeout  time.Duration
}

// New returns an Agent pointed at endpoint with a 5s request timeout,
// matching the teacher's own default HTTP client timeouts in
// internal/client/config.go's RequestTimeout default.
func New(endpoint string, logger *log.Logger) *Agent {
	return &Agent{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 5 * time.Second},
		Logger:   logger,
		Timeout:  5 * time.Second,
	}
}

func (a *Agent) Decide(obs battle.Observation, legal []battle.Choice) battle.Choice {
	if len(legal) == 0 {
		return battle.Choice{Kind: battle.ChoicePass}
	}

	choice, err := a.ask(obs, legal)
	if err != nil {
		if a.Logger != nil {
			a.Logger.Warn("llm agent falling back to first legal action", "err", err)
		}
		return legal[0]
	}
	return choice
}

func (a *Agent) ask(obs battle.Observation, legal []battle.Choice) (battle.Choice, error) {
	ctx, cancel := context.WithTimeout(context.Background(), a.Timeout)
	defer cancel()

	body, err := json.Marshal(request{Observation: obs, Legal: legal})
	if err != nil {
		return battle.Choice{}, fmt.Errorf("llm: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.Endpoint, bytes.NewReader(body))
	if err != nil {
		return battle.Choice{}, fmt.Errorf("llm: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.Client.Do(req)
	if err != nil {
		return battle.Choice{}, fmt.Errorf("llm: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return battle.Choice{}, fmt.Errorf("llm: unexpected status %d", resp.StatusCode)
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return battle.Choice{}, fmt.Errorf("llm: decode response: %w", err)
	}
	if out.Index < 0 || out.Index >= len(legal) {
		return battle.Choice{}, fmt.Errorf("llm: index %d out of range for %d legal actions", out.Index, len(legal))
	}
	return legal[out.Index], nil
}
