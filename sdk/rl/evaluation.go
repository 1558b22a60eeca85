// Package rl provides the thin RL-facing layer over the core engine:
// an evaluation harness for scoring finished agent-vs-agent batches
// (grounded on the teacher's internal/regression.BatchResult/Orchestrator
// aggregation pattern) and a gym-style Reset/Step adapter (gym.go).
package rl

import (
	"context"
	"math"

	"github.com/dougwinr/vgcsim/internal/battle"
	"github.com/dougwinr/vgcsim/internal/data"
	"github.com/dougwinr/vgcsim/sdk"
)

// MatchOutcome is one finished battle's result from an evaluation batch,
// the RL-evaluation analog of the teacher's regression.BatchResult.
type MatchOutcome struct {
	Winner int // 0 or 1, -1 for a tie/draw
	Turns  int
}

// EvaluationResult aggregates a batch of MatchOutcomes into the headline
// metrics an RL practitioner checks between training runs: win rate,
// average turns-to-win, and an Elo delta estimated from the batch alone.
type EvaluationResult struct {
	Battles        int
	WinsA          int
	WinsB          int
	Draws          int
	WinRateA       float64
	AvgTurnsToWin  float64
	EloDeltaAvsB   float64
}

// Evaluate aggregates a batch of finished match outcomes, mirroring the
// teacher's Orchestrator.aggregateBatchResults but over battle outcomes
// instead of poker bb/100 stats.
func Evaluate(outcomes []MatchOutcome) EvaluationResult {
	var res EvaluationResult
	res.Battles = len(outcomes)
	var turnsToWinSum, turnsToWinCount float64
	for _, o := range outcomes {
		switch o.Winner {
		case 0:
			res.WinsA++
			turnsToWinSum += float64(o.Turns)
			turnsToWinCount++
		case 1:
			res.WinsB++
			turnsToWinSum += float64(o.Turns)
			turnsToWinCount++
		default:
			res.Draws++
		}
	}
	if res.Battles > 0 {
		res.WinRateA = float64(res.WinsA) / float64(res.Battles)
	}
	if turnsToWinCount > 0 {
		res.AvgTurnsToWin = turnsToWinSum / turnsToWinCount
	}
	res.EloDeltaAvsB = eloDelta(res.WinRateA)
	return res
}

// eloDelta converts a win rate into the Elo-rating difference that would
// predict it, using the standard logistic Elo expectation formula solved
// for rating delta. A win rate of exactly 0 or 1 saturates to +/-800, a
// practical ceiling rather than +/-Inf.
func eloDelta(winRate float64) float64 {
	const ceiling = 800.0
	if winRate <= 0 {
		return -ceiling
	}
	if winRate >= 1 {
		return ceiling
	}
	delta := -400 * math.Log10(1/winRate-1)
	if delta > ceiling {
		return ceiling
	}
	if delta < -ceiling {
		return -ceiling
	}
	return delta
}

// PlayMatch drives one complete battle between two agents to completion
// using default forced-switch handling (first available bench mon),
// returning the MatchOutcome an evaluation batch accumulates.
func PlayMatch(ctx context.Context, reg *data.Registry, format battle.Format, seed int64, teamA, teamB []*battle.Pokemon, agentA, agentB sdk.Agent) (MatchOutcome, error) {
	e, err := battle.NewEngine(reg, format)
	if err != nil {
		return MatchOutcome{}, err
	}
	obs := e.Reset(seed, reg, format, teamA, teamB)

	pick := func(side, slot int) int {
		st := e.State
		for idx, mon := range st.Sides[side].Team {
			if mon.Fainted() {
				continue
			}
			alreadyActive := false
			for _, a := range st.Sides[side].Active {
				if a == idx {
					alreadyActive = true
					break
				}
			}
			if !alreadyActive {
				return idx
			}
		}
		return -1
	}

	for {
		select {
		case <-ctx.Done():
			return MatchOutcome{}, ctx.Err()
		default:
		}

		choices := map[int][]battle.Choice{
			0: sdk.DriveSide(e, 0, obs[0], agentA),
			1: sdk.DriveSide(e, 1, obs[1], agentB),
		}
		result, err := e.Step(choices, pick)
		if err != nil {
			return MatchOutcome{}, err
		}
		obs = result.Observations
		if result.Done {
			return MatchOutcome{Winner: e.Winner(), Turns: e.State.Turn}, nil
		}
	}
}
