package tournament

import (
	"context"
	"math/rand/v2"

	"github.com/dougwinr/vgcsim/internal/battle"
	"github.com/dougwinr/vgcsim/internal/data"
	"github.com/dougwinr/vgcsim/sdk"
	"golang.org/x/sync/errgroup"
)

// TeamProvider supplies a fresh team for one entrant, called once per
// battle so a caller can vary EV/IV spreads or ordering between rounds.
type TeamProvider func(entrantID string) []*battle.Pokemon

// AgentProvider supplies the sdk.Agent driving one entrant's side.
type AgentProvider func(entrantID string) sdk.Agent

// Runner drives a Tournament's pairings through internal/battle, one
// Engine per table, run concurrently (spec.md §5: "running N tournaments
// in parallel is done by spawning N engines, each with its own seeded
// PRNG and state"). It never shares an Engine or PRNG across goroutines;
// errgroup.Group only fans the independent battles out and collects the
// first error, mirroring the teacher's own golang.org/x/sync usage.
type Runner struct {
	Registry *data.Registry
	Format   battle.Format
	Teams    TeamProvider
	Agents   AgentProvider
	MaxConcurrency int // 0 means unlimited
}

// PlayRound runs every pairing in one Swiss round concurrently and records
// each result into t, then finalizes that round's tiebreakers. seed seeds
// a per-round rand.Rand that in turn derives one independent per-table
// seed, so re-running PlayRound with the same seed and same pairings is
// fully reproducible even though tables run out of order.
func (r *Runner) PlayRound(ctx context.Context, t *Tournament, pairings []Pairing, seed int64) error {
	g, ctx := errgroup.WithContext(ctx)
	if r.MaxConcurrency > 0 {
		g.SetLimit(r.MaxConcurrency)
	}

	seeder := rand.New(rand.NewPCG(uint64(seed), uint64(t.Round())))
	tableSeeds := make([]int64, len(pairings))
	for i := range pairings {
		tableSeeds[i] = int64(seeder.Uint64())
	}

	results := make([]*MatchResult, len(pairings))
	for i, p := range pairings {
		i, p := i, p
		if p.BYE {
			results[i] = &MatchResult{Round: t.Round(), A: p.A}
			continue
		}
		tableSeed := tableSeeds[i]
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			res, err := r.playTable(t.Round(), p, tableSeed)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	for _, res := range results {
		t.RecordResult(*res)
	}
	t.FinalizeRound()
	return nil
}

// playTable runs one pairing to completion on its own Engine and Agents.
func (r *Runner) playTable(round int, p Pairing, seed int64) (*MatchResult, error) {
	e, err := battle.NewEngine(r.Registry, r.Format)
	if err != nil {
		return nil, err
	}
	teamA, teamB := r.Teams(p.A), r.Teams(p.B)
	obs := e.Reset(seed, r.Registry, r.Format, teamA, teamB)
	agentA, agentB := r.Agents(p.A), r.Agents(p.B)

	for !e.State.Ended {
		choicesA := sdk.DriveSide(e, 0, obs[0], agentA)
		choicesB := sdk.DriveSide(e, 1, obs[1], agentB)
		result, err := e.Step(map[int][]battle.Choice{0: choicesA, 1: choicesB}, firstNonFainted(e))
		if err != nil {
			return nil, err
		}
		obs = result.Observations
		if result.Done {
			break
		}
	}

	winnerID := ""
	switch e.Winner() {
	case 0:
		winnerID = p.A
	case 1:
		winnerID = p.B
	}
	return &MatchResult{Round: round, A: p.A, B: p.B, Winner: winnerID, Turns: e.State.Turn}, nil
}

// firstNonFainted is the Runner's default forced-switch policy: always
// bring in the first non-fainted bench Pokémon for a fainted active slot,
// used when no Agent-driven replacement logic is supplied. Tournament
// callers that want agent-chosen replacements should drive
// Engine.ForcedSwitches/ApplyForcedSwitch themselves instead of using
// Runner.
func firstNonFainted(e *battle.Engine) func(side, slot int) int {
	return func(side, slot int) int {
		for i, mon := range e.State.Sides[side].Team {
			if !mon.Fainted() {
				active := false
				for _, a := range e.State.Sides[side].Active {
					if a == i {
						active = true
						break
					}
				}
				if !active {
					return i
				}
			}
		}
		return -1
	}
}
