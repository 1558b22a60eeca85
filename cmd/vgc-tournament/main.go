// Command vgc-tournament runs a small Swiss tournament over in-process
// agents using internal/tournament as a thin driver over internal/battle
// (spec.md §1's explicit scoping: "the core exposes single-battle
// simulation; tournament code is a thin driver"). Grounded on the
// teacher's cmd/regression-tester (a kong.CLI struct, zerolog.Logger for
// run-level reporting, a batch loop over many independent hands/battles).
package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/dougwinr/vgcsim/internal/battle"
	"github.com/dougwinr/vgcsim/internal/config"
	"github.com/dougwinr/vgcsim/internal/data"
	"github.com/dougwinr/vgcsim/internal/tournament"
	"github.com/dougwinr/vgcsim/sdk"
	"github.com/dougwinr/vgcsim/sdk/bots/heuristic"
	"github.com/dougwinr/vgcsim/sdk/bots/random"
	"github.com/dougwinr/vgcsim/sdk/bots/typematchup"
)

type CLI struct {
	Entrants int    `default:"8" help:"Number of entrants"`
	Rounds   int    `default:"3" help:"Number of Swiss rounds"`
	Seed     int64  `default:"42" help:"Seed for per-table PRNG derivation"`
	Config   string `default:"vgc-tournament.hcl" help:"Optional HCL tournament config path"`
}

func main() {
	var cli CLI
	kong.Parse(&cli)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.LoadTournamentConfig(cli.Config)
	if err != nil {
		logger.Fatal().Err(err).Msg("load tournament config")
	}
	if cfg.Rounds > 0 {
		cli.Rounds = cfg.Rounds
	}

	reg := data.Builtin()
	format := battle.Format{Slots: 2, TeamSize: 6, MaxTurns: battle.DefaultMaxTurns}

	entrants := make([]tournament.Entrant, cli.Entrants)
	agentKinds := []string{"random", "heuristic", "typematchup"}
	for i := range entrants {
		entrants[i] = tournament.Entrant{ID: string(rune('A' + i)), Name: "Entrant " + string(rune('A'+i))}
	}

	regulation := tournament.StandardDoubles
	t := tournament.New(entrants)

	runner := &tournament.Runner{
		Registry: reg,
		Format:   format,
		Teams: func(entrantID string) []*battle.Pokemon {
			team := sdk.SampleTeam(reg)
			if errs := regulation.Validate(team); len(errs) > 0 {
				logger.Warn().Str("entrant", entrantID).Errs("violations", errs).Msg("team failed regulation")
			}
			return team
		},
		Agents: func(entrantID string) sdk.Agent {
			kind := agentKinds[int(entrantID[0])%len(agentKinds)]
			switch kind {
			case "heuristic":
				return heuristic.New(reg)
			case "typematchup":
				return typematchup.New(reg)
			default:
				return random.New()
			}
		},
		MaxConcurrency: cfg.MaxConcurrency,
	}

	ctx := context.Background()
	for round := 0; round < cli.Rounds; round++ {
		pairings := t.NextRound()
		logger.Info().Int("round", t.Round()).Int("tables", len(pairings)).Msg("pairing round")
		if err := runner.PlayRound(ctx, t, pairings, cli.Seed+int64(round)); err != nil {
			logger.Fatal().Err(err).Msg("play round")
		}
		for _, st := range t.Standings() {
			logger.Info().Str("entrant", st.EntrantID).Int("wins", st.Wins).Int("losses", st.Losses).
				Int("draws", st.Draws).Float64("opp_win_pct", st.OpponentWinPct).Msg("standing")
		}
	}
}
