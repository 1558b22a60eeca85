// Command vgc-battle runs one single battle between two in-process agents
// to completion and prints its rendered event log, the "single-battle
// simulation" fast path spec.md §1 scopes the core around. Grounded on
// the teacher's cmd/simulate (a kong.CLI struct, charmbracelet/log for
// run-level diagnostics, a plain loop driving the engine to a terminal
// state).
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/dougwinr/vgcsim/internal/battle"
	"github.com/dougwinr/vgcsim/internal/config"
	"github.com/dougwinr/vgcsim/internal/data"
	"github.com/dougwinr/vgcsim/internal/replay"
	"github.com/dougwinr/vgcsim/sdk"
	"github.com/dougwinr/vgcsim/sdk/bots/heuristic"
	"github.com/dougwinr/vgcsim/sdk/bots/random"
	"github.com/dougwinr/vgcsim/sdk/bots/typematchup"
)

type CLI struct {
	Seed    int64  `default:"42" help:"PRNG seed"`
	AgentA  string `default:"random" enum:"random,heuristic,typematchup" help:"Side A agent"`
	AgentB  string `default:"heuristic" enum:"random,heuristic,typematchup" help:"Side B agent"`
	Config  string `default:"vgc-battle.hcl" help:"Optional HCL engine config path"`
	History string `help:"Write a TOML battle history to this path"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func buildAgent(kind string, reg *data.Registry) sdk.Agent {
	switch kind {
	case "heuristic":
		return heuristic.New(reg)
	case "typematchup":
		return typematchup.New(reg)
	default:
		return random.New()
	}
}

func main() {
	var cli CLI
	kong.Parse(&cli)

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadEngineConfig(cli.Config)
	if err != nil {
		logger.Fatal("load config", "err", err)
	}
	slots, teamSize, maxTurns, fullInfo, teamPreview := cfg.Format.ToBattleFormat()
	format := battle.Format{
		Slots:           slots,
		TeamSize:        teamSize,
		MaxTurns:        maxTurns,
		FullInformation: fullInfo,
		TeamPreview:     teamPreview,
	}

	reg := data.Builtin()
	engine, err := battle.NewEngine(reg, format)
	if err != nil {
		logger.Fatal("new engine", "err", err)
	}
	engine.SetLogger(logger)

	teamA, teamB := sdk.SampleTeam(reg), sdk.SampleTeam(reg)
	obs := engine.Reset(cli.Seed, reg, format, teamA, teamB)

	agentA := buildAgent(cli.AgentA, reg)
	agentB := buildAgent(cli.AgentB, reg)

	logger.Info("battle start", "seed", cli.Seed, "agentA", cli.AgentA, "agentB", cli.AgentB)

	for !engine.State.Ended {
		choicesA := sdk.DriveSide(engine, 0, obs[0], agentA)
		choicesB := sdk.DriveSide(engine, 1, obs[1], agentB)
		result, err := engine.Step(map[int][]battle.Choice{0: choicesA, 1: choicesB}, firstNonFainted(engine))
		if err != nil {
			logger.Fatal("step", "err", err)
		}
		obs = result.Observations
		if result.Done {
			break
		}
	}

	fmt.Println(battle.Render(engine.State.Log, reg, battle.RenderOptions{Perspective: -1}))

	switch engine.Winner() {
	case 0:
		fmt.Println("Winner: side 0")
	case 1:
		fmt.Println("Winner: side 1")
	default:
		fmt.Println("Result: draw")
	}

	if cli.History != "" {
		if err := writeHistory(cli, engine, reg); err != nil {
			logger.Fatal("write history", "err", err)
		}
		logger.Info("wrote battle history", "path", cli.History)
	}
}

// writeHistory extracts the recorded CHOICE events back into per-turn
// decisions and encodes the result as a TOML battle history (§10's
// hand-history-style rendering), exercising the same replay.ExtractTurns
// path the determinism/replay test suite (§8 Scenario F) relies on.
func writeHistory(cli CLI, engine *battle.Engine, reg *data.Registry) error {
	turns, err := replay.ExtractTurns(engine.State.Log)
	if err != nil {
		return err
	}
	speciesNames := func(team []*battle.Pokemon) []string {
		names := make([]string, len(team))
		for i, mon := range team {
			if sp, ok := reg.Species(mon.Species); ok {
				names[i] = sp.Name
			}
		}
		return names
	}
	teamA := make([]string, len(engine.State.Sides[0].Team))
	teamB := make([]string, len(engine.State.Sides[1].Team))
	copy(teamA, speciesNames(engine.State.Sides[0].Team))
	copy(teamB, speciesNames(engine.State.Sides[1].Team))

	history := replay.BuildHistory(cli.Seed, teamA, teamB, turns, engine.Winner(), engine.State.Turn)

	f, err := os.Create(cli.History)
	if err != nil {
		return err
	}
	defer f.Close()
	return replay.Encode(f, history)
}

// firstNonFainted is vgc-battle's default forced-switch policy, matching
// internal/tournament.Runner's own fallback of always bringing in the
// first available bench Pokémon.
func firstNonFainted(e *battle.Engine) func(side, slot int) int {
	return func(side, slot int) int {
		for i, mon := range e.State.Sides[side].Team {
			if mon.Fainted() {
				continue
			}
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
		return -1
	}
}
