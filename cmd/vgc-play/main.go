// Command vgc-play seats a human at the terminal against an in-process
// bot for one battle, driving sdk/bots/human's Bubble Tea prompt each turn
// (spec.md §1: "agent implementations (..., human, ...)"). Grounded on the
// teacher's internal/tui-backed interactive client commands
// (cmd/client, cmd/holdem-client).
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/dougwinr/vgcsim/internal/battle"
	"github.com/dougwinr/vgcsim/internal/data"
	"github.com/dougwinr/vgcsim/sdk"
	"github.com/dougwinr/vgcsim/sdk/bots/heuristic"
	"github.com/dougwinr/vgcsim/sdk/bots/human"
)

type CLI struct {
	Seed int64 `default:"0" help:"PRNG seed"`
	Side int   `default:"0" help:"Which side the human plays (0 or 1)"`
}

func main() {
	var cli CLI
	kong.Parse(&cli)

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	reg := data.Builtin()
	format := battle.Format{Slots: 1, TeamSize: 6, MaxTurns: battle.DefaultMaxTurns}
	engine, err := battle.NewEngine(reg, format)
	if err != nil {
		logger.Fatal("new engine", "err", err)
	}

	teamA, teamB := sdk.SampleTeam(reg), sdk.SampleTeam(reg)
	obs := engine.Reset(cli.Seed, reg, format, teamA, teamB)

	humanAgent := human.New()
	botAgent := heuristic.New(reg)

	agents := map[int]sdk.Agent{cli.Side: humanAgent, 1 - cli.Side: botAgent}

	for !engine.State.Ended {
		fmt.Println(battle.Render(engine.State.Log, reg, battle.RenderOptions{Perspective: cli.Side}))
		choices := map[int][]battle.Choice{
			0: sdk.DriveSide(engine, 0, obs[0], agents[0]),
			1: sdk.DriveSide(engine, 1, obs[1], agents[1]),
		}
		result, err := engine.Step(choices, firstNonFainted(engine))
		if err != nil {
			logger.Fatal("step", "err", err)
		}
		obs = result.Observations
		if result.Done {
			break
		}
	}

	fmt.Println(battle.Render(engine.State.Log, reg, battle.RenderOptions{Perspective: cli.Side}))
	switch engine.Winner() {
	case cli.Side:
		fmt.Println("You won!")
	case 1 - cli.Side:
		fmt.Println("You lost.")
	default:
		fmt.Println("Draw.")
	}
}

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
