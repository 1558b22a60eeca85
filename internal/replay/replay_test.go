package replay_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/davecgh/go-spew/spew"

	"github.com/dougwinr/vgcsim/internal/battle"
	"github.com/dougwinr/vgcsim/internal/data"
	"github.com/dougwinr/vgcsim/internal/replay"
	"github.com/dougwinr/vgcsim/sdk"
)

// scriptedTeams builds one fresh Charizard-vs-Garchomp singles matchup per
// call; Rebuild and a from-scratch run each need their own Pokemon values
// since Engine mutates them in place.
func scriptedTeams(t *testing.T, reg *data.Registry) (teamA, teamB []*battle.Pokemon) {
	t.Helper()
	a, err := sdk.NewPokemon(reg, data.SpeciesCharizard, data.ItemLifeOrb, data.MoveFlamethrower)
	require.NoError(t, err)
	b, err := sdk.NewPokemon(reg, data.SpeciesGarchomp, 0, data.MoveEarthquake)
	require.NoError(t, err)
	return []*battle.Pokemon{a}, []*battle.Pokemon{b}
}

// runScript drives a fresh engine from seed through a handful of turns with
// a fixed, non-random choice sequence, stopping early if the battle ends.
func runScript(t *testing.T, seed int64, reg *data.Registry, format battle.Format) *battle.Engine {
	t.Helper()
	teamA, teamB := scriptedTeams(t, reg)
	e, err := battle.NewEngine(reg, format)
	require.NoError(t, err)
	e.Reset(seed, reg, format, teamA, teamB)

	for turn := 0; turn < 10 && !e.State.Ended; turn++ {
		choices := map[int][]battle.Choice{
			0: {{Kind: battle.ChoiceMove, Slot: 0, MoveSlot: 0}},
			1: {{Kind: battle.ChoiceMove, Slot: 0, MoveSlot: 0}},
		}
		_, err := e.Step(choices, nil)
		require.NoError(t, err)
	}
	return e
}

// TestDeterminismSameSeedSameChoices is Scenario F's determinism half
// (spec.md §8, Testable Property 1): two independent engines built from the
// same seed and fed the identical fixed choice sequence must finish with
// byte-identical event logs, HP, and winner.
func TestDeterminismSameSeedSameChoices(t *testing.T) {
	reg := data.Builtin()
	format := battle.Format{Slots: 1, TeamSize: 1, MaxTurns: battle.DefaultMaxTurns}

	e1 := runScript(t, 42, reg, format)
	e2 := runScript(t, 42, reg, format)

	if diff := cmp.Diff(e1.State.Log.Events(), e2.State.Log.Events()); diff != "" {
		t.Fatalf("event logs diverged for identical seed/choices (-run1 +run2):\n%s\nrun1 dump:\n%s", diff, spew.Sdump(e1.State.Log.Events()))
	}
	require.Equal(t, e1.Winner(), e2.Winner())
	require.Equal(t, e1.State.Turn, e2.State.Turn)
	require.Equal(t, e1.State.Sides[0].Team[0].CurrentHP, e2.State.Sides[0].Team[0].CurrentHP)
	require.Equal(t, e1.State.Sides[1].Team[0].CurrentHP, e2.State.Sides[1].Team[0].CurrentHP)
}

// TestRebuildReproducesOriginal is Scenario F's replay half: the recorded
// CHOICE events from an original run, fed into replay.Rebuild against a
// fresh engine on the same seed, must reproduce the original's event log
// exactly.
func TestRebuildReproducesOriginal(t *testing.T) {
	reg := data.Builtin()
	format := battle.Format{Slots: 1, TeamSize: 1, MaxTurns: battle.DefaultMaxTurns}

	original := runScript(t, 42, reg, format)
	require.Greater(t, original.State.Log.Len(), 0)

	turns, err := replay.ExtractTurns(original.State.Log)
	require.NoError(t, err)
	require.NotEmpty(t, turns)

	teamA, teamB := scriptedTeams(t, reg)
	rebuilt, err := replay.Rebuild(42, reg, format, teamA, teamB, turns, nil)
	require.NoError(t, err)

	if diff := cmp.Diff(original.State.Log.Events(), rebuilt.State.Log.Events()); diff != "" {
		t.Fatalf("rebuilt log diverged from original (-original +rebuilt):\n%s\noriginal dump:\n%s", diff, spew.Sdump(original.State.Log.Events()))
	}
	require.Equal(t, original.Winner(), rebuilt.Winner())
}
