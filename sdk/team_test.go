package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dougwinr/vgcsim/internal/data"
)

func TestNewPokemon(t *testing.T) {
	reg := data.Builtin()

	mon, err := NewPokemon(reg, data.SpeciesCharizard, data.ItemLifeOrb, data.MoveFlamethrower, data.MoveHurricane)
	require.NoError(t, err)

	assert.Equal(t, data.SpeciesCharizard, mon.Species)
	assert.Equal(t, data.ItemLifeOrb, mon.Item)
	assert.Equal(t, 50, mon.Level)
	assert.Equal(t, mon.MaxHP, mon.CurrentHP)
	assert.Equal(t, data.MoveFlamethrower, mon.Moves[0].ID)
	assert.Equal(t, data.MoveHurricane, mon.Moves[1].ID)
	assert.Zero(t, mon.Moves[2].ID)
}

func TestNewPokemonUnknownSpecies(t *testing.T) {
	reg := data.Builtin()
	_, err := NewPokemon(reg, data.SpeciesID(9999), 0)
	assert.Error(t, err)
}

func TestNewPokemonUnknownMove(t *testing.T) {
	reg := data.Builtin()
	_, err := NewPokemon(reg, data.SpeciesCharizard, 0, data.MoveID(9999))
	assert.Error(t, err)
}

func TestSampleTeam(t *testing.T) {
	reg := data.Builtin()
	team := SampleTeam(reg)

	require.Len(t, team, 6)
	for _, mon := range team {
		assert.NotZero(t, mon.Species)
		assert.Equal(t, mon.MaxHP, mon.CurrentHP)
	}
}
