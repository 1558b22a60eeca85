package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinRegistryLooksUpMoves(t *testing.T) {
	reg := Builtin()
	m, ok := reg.Move(MoveFlamethrower)
	require.True(t, ok)
	assert.Equal(t, "Flamethrower", m.Name)
	assert.Equal(t, 90, m.Power)
}

func TestMoveZeroIDIsEmptySlot(t *testing.T) {
	reg := Builtin()
	_, ok := reg.Move(0)
	assert.False(t, ok)
}

func TestUnknownMoveIsNotFound(t *testing.T) {
	reg := Builtin()
	_, ok := reg.Move(MoveID(999999))
	assert.False(t, ok)
}

func TestNewRegistryRejectsDuplicateIDs(t *testing.T) {
	moves := []*MoveData{
		{ID: 1, Name: "A"},
		{ID: 1, Name: "B"},
	}
	_, err := NewRegistry(moves, nil, nil)
	assert.Error(t, err)
}

func TestNewRegistryRejectsZeroID(t *testing.T) {
	moves := []*MoveData{{ID: 0, Name: "A"}}
	_, err := NewRegistry(moves, nil, nil)
	assert.Error(t, err)
}
