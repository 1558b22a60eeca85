package battle

import (
	"testing"

	"github.com/dougwinr/vgcsim/internal/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHitImmuneGroundVsFlying(t *testing.T) {
	reg := data.Builtin()
	attacker := newMon(data.SpeciesGarchomp, reg, data.MoveEarthquake)
	defender := newMon(data.SpeciesCharizard, reg, data.MoveFlamethrower)
	s := newSinglesState(1, reg, attacker, defender)

	md, _ := reg.Move(data.MoveEarthquake)
	result := ComputeHit(s, attacker, 0, 0, defender, 1, 0, md, 1)
	assert.True(t, result.IsImmune)
	assert.Zero(t, result.Damage)
}

func TestComputeHitSuperEffectiveDealsDamage(t *testing.T) {
	reg := data.Builtin()
	attacker := newMon(data.SpeciesGarchomp, reg, data.MoveEarthquake)
	defender := newMon(data.SpeciesTyranitar, reg, data.MoveCrunch) // Rock/Dark: Ground is 2x vs Rock
	s := newSinglesState(1, reg, attacker, defender)

	md, _ := reg.Move(data.MoveEarthquake)
	result := ComputeHit(s, attacker, 0, 0, defender, 1, 0, md, 1)
	require.False(t, result.IsImmune)
	assert.Greater(t, result.TypeEffectiveness, 1.0)
	assert.Greater(t, result.Damage, 0)
}

func TestComputeHitStatusMoveDealsNoDamage(t *testing.T) {
	reg := data.Builtin()
	attacker := newMon(data.SpeciesGengar, reg, data.MoveWillOWisp)
	defender := newMon(data.SpeciesTyranitar, reg, data.MoveCrunch)
	s := newSinglesState(1, reg, attacker, defender)

	md, _ := reg.Move(data.MoveWillOWisp)
	result := ComputeHit(s, attacker, 0, 0, defender, 1, 0, md, 1)
	assert.Zero(t, result.Damage)
	assert.False(t, result.IsCritical)
}

func TestStabMultiplierAppliesToOriginalType(t *testing.T) {
	reg := data.Builtin()
	mover := newMon(data.SpeciesCharizard, reg, data.MoveFlamethrower)
	mult := stabMultiplier(mover, mover.Type1)
	assert.InDelta(t, 1.5, mult, 1e-9)
}

func TestStabMultiplierNoBoostForUnrelatedType(t *testing.T) {
	reg := data.Builtin()
	mover := newMon(data.SpeciesCharizard, reg, data.MoveFlamethrower)
	mult := stabMultiplier(mover, 0) // Normal
	assert.InDelta(t, 1.0, mult, 1e-9)
}

func TestStellarStabGrantsOneTimeBoostPerType(t *testing.T) {
	reg := data.Builtin()
	mover := newMon(data.SpeciesCharizard, reg, data.MoveFlamethrower)
	mover.Terastallized = true
	mover.TeraType = TeraStellar

	first := stabMultiplier(mover, 0) // Normal, not an original type
	assert.InDelta(t, 1.2, first, 1e-9)

	second := stabMultiplier(mover, 0)
	assert.InDelta(t, 1.0, second, 1e-9)
}

func TestStellarStabDoublesOwnOriginalType(t *testing.T) {
	reg := data.Builtin()
	mover := newMon(data.SpeciesCharizard, reg, data.MoveFlamethrower)
	mover.Terastallized = true
	mover.TeraType = TeraStellar

	mult := stabMultiplier(mover, mover.Type1)
	assert.InDelta(t, 2.0, mult, 1e-9)
}

func TestSampleMultiHitCountStaysWithinRange(t *testing.T) {
	reg := data.Builtin()
	s := NewState(42, reg, Format{Slots: 1, TeamSize: 1})
	mh := data.MultiHit{Min: 2, Max: 5}
	for i := 0; i < 100; i++ {
		n := SampleMultiHitCount(s, mh)
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 5)
	}
}

func TestSampleMultiHitCountSingleHitForNonMultiHit(t *testing.T) {
	reg := data.Builtin()
	s := NewState(1, reg, Format{Slots: 1, TeamSize: 1})
	assert.Equal(t, 1, SampleMultiHitCount(s, data.MultiHit{}))
}

func TestConfusionDamageIsPositive(t *testing.T) {
	reg := data.Builtin()
	s := NewState(7, reg, Format{Slots: 1, TeamSize: 1})
	mon := newMon(data.SpeciesTyranitar, reg, data.MoveCrunch)
	dmg := ConfusionDamage(s, mon)
	assert.Greater(t, dmg, 0)
}
