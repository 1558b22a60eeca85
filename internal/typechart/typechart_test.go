package typechart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroundVsFlyingIsImmune(t *testing.T) {
	assert.True(t, IsImmune(Ground, Flying, Flying))
	assert.Equal(t, 0.0, Dual(Ground, Flying, Flying))
}

func TestFireVsGrassIceIsQuadruple(t *testing.T) {
	assert.Equal(t, 4.0, Dual(Fire, Grass, Ice))
}

func TestNeutralDefaultsToOne(t *testing.T) {
	assert.Equal(t, 1.0, Dual(Normal, Normal, Typeless))
}

func TestMonoTypeDoesNotDoubleCount(t *testing.T) {
	// Dragon vs pure Dragon should be x2, not x4.
	assert.Equal(t, 2.0, Dual(Dragon, Dragon, Dragon))
}

func TestRockVsFireFlyingIsQuadruple(t *testing.T) {
	assert.Equal(t, 4.0, Dual(Rock, Fire, Flying))
}
