package conditions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseName(t *testing.T) {
	assert.Equal(t, "Dying", BaseName("Dying 3"))
	assert.Equal(t, "Dying", BaseName("Dying"))
	assert.Equal(t, "Exhaustion", BaseName("  Exhaustion 12 "))
	assert.Equal(t, "", BaseName(""))
}

func TestLeveledName(t *testing.T) {
	assert.Equal(t, "Dying 3", LeveledName("Dying", 3))
	assert.Equal(t, "Exhaustion 0", LeveledName("Exhaustion", 0))
}

func TestParseLevel(t *testing.T) {
	level, ok := ParseLevel("Dying 4")
	assert.True(t, ok)
	assert.Equal(t, 4, level)

	_, ok = ParseLevel("Dying")
	assert.False(t, ok)

	_, ok = ParseLevel("Dying four")
	assert.False(t, ok)
}

func TestKind_IsLeveled(t *testing.T) {
	assert.True(t, Dying.IsLeveled())
	assert.True(t, Exhaustion.IsLeveled())
	assert.False(t, Prone.IsLeveled())
	assert.False(t, Dead.IsLeveled())
}

func TestMarkerConfig_NameFor(t *testing.T) {
	cfg := DefaultMarkerConfig()
	cfg.ProneMarkerName = cfg.NoneSentinel
	cfg.UnconsciousMarkerName = ""

	name, ok := cfg.NameFor(Dying)
	assert.True(t, ok)
	assert.Equal(t, "Dying", name)

	_, ok = cfg.NameFor(Prone)
	assert.False(t, ok, "sentinel name is not tracked")

	_, ok = cfg.NameFor(Unconscious)
	assert.False(t, ok, "empty name is not tracked")

	_, ok = cfg.NameFor(Kind("blinded"))
	assert.False(t, ok)
}

func TestMarkerConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultMarkerConfig().Validate())

	cfg := DefaultMarkerConfig()
	cfg.NoneSentinel = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultMarkerConfig()
	cfg.DeadMarkerName = "Dying"
	assert.Error(t, cfg.Validate())

	cfg = DefaultMarkerConfig()
	cfg.DyingMarkerName = "Near Death"
	assert.Error(t, cfg.Validate())

	// Two kinds both disabled through the sentinel is fine
	cfg = DefaultMarkerConfig()
	cfg.ProneMarkerName = cfg.NoneSentinel
	cfg.IncapacitatedMarkerName = cfg.NoneSentinel
	assert.NoError(t, cfg.Validate())
}
