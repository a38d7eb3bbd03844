package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	mockdice "github.com/KirkDiggler/dying-condition/internal/dice/mock"
	"github.com/KirkDiggler/dying-condition/internal/config"
	"github.com/KirkDiggler/dying-condition/internal/domain/character"
	"github.com/KirkDiggler/dying-condition/internal/domain/conditions"
	"github.com/KirkDiggler/dying-condition/internal/events"
	"github.com/KirkDiggler/dying-condition/internal/services"
	"github.com/KirkDiggler/dying-condition/internal/testutils"
)

func testConfig() *config.Config {
	return &config.Config{
		Rules:   config.RulesConfig{MaxDying: 3},
		Markers: conditions.DefaultMarkerConfig(),
	}
}

func TestProvider_InMemoryLifecycle(t *testing.T) {
	ctx := context.Background()
	roller := mockdice.NewManualMockRoller(2)
	provider := services.NewProvider(&services.ProviderConfig{
		Config:     testConfig(),
		DiceRoller: roller,
		Logger:     zaptest.NewLogger(t),
	})

	char := testutils.CreateTestCharacter("", "Boromir", 12)
	char.Exhaustion = 2
	require.NoError(t, provider.CharacterRepository.Create(ctx, char))

	// Damage drops him to 0: exhaustion 2 starts him at dying 3, the configured maximum
	require.NoError(t, provider.DyingService.ApplyDamage(ctx, char.ID, 12, 1))
	got, err := provider.CharacterRepository.Get(ctx, char.ID)
	require.NoError(t, err)
	assert.Equal(t, character.StateDying, got.State)
	assert.Equal(t, 3, got.Dying)

	// A failed save pushes him past MaxDying 3
	outcome, err := provider.DeathSaveService.RollDeathSave(ctx, char.ID)
	require.NoError(t, err)
	require.NotNil(t, outcome)
	assert.Equal(t, 13, outcome.DC)

	got, err = provider.CharacterRepository.Get(ctx, char.ID)
	require.NoError(t, err)
	assert.Equal(t, character.StateDead, got.State)

	names, err := provider.ConditionService.CurrentMarkers(ctx, char.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dead"}, names)
}

func TestProvider_BusReachesDyingHandler(t *testing.T) {
	ctx := context.Background()
	provider := services.NewProvider(&services.ProviderConfig{Config: testConfig()})

	require.NoError(t, provider.CharacterRepository.Create(ctx, testutils.CreateTestCharacter("hero", "Hero", 5)))
	require.NoError(t, provider.CharacterRepository.WriteAttribute(ctx, "hero", character.AttributeHP, 0))

	require.NoError(t, provider.Bus.Emit(ctx, events.NewAttributesChangedEvent("hero", character.AttributeHP)))

	got, err := provider.CharacterRepository.Get(ctx, "hero")
	require.NoError(t, err)
	assert.Equal(t, character.StateDying, got.State)
}

func TestProvider_RedisBacked(t *testing.T) {
	ctx := context.Background()
	_, client := testutils.CreateMiniredisClient(t)
	provider := services.NewProvider(&services.ProviderConfig{Config: testConfig(), RedisClient: client})

	char := testutils.CreateTestCharacter("", "Faramir", 8)
	require.NoError(t, provider.CharacterRepository.Create(ctx, char))
	require.NoError(t, provider.DyingService.Kill(ctx, char.ID))

	members, err := client.SMembers(ctx, "character:"+char.ID+":markers").Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"Dead"}, members)
}
