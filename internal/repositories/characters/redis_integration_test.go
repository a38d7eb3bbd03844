//go:build integration
// +build integration

package characters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dying-condition/internal/domain/character"
	"github.com/KirkDiggler/dying-condition/internal/repositories/characters"
	"github.com/KirkDiggler/dying-condition/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)
	repo := characters.NewRedis(client)
	ctx := context.Background()

	char := testutils.CreateTestCharacter("", "Gimli", 14)
	require.NoError(t, repo.Create(ctx, char))
	require.NotEmpty(t, char.ID)

	require.NoError(t, repo.WriteAttribute(ctx, char.ID, character.AttributeHP, 0))
	require.NoError(t, repo.WriteAttribute(ctx, char.ID, character.AttributeState, character.StateDying))
	require.NoError(t, repo.WriteAttribute(ctx, char.ID, character.AttributeDying, 1))

	got, err := repo.Get(ctx, char.ID)
	require.NoError(t, err)
	assert.Equal(t, character.StateDying, got.State)
	assert.Equal(t, 1, got.Dying)
	assert.Equal(t, 0, got.HP())
	assert.Equal(t, 14, got.HitPoints.Max)
}
