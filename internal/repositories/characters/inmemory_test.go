package characters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dying-condition/internal/domain/character"
	dnderr "github.com/KirkDiggler/dying-condition/internal/errors"
	"github.com/KirkDiggler/dying-condition/internal/repositories/characters"
	"github.com/KirkDiggler/dying-condition/internal/testutils"
	"github.com/KirkDiggler/dying-condition/internal/uuid"
)

func newInMemory() characters.Repository {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return characters.NewInMemoryRepository(&characters.InMemoryConfig{
		UUIDGenerator: uuid.NewSequenceGenerator("char"),
		Now:           func() time.Time { return fixed },
	})
}

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newInMemory()

	char := &character.Character{Name: "Aragorn", HitPoints: character.HitPoints{Value: 12, Max: 12}}
	require.NoError(t, repo.Create(ctx, char))
	assert.Equal(t, "char-1", char.ID)

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Aragorn", got.Name)
	assert.Equal(t, character.StateAlive, got.State, "missing state is normalized")

	// Mutating the returned copy leaves the stored character alone
	got.HitPoints.Value = 0
	again, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, 12, again.HP())

	err = repo.Create(ctx, testutils.CreateTestCharacter("char-1", "Dup", 8))
	assert.True(t, dnderr.IsAlreadyExists(err))

	_, err = repo.Get(ctx, "missing")
	assert.True(t, dnderr.IsNotFound(err))
}

func TestInMemoryRepository_WriteAttribute(t *testing.T) {
	ctx := context.Background()
	repo := newInMemory()
	require.NoError(t, repo.Create(ctx, testutils.CreateTestCharacter("hero", "Hero", 10)))

	require.NoError(t, repo.WriteAttribute(ctx, "hero", character.AttributeState, character.StateDying))
	require.NoError(t, repo.WriteAttribute(ctx, "hero", character.AttributeDying, 3))
	require.NoError(t, repo.WriteAttribute(ctx, "hero", character.AttributeExhaustion, 9))
	require.NoError(t, repo.WriteAttribute(ctx, "hero", character.AttributeHP, "0"))

	got, err := repo.Get(ctx, "hero")
	require.NoError(t, err)
	assert.Equal(t, character.StateDying, got.State)
	assert.Equal(t, 3, got.Dying)
	assert.Equal(t, character.MaxExhaustion, got.Exhaustion)
	assert.Equal(t, 0, got.HP())

	err = repo.WriteAttribute(ctx, "hero", character.AttributeDying, "lots")
	assert.True(t, dnderr.IsInvalidArgument(err))

	err = repo.WriteAttribute(ctx, "missing", character.AttributeDying, 1)
	assert.True(t, dnderr.IsNotFound(err))
}

func TestInMemoryRepository_DeleteAndList(t *testing.T) {
	ctx := context.Background()
	repo := newInMemory()

	require.NoError(t, repo.Create(ctx, testutils.CreateTestCharacter("b", "B", 10)))
	require.NoError(t, repo.Create(ctx, testutils.CreateTestCharacter("a", "A", 10)))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)

	require.NoError(t, repo.Delete(ctx, "a"))
	assert.True(t, dnderr.IsNotFound(repo.Delete(ctx, "a")))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
