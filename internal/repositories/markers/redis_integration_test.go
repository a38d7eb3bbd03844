//go:build integration
// +build integration

package markers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dying-condition/internal/repositories/markers"
	"github.com/KirkDiggler/dying-condition/internal/testutils"
)

func TestRedisRegistry_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	registry := markers.NewRedisRegistry(&markers.RedisConfig{Client: client})
	ctx := context.Background()

	require.NoError(t, registry.Add(ctx, "Dying 2", "char-1", nil))
	require.NoError(t, registry.Add(ctx, "Prone", "char-1", nil))
	require.NoError(t, registry.Add(ctx, "Prone", "char-1", nil))

	result, err := registry.Query(ctx, "char-1", nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Conditions, 2)
	assert.Equal(t, "Dying 2", result.Conditions[0].Name)
	assert.Equal(t, "Prone", result.Conditions[1].Name)

	require.NoError(t, registry.Remove(ctx, "Dying 2", "char-1", nil))
	result, err = registry.Query(ctx, "char-1", nil)
	require.NoError(t, err)
	require.NotNil(t, result.Condition)
	assert.Equal(t, "Prone", result.Condition.Name)
}
