package dying_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/KirkDiggler/dying-condition/internal/domain/character"
	"github.com/KirkDiggler/dying-condition/internal/domain/conditions"
	"github.com/KirkDiggler/dying-condition/internal/metrics"
	"github.com/KirkDiggler/dying-condition/internal/repositories/characters"
	mockcharacters "github.com/KirkDiggler/dying-condition/internal/repositories/characters/mock"
	"github.com/KirkDiggler/dying-condition/internal/repositories/markers"
	"github.com/KirkDiggler/dying-condition/internal/services/condition"
	mockcondition "github.com/KirkDiggler/dying-condition/internal/services/condition/mock"
	"github.com/KirkDiggler/dying-condition/internal/services/dying"
	"github.com/KirkDiggler/dying-condition/internal/testutils"
)

type fixture struct {
	repo       characters.Repository
	registry   *markers.InMemoryRegistry
	conditions condition.Service
	metrics    *metrics.Recorder
	svc        dying.Service
}

func newFixture(t *testing.T, chars ...*character.Character) *fixture {
	t.Helper()
	logger := zaptest.NewLogger(t)

	f := &fixture{
		repo:     characters.NewInMemoryRepository(nil),
		registry: markers.NewInMemoryRegistry(&markers.InMemoryConfig{Logger: logger}),
		metrics:  metrics.NewRecorder(),
	}
	f.conditions = condition.NewService(&condition.ServiceConfig{
		Registry: f.registry,
		Markers:  conditions.DefaultMarkerConfig(),
		Logger:   logger,
	})
	f.svc = dying.NewService(&dying.ServiceConfig{
		Repository: f.repo,
		Conditions: f.conditions,
		Rules:      dying.DefaultRules(),
		Metrics:    f.metrics,
		Logger:     logger,
	})

	for _, char := range chars {
		require.NoError(t, f.repo.Create(context.Background(), char))
	}
	return f
}

func (f *fixture) get(t *testing.T, id string) *character.Character {
	t.Helper()
	char, err := f.repo.Get(context.Background(), id)
	require.NoError(t, err)
	return char
}

func (f *fixture) markers(t *testing.T, id string) []string {
	t.Helper()
	names, err := f.conditions.CurrentMarkers(context.Background(), id)
	require.NoError(t, err)
	return names
}

func TestService_PositiveHitPointsAlwaysAlive(t *testing.T) {
	ctx := context.Background()

	for _, state := range []character.State{character.StateAlive, character.StateStable, character.StateDying, character.StateDead} {
		t.Run(string(state), func(t *testing.T) {
			char := testutils.CreateTestCharacter("hero", "Hero", 10)
			char.HitPoints.Value = 5
			char.State = state
			if state == character.StateDying {
				char.Dying = 3
			}
			f := newFixture(t, char)

			require.NoError(t, f.svc.UpdateState(ctx, "hero"))

			got := f.get(t, "hero")
			assert.Equal(t, character.StateAlive, got.State)
			assert.Equal(t, 0, got.Dying)
		})
	}
}

func TestService_UpdateStateInjuresFromAlive(t *testing.T) {
	ctx := context.Background()

	for e := 0; e <= 3; e++ {
		char := testutils.CreateTestCharacter("hero", "Hero", 10)
		char.HitPoints.Value = 0
		char.Exhaustion = e
		f := newFixture(t, char)

		require.NoError(t, f.svc.UpdateState(ctx, "hero"))

		got := f.get(t, "hero")
		assert.Equal(t, character.StateDying, got.State)
		assert.Equal(t, e+1, got.Dying)
		assert.Equal(t, []string{conditions.LeveledName("Dying", e+1), "Incapacitated", "Prone", "Unconscious"}, f.markers(t, "hero"))
	}
}

func TestService_InjureBoundaries(t *testing.T) {
	ctx := context.Background()

	t.Run("exhaustion four reaches max and survives", func(t *testing.T) {
		char := testutils.CreateTestCharacter("hero", "Hero", 10)
		char.HitPoints.Value = 0
		char.Exhaustion = 4
		f := newFixture(t, char)

		require.NoError(t, f.svc.Injure(ctx, "hero"))

		got := f.get(t, "hero")
		assert.Equal(t, character.StateDying, got.State)
		assert.Equal(t, dying.DefaultMaxDying, got.Dying)
	})

	t.Run("exhaustion five dies", func(t *testing.T) {
		char := testutils.CreateTestCharacter("hero", "Hero", 10)
		char.HitPoints.Value = 0
		char.Exhaustion = 5
		f := newFixture(t, char)

		require.NoError(t, f.svc.Injure(ctx, "hero"))

		got := f.get(t, "hero")
		assert.Equal(t, character.StateDead, got.State)
		assert.Equal(t, []string{"Dead"}, f.markers(t, "hero"))
	})
}

func TestService_Stabilize(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testutils.CreateDyingCharacter("hero", 0, 1))

	// Markers as injure would have left them
	require.NoError(t, f.conditions.AddConditions(ctx, "hero", conditions.Unconscious, conditions.Incapacitated, conditions.Prone))
	require.NoError(t, f.conditions.SyncLevel(ctx, "hero", conditions.Dying, 1))

	require.NoError(t, f.svc.Stabilize(ctx, "hero"))

	got := f.get(t, "hero")
	assert.Equal(t, character.StateStable, got.State)
	assert.Equal(t, 2, got.Exhaustion)
	assert.Equal(t, 0, got.Dying)
	assert.Equal(t, []string{"Exhaustion 2", "Incapacitated", "Prone", "Unconscious"}, f.markers(t, "hero"))
}

func TestService_StabilizeResetsDyingLevel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testutils.CreateDyingCharacter("hero", 3, 0))

	require.NoError(t, f.svc.Stabilize(ctx, "hero"))

	got := f.get(t, "hero")
	assert.Equal(t, character.StateStable, got.State)
	assert.Equal(t, 1, got.Exhaustion)
	assert.Equal(t, 0, got.Dying)
}

func TestService_HealFromDying(t *testing.T) {
	ctx := context.Background()
	char := testutils.CreateDyingCharacter("hero", 2, 1)
	char.HitPoints.Value = 3
	f := newFixture(t, char)

	require.NoError(t, f.conditions.AddConditions(ctx, "hero", conditions.Unconscious, conditions.Incapacitated, conditions.Prone, conditions.Dead))
	require.NoError(t, f.conditions.SyncLevel(ctx, "hero", conditions.Dying, 2))

	require.NoError(t, f.svc.UpdateState(ctx, "hero"))

	got := f.get(t, "hero")
	assert.Equal(t, character.StateAlive, got.State)
	assert.Equal(t, 2, got.Exhaustion)
	assert.Equal(t, 0, got.Dying)
	// Prone is left for the player to stand up from
	assert.Equal(t, []string{"Exhaustion 2", "Prone"}, f.markers(t, "hero"))
}

func TestService_KillTwiceIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testutils.CreateDyingCharacter("hero", 3, 0))

	require.NoError(t, f.svc.Kill(ctx, "hero"))
	first := f.get(t, "hero")
	firstMarkers := f.markers(t, "hero")

	require.NoError(t, f.svc.Kill(ctx, "hero"))
	second := f.get(t, "hero")

	assert.Equal(t, character.StateDead, second.State)
	assert.Equal(t, first, second)
	assert.Equal(t, firstMarkers, f.markers(t, "hero"))
	assert.Equal(t, []string{"Dead"}, firstMarkers)

	expected := `
# HELP dying_rejected_operations_total Operations resolved as no-ops because their preconditions did not hold
# TYPE dying_rejected_operations_total counter
dying_rejected_operations_total{operation="kill"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(f.metrics.Registry(), strings.NewReader(expected), "dying_rejected_operations_total"))
}

func TestService_IllegalTransitionsAreSwallowed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testutils.CreateTestCharacter("hero", "Hero", 10))

	assert.NoError(t, f.svc.Stabilize(ctx, "hero"))
	assert.NoError(t, f.svc.Heal(ctx, "hero"))
	assert.NoError(t, f.svc.IncreaseDying(ctx, "hero", 1))
	assert.NoError(t, f.svc.DecreaseDying(ctx, "hero", 1))

	got := f.get(t, "hero")
	assert.Equal(t, character.StateAlive, got.State)
	assert.Equal(t, 0, got.Exhaustion)
	assert.Nil(t, f.markers(t, "hero"))
}

func TestService_IncreaseAndDecreaseDying(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testutils.CreateDyingCharacter("hero", 2, 0))

	require.NoError(t, f.svc.IncreaseDying(ctx, "hero", 2))
	assert.Equal(t, 4, f.get(t, "hero").Dying)
	assert.Equal(t, []string{"Dying 4"}, f.markers(t, "hero"))

	require.NoError(t, f.svc.DecreaseDying(ctx, "hero", 1))
	assert.Equal(t, 3, f.get(t, "hero").Dying)
	assert.Equal(t, []string{"Dying 3"}, f.markers(t, "hero"))

	require.NoError(t, f.svc.IncreaseDying(ctx, "hero", 3))
	got := f.get(t, "hero")
	assert.Equal(t, character.StateDead, got.State)
	assert.Equal(t, 0, got.Dying)
	assert.Equal(t, []string{"Dead"}, f.markers(t, "hero"))
}

func TestService_ApplyDamage(t *testing.T) {
	ctx := context.Background()

	t.Run("massive damage kills outright", func(t *testing.T) {
		char := testutils.CreateTestCharacter("hero", "Hero", 10)
		char.HitPoints.Temp = 2
		f := newFixture(t, char)

		require.NoError(t, f.svc.ApplyDamage(ctx, "hero", 11, 2))

		got := f.get(t, "hero")
		assert.Equal(t, character.StateDead, got.State)
		assert.Equal(t, 0, got.HP())
		assert.Equal(t, 0, got.HitPoints.Temp)
	})

	t.Run("resistance halves and rounds down", func(t *testing.T) {
		f := newFixture(t, testutils.CreateTestCharacter("hero", "Hero", 10))

		require.NoError(t, f.svc.ApplyDamage(ctx, "hero", 9, 0.5))

		got := f.get(t, "hero")
		assert.Equal(t, 6, got.HP())
		assert.Equal(t, character.StateAlive, got.State)
	})

	t.Run("dropping to zero starts dying", func(t *testing.T) {
		char := testutils.CreateTestCharacter("hero", "Hero", 10)
		char.Exhaustion = 1
		f := newFixture(t, char)

		require.NoError(t, f.svc.ApplyDamage(ctx, "hero", 12, 1))

		got := f.get(t, "hero")
		assert.Equal(t, 0, got.HP())
		assert.Equal(t, character.StateDying, got.State)
		assert.Equal(t, 2, got.Dying)
	})

	t.Run("damage while dying adds a level", func(t *testing.T) {
		f := newFixture(t, testutils.CreateDyingCharacter("hero", 2, 0))

		require.NoError(t, f.svc.ApplyDamage(ctx, "hero", 3, 1))

		got := f.get(t, "hero")
		assert.Equal(t, character.StateDying, got.State)
		assert.Equal(t, 3, got.Dying)
	})

	t.Run("damage while stable starts dying again", func(t *testing.T) {
		f := newFixture(t, testutils.CreateStableCharacter("hero", 1))

		require.NoError(t, f.svc.ApplyDamage(ctx, "hero", 1, 1))

		got := f.get(t, "hero")
		assert.Equal(t, character.StateDying, got.State)
		assert.Equal(t, 2, got.Dying)
	})

	t.Run("healing a dying character", func(t *testing.T) {
		f := newFixture(t, testutils.CreateDyingCharacter("hero", 4, 0))

		require.NoError(t, f.svc.ApplyDamage(ctx, "hero", -4, 1))

		got := f.get(t, "hero")
		assert.Equal(t, 4, got.HP())
		assert.Equal(t, character.StateAlive, got.State)
		assert.Equal(t, 1, got.Exhaustion)
		assert.Equal(t, 0, got.Dying)
	})
}

func TestService_TransitionMetrics(t *testing.T) {
	ctx := context.Background()
	char := testutils.CreateTestCharacter("hero", "Hero", 10)
	char.HitPoints.Value = 0
	f := newFixture(t, char)

	require.NoError(t, f.svc.UpdateState(ctx, "hero"))
	require.NoError(t, f.svc.DecreaseDying(ctx, "hero", 1))

	expected := `
# HELP dying_transitions_total Life state transitions applied, by source and target state
# TYPE dying_transitions_total counter
dying_transitions_total{from="alive",to="dying"} 1
dying_transitions_total{from="dying",to="stable"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(f.metrics.Registry(), strings.NewReader(expected), "dying_transitions_total"))
}

func TestService_StabilizeRunsEffectsInOrder(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mockcharacters.NewMockRepository(ctrl)
	conds := mockcondition.NewMockService(ctrl)

	svc := dying.NewService(&dying.ServiceConfig{
		Repository: repo,
		Conditions: conds,
		Rules:      dying.DefaultRules(),
	})

	gomock.InOrder(
		repo.EXPECT().Get(ctx, "hero").Return(testutils.CreateDyingCharacter("hero", 0, 2), nil),
		repo.EXPECT().WriteAttribute(ctx, "hero", character.AttributeExhaustion, 3).Return(nil),
		conds.EXPECT().SyncLevel(ctx, "hero", conditions.Exhaustion, 3).Return(nil),
		conds.EXPECT().RemoveConditions(ctx, "hero", conditions.Dying).Return(nil),
		repo.EXPECT().WriteAttribute(ctx, "hero", character.AttributeState, character.StateStable).Return(nil),
		repo.EXPECT().WriteAttribute(ctx, "hero", character.AttributeDying, 0).Return(nil),
	)

	require.NoError(t, svc.Stabilize(ctx, "hero"))
}

func TestService_CapabilityErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mockcharacters.NewMockRepository(ctrl)
	conds := mockcondition.NewMockService(ctrl)

	svc := dying.NewService(&dying.ServiceConfig{
		Repository: repo,
		Conditions: conds,
	})

	boom := errors.New("registry unavailable")

	repo.EXPECT().Get(ctx, "hero").Return(testutils.CreateDyingCharacter("hero", 6, 0), nil)
	conds.EXPECT().AddConditions(ctx, "hero", conditions.Dead).Return(boom)

	// The failed step stops the transition: no state write follows
	err := svc.UpdateState(ctx, "hero")
	assert.ErrorIs(t, err, boom)

	readErr := errors.New("store offline")
	repo.EXPECT().Get(ctx, "hero").Return(nil, readErr)
	assert.ErrorIs(t, svc.Heal(ctx, "hero"), readErr)
}
