package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/KirkDiggler/dying-condition/internal/domain/character"
	"github.com/KirkDiggler/dying-condition/internal/events"
)

type testListener struct {
	id       string
	priority int
	handler  func(events.Event) error
}

func (l *testListener) HandleEvent(_ context.Context, e events.Event) error {
	if l.handler != nil {
		return l.handler(e)
	}
	return nil
}

func (l *testListener) Priority() int { return l.priority }
func (l *testListener) ID() string    { return l.id }

func TestBus_Priority(t *testing.T) {
	bus := events.NewBus(zaptest.NewLogger(t))

	// Track execution order
	var executionOrder []string
	record := func(name string) func(events.Event) error {
		return func(events.Event) error {
			executionOrder = append(executionOrder, name)
			return nil
		}
	}

	bus.Subscribe(events.EventTypeAttributesChanged, &testListener{id: "low", priority: 300, handler: record("low")})
	bus.Subscribe(events.EventTypeAttributesChanged, &testListener{id: "high", priority: 100, handler: record("high")})
	bus.Subscribe(events.EventTypeAttributesChanged, &testListener{id: "medium", priority: 200, handler: record("medium")})

	err := bus.Emit(context.Background(), events.NewAttributesChangedEvent("char-1", character.AttributeHP))
	require.NoError(t, err)

	assert.Equal(t, []string{"high", "medium", "low"}, executionOrder)
}

func TestBus_CancelStopsPropagation(t *testing.T) {
	bus := events.NewBus(nil)
	called := false

	bus.Subscribe(events.EventTypeAttributesChanged, &testListener{id: "first", priority: 1, handler: func(e events.Event) error {
		e.Cancel()
		return nil
	}})
	bus.Subscribe(events.EventTypeAttributesChanged, &testListener{id: "second", priority: 2, handler: func(events.Event) error {
		called = true
		return nil
	}})

	require.NoError(t, bus.Emit(context.Background(), events.NewAttributesChangedEvent("char-1")))
	assert.False(t, called)
}

func TestBus_ErrorStopsPropagation(t *testing.T) {
	bus := events.NewBus(nil)
	boom := errors.New("boom")
	called := false

	bus.Subscribe(events.EventTypeAttributesChanged, &testListener{id: "failing", priority: 1, handler: func(events.Event) error {
		return boom
	}})
	bus.Subscribe(events.EventTypeAttributesChanged, &testListener{id: "after", priority: 2, handler: func(events.Event) error {
		called = true
		return nil
	}})

	err := bus.Emit(context.Background(), events.NewAttributesChangedEvent("char-1"))
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "listener failing failed")
	assert.False(t, called)
}

func TestBus_UnsubscribeAndClear(t *testing.T) {
	bus := events.NewBus(nil)
	count := 0
	counting := func(events.Event) error {
		count++
		return nil
	}

	bus.Subscribe(events.EventTypeAttributesChanged, &testListener{id: "a", priority: 1, handler: counting})
	bus.Subscribe(events.EventTypeAttributesChanged, &testListener{id: "b", priority: 2, handler: counting})

	bus.Unsubscribe(events.EventTypeAttributesChanged, "a")
	require.NoError(t, bus.Emit(context.Background(), events.NewAttributesChangedEvent("char-1")))
	assert.Equal(t, 1, count)

	bus.Clear()
	require.NoError(t, bus.Emit(context.Background(), events.NewAttributesChangedEvent("char-1")))
	assert.Equal(t, 1, count)
}
