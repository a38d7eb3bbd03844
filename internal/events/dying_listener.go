package events

import (
	"context"

	"github.com/KirkDiggler/dying-condition/internal/services/dying"
)

// DyingListener feeds attribute change events into the dying handler
type DyingListener struct {
	handler *dying.Handler
}

// NewDyingListener creates a listener for the given handler
func NewDyingListener(handler *dying.Handler) *DyingListener {
	if handler == nil {
		panic("dying handler is required")
	}
	return &DyingListener{handler: handler}
}

func (l *DyingListener) ID() string    { return "dying" }
func (l *DyingListener) Priority() int { return 100 }

// HandleEvent implements EventListener
func (l *DyingListener) HandleEvent(ctx context.Context, event Event) error {
	changed, ok := event.(*AttributesChangedEvent)
	if !ok {
		return nil
	}
	return l.handler.OnCharacterAttributesChanged(ctx, changed.CharacterID, dying.ChangedFieldsFromPaths(changed.Changed...))
}
