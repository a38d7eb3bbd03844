package events

import (
	"github.com/KirkDiggler/dying-condition/internal/domain/character"
)

// EventType represents the type of character event
type EventType string

const (
	// EventTypeAttributesChanged fires when a character's attributes were written outside the state machine
	EventTypeAttributesChanged EventType = "character.attributes_changed"
)

// Event is the base interface for all events on the bus
type Event interface {
	GetType() EventType
	GetCharacterID() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type        EventType `json:"type"`
	CharacterID string    `json:"character_id"`
	Cancelled   bool      `json:"-"`
}

func (e *BaseEvent) GetType() EventType     { return e.Type }
func (e *BaseEvent) GetCharacterID() string { return e.CharacterID }
func (e *BaseEvent) IsCancelled() bool      { return e.Cancelled }
func (e *BaseEvent) Cancel()                { e.Cancelled = true }

// AttributesChangedEvent lists the attribute paths an external writer touched
type AttributesChangedEvent struct {
	BaseEvent
	Changed []character.AttributePath `json:"changed"`
}

// NewAttributesChangedEvent creates an attributes changed event
func NewAttributesChangedEvent(characterID string, changed ...character.AttributePath) *AttributesChangedEvent {
	return &AttributesChangedEvent{
		BaseEvent: BaseEvent{
			Type:        EventTypeAttributesChanged,
			CharacterID: characterID,
		},
		Changed: changed,
	}
}
