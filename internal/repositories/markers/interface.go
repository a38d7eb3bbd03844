package markers

//go:generate mockgen -destination=mock/mock.go -package=mockmarkers -source=interface.go

import (
	"context"
	"time"
)

// Marker is a named status indicator attached to a character
type Marker struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	AppliedAt time.Time `json:"applied_at"`
}

// Options tunes a registry call
type Options struct {
	// Warn asks the registry to log when a call had nothing to do
	Warn bool
}

// QueryResult is what a registry reports for a character.
// Registries answer with nil when there are no markers, with Condition when
// there is exactly one and with Conditions otherwise; callers normalize.
type QueryResult struct {
	Condition  *Marker
	Conditions []*Marker
}

// Registry is the condition marker store
type Registry interface {
	// Add attaches the named marker to a character, adding an existing name is a no-op
	Add(ctx context.Context, name, characterID string, opts *Options) error

	// Remove detaches the named marker, removing a missing name is a no-op
	Remove(ctx context.Context, name, characterID string, opts *Options) error

	// Query returns the markers currently on a character
	Query(ctx context.Context, characterID string, opts *Options) (*QueryResult, error)
}

func shapeResult(found []*Marker) *QueryResult {
	switch len(found) {
	case 0:
		return nil
	case 1:
		return &QueryResult{Condition: found[0]}
	default:
		return &QueryResult{Conditions: found}
	}
}
