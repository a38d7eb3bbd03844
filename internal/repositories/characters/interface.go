package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/dying-condition/internal/domain/character"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character, assigning an ID when none is set
	Create(ctx context.Context, char *character.Character) error

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*character.Character, error)

	// WriteAttribute updates a single attribute of an existing character
	WriteAttribute(ctx context.Context, id string, path character.AttributePath, value any) error

	// Delete removes a character
	Delete(ctx context.Context, id string) error

	// List returns every stored character ordered by ID
	List(ctx context.Context) ([]*character.Character, error)
}

// wireValue runs value through the character model so both stores persist
// the same clamped and normalized form
func wireValue(path character.AttributePath, value any) (string, error) {
	scratch := &character.Character{}
	if err := scratch.Apply(path, value); err != nil {
		return "", err
	}
	return scratch.Value(path)
}
