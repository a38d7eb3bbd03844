package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

import (
	"context"
)

// D20Request describes a single d20 check made on behalf of a character
type D20Request struct {
	// TargetValue is the DC the roll is made against, informational for the roller
	TargetValue int
	// Title labels the roll, e.g. "Death Saving Throw"
	Title string
	// CharacterID is the character making the roll
	CharacterID string
}

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// RollD20 rolls a single d20 for a check; the natural result is Rolls[0]
	RollD20(ctx context.Context, req *D20Request) (*RollResult, error)
}
