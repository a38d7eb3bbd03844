package testutils

import (
	"github.com/KirkDiggler/dying-condition/internal/domain/character"
)

// CreateTestCharacter creates a healthy test character with the given hit point maximum
func CreateTestCharacter(id, name string, maxHP int) *character.Character {
	return &character.Character{
		ID:   id,
		Name: name,
		HitPoints: character.HitPoints{
			Value: maxHP,
			Max:   maxHP,
		},
		State: character.StateAlive,
	}
}

// CreateDyingCharacter creates a character at 0 hp in the dying state
func CreateDyingCharacter(id string, dying, exhaustion int) *character.Character {
	char := CreateTestCharacter(id, "Dying "+id, 10)
	char.HitPoints.Value = 0
	char.State = character.StateDying
	char.Dying = dying
	char.Exhaustion = exhaustion
	return char
}

// CreateStableCharacter creates a character at 0 hp that has been stabilized
func CreateStableCharacter(id string, exhaustion int) *character.Character {
	char := CreateTestCharacter(id, "Stable "+id, 10)
	char.HitPoints.Value = 0
	char.State = character.StateStable
	char.Exhaustion = exhaustion
	return char
}

// CreateDeadCharacter creates a dead character
func CreateDeadCharacter(id string) *character.Character {
	char := CreateTestCharacter(id, "Dead "+id, 10)
	char.HitPoints.Value = 0
	char.State = character.StateDead
	return char
}
