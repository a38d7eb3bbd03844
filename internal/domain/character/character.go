package character

import (
	"time"
)

// MaxExhaustion is the highest exhaustion level the rules allow
const MaxExhaustion = 5

// HitPoints holds the current, maximum and temporary hit points of a character
type HitPoints struct {
	Value int `json:"value"`
	Max   int `json:"max"`
	Temp  int `json:"temp"`
}

// Character is the slice of a character sheet the dying rules care about
type Character struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	HitPoints  HitPoints `json:"hp"`
	Dying      int       `json:"dying"`
	Exhaustion int       `json:"exhaustion"`
	State      State     `json:"state"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HP returns the current hit points
func (c *Character) HP() int {
	return c.HitPoints.Value
}

// IsDown reports whether the character has no hit points left
func (c *Character) IsDown() bool {
	return c.HitPoints.Value <= 0
}

// MassiveDamageThreshold is the amount of damage in a single hit that kills outright
func (c *Character) MassiveDamageThreshold() int {
	return c.HitPoints.Value + c.HitPoints.Max + c.HitPoints.Temp
}

// Normalize fixes up values read from storage: a missing state becomes alive
// and negative counters are clamped to zero
func (c *Character) Normalize() {
	c.State = NormalizeState(string(c.State))
	if c.Dying < 0 {
		c.Dying = 0
	}
	c.Exhaustion = ClampExhaustion(c.Exhaustion)
}

// ClampExhaustion bounds an exhaustion level to [0, MaxExhaustion]
func ClampExhaustion(level int) int {
	switch {
	case level < 0:
		return 0
	case level > MaxExhaustion:
		return MaxExhaustion
	default:
		return level
	}
}

// Clone returns a copy that can be mutated without touching the original
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
