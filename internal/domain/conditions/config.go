package conditions

import (
	"fmt"
)

// DefaultNoneSentinel is the marker name meaning "do not track this condition"
const DefaultNoneSentinel = "None"

// MarkerConfig controls which marker each condition kind maps to.
// A kind whose marker name equals NoneSentinel is never written.
type MarkerConfig struct {
	UseEnhancedMarkers      bool   `env:"USE_ENHANCED_MARKERS" envDefault:"true"`
	DyingMarkerName         string `env:"DYING_MARKER_NAME" envDefault:"Dying"`
	ExhaustionMarkerName    string `env:"EXHAUSTION_MARKER_NAME" envDefault:"Exhaustion"`
	IncapacitatedMarkerName string `env:"INCAPACITATED_MARKER_NAME" envDefault:"Incapacitated"`
	UnconsciousMarkerName   string `env:"UNCONSCIOUS_MARKER_NAME" envDefault:"Unconscious"`
	ProneMarkerName         string `env:"PRONE_MARKER_NAME" envDefault:"Prone"`
	DeadMarkerName          string `env:"DEAD_MARKER_NAME" envDefault:"Dead"`
	NoneSentinel            string `env:"NO_CONDITION_LABEL" envDefault:"None"`
}

// DefaultMarkerConfig returns the stock marker names with markers enabled
func DefaultMarkerConfig() MarkerConfig {
	return MarkerConfig{
		UseEnhancedMarkers:      true,
		DyingMarkerName:         "Dying",
		ExhaustionMarkerName:    "Exhaustion",
		IncapacitatedMarkerName: "Incapacitated",
		UnconsciousMarkerName:   "Unconscious",
		ProneMarkerName:         "Prone",
		DeadMarkerName:          "Dead",
		NoneSentinel:            DefaultNoneSentinel,
	}
}

// NameFor returns the configured marker name for kind.
// ok is false when the kind is mapped to the sentinel or left empty.
func (c MarkerConfig) NameFor(kind Kind) (name string, ok bool) {
	switch kind {
	case Dying:
		name = c.DyingMarkerName
	case Exhaustion:
		name = c.ExhaustionMarkerName
	case Incapacitated:
		name = c.IncapacitatedMarkerName
	case Unconscious:
		name = c.UnconsciousMarkerName
	case Prone:
		name = c.ProneMarkerName
	case Dead:
		name = c.DeadMarkerName
	default:
		return "", false
	}
	if name == "" || !c.IsTracked(name) {
		return "", false
	}
	return name, true
}

// IsTracked reports whether a marker name refers to a real condition
func (c MarkerConfig) IsTracked(name string) bool {
	return name != c.NoneSentinel
}

// Validate checks the configuration for values the synchronizer cannot work with
func (c MarkerConfig) Validate() error {
	if c.NoneSentinel == "" {
		return fmt.Errorf("no-condition sentinel cannot be empty")
	}

	seen := make(map[string]Kind)
	for _, kind := range AllKinds {
		name, ok := c.NameFor(kind)
		if !ok {
			continue
		}
		if BaseName(name) != name {
			return fmt.Errorf("marker name %q for %s cannot contain spaces", name, kind)
		}
		if other, dup := seen[name]; dup {
			return fmt.Errorf("marker name %q used for both %s and %s", name, other, kind)
		}
		seen[name] = kind
	}
	return nil
}
