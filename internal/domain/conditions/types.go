package conditions

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is a semantic condition the dying rules toggle on a character.
// The marker name used for a kind is configurable, see MarkerConfig.
type Kind string

const (
	Dying         Kind = "dying"      // Leveled
	Exhaustion    Kind = "exhaustion" // Leveled
	Incapacitated Kind = "incapacitated"
	Unconscious   Kind = "unconscious"
	Prone         Kind = "prone"
	Dead          Kind = "dead"
)

// AllKinds lists every kind in a stable order
var AllKinds = []Kind{Dying, Exhaustion, Incapacitated, Unconscious, Prone, Dead}

// IsLeveled reports whether markers of this kind carry a numeric level suffix
func (k Kind) IsLeveled() bool {
	return k == Dying || k == Exhaustion
}

// BaseName returns the marker name without any level suffix ("Dying 3" -> "Dying")
func BaseName(marker string) string {
	trimmed := strings.TrimSpace(marker)
	if i := strings.IndexByte(trimmed, ' '); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}

// LeveledName formats a leveled marker name ("Dying", 3 -> "Dying 3")
func LeveledName(base string, level int) string {
	return fmt.Sprintf("%s %d", base, level)
}

// ParseLevel extracts the level suffix of a marker, ok is false when there is none
func ParseLevel(marker string) (level int, ok bool) {
	base := BaseName(marker)
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(marker), base))
	if rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
