package character

import (
	"fmt"
	"strconv"
)

// AttributePath names a single writable value on a character
type AttributePath string

const (
	AttributeState      AttributePath = "attributes.state"
	AttributeDying      AttributePath = "attributes.dying"
	AttributeExhaustion AttributePath = "attributes.exhaustion"
	AttributeHP         AttributePath = "attributes.hp.value"
	AttributeHPMax      AttributePath = "attributes.hp.max"
	AttributeHPTemp     AttributePath = "attributes.hp.temp"
)

// AllAttributes lists every path a character can be written through
var AllAttributes = []AttributePath{
	AttributeState,
	AttributeDying,
	AttributeExhaustion,
	AttributeHP,
	AttributeHPMax,
	AttributeHPTemp,
}

// Apply writes value into the attribute at path.
// Numeric attributes accept an int or its decimal string form, state accepts a State or string.
func (c *Character) Apply(path AttributePath, value any) error {
	if path == AttributeState {
		switch v := value.(type) {
		case State:
			c.State = NormalizeState(string(v))
		case string:
			c.State = NormalizeState(v)
		default:
			return fmt.Errorf("invalid value %v for %s", value, path)
		}
		return nil
	}

	n, err := toInt(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", path, err)
	}

	switch path {
	case AttributeDying:
		c.Dying = n
	case AttributeExhaustion:
		c.Exhaustion = ClampExhaustion(n)
	case AttributeHP:
		c.HitPoints.Value = n
	case AttributeHPMax:
		c.HitPoints.Max = n
	case AttributeHPTemp:
		c.HitPoints.Temp = n
	default:
		return fmt.Errorf("unknown attribute %q", path)
	}
	return nil
}

// Value returns the current value stored at path in its wire form
func (c *Character) Value(path AttributePath) (string, error) {
	switch path {
	case AttributeState:
		return string(c.State), nil
	case AttributeDying:
		return strconv.Itoa(c.Dying), nil
	case AttributeExhaustion:
		return strconv.Itoa(c.Exhaustion), nil
	case AttributeHP:
		return strconv.Itoa(c.HitPoints.Value), nil
	case AttributeHPMax:
		return strconv.Itoa(c.HitPoints.Max), nil
	case AttributeHPTemp:
		return strconv.Itoa(c.HitPoints.Temp), nil
	default:
		return "", fmt.Errorf("unknown attribute %q", path)
	}
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case string:
		return strconv.Atoi(v)
	default:
		return 0, fmt.Errorf("expected integer, got %T", value)
	}
}
