package dying

import (
	"github.com/KirkDiggler/dying-condition/internal/domain/character"
	"github.com/KirkDiggler/dying-condition/internal/domain/conditions"
	dnderr "github.com/KirkDiggler/dying-condition/internal/errors"
)

// DefaultMaxDying is the highest dying level a character survives
const DefaultMaxDying = 5

// Operation names a transition of the state machine
type Operation string

const (
	OpNone          Operation = "none"
	OpKill          Operation = "kill"
	OpStabilize     Operation = "stabilize"
	OpHeal          Operation = "heal"
	OpInjure        Operation = "injure"
	OpIncreaseDying Operation = "increase_dying"
	OpDecreaseDying Operation = "decrease_dying"
)

// EffectKind identifies a single side effect of a transition
type EffectKind string

const (
	EffectAddConditions    EffectKind = "add_conditions"
	EffectRemoveConditions EffectKind = "remove_conditions"
	EffectSetExhaustion    EffectKind = "set_exhaustion"
	EffectSetDying         EffectKind = "set_dying"
	EffectSetState         EffectKind = "set_state"
)

// Effect is one step of a Plan
type Effect struct {
	Kind       EffectKind
	Conditions []conditions.Kind
	Value      int
	State      character.State

	// SyncMarker re-levels the Dying marker after a SetDying write.
	// Resets that follow a state change leave the marker to the preceding removal.
	SyncMarker bool
}

// Plan is the ordered list of effects that carries a character through one operation.
// Operation may differ from the requested one when the rules delegate, e.g. injure to kill.
type Plan struct {
	Operation Operation
	From      character.State
	To        character.State
	Effects   []Effect
}

// Rules decides transitions. It never performs I/O.
type Rules struct {
	MaxDying int
}

// DefaultRules returns the standard rules
func DefaultRules() Rules {
	return Rules{MaxDying: DefaultMaxDying}
}

func (r Rules) maxDying() int {
	if r.MaxDying < 1 {
		return DefaultMaxDying
	}
	return r.MaxDying
}

// Decide returns which operation brings the character's state in line with its attributes
func (r Rules) Decide(c *character.Character) Operation {
	alive := c.HP() > 0

	switch character.NormalizeState(string(c.State)) {
	case character.StateAlive:
		switch {
		case alive:
			return OpNone
		case c.Exhaustion >= character.MaxExhaustion:
			return OpKill
		default:
			return OpInjure
		}
	case character.StateStable, character.StateDead:
		if alive {
			return OpHeal
		}
		return OpNone
	case character.StateDying:
		switch {
		case alive:
			return OpHeal
		case c.Dying == 0:
			return OpStabilize
		case c.Dying > r.maxDying():
			return OpKill
		default:
			return OpNone
		}
	}
	return OpNone
}

// Plan builds the plan for op. OpNone yields an empty plan.
func (r Rules) Plan(op Operation, c *character.Character) (*Plan, error) {
	switch op {
	case OpNone:
		state := character.NormalizeState(string(c.State))
		return &Plan{Operation: OpNone, From: state, To: state}, nil
	case OpKill:
		return r.PlanKill(c)
	case OpStabilize:
		return r.PlanStabilize(c)
	case OpHeal:
		return r.PlanHeal(c)
	case OpInjure:
		return r.PlanInjure(c)
	default:
		return nil, dnderr.InvalidArgumentf("operation %q needs an amount", op)
	}
}

// PlanKill: add Dead, drop the incapacitating markers and the Dying level, then mark Dead
func (r Rules) PlanKill(c *character.Character) (*Plan, error) {
	from := character.NormalizeState(string(c.State))
	if from == character.StateDead {
		return nil, illegal(OpKill, c, "character is already dead")
	}

	plan := &Plan{Operation: OpKill, From: from, To: character.StateDead}
	plan.Effects = append(plan.Effects,
		addConditions(conditions.Dead),
		removeConditions(conditions.Unconscious, conditions.Incapacitated, conditions.Prone, conditions.Dying),
		setState(character.StateDead),
	)
	plan.Effects = append(plan.Effects, resetDying(c)...)
	return plan, nil
}

// PlanStabilize costs one level of exhaustion and leaves the character Stable
func (r Rules) PlanStabilize(c *character.Character) (*Plan, error) {
	from := character.NormalizeState(string(c.State))
	if from != character.StateDying {
		return nil, illegal(OpStabilize, c, "character is not dying")
	}

	plan := &Plan{Operation: OpStabilize, From: from, To: character.StateStable}
	plan.Effects = append(plan.Effects,
		setExhaustion(c.Exhaustion+1),
		removeConditions(conditions.Dying),
		setState(character.StateStable),
	)
	plan.Effects = append(plan.Effects, resetDying(c)...)
	return plan, nil
}

// PlanHeal brings a stable, dying or dead character back. Leaving Dying costs exhaustion.
func (r Rules) PlanHeal(c *character.Character) (*Plan, error) {
	from := character.NormalizeState(string(c.State))
	if from == character.StateAlive {
		return nil, illegal(OpHeal, c, "character is already alive")
	}

	plan := &Plan{Operation: OpHeal, From: from, To: character.StateAlive}
	if from == character.StateDying {
		plan.Effects = append(plan.Effects, setExhaustion(c.Exhaustion+1))
	}
	plan.Effects = append(plan.Effects,
		removeConditions(conditions.Dead, conditions.Unconscious, conditions.Incapacitated, conditions.Dying),
		setState(character.StateAlive),
	)
	plan.Effects = append(plan.Effects, resetDying(c)...)
	return plan, nil
}

// PlanInjure moves a character one step closer to death.
// A dying character gains a dying level, anyone else starts at exhaustion + 1.
func (r Rules) PlanInjure(c *character.Character) (*Plan, error) {
	from := character.NormalizeState(string(c.State))
	if from == character.StateDead {
		return nil, illegal(OpInjure, c, "character is dead")
	}

	level := c.Exhaustion + 1
	if from == character.StateDying {
		level = c.Dying + 1
	}
	if level > r.maxDying() {
		return r.PlanKill(c)
	}

	return &Plan{
		Operation: OpInjure,
		From:      from,
		To:        character.StateDying,
		Effects: []Effect{
			addConditions(conditions.Unconscious, conditions.Incapacitated, conditions.Prone),
			setState(character.StateDying),
			setDying(level),
		},
	}, nil
}

// PlanIncreaseDying adds amount dying levels, killing past the maximum
func (r Rules) PlanIncreaseDying(c *character.Character, amount int) (*Plan, error) {
	if amount < 0 {
		return nil, dnderr.InvalidArgumentf("amount must not be negative, got %d", amount)
	}
	if character.NormalizeState(string(c.State)) != character.StateDying {
		return nil, illegal(OpIncreaseDying, c, "character is not dying")
	}

	level := c.Dying + amount
	if level > r.maxDying() {
		return r.PlanKill(c)
	}
	return &Plan{
		Operation: OpIncreaseDying,
		From:      character.StateDying,
		To:        character.StateDying,
		Effects:   []Effect{setDying(level)},
	}, nil
}

// PlanDecreaseDying removes amount dying levels, stabilizing at zero
func (r Rules) PlanDecreaseDying(c *character.Character, amount int) (*Plan, error) {
	if amount < 0 {
		return nil, dnderr.InvalidArgumentf("amount must not be negative, got %d", amount)
	}
	if character.NormalizeState(string(c.State)) != character.StateDying {
		return nil, illegal(OpDecreaseDying, c, "character is not dying")
	}

	level := c.Dying - amount
	if level <= 0 {
		return r.PlanStabilize(c)
	}
	return &Plan{
		Operation: OpDecreaseDying,
		From:      character.StateDying,
		To:        character.StateDying,
		Effects:   []Effect{setDying(level)},
	}, nil
}

func illegal(op Operation, c *character.Character, reason string) error {
	return dnderr.IllegalTransitionf("cannot %s: %s", op, reason).
		WithMeta("character_id", c.ID).
		WithMeta("state", string(c.State))
}

func addConditions(kinds ...conditions.Kind) Effect {
	return Effect{Kind: EffectAddConditions, Conditions: kinds}
}

func removeConditions(kinds ...conditions.Kind) Effect {
	return Effect{Kind: EffectRemoveConditions, Conditions: kinds}
}

func setState(state character.State) Effect {
	return Effect{Kind: EffectSetState, State: state}
}

func setDying(level int) Effect {
	return Effect{Kind: EffectSetDying, Value: level, SyncMarker: true}
}

func setExhaustion(level int) Effect {
	return Effect{Kind: EffectSetExhaustion, Value: character.ClampExhaustion(level)}
}

// resetDying zeroes the counter when leaving Dying. It is written after the
// state so an echoed dying change never finds a Dying character at level 0.
func resetDying(c *character.Character) []Effect {
	if character.NormalizeState(string(c.State)) != character.StateDying && c.Dying == 0 {
		return nil
	}
	return []Effect{{Kind: EffectSetDying, Value: 0}}
}
