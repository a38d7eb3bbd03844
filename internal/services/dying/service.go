// Package dying runs the life state machine: Alive, Stable, Dying and Dead
package dying

//go:generate mockgen -destination=mock/mock_service.go -package=mockdying -source=service.go

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dying-condition/internal/domain/character"
	"github.com/KirkDiggler/dying-condition/internal/domain/conditions"
	dnderr "github.com/KirkDiggler/dying-condition/internal/errors"
	"github.com/KirkDiggler/dying-condition/internal/logging"
	"github.com/KirkDiggler/dying-condition/internal/metrics"
	"github.com/KirkDiggler/dying-condition/internal/repositories/characters"
	"github.com/KirkDiggler/dying-condition/internal/services/condition"
)

// Service applies state machine transitions to stored characters.
// Transitions invoked from the wrong state are logged and skipped, they never return an error.
type Service interface {
	// UpdateState re-evaluates the character and applies whatever transition its attributes call for
	UpdateState(ctx context.Context, characterID string) error

	Kill(ctx context.Context, characterID string) error
	Stabilize(ctx context.Context, characterID string) error
	Heal(ctx context.Context, characterID string) error
	Injure(ctx context.Context, characterID string) error

	// IncreaseDying adds dying levels, killing the character past the maximum
	IncreaseDying(ctx context.Context, characterID string, amount int) error

	// DecreaseDying removes dying levels, stabilizing the character at zero
	DecreaseDying(ctx context.Context, characterID string, amount int) error

	// ApplyDamage deals amount*multiplier damage (negative heals), checking
	// for massive damage and damage taken while down first
	ApplyDamage(ctx context.Context, characterID string, amount int, multiplier float64) error
}

type service struct {
	repository characters.Repository
	conditions condition.Service
	rules      Rules
	metrics    *metrics.Recorder
	logger     *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository characters.Repository // Required
	Conditions condition.Service     // Required
	Rules      Rules
	Metrics    *metrics.Recorder
	Logger     *zap.Logger
}

// NewService creates a new state machine service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Repository == nil {
		panic("character repository is required")
	}
	if cfg.Conditions == nil {
		panic("condition service is required")
	}

	return &service{
		repository: cfg.Repository,
		conditions: cfg.Conditions,
		rules:      cfg.Rules,
		metrics:    cfg.Metrics,
		logger:     logging.OrNop(cfg.Logger).Named("dying"),
	}
}

func (s *service) UpdateState(ctx context.Context, characterID string) error {
	return s.run(ctx, characterID, "update_state", func(c *character.Character) (*Plan, error) {
		return s.rules.Plan(s.rules.Decide(c), c)
	})
}

func (s *service) Kill(ctx context.Context, characterID string) error {
	return s.run(ctx, characterID, OpKill, s.rules.PlanKill)
}

func (s *service) Stabilize(ctx context.Context, characterID string) error {
	return s.run(ctx, characterID, OpStabilize, s.rules.PlanStabilize)
}

func (s *service) Heal(ctx context.Context, characterID string) error {
	return s.run(ctx, characterID, OpHeal, s.rules.PlanHeal)
}

func (s *service) Injure(ctx context.Context, characterID string) error {
	return s.run(ctx, characterID, OpInjure, s.rules.PlanInjure)
}

func (s *service) IncreaseDying(ctx context.Context, characterID string, amount int) error {
	return s.run(ctx, characterID, OpIncreaseDying, func(c *character.Character) (*Plan, error) {
		return s.rules.PlanIncreaseDying(c, amount)
	})
}

func (s *service) DecreaseDying(ctx context.Context, characterID string, amount int) error {
	return s.run(ctx, characterID, OpDecreaseDying, func(c *character.Character) (*Plan, error) {
		return s.rules.PlanDecreaseDying(c, amount)
	})
}

func (s *service) ApplyDamage(ctx context.Context, characterID string, amount int, multiplier float64) error {
	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return err
	}

	reduced := int(math.Floor(float64(amount) * multiplier))
	switch {
	case reduced >= char.MassiveDamageThreshold():
		s.logger.Debug("massive damage",
			zap.String("character_id", characterID),
			zap.Int("damage", reduced),
			zap.Int("threshold", char.MassiveDamageThreshold()))
		if err := s.Kill(ctx, characterID); err != nil {
			return err
		}
	case char.IsDown() && reduced >= 1:
		s.logger.Debug("damage while down",
			zap.String("character_id", characterID),
			zap.Int("damage", reduced))
		if err := s.Injure(ctx, characterID); err != nil {
			return err
		}
	}

	hp := DamageHitPoints(char.HitPoints, reduced)
	if hp.Temp != char.HitPoints.Temp {
		if err := s.repository.WriteAttribute(ctx, characterID, character.AttributeHPTemp, hp.Temp); err != nil {
			return err
		}
	}
	if hp.Value != char.HitPoints.Value {
		if err := s.repository.WriteAttribute(ctx, characterID, character.AttributeHP, hp.Value); err != nil {
			return err
		}
	}

	return s.UpdateState(ctx, characterID)
}

// DamageHitPoints applies damage to hp. Temporary hit points absorb damage first,
// negative damage heals, and the result stays within [0, Max].
func DamageHitPoints(hp character.HitPoints, damage int) character.HitPoints {
	absorbed := 0
	if damage > 0 {
		absorbed = min(hp.Temp, damage)
	}
	hp.Temp -= absorbed
	hp.Value = max(0, min(hp.Max, hp.Value-(damage-absorbed)))
	return hp
}

func (s *service) run(ctx context.Context, characterID string, op Operation, build func(*character.Character) (*Plan, error)) error {
	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return err
	}

	plan, err := build(char)
	if err != nil {
		return s.reject(op, characterID, err)
	}

	return s.execute(ctx, characterID, plan)
}

// reject swallows illegal transitions and invariant violations after logging them
func (s *service) reject(op Operation, characterID string, err error) error {
	if !dnderr.IsRecoverable(err) {
		return err
	}

	s.logger.Error("operation skipped",
		zap.String("operation", string(op)),
		zap.String("character_id", characterID),
		zap.Error(err))
	s.metrics.Rejected(string(op))
	return nil
}

// execute runs the effects of a plan strictly in order
func (s *service) execute(ctx context.Context, characterID string, plan *Plan) error {
	if len(plan.Effects) == 0 {
		return nil
	}

	s.logger.Debug("applying transition",
		zap.String("character_id", characterID),
		zap.String("operation", string(plan.Operation)),
		zap.String("from", plan.From.String()),
		zap.String("to", plan.To.String()))

	for _, effect := range plan.Effects {
		if err := s.apply(ctx, characterID, plan, effect); err != nil {
			return err
		}
	}

	s.logger.Info("transition applied",
		zap.String("character_id", characterID),
		zap.String("operation", string(plan.Operation)),
		zap.String("state", plan.To.String()))
	return nil
}

func (s *service) apply(ctx context.Context, characterID string, plan *Plan, effect Effect) error {
	switch effect.Kind {
	case EffectAddConditions:
		return s.conditions.AddConditions(ctx, characterID, effect.Conditions...)

	case EffectRemoveConditions:
		return s.conditions.RemoveConditions(ctx, characterID, effect.Conditions...)

	case EffectSetExhaustion:
		if err := s.repository.WriteAttribute(ctx, characterID, character.AttributeExhaustion, effect.Value); err != nil {
			return err
		}
		return s.conditions.SyncLevel(ctx, characterID, conditions.Exhaustion, effect.Value)

	case EffectSetDying:
		if err := s.repository.WriteAttribute(ctx, characterID, character.AttributeDying, effect.Value); err != nil {
			return err
		}
		if !effect.SyncMarker {
			return nil
		}
		return s.conditions.SyncLevel(ctx, characterID, conditions.Dying, effect.Value)

	case EffectSetState:
		if err := s.repository.WriteAttribute(ctx, characterID, character.AttributeState, effect.State); err != nil {
			return err
		}
		if plan.From != effect.State {
			s.metrics.Transition(plan.From.String(), effect.State.String())
		}
		return nil

	default:
		return dnderr.Internalf("unknown effect %q", effect.Kind)
	}
}
