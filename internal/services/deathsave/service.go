// Package deathsave rolls death saving throws for dying characters
package deathsave

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dying-condition/internal/dice"
	"github.com/KirkDiggler/dying-condition/internal/domain/character"
	dnderr "github.com/KirkDiggler/dying-condition/internal/errors"
	"github.com/KirkDiggler/dying-condition/internal/logging"
	"github.com/KirkDiggler/dying-condition/internal/metrics"
	"github.com/KirkDiggler/dying-condition/internal/repositories/characters"
	"github.com/KirkDiggler/dying-condition/internal/services/dying"
)

const rollTitle = "Death Saving Throw"

// Service performs death saving throws
type Service struct {
	repository           characters.Repository
	dying                dying.Service
	roller               dice.Roller
	requireZeroHitPoints bool
	metrics              *metrics.Recorder
	logger               *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository characters.Repository // Required
	Dying      dying.Service         // Required
	Roller     dice.Roller           // Required

	// RequireZeroHitPoints only allows saves at exactly 0 hp
	RequireZeroHitPoints bool

	Metrics *metrics.Recorder
	Logger  *zap.Logger
}

// NewService creates a new death save service
func NewService(cfg *ServiceConfig) *Service {
	if cfg == nil || cfg.Repository == nil {
		panic("character repository is required")
	}
	if cfg.Dying == nil {
		panic("dying service is required")
	}
	if cfg.Roller == nil {
		panic("dice roller is required")
	}

	return &Service{
		repository:           cfg.Repository,
		dying:                cfg.Dying,
		roller:               cfg.Roller,
		requireZeroHitPoints: cfg.RequireZeroHitPoints,
		metrics:              cfg.Metrics,
		logger:               logging.OrNop(cfg.Logger).Named("deathsave"),
	}
}

// RollDeathSave rolls one death save and applies it to the dying level.
// A character that may not roll is logged and skipped: both return values are nil.
func (s *Service) RollDeathSave(ctx context.Context, characterID string) (*Outcome, error) {
	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}

	if err := s.checkPreconditions(char); err != nil {
		s.logger.Error("death save skipped",
			zap.String("character_id", characterID),
			zap.Error(err))
		s.metrics.Rejected("death_save")
		return nil, nil
	}

	dc := DC(char.Dying)
	result, err := s.roller.RollD20(ctx, &dice.D20Request{
		TargetValue: dc,
		Title:       rollTitle,
		CharacterID: characterID,
	})
	if err != nil {
		return nil, err
	}
	roll, err := result.Natural()
	if err != nil {
		return nil, err
	}

	outcome := Resolve(roll, dc)
	s.metrics.DeathSave(string(outcome.Kind))
	s.logger.Info("death save rolled",
		zap.String("character_id", characterID),
		zap.Int("roll", outcome.Roll),
		zap.Int("dc", outcome.DC),
		zap.String("outcome", string(outcome.Kind)))

	if outcome.Delta > 0 {
		err = s.dying.IncreaseDying(ctx, characterID, outcome.Delta)
	} else {
		err = s.dying.DecreaseDying(ctx, characterID, -outcome.Delta)
	}
	if err != nil {
		return nil, err
	}

	return &outcome, nil
}

func (s *Service) checkPreconditions(char *character.Character) error {
	if char.State != character.StateDying {
		return dnderr.IllegalTransitionf("cannot roll a death save while %s", char.State).
			WithMeta("character_id", char.ID)
	}
	if s.requireZeroHitPoints && char.HP() != 0 {
		return dnderr.InvariantViolationf("death saves need exactly 0 hp, character has %d", char.HP()).
			WithMeta("character_id", char.ID)
	}
	return nil
}
