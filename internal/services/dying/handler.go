package dying

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dying-condition/internal/domain/character"
	"github.com/KirkDiggler/dying-condition/internal/domain/conditions"
	"github.com/KirkDiggler/dying-condition/internal/logging"
	"github.com/KirkDiggler/dying-condition/internal/repositories/characters"
	"github.com/KirkDiggler/dying-condition/internal/services/condition"
)

// ChangedFields says which attributes an external update touched
type ChangedFields struct {
	HitPoints  bool
	Dying      bool
	Exhaustion bool
}

// Any reports whether anything the handler reacts to changed
func (f ChangedFields) Any() bool {
	return f.HitPoints || f.Dying || f.Exhaustion
}

// ChangedFieldsFromPaths maps written attribute paths onto ChangedFields
func ChangedFieldsFromPaths(paths ...character.AttributePath) ChangedFields {
	var f ChangedFields
	for _, path := range paths {
		switch path {
		case character.AttributeHP, character.AttributeHPMax, character.AttributeHPTemp:
			f.HitPoints = true
		case character.AttributeDying:
			f.Dying = true
		case character.AttributeExhaustion:
			f.Exhaustion = true
		}
	}
	return f
}

// Handler reacts to attribute changes made outside the state machine
type Handler struct {
	service    Service
	repository characters.Repository
	conditions condition.Service
	logger     *zap.Logger
}

// HandlerConfig holds configuration for the handler
type HandlerConfig struct {
	Service    Service               // Required
	Repository characters.Repository // Required
	Conditions condition.Service     // Required
	Logger     *zap.Logger
}

// NewHandler creates a new attribute change handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil || cfg.Service == nil {
		panic("dying service is required")
	}
	if cfg.Repository == nil {
		panic("character repository is required")
	}
	if cfg.Conditions == nil {
		panic("condition service is required")
	}

	return &Handler{
		service:    cfg.Service,
		repository: cfg.Repository,
		conditions: cfg.Conditions,
		logger:     logging.OrNop(cfg.Logger).Named("dying"),
	}
}

// OnCharacterAttributesChanged re-runs the state machine when hit points or the
// dying level changed, then re-levels the Dying and Exhaustion markers that changed
func (h *Handler) OnCharacterAttributesChanged(ctx context.Context, characterID string, changed ChangedFields) error {
	if !changed.Any() {
		return nil
	}

	h.logger.Debug("attributes changed",
		zap.String("character_id", characterID),
		zap.Bool("hp", changed.HitPoints),
		zap.Bool("dying", changed.Dying),
		zap.Bool("exhaustion", changed.Exhaustion))

	if changed.HitPoints || changed.Dying {
		if err := h.service.UpdateState(ctx, characterID); err != nil {
			return err
		}
	}

	if !changed.Dying && !changed.Exhaustion {
		return nil
	}

	// Levels are read after the transition, which may have moved them
	char, err := h.repository.Get(ctx, characterID)
	if err != nil {
		return err
	}

	if changed.Dying {
		if err := h.conditions.SyncLevel(ctx, characterID, conditions.Dying, char.Dying); err != nil {
			return err
		}
	}
	if changed.Exhaustion {
		if err := h.conditions.SyncLevel(ctx, characterID, conditions.Exhaustion, char.Exhaustion); err != nil {
			return err
		}
	}

	return nil
}
