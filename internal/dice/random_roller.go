package dice

import (
	"context"
	"math/rand"
	"sync"

	"go.uber.org/zap"
)

// randomRoller implements Roller with math/rand
type randomRoller struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger *zap.Logger
}

// RandomRollerOption configures the random roller
type RandomRollerOption func(*randomRoller)

// WithSeed makes the roller deterministic, useful for replays and tests
func WithSeed(seed int64) RandomRollerOption {
	return func(r *randomRoller) {
		r.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger logs every roll at debug level
func WithLogger(logger *zap.Logger) RandomRollerOption {
	return func(r *randomRoller) {
		r.logger = logger
	}
}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller(opts ...RandomRollerOption) Roller {
	r := &randomRoller{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	r.mu.Lock()
	rolls, err := roll(count, sides, r.rng)
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	result := NewResult(sides, bonus, rolls)
	r.logger.Debug("rolled dice",
		zap.Int("count", count),
		zap.Int("sides", sides),
		zap.Ints("rolls", rolls),
		zap.Int("total", result.Total),
	)
	return result, nil
}

// RollD20 implements Roller.RollD20
func (r *randomRoller) RollD20(ctx context.Context, req *D20Request) (*RollResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := r.Roll(1, 20, 0)
	if err != nil {
		return nil, err
	}

	if req != nil {
		r.logger.Debug("rolled d20 check",
			zap.String("title", req.Title),
			zap.String("character_id", req.CharacterID),
			zap.Int("target", req.TargetValue),
			zap.Int("result", result.Rolls[0]),
		)
	}
	return result, nil
}
