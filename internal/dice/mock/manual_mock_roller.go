package mockdice

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/dying-condition/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
	requests  []*dice.D20Request
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller(rolls ...int) *ManualMockRoller {
	return &ManualMockRoller{
		rolls: append([]int{}, rolls...),
	}
}

// SetNextRoll appends a roll result
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the predetermined rolls
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Requests returns every d20 request seen so far
func (m *ManualMockRoller) Requests() []*dice.D20Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dice.D20Request{}, m.requests...)
}

// Remaining returns how many predetermined rolls have not been used
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

func (m *ManualMockRoller) getNextRoll() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	rolls := make([]int, count)

	for i := 0; i < count; i++ {
		roll, err := m.getNextRoll()
		if err != nil {
			return nil, err
		}
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, sides)
		}
		rolls[i] = roll
	}

	return dice.NewResult(sides, bonus, rolls), nil
}

// RollD20 implements dice.Roller.RollD20
func (m *ManualMockRoller) RollD20(_ context.Context, req *dice.D20Request) (*dice.RollResult, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	return m.Roll(1, 20, 0)
}
