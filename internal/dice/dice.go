package dice

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// RollResult contains detailed information about a dice roll
type RollResult struct {
	Total    int   // Sum of all dice plus bonus
	Rolls    []int // Individual die results
	Bonus    int
	Count    int
	Sides    int
	RawTotal int  // Sum of dice without bonus
	IsCrit   bool // Natural 20 on a single d20
	IsFumble bool // Natural 1 on a single d20
}

// Natural returns the first die of the roll, the value checks compare against
func (r *RollResult) Natural() (int, error) {
	if r == nil || len(r.Rolls) == 0 {
		return 0, errors.New("roll has no results")
	}
	return r.Rolls[0], nil
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	return fmt.Sprintf("%dd%d+%d = **%d** : %s", r.Count, r.Sides, r.Bonus, r.Total, compact)
}

// NewResult builds a RollResult from already rolled dice, flagging crits on a single d20
func NewResult(sides, bonus int, rolls []int) *RollResult {
	raw := 0
	for _, roll := range rolls {
		raw += roll
	}

	result := &RollResult{
		Total:    raw + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    len(rolls),
		Sides:    sides,
		RawTotal: raw,
	}

	if len(rolls) == 1 && sides == 20 {
		result.IsCrit = rolls[0] == 20
		result.IsFumble = rolls[0] == 1
	}

	return result
}

func roll(count, size int, rng *rand.Rand) ([]int, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}

	if size < 1 {
		return nil, errors.New("invalid dice size")
	}

	out := make([]int, count)
	for i := 0; i < count; i++ {
		if rng != nil {
			out[i] = rng.Intn(size) + 1
		} else {
			out[i] = rand.Intn(size) + 1
		}
	}
	return out, nil
}
