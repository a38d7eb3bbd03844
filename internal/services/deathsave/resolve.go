package deathsave

import "fmt"

// BaseDC is added to the dying level to get the death save difficulty
const BaseDC = 10

// OutcomeKind classifies a death saving throw
type OutcomeKind string

const (
	CriticalFailure OutcomeKind = "critical_failure"
	Failure         OutcomeKind = "failure"
	Success         OutcomeKind = "success"
	CriticalSuccess OutcomeKind = "critical_success"
)

// Outcome is the result of one death saving throw.
// Delta is applied to the dying level: positive worsens, negative improves.
type Outcome struct {
	Roll  int
	DC    int
	Delta int
	Kind  OutcomeKind
}

func (o Outcome) String() string {
	return fmt.Sprintf("%s (rolled %d vs DC %d, dying %+d)", o.Kind, o.Roll, o.DC, o.Delta)
}

// DC returns the difficulty of a death save at the given dying level
func DC(dyingLevel int) int {
	return BaseDC + dyingLevel
}

// Resolve turns a natural d20 roll into an outcome. A natural 1 or 20 wins over the DC comparison.
func Resolve(roll, dc int) Outcome {
	outcome := Outcome{Roll: roll, DC: dc}
	switch {
	case roll == 1:
		outcome.Kind, outcome.Delta = CriticalFailure, 2
	case roll == 20:
		outcome.Kind, outcome.Delta = CriticalSuccess, -2
	case roll < dc:
		outcome.Kind, outcome.Delta = Failure, 1
	default:
		outcome.Kind, outcome.Delta = Success, -1
	}
	return outcome
}
