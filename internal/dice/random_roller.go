package dice

import "fmt"

// randomRoller implements Roller on top of Roll
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	return Roll(count, sides, bonus)
}

// PickIndex rolls a single die with n sides and returns a zero-based index
// into a slice of length n. Every index is equally likely.
func PickIndex(r Roller, n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("cannot pick from %d options", n)
	}

	result, err := r.Roll(1, n, 0)
	if err != nil {
		return 0, err
	}

	index := result.Total - 1
	if index < 0 || index >= n {
		return 0, fmt.Errorf("roll %d out of range for d%d", result.Total, n)
	}

	return index, nil
}
