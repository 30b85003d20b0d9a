package dice

import (
	"errors"
	"log"
	"math/rand"
	"strconv"
	"strings"
)

// RollResult holds every die of a roll plus the bonus-adjusted total
type RollResult struct {
	Total   int
	Highest int
	Lowest  int
	Rolls   []int
	Bonus   int
	Count   int
	Sides   int
}

// Roll rolls count dice of the given size and adds bonus to the total
func Roll(count, size, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}

	if size < 1 {
		return nil, errors.New("invalid dice size")
	}

	out := make([]int, count)
	total := 0
	for i := 0; i < count; i++ {
		out[i] = rand.Intn(size) + 1
		total += out[i]
	}

	result := newResult(out, size, bonus)
	log.Println("Rolling", count, "d", size, ":", out, "total:", total)
	return result, nil
}

func newResult(rolls []int, sides, bonus int) *RollResult {
	result := &RollResult{
		Rolls: rolls,
		Bonus: bonus,
		Count: len(rolls),
		Sides: sides,
	}
	for i, roll := range rolls {
		result.Total += roll
		if i == 0 || roll > result.Highest {
			result.Highest = roll
		}
		if i == 0 || roll < result.Lowest {
			result.Lowest = roll
		}
	}
	result.Total += bonus
	return result
}

// String renders the individual dice, e.g. "3, 6, 1"
func (r *RollResult) String() string {
	parts := make([]string, len(r.Rolls))
	for i, roll := range r.Rolls {
		parts[i] = strconv.Itoa(roll)
	}
	return strings.Join(parts, ", ")
}
