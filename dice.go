package gammon

import "errors"

// ErrInvalidDieValue is returned when a die value is outside of 1-6 or is
// not available to be consumed.
var ErrInvalidDieValue = errors.New("invalid die value")

// Roll tracks which rolled values remain unconsumed during a turn. A
// double grants four usable values instead of two. The ledger knows
// nothing about move legality.
type Roll struct {
	values []int8
}

// NewRoll returns the usable values for a roll of two dice.
func NewRoll(r1 int8, r2 int8) *Roll {
	if r1 == r2 {
		return &Roll{values: []int8{r1, r1, r1, r1}}
	}
	if r2 > r1 {
		r1, r2 = r2, r1
	}
	return &Roll{values: []int8{r1, r2}}
}

// Values returns the remaining values, highest first.
func (r *Roll) Values() []int8 {
	return append([]int8(nil), r.values...)
}

// Have reports whether the value remains available this turn.
func (r *Roll) Have(value int8) bool {
	for _, v := range r.values {
		if v == value {
			return true
		}
	}
	return false
}

// Use consumes an available value.
func (r *Roll) Use(value int8) error {
	for i, v := range r.values {
		if v == value {
			r.values = append(r.values[:i], r.values[i+1:]...)
			return nil
		}
	}
	return ErrInvalidDieValue
}

// Max returns the highest remaining value, or 0 when all values have been
// consumed.
func (r *Roll) Max() int8 {
	if len(r.values) == 0 {
		return 0
	}
	return r.values[0]
}

// Empty reports whether all values have been consumed.
func (r *Roll) Empty() bool {
	return len(r.values) == 0
}

// Copy returns a copy of the ledger.
func (r *Roll) Copy() *Roll {
	return &Roll{values: append([]int8(nil), r.values...)}
}
