package onerepmax

import (
	"errors"
	"fmt"
)

// MaxReps is the first rep count at which the Brzycki denominator (1.0278 - 0.0278*reps)
// is no longer positive; from there on the estimate is infinite or negative.
const MaxReps = 37

var ErrRepsOutOfRange = errors.New("reps out of range")

// Brzycki estimates the one-rep-max for a set of reps done with the given weight.
func Brzycki(weight, reps int) (float64, error) {
	if reps >= MaxReps {
		return 0, fmt.Errorf("%w: %d (must be below %d)", ErrRepsOutOfRange, reps, MaxReps)
	}
	return float64(weight) / (1.0278 - 0.0278*float64(reps)), nil
}
