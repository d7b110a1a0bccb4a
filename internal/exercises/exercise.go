package exercises

type Kind int

const (
	Cardio Kind = iota
	Strength
)

func (k Kind) String() string {
	switch k {
	case Cardio:
		return "Cardio"
	case Strength:
		return "Strength"
	default:
		return "Unknown"
	}
}

// Exercise is a single logged exercise. The meaning of the counters depends on Kind:
// for Cardio PrimaryCount is the duration in minutes, and SecondaryCount and Weight stay zero;
// for Strength PrimaryCount is the number of sets, SecondaryCount the reps per set and
// Weight the load in pounds.
type Exercise struct {
	Name           string `json:"name"`
	Kind           Kind   `json:"kind"`
	PrimaryCount   int    `json:"primaryCount"`
	SecondaryCount int    `json:"secondaryCount"`
	Weight         int    `json:"weight"`
	// Date is YYYY-MM-DD, zero padded, so string comparison is chronological
	Date string `json:"date"`
}

func NewCardio(name string, minutes int, date string) Exercise {
	return Exercise{
		Name:         name,
		Kind:         Cardio,
		PrimaryCount: minutes,
		Date:         date,
	}
}

func NewStrength(name string, sets, reps, weight int, date string) Exercise {
	return Exercise{
		Name:           name,
		Kind:           Strength,
		PrimaryCount:   sets,
		SecondaryCount: reps,
		Weight:         weight,
		Date:           date,
	}
}

func (e Exercise) IsStrength() bool {
	return e.Kind == Strength
}

func (e Exercise) DurationMinutes() int {
	if e.Kind != Cardio {
		return 0
	}
	return e.PrimaryCount
}

func (e Exercise) Sets() int {
	if e.Kind != Strength {
		return 0
	}
	return e.PrimaryCount
}

func (e Exercise) Reps() int {
	if e.Kind != Strength {
		return 0
	}
	return e.SecondaryCount
}
