package tracker

import (
	"sort"

	"github.com/2beens/fitlog/internal/exercises"
)

// Log keeps every added exercise ordered by date.
// Exercises with the same date stay in the order they were appended.
type Log struct {
	exercises []exercises.Exercise
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Append(ex exercises.Exercise) {
	l.exercises = append(l.exercises, ex)
	sort.SliceStable(l.exercises, func(i, j int) bool {
		return l.exercises[i].Date < l.exercises[j].Date
	})
}

func (l *Log) List() []exercises.Exercise {
	list := make([]exercises.Exercise, len(l.exercises))
	copy(list, l.exercises)
	return list
}

func (l *Log) Len() int {
	return len(l.exercises)
}
