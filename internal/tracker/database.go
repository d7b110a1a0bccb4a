package tracker

import (
	"github.com/2beens/fitlog/internal/exercises"
)

// Entry holds all exercises done on a single date, in the order they were recorded.
type Entry struct {
	Date      string
	Exercises []exercises.Exercise
}

// Database groups exercises by date.
// Entries are kept in the order their date was first seen, not in calendar order.
type Database struct {
	entries []Entry
}

func NewDatabase() *Database {
	return &Database{}
}

func (db *Database) Record(ex exercises.Exercise) {
	for i := range db.entries {
		if db.entries[i].Date == ex.Date {
			db.entries[i].Exercises = append(db.entries[i].Exercises, ex)
			return
		}
	}
	db.entries = append(db.entries, Entry{
		Date:      ex.Date,
		Exercises: []exercises.Exercise{ex},
	})
}

func (db *Database) Entries() []Entry {
	entries := make([]Entry, 0, len(db.entries))
	for _, e := range db.entries {
		exs := make([]exercises.Exercise, len(e.Exercises))
		copy(exs, e.Exercises)
		entries = append(entries, Entry{
			Date:      e.Date,
			Exercises: exs,
		})
	}
	return entries
}

// Len returns the number of distinct dates.
func (db *Database) Len() int {
	return len(db.entries)
}
