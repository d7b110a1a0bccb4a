package display

import (
	"fmt"
	"io"

	"github.com/2beens/fitlog/internal/exercises"
	"github.com/2beens/fitlog/internal/tracker"

	"go.uber.org/multierr"
)

const (
	logHeader      = "Exercise Log:"
	databaseHeader = "Exercise Database (Sorted by Date):"
)

// WriteLog prints every exercise on its own line, in the given order.
func WriteLog(w io.Writer, list []exercises.Exercise) error {
	var err error
	err = multierr.Append(err, writeLine(w, logHeader))
	for _, ex := range list {
		err = multierr.Append(err, writeLine(w, fmt.Sprintf("Date: %s, %s", ex.Date, Describe(ex))))
	}
	return err
}

// WriteDatabase prints exercises grouped under their date.
// The header keeps its historic "Sorted by Date" label; entries are printed in the order given,
// which for a tracker.Database is the order dates were first recorded.
func WriteDatabase(w io.Writer, entries []tracker.Entry) error {
	var err error
	err = multierr.Append(err, writeLine(w, databaseHeader))
	for _, entry := range entries {
		err = multierr.Append(err, writeLine(w, "\nDate: "+entry.Date))
		for _, ex := range entry.Exercises {
			err = multierr.Append(err, writeLine(w, "    "+Describe(ex)))
		}
	}
	return err
}

// Describe renders the name, type and type specific fields of an exercise.
func Describe(ex exercises.Exercise) string {
	if ex.Kind == exercises.Cardio {
		return fmt.Sprintf("Exercise: %s, Type: Cardio, Duration: %d mins", ex.Name, ex.DurationMinutes())
	}
	return fmt.Sprintf(
		"Exercise: %s, Type: Strength, Sets: %d, Reps: %d, Weight: %d lbs",
		ex.Name, ex.Sets(), ex.Reps(), ex.Weight,
	)
}

func writeLine(w io.Writer, line string) error {
	_, err := fmt.Fprintln(w, line)
	return err
}
