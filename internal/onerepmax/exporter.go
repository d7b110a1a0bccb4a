package onerepmax

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/2beens/fitlog/internal/tracker"
	"github.com/2beens/fitlog/pkg"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

var ErrOpenFile = errors.New("unable to open file for writing")

var csvHeader = []string{"Date", "1RM"}

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=onerepmax_test

type entriesSource interface {
	Entries() []tracker.Entry
}

type ExportResult struct {
	Path string
	// Rows is the number of data rows written, header not included
	Rows int
	// Skipped counts matching exercises whose 1RM could not be estimated
	Skipped int
}

// Exporter writes the estimated one-rep-max of a single exercise, for each time
// it was done, as CSV. Rows follow the order of the database entries.
type Exporter struct {
	source entriesSource
}

func NewExporter(source entriesSource) *Exporter {
	return &Exporter{
		source: source,
	}
}

// Export writes the CSV into the file at path, creating or truncating it.
func (e *Exporter) Export(exerciseName, path string) (_ *ExportResult, err error) {
	if dir := filepath.Dir(path); dir != "." {
		dirExists, err := pkg.PathExists(dir, true)
		if err != nil {
			return nil, fmt.Errorf("%w: check dir [%s]: %w", ErrOpenFile, dir, err)
		}
		if !dirExists {
			return nil, fmt.Errorf("%w: dir [%s] does not exist", ErrOpenFile, dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFile, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close [%s]: %w", path, closeErr))
		}
	}()

	res, err := e.ExportTo(f, exerciseName)
	if err != nil {
		return nil, err
	}
	res.Path = path

	log.Debugf("exported %d 1RM rows for [%s] to %s", res.Rows, exerciseName, path)

	return res, nil
}

func (e *Exporter) ExportTo(w io.Writer, exerciseName string) (*ExportResult, error) {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	res := &ExportResult{}
	for _, entry := range e.source.Entries() {
		for _, ex := range entry.Exercises {
			if ex.Name != exerciseName || !ex.IsStrength() {
				continue
			}

			oneRepMax, err := Brzycki(ex.Weight, ex.Reps())
			if err != nil {
				log.Warnf("skipping [%s] on %s: %s", ex.Name, entry.Date, err)
				res.Skipped++
				continue
			}

			if err := csvWriter.Write([]string{entry.Date, FormatValue(oneRepMax)}); err != nil {
				return nil, fmt.Errorf("write row: %w", err)
			}
			res.Rows++
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return res, nil
}

// FormatValue prints v with six significant digits, e.g. 253.15.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
