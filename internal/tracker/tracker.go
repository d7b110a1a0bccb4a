package tracker

import (
	"github.com/2beens/fitlog/internal/exercises"

	log "github.com/sirupsen/logrus"
)

// Tracker owns both views of the logged exercises.
type Tracker struct {
	log *Log
	db  *Database
}

func New() *Tracker {
	return &Tracker{
		log: NewLog(),
		db:  NewDatabase(),
	}
}

func (t *Tracker) Add(ex exercises.Exercise) {
	t.db.Record(ex)
	t.log.Append(ex)
	log.Debugf("exercise added: [%s] %s on %s", ex.Kind, ex.Name, ex.Date)
}

func (t *Tracker) Log() *Log {
	return t.log
}

func (t *Tracker) Database() *Database {
	return t.db
}
