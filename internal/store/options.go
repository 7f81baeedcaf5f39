package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/repository"
)

// Options configures collaborators shared by all stores.
type Options struct {
	Now     func() time.Time
	NewID   func() string
	Journal repository.JournalSink
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.Journal == nil {
		o.Journal = repository.NopJournal{}
	}
	return o
}

// touch returns a timestamp strictly after prev so updatedAt always advances.
func (o Options) touch(prev time.Time) time.Time {
	now := o.Now()
	if !now.After(prev) {
		return prev.Add(time.Millisecond)
	}
	return now
}

func (o Options) record(stream, aggregateID, kind string, payload map[string]any) {
	o.Journal.Record(model.JournalEntry{
		ID:          o.NewID(),
		Stream:      stream,
		AggregateID: aggregateID,
		Kind:        kind,
		Payload:     payload,
		RecordedAt:  o.Now(),
	})
}
