package repository

import (
	"context"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
)

// JournalSink accepts ledger and audit appends from stores. Implementations
// must not block the caller.
type JournalSink interface {
	Record(entry model.JournalEntry)
}

// JournalRepository persists batches of journal entries.
type JournalRepository interface {
	Append(ctx context.Context, entries []model.JournalEntry) error
}

// NopJournal discards every entry.
type NopJournal struct{}

// Record implements JournalSink.
func (NopJournal) Record(model.JournalEntry) {}

// Append implements JournalRepository.
func (NopJournal) Append(context.Context, []model.JournalEntry) error { return nil }
