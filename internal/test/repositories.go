package test

import (
	"context"
	"sync"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
)

// JournalSinkStub collects recorded journal entries.
type JournalSinkStub struct {
	mu      sync.Mutex
	entries []model.JournalEntry
}

// Record stores entry for later inspection.
func (s *JournalSinkStub) Record(entry model.JournalEntry) {
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
}

// Entries returns a snapshot of recorded entries.
func (s *JournalSinkStub) Entries() []model.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.JournalEntry(nil), s.entries...)
}

// Kinds returns recorded entry kinds in call order.
func (s *JournalSinkStub) Kinds() []string {
	entries := s.Entries()
	kinds := make([]string, len(entries))
	for i, e := range entries {
		kinds[i] = e.Kind
	}
	return kinds
}

// JournalRepositoryStub captures appended batches and allows error injection.
type JournalRepositoryStub struct {
	AppendFn func(context.Context, []model.JournalEntry) error

	mu      sync.Mutex
	Batches [][]model.JournalEntry
}

// Append records the batch unless AppendFn returns an error.
func (s *JournalRepositoryStub) Append(ctx context.Context, entries []model.JournalEntry) error {
	if s.AppendFn != nil {
		if err := s.AppendFn(ctx, entries); err != nil {
			return err
		}
	}
	s.mu.Lock()
	s.Batches = append(s.Batches, append([]model.JournalEntry(nil), entries...))
	s.mu.Unlock()
	return nil
}

// Appended flattens all stored batches in append order.
func (s *JournalRepositoryStub) Appended() []model.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []model.JournalEntry
	for _, b := range s.Batches {
		all = append(all, b...)
	}
	return all
}
