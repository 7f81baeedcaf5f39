package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/repository"
)

const (
	queueFactor  = 16
	writeTimeout = 5 * time.Second
)

// JournalFlusher buffers journal entries recorded by stores and writes them
// in batches through a pool of writers. Record never blocks.
type JournalFlusher struct {
	repo          repository.JournalRepository
	flushInterval time.Duration
	batchSize     int
	workers       int
	logger        *slog.Logger

	queue   chan model.JournalEntry
	batches chan []model.JournalEntry
	dropped atomic.Int64

	wg      sync.WaitGroup
	cancel  context.CancelFunc
	mu      sync.Mutex
	started bool
}

// NewJournalFlusher constructs the flusher. Entries recorded before Start
// stay queued until the first flush.
func NewJournalFlusher(repo repository.JournalRepository, flushInterval time.Duration, batchSize, workers int, logger *slog.Logger) *JournalFlusher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	if flushInterval <= 0 {
		flushInterval = time.Second
	}
	return &JournalFlusher{
		repo:          repo,
		flushInterval: flushInterval,
		batchSize:     batchSize,
		workers:       workers,
		logger:        logger,
		queue:         make(chan model.JournalEntry, batchSize*workers*queueFactor),
		batches:       make(chan []model.JournalEntry, workers),
	}
}

// Record enqueues entry. A full queue drops the entry with a warning.
func (f *JournalFlusher) Record(entry model.JournalEntry) {
	select {
	case f.queue <- entry:
	default:
		total := f.dropped.Add(1)
		f.logger.Warn("journal queue full, entry dropped",
			slog.String("stream", entry.Stream),
			slog.String("kind", entry.Kind),
			slog.Int64("dropped_total", total),
		)
	}
}

// Dropped returns how many entries were discarded because the queue was full.
func (f *JournalFlusher) Dropped() int64 {
	return f.dropped.Load()
}

// Start launches the dispatcher and writers. Calling Start twice is a no-op.
func (f *JournalFlusher) Start(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.started {
		return
	}
	f.started = true

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	f.cancel = cancel

	for i := 0; i < f.workers; i++ {
		f.wg.Add(1)
		go f.writer()
	}

	f.wg.Add(1)
	go f.dispatch(runCtx)
}

// Stop flushes everything queued so far and waits for the writers.
func (f *JournalFlusher) Stop() {
	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.mu.Unlock()

	f.wg.Wait()
}

func (f *JournalFlusher) dispatch(ctx context.Context) {
	defer f.wg.Done()
	defer close(f.batches)

	ticker := time.NewTicker(f.flushInterval)
	defer ticker.Stop()

	pending := make([]model.JournalEntry, 0, f.batchSize)
	flush := func() {
		if len(pending) == 0 {
			return
		}
		f.batches <- pending
		pending = make([]model.JournalEntry, 0, f.batchSize)
	}

	for {
		select {
		case <-ctx.Done():
			for {
				select {
				case entry := <-f.queue:
					pending = append(pending, entry)
					if len(pending) >= f.batchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		case entry := <-f.queue:
			pending = append(pending, entry)
			if len(pending) >= f.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (f *JournalFlusher) writer() {
	defer f.wg.Done()
	for batch := range f.batches {
		f.write(batch)
	}
}

func (f *JournalFlusher) write(batch []model.JournalEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := f.repo.Append(ctx, batch); err != nil {
		f.logger.Error("journal write failed",
			slog.Int("entries", len(batch)),
			slog.String("first_id", batch[0].ID),
			slog.String("error", err.Error()),
		)
		return
	}
	f.logger.Debug("journal batch written", slog.Int("entries", len(batch)))
}
