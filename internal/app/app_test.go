package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/config"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	testhelpers "github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/test"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/worker"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestFlusher(repo *testhelpers.JournalRepositoryStub) *worker.JournalFlusher {
	return worker.NewJournalFlusher(repo, time.Hour, 8, 1, discardLogger())
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestNewJournalFlusherUsesConfig(t *testing.T) {
	flusher := newJournalFlusher(flusherParams{
		Repository: &testhelpers.JournalRepositoryStub{},
		Config:     &config.Config{JournalFlushInterval: time.Second, JournalBatchSize: 3, JournalWorkers: 2},
		Logger:     discardLogger(),
	})
	if flusher == nil {
		t.Fatal("expected journal flusher instance")
	}
}

func TestRegisterLifecycleStartStopDrainsJournal(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	repo := &testhelpers.JournalRepositoryStub{}
	flusher := newTestFlusher(repo)
	cfg := &config.Config{ShutdownTimeout: 100 * time.Millisecond}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     server,
		Journal:    flusher,
		Config:     cfg,
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	hook := recorder.Hooks[0]
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := hook.OnStart(ctx); err != nil {
		t.Fatalf("on start failed: %v", err)
	}

	flusher.Record(model.JournalEntry{ID: "j-1", Stream: model.JournalStreamOrder, Kind: "status_changed"})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hook.OnStop(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}

	if got := repo.Appended(); len(got) != 1 || got[0].ID != "j-1" {
		t.Fatalf("expected journal drained on stop, got %+v", got)
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     &http.Server{Addr: "bad addr"},
		Journal:    newTestFlusher(&testhelpers.JournalRepositoryStub{}),
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be triggered on server error")
	}

	_ = hook.OnStop(context.Background())
}
