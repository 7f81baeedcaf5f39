package main

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
)

type runnerStub struct {
	startErr error
	stopErr  error
	done     chan os.Signal
	started  bool
	stopped  bool
}

func (r *runnerStub) Start(context.Context) error {
	r.started = true
	return r.startErr
}

func (r *runnerStub) Stop(context.Context) error {
	r.stopped = true
	return r.stopErr
}

func (r *runnerStub) Done() <-chan os.Signal {
	return r.done
}

func TestRunStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &runnerStub{done: make(chan os.Signal)}

	if err := run(ctx, r); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !r.started || !r.stopped {
		t.Fatalf("expected start and stop, got started=%v stopped=%v", r.started, r.stopped)
	}
}

func TestRunStopsOnShutdownSignal(t *testing.T) {
	r := &runnerStub{done: make(chan os.Signal, 1)}
	r.done <- syscall.SIGTERM

	if err := run(context.Background(), r); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !r.stopped {
		t.Fatal("expected app to be stopped")
	}
}

func TestRunReportsStartFailure(t *testing.T) {
	boom := errors.New("boom")
	r := &runnerStub{startErr: boom, done: make(chan os.Signal)}

	err := run(context.Background(), r)
	if !errors.Is(err, boom) {
		t.Fatalf("expected start error, got %v", err)
	}
	if r.stopped {
		t.Fatal("did not expect stop after failed start")
	}
}

func TestRunReportsStopFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	boom := errors.New("stop failed")
	r := &runnerStub{stopErr: boom, done: make(chan os.Signal)}

	if err := run(ctx, r); !errors.Is(err, boom) {
		t.Fatalf("expected stop error, got %v", err)
	}
}
