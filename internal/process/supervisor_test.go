package process

import (
	"os/exec"
	"testing"
	"time"
)

func TestSupervisorStart(t *testing.T) {
	s := NewSupervisor()

	proc, err := s.Start("echo", exec.Command("echo", "hello"), nil, nil)
	if err != nil {
		t.Fatalf("failed to start process: %v", err)
	}

	if proc.ID == "" {
		t.Error("expected generated process ID")
	}

	<-proc.Done()

	// The monitor goroutine removes the process after exit.
	deadline := time.Now().Add(2 * time.Second)
	for s.Count() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if s.Count() != 0 {
		t.Errorf("expected 0 tracked processes after exit, got %d", s.Count())
	}
}

func TestSupervisorStartWithID(t *testing.T) {
	s := NewSupervisor()

	proc, err := s.StartWithID("fixed-id", "echo", exec.Command("echo"), nil, nil)
	if err != nil {
		t.Fatalf("failed to start process: %v", err)
	}

	if proc.ID != "fixed-id" {
		t.Errorf("expected ID 'fixed-id', got %q", proc.ID)
	}

	if got := s.Get("fixed-id"); got != proc && got != nil {
		t.Error("Get returned a different process")
	}

	<-proc.Done()
}

func TestSupervisorSpawnFailure(t *testing.T) {
	s := NewSupervisor()

	exited := make(chan struct{})
	_, err := s.Start("missing", exec.Command("/nonexistent/binary"), nil, func(code int, err error) {
		close(exited)
	})
	if err == nil {
		t.Fatal("expected spawn error for nonexistent binary")
	}

	select {
	case <-exited:
		t.Error("exit handler must not fire for a process that never started")
	case <-time.After(100 * time.Millisecond):
	}

	if s.Count() != 0 {
		t.Errorf("failed start must not be tracked, got %d", s.Count())
	}
}

func TestSupervisorShutdown(t *testing.T) {
	s := NewSupervisor()

	proc, err := s.Start("sleeper", exec.Command("sleep", "30"), nil, nil)
	if err != nil {
		t.Fatalf("failed to start process: %v", err)
	}

	s.Shutdown(2 * time.Second)

	if !proc.HasExited() {
		t.Error("expected process to have exited after shutdown")
	}

	if !s.IsShutdown() {
		t.Error("expected IsShutdown() to be true")
	}

	if _, err := s.Start("late", exec.Command("echo"), nil, nil); err != ErrSupervisorShutdown {
		t.Errorf("expected ErrSupervisorShutdown, got %v", err)
	}
}

func TestSupervisorShutdownIdempotent(t *testing.T) {
	s := NewSupervisor()
	s.Shutdown(time.Second)
	s.Shutdown(time.Second)
}
