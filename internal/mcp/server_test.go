package mcp

import (
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(t.TempDir(), logger)
}

func TestResolve(t *testing.T) {
	s := testServer(t)

	abs := filepath.Join(s.Root(), "src", "main.py")
	if got := s.resolve("src/main.py"); got != abs {
		t.Errorf("relative path: got %q, want %q", got, abs)
	}
	if got := s.resolve(abs); got != abs {
		t.Errorf("absolute path must pass through, got %q", got)
	}
}

func TestLockFileSerializesSameFile(t *testing.T) {
	s := testServer(t)

	var mu sync.Mutex
	var inCritical bool
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := s.lockFile("/ws/a.py")
			defer unlock()

			mu.Lock()
			if inCritical {
				t.Error("two operations entered the critical section for one file")
			}
			inCritical = true
			mu.Unlock()

			mu.Lock()
			inCritical = false
			mu.Unlock()
		}()
	}
	wg.Wait()
}

func TestStaleTracking(t *testing.T) {
	s := testServer(t)

	if s.clearStale("/ws/a.py") {
		t.Error("unseen files are not stale")
	}

	s.markStale([]string{"/ws/a.py", "/ws/b.py"})
	if !s.clearStale("/ws/a.py") {
		t.Error("expected /ws/a.py to be flagged stale")
	}
	if s.clearStale("/ws/a.py") {
		t.Error("clearStale must reset the flag")
	}
	if !s.clearStale("/ws/b.py") {
		t.Error("expected /ws/b.py to be flagged stale")
	}
}
