// Package mcp exposes the refactoring engine over the Model Context Protocol.
package mcp

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/refract-dev/refract/pkg/refactor"
	"github.com/refract-dev/refract/pkg/watch"
)

// Server holds the shared state for the MCP tool handlers: the workspace
// root, the refactoring engine, per-file locks serializing concurrent
// operations on the same file, and an optional filesystem watcher that flags
// files modified outside the server.
type Server struct {
	root   string
	engine *refactor.DefaultEngine
	logger *slog.Logger

	mu        sync.Mutex
	fileLocks map[string]*sync.Mutex
	stale     map[string]bool

	watcher *watch.Watcher
	cancel  context.CancelFunc
}

// NewServer creates a Server rooted at the given workspace directory.
func NewServer(root string, logger *slog.Logger) *Server {
	return &Server{
		root:      root,
		engine:    refactor.CreateEngine(logger),
		logger:    logger,
		fileLocks: make(map[string]*sync.Mutex),
		stale:     make(map[string]bool),
	}
}

// Engine returns the refactoring engine.
func (s *Server) Engine() *refactor.DefaultEngine {
	return s.engine
}

// Root returns the workspace root directory.
func (s *Server) Root() string {
	return s.root
}

// resolve makes a tool-supplied path absolute against the workspace root.
func (s *Server) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.root, path)
}

// lockFile serializes operations targeting the same file. Operations on
// distinct files run concurrently.
func (s *Server) lockFile(path string) func() {
	s.mu.Lock()
	l, ok := s.fileLocks[path]
	if !ok {
		l = &sync.Mutex{}
		s.fileLocks[path] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// markStale records files changed on disk outside the server.
func (s *Server) markStale(paths []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range paths {
		s.stale[p] = true
	}
}

// clearStale reports whether the file changed externally since the last
// operation on it, and resets the flag. Every operation re-reads the file, so
// staleness only means any earlier analysis positions may have shifted.
func (s *Server) clearStale(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	was := s.stale[path]
	delete(s.stale, path)
	return was
}

// StartWatcher begins watching the workspace root for external source
// changes. Failure is non-fatal: the server works without a watcher, it just
// cannot flag stale analyses.
func (s *Server) StartWatcher(ctx context.Context) error {
	w, err := watch.NewWatcher(s.root, 200*time.Millisecond, s.logger)
	if err != nil {
		return err
	}
	s.watcher = w

	watchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	ch := make(chan []watch.ChangeEvent, 4)
	go func() {
		if err := w.Run(watchCtx, ch); err != nil && watchCtx.Err() == nil {
			s.logger.Error("watcher error", "err", err)
		}
		close(ch)
	}()
	go func() {
		for events := range ch {
			paths := make([]string, len(events))
			for i, ev := range events {
				paths[i] = ev.Path
			}
			s.markStale(paths)
			s.logger.Debug("source files changed on disk", "count", len(paths))
		}
	}()

	return nil
}

// Close stops the watcher and releases resources.
func (s *Server) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.watcher != nil {
		_ = s.watcher.Close()
		s.watcher = nil
	}
}
