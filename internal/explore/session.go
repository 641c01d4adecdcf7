package explore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/blackwell-systems/bookbin/internal/catalog"
)

// Source produces book stubs. *Client is the production Source.
type Source interface {
	Fetch(ctx context.Context, count int) ([]catalog.ExploreStub, error)
}

// Session holds the candidate list of one explore dialog. It is safe for
// concurrent use. Every Refresh bumps a generation counter; a fetch result
// is applied only while its generation is still current and the session
// is open.
type Session struct {
	source Source
	count  int
	logger *slog.Logger

	mu         sync.Mutex
	candidates []catalog.ExploreStub
	generation uint64
	closed     bool
}

// NewSession creates an empty, open session.
func NewSession(source Source, count int, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	if count <= 0 {
		count = DefaultCount
	}
	return &Session{source: source, count: count, logger: logger}
}

// Refresh starts a fetch in the background and returns a channel that
// receives exactly one value: nil once the stubs were appended, the fetch
// error, or ErrStale when the result was dropped. A failed fetch leaves the
// candidates unchanged.
func (s *Session) Refresh(ctx context.Context) <-chan error {
	done := make(chan error, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		done <- ErrStale
		return done
	}
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	go func() {
		stubs, err := s.source.Fetch(ctx, s.count)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || gen != s.generation {
			s.logger.Debug("dropping stale explore result", "generation", gen)
			done <- ErrStale
			return
		}
		if err != nil {
			s.logger.Warn("explore fetch failed", "error", err)
			done <- err
			return
		}
		s.candidates = append(s.candidates, stubs...)
		done <- nil
	}()
	return done
}

// Candidates returns a copy of the current candidate list.
func (s *Session) Candidates() []catalog.ExploreStub {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.ExploreStub{}, s.candidates...)
}

// Take returns candidate i and removes it along with every other candidate
// sharing its title.
func (s *Session) Take(i int) (catalog.ExploreStub, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.candidates) {
		return catalog.ExploreStub{}, fmt.Errorf("candidate %d: %w", i, catalog.ErrNotFound)
	}
	stub := s.candidates[i]
	kept := s.candidates[:0:0]
	for _, c := range s.candidates {
		if c.Title != stub.Title {
			kept = append(kept, c)
		}
	}
	s.candidates = kept
	return stub, nil
}

// Discard removes candidate i only.
func (s *Session) Discard(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.candidates) {
		return fmt.Errorf("candidate %d: %w", i, catalog.ErrNotFound)
	}
	s.candidates = append(s.candidates[:i:i], s.candidates[i+1:]...)
	return nil
}

// Close ends the session. Fetches still in flight are discarded when they
// complete.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.candidates = nil
}
