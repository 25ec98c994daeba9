// Package feed is an in-memory content source for demo pages. Refreshing a
// feed takes a configurable latency and fails periodically so that the
// reload paths of the sticky controller can be exercised.
package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/depeter/stickypager/internal/sticky"
)

// ErrUnavailable is returned by refreshes that were chosen to fail.
var ErrUnavailable = errors.New("feed unavailable")

// Item is one row of a feed.
type Item struct {
	ID       int
	Title    string
	Subtitle string
}

type feedState struct {
	rows       int
	generation int
	items      []Item
}

// Source owns a set of named feeds. It is safe for concurrent use.
type Source struct {
	Latency   time.Duration
	FailEvery int // every Nth refresh fails, 0 = never

	group singleflight.Group
	after func(time.Duration) <-chan time.Time

	mu       sync.Mutex
	feeds    map[string]*feedState
	attempts int
}

func NewSource(latency time.Duration, failEvery int) *Source {
	return &Source{
		Latency:   latency,
		FailEvery: failEvery,
		after:     time.After,
		feeds:     make(map[string]*feedState),
	}
}

// Seed creates or resets a feed with the given number of rows.
func (s *Source) Seed(name string, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := &feedState{rows: rows}
	st.items = generate(name, rows, 0)
	s.feeds[name] = st
}

// Items returns the current rows of a feed. The slice is replaced, never
// modified, by refreshes; callers must not modify it.
func (s *Source) Items(name string) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.feeds[name]; ok {
		return st.items
	}
	return nil
}

// Generation counts completed refreshes of a feed.
func (s *Source) Generation(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.feeds[name]; ok {
		return st.generation
	}
	return 0
}

// Refresh regenerates a feed. Concurrent refreshes of the same feed share one
// execution. Cancelling ctx stops waiting but not the shared refresh.
func (s *Source) Refresh(ctx context.Context, name string) ([]Item, error) {
	select {
	case res := <-s.start(name):
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]Item), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Source) start(name string) <-chan singleflight.Result {
	return s.group.DoChan(name, func() (interface{}, error) {
		return s.refresh(name)
	})
}

func (s *Source) refresh(name string) ([]Item, error) {
	s.mu.Lock()
	s.attempts++
	attempt := s.attempts
	s.mu.Unlock()

	if s.Latency > 0 {
		<-s.after(s.Latency)
	}

	if s.FailEvery > 0 && attempt%s.FailEvery == 0 {
		return nil, fmt.Errorf("%w: %s (attempt %d)", ErrUnavailable, name, attempt)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.feeds[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown feed %q", ErrUnavailable, name)
	}
	st.generation++
	st.items = generate(name, st.rows, st.generation)
	return st.items, nil
}

// RefreshAll refreshes feeds concurrently and returns the first error.
func (s *Source) RefreshAll(ctx context.Context, names ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		g.Go(func() error {
			_, err := s.Refresh(ctx, name)
			return err
		})
	}
	return g.Wait()
}

// ReloadFunc adapts a refresh of names to the sticky reload signal.
func (s *Source) ReloadFunc(names ...string) sticky.ReloadFunc {
	return func(ctx context.Context) <-chan error {
		done := make(chan error, 1)
		go func() {
			done <- s.RefreshAll(ctx, names...)
		}()
		return done
	}
}

func generate(name string, rows, generation int) []Item {
	items := make([]Item, rows)
	for i := range items {
		items[i] = Item{
			ID:       generation*rows + i,
			Title:    fmt.Sprintf("%s #%d", name, i+1),
			Subtitle: fmt.Sprintf("refreshed %d times", generation),
		}
	}
	return items
}
