// internal/service/location/source.go

package location

import (
	"context"
	"sync"

	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/location"
)

// ChannelSource is an in-process geolocation source fed by pushed fixes.
// The websocket bridge publishes each client-reported position into one of
// these, which makes a browser behind a websocket look like any other
// platform capability to the provider.
type ChannelSource struct {
	mu       sync.Mutex
	last     *location.Position
	watchers map[int64]func(location.Position)
	nextID   int64
	waiters  []chan location.Position
}

// NewChannelSource creates an empty pushed-fix source.
func NewChannelSource() *ChannelSource {
	return &ChannelSource{
		watchers: make(map[int64]func(location.Position)),
	}
}

// Push records a new fix and fans it out to watchers and any pending
// current-position requests.
func (s *ChannelSource) Push(pos location.Position) {
	s.mu.Lock()
	fix := pos
	s.last = &fix

	waiters := s.waiters
	s.waiters = nil

	cbs := make([]func(location.Position), 0, len(s.watchers))
	for _, cb := range s.watchers {
		cbs = append(cbs, cb)
	}
	s.mu.Unlock()

	for _, ch := range waiters {
		ch <- pos
	}
	for _, cb := range cbs {
		cb(pos)
	}
}

// CurrentPosition returns the most recent pushed fix, or blocks until one
// arrives or the context expires.
func (s *ChannelSource) CurrentPosition(ctx context.Context, opts location.Options) (location.Position, error) {
	s.mu.Lock()
	if s.last != nil {
		pos := *s.last
		s.mu.Unlock()
		return pos, nil
	}

	ch := make(chan location.Position, 1)
	s.waiters = append(s.waiters, ch)
	s.mu.Unlock()

	select {
	case pos := <-ch:
		return pos, nil
	case <-ctx.Done():
		return location.Position{}, location.ErrTimeout
	}
}

// WatchPosition registers a callback for every subsequent pushed fix.
func (s *ChannelSource) WatchPosition(opts location.Options, cb func(location.Position)) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.watchers[id] = cb
	return id, nil
}

// ClearWatch removes a watcher. Unknown ids are ignored.
func (s *ChannelSource) ClearWatch(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.watchers, id)
}

// PermissionStatus reports granted once the client has pushed a fix, and
// prompt before that.
func (s *ChannelSource) PermissionStatus(ctx context.Context) location.PermissionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last != nil {
		return location.PermissionGranted
	}
	return location.PermissionPrompt
}

// UnsupportedSource is the capability of a host with no geolocation at all.
type UnsupportedSource struct{}

// CurrentPosition always fails with ErrNotSupported.
func (UnsupportedSource) CurrentPosition(ctx context.Context, opts location.Options) (location.Position, error) {
	return location.Position{}, location.ErrNotSupported
}

// WatchPosition always fails with ErrNotSupported.
func (UnsupportedSource) WatchPosition(opts location.Options, cb func(location.Position)) (int64, error) {
	return 0, location.ErrNotSupported
}

// ClearWatch is a no-op.
func (UnsupportedSource) ClearWatch(id int64) {}

// PermissionStatus reports unknown, the best-effort answer when there is
// nothing to query.
func (UnsupportedSource) PermissionStatus(ctx context.Context) location.PermissionStatus {
	return location.PermissionUnknown
}
