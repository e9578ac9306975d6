// internal/service/location/provider.go

package location

import (
	"context"
	"sync"
	"time"

	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/geo"
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/location"
)

// ProviderConfig contains configuration for a location provider.
type ProviderConfig struct {
	HighAccuracy bool
	// Timeout bounds a single current-position request.
	Timeout time.Duration
	// MaximumAge lets a previously obtained fix within this window satisfy
	// a request without touching the source again.
	MaximumAge time.Duration
}

// DefaultProviderConfig returns the budgets the map view runs with.
func DefaultProviderConfig() ProviderConfig {
	return ProviderConfig{
		HighAccuracy: true,
		Timeout:      10 * time.Second,
		MaximumAge:   60 * time.Second,
	}
}

// Provider wraps a platform geolocation source. It is owned by whoever
// created it and holds at most one active watch; there is no package-level
// instance.
type Provider struct {
	source location.Source
	config ProviderConfig
	now    func() time.Time

	mu      sync.Mutex
	lastFix *location.Position
	watch   *Watch
}

// NewProvider creates a provider on top of a geolocation source.
func NewProvider(source location.Source, config ProviderConfig) *Provider {
	if config.Timeout <= 0 {
		config.Timeout = DefaultProviderConfig().Timeout
	}
	return &Provider{
		source: source,
		config: config,
		now:    time.Now,
	}
}

// GetCurrentLocation resolves the user's current coordinate. A cached fix
// younger than the configured maximum age is returned without a new source
// request. Failures map to the location error kinds and are terminal for
// this attempt; the caller decides whether to re-trigger.
func (p *Provider) GetCurrentLocation(ctx context.Context) (geo.Coordinate, error) {
	p.mu.Lock()
	if p.lastFix != nil && p.now().Sub(p.lastFix.Timestamp) <= p.config.MaximumAge {
		coord := p.lastFix.Coordinate
		p.mu.Unlock()
		return coord, nil
	}
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	pos, err := p.source.CurrentPosition(ctx, location.Options{
		HighAccuracy: p.config.HighAccuracy,
		Timeout:      p.config.Timeout,
		MaximumAge:   p.config.MaximumAge,
	})
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return geo.Coordinate{}, location.ErrTimeout
		}
		return geo.Coordinate{}, err
	}

	p.mu.Lock()
	p.lastFix = &pos
	p.mu.Unlock()

	return pos.Coordinate, nil
}

// LastKnown returns the most recent fix still within the maximum age
// window, or nil. It never touches the source, so callers that must not
// block (marker rendering) use it instead of GetCurrentLocation.
func (p *Provider) LastKnown() *geo.Coordinate {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.lastFix == nil || p.now().Sub(p.lastFix.Timestamp) > p.config.MaximumAge {
		return nil
	}
	coord := p.lastFix.Coordinate
	return &coord
}

// GetPermissionStatus reports the platform permission state. It never
// fails; sources without a permission query report unknown.
func (p *Provider) GetPermissionStatus(ctx context.Context) location.PermissionStatus {
	return p.source.PermissionStatus(ctx)
}

// Watch is the handle for one continuous position subscription.
type Watch struct {
	provider *Provider
	id       int64

	mu      sync.Mutex
	stopped bool
}

// Stop cancels the watch. It is idempotent, and after it returns no
// further callbacks fire.
func (w *Watch) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	w.mu.Unlock()

	w.provider.source.ClearWatch(w.id)

	w.provider.mu.Lock()
	if w.provider.watch == w {
		w.provider.watch = nil
	}
	w.provider.mu.Unlock()
}

// WatchLocation begins continuous position updates, invoking onUpdate for
// every fix until the returned handle is stopped. A provider keeps a single
// active watch: starting a new one releases the previous handle first.
func (p *Provider) WatchLocation(onUpdate func(geo.Coordinate)) (*Watch, error) {
	p.mu.Lock()
	prev := p.watch
	p.mu.Unlock()
	if prev != nil {
		prev.Stop()
	}

	w := &Watch{provider: p}

	id, err := p.source.WatchPosition(location.Options{
		HighAccuracy: p.config.HighAccuracy,
		Timeout:      p.config.Timeout,
		MaximumAge:   p.config.MaximumAge,
	}, func(pos location.Position) {
		// The source may deliver on its own goroutine; drop anything
		// that races with Stop.
		w.mu.Lock()
		stopped := w.stopped
		w.mu.Unlock()
		if stopped {
			return
		}

		p.mu.Lock()
		fix := pos
		p.lastFix = &fix
		p.mu.Unlock()

		onUpdate(pos.Coordinate)
	})
	if err != nil {
		return nil, err
	}

	w.id = id

	p.mu.Lock()
	p.watch = w
	p.mu.Unlock()

	return w, nil
}
