// Package location provides the optional device position used to add the viewer's own city.
package location

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaximumAge = 10 * time.Minute
)

type Options struct {
	HighAccuracy bool
	Timeout      time.Duration
	// MaximumAge is how old a previously acquired fix may be and still be reused.
	MaximumAge time.Duration
}

func DefaultOptions() Options {
	return Options{
		HighAccuracy: true,
		Timeout:      DefaultTimeout,
		MaximumAge:   DefaultMaximumAge,
	}
}

type Position struct {
	Coords     models.Coordinates
	AcquiredAt time.Time
}

type Sensor interface {
	CurrentPosition(ctx context.Context, opts Options) (Position, error)
}

// Disabled is the sensor of a host without a position source.
type Disabled struct{}

func (Disabled) CurrentPosition(context.Context, Options) (Position, error) {
	return Position{}, models.ErrCapabilityUnavailable
}

// FixedSensor reports a configured position. A fix younger than MaximumAge is served
// from cache; otherwise a new one is acquired within Timeout.
type FixedSensor struct {
	fix models.Coordinates
	now func() time.Time

	mu     sync.Mutex
	cached *Position
}

func NewFixedSensor(fix models.Coordinates, now func() time.Time) *FixedSensor {
	if now == nil {
		now = time.Now
	}
	return &FixedSensor{fix: fix, now: now}
}

func (s *FixedSensor) CurrentPosition(ctx context.Context, opts Options) (Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.cached != nil && now.Sub(s.cached.AcquiredAt) <= opts.MaximumAge {
		return *s.cached, nil
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return Position{}, fmt.Errorf("acquire position: %w", err)
	}

	pos := Position{Coords: s.fix, AcquiredAt: now}
	s.cached = &pos
	return pos, nil
}
