// Package clock keeps the selected city's local time label current.
package clock

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
	"github.com/Nazarious-ucu/weather-dashboard/internal/presenter"
)

const (
	DefaultSpec    = "@every 1m"
	lookupDuration = 10 * time.Second
)

type offsetLookup interface {
	Current(ctx context.Context, city string) (models.CurrentConditions, error)
}

// Ticker refreshes the local time of one tracked city on a cron schedule.
type Ticker struct {
	lookup offsetLookup
	logger zerolog.Logger
	cron   *cron.Cron
	spec   string
	now    func() time.Time

	mu    sync.Mutex
	entry cron.EntryID
	city  string
}

func NewTicker(lookup offsetLookup, logger zerolog.Logger, spec string, now func() time.Time) *Ticker {
	if spec == "" {
		spec = DefaultSpec
	}
	if now == nil {
		now = time.Now
	}
	return &Ticker{
		lookup: lookup,
		logger: logger.With().Str("component", "Clock").Logger(),
		cron:   cron.New(cron.WithSeconds()),
		spec:   spec,
		now:    now,
	}
}

func (t *Ticker) Start() {
	t.cron.Start()
	t.logger.Info().Str("spec", t.spec).Msg("local clock started")
}

// Stop halts the scheduler and waits for a running tick to finish or ctx to expire.
func (t *Ticker) Stop(ctx context.Context) {
	stopCtx := t.cron.Stop()
	select {
	case <-stopCtx.Done():
		t.logger.Info().Msg("local clock stopped")
	case <-ctx.Done():
		t.logger.Warn().Err(ctx.Err()).Msg("local clock stop timed out")
	}
}

// Track replaces the tracked city. report receives a new label on every tick.
func (t *Ticker) Track(city string, report func(label string)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.removeLocked()
	id, err := t.cron.AddFunc(t.spec, func() { t.Tick(city, report) })
	if err != nil {
		t.logger.Error().Err(err).Str("city", city).Msg("failed to schedule local clock")
		return
	}
	t.entry, t.city = id, city
	t.logger.Debug().Str("city", city).Msg("tracking local time")
}

func (t *Ticker) Untrack() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.removeLocked()
}

// Tracked returns the city currently tracked, or "".
func (t *Ticker) Tracked() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.city
}

func (t *Ticker) removeLocked() {
	if t.entry != 0 {
		t.cron.Remove(t.entry)
	}
	t.entry, t.city = 0, ""
}

// Tick looks up the city's UTC offset and reports its local time. When the lookup fails
// the viewer's own clock is reported instead. It holds no lock while reporting.
func (t *Ticker) Tick(city string, report func(label string)) {
	ctx, cancel := context.WithTimeout(context.Background(), lookupDuration)
	defer cancel()

	now := t.now()
	current, err := t.lookup.Current(ctx, city)
	if err != nil {
		t.logger.Warn().Err(err).Str("city", city).Msg("timezone lookup failed, using device time")
		report(presenter.DeviceTimeLabel(now))
		return
	}
	report(presenter.LocalTimeLabel(now, current.Timezone))
}
