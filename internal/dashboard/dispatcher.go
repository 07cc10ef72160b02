package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-dashboard/internal/directory"
	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
	"github.com/Nazarious-ucu/weather-dashboard/internal/presenter"
	"github.com/Nazarious-ucu/weather-dashboard/internal/services/forecast"
	"github.com/Nazarious-ucu/weather-dashboard/internal/services/location"
)

type weatherClient interface {
	Current(ctx context.Context, city string) (models.CurrentConditions, error)
	Forecast(ctx context.Context, city string) (models.ForecastFeed, error)
	AirQuality(ctx context.Context, coords models.Coordinates) (models.AirQuality, error)
	Geocode(ctx context.Context, name string) (models.Place, error)
	ReverseGeocode(ctx context.Context, coords models.Coordinates) (models.Place, error)
}

type cityStore interface {
	Load(ctx context.Context) directory.State
	Persist(ctx context.Context, s directory.State) error
}

type clockTracker interface {
	Track(city string, report func(label string))
	Untrack()
}

type changePublisher interface {
	CitiesChanged(ctx context.Context, action, city string, cities []string) error
}

type recorder interface {
	ForecastUnavailable()
	CitiesChanged(action string, count int)
}

type Options struct {
	Location *time.Location
	Now      func() time.Time
	Clock    clockTracker
	Sensor   location.Sensor
	Publish  changePublisher
	Metrics  recorder
}

// Dispatcher is the single owner of State. Reduce and persistence run under one mutex;
// network effects run outside it and feed their results back through Dispatch.
type Dispatcher struct {
	mu    sync.Mutex
	state State

	store  cityStore
	client weatherClient
	opts   Options
	logger zerolog.Logger
}

func NewDispatcher(store cityStore, client weatherClient, logger zerolog.Logger, opts Options) *Dispatcher {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Sensor == nil {
		opts.Sensor = location.Disabled{}
	}
	return &Dispatcher{
		state:  NewState(directory.State{}),
		store:  store,
		client: client,
		opts:   opts,
		logger: logger.With().Str("component", "Dispatcher").Logger(),
	}
}

// State returns a copy of the current state.
func (d *Dispatcher) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.clone()
}

func (d *Dispatcher) now() time.Time {
	return d.opts.Now().In(d.opts.Location)
}

// Bootstrap loads the stored cities, tries the location sensor and then fetches every
// stored city concurrently. Individual failures are logged.
func (d *Dispatcher) Bootstrap(ctx context.Context) {
	dir := d.store.Load(ctx)

	d.mu.Lock()
	d.state = NewState(dir)
	d.mu.Unlock()

	pos, err := d.opts.Sensor.CurrentPosition(ctx, location.DefaultOptions())
	switch {
	case errors.Is(err, models.ErrCapabilityUnavailable):
		_ = d.Dispatch(ctx, LocationUnavailable{Err: err})
	case err != nil:
		_ = d.Dispatch(ctx, LocationFailed{Err: err})
	default:
		if err := d.Dispatch(ctx, LocationReported{Coords: pos.Coords}); err != nil {
			d.logger.Warn().Ctx(ctx).Err(err).Msg("could not add current location")
		}
	}

	var wg sync.WaitGroup
	for _, name := range dir.Names() {
		wg.Add(1)
		go func(city string) {
			defer wg.Done()
			if err := d.Dispatch(ctx, CitySubmitted{Name: city}); err != nil {
				d.logger.Warn().Ctx(ctx).Err(err).Str("city", city).Msg("failed to load stored city")
			}
		}(name)
	}
	wg.Wait()

	d.logger.Info().Ctx(ctx).Strs("cities", d.State().Directory.Names()).Msg("dashboard bootstrapped")
}

// Dispatch applies ev and runs the resulting effects, including any follow-up events.
// The first user-visible error raised along the way is returned.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) error {
	d.mu.Lock()
	next, effects := Reduce(d.state, ev)
	d.state = next

	var notify error
	var network []Effect
	for _, eff := range effects {
		switch e := eff.(type) {
		case PersistCities:
			d.persist(ctx, e)
		case TrackClock:
			d.track(e.City)
		case StopClock:
			if d.opts.Clock != nil {
				d.opts.Clock.Untrack()
			}
		case Notify:
			if notify == nil {
				notify = e.Err
			}
		case LogWarning:
			d.logger.Warn().Ctx(ctx).Err(e.Err).Str("city", e.City).Msg(e.Msg)
		default:
			network = append(network, eff)
		}
	}
	d.mu.Unlock()

	for _, eff := range network {
		if err := d.run(ctx, eff); err != nil && notify == nil {
			notify = err
		}
	}
	return notify
}

// persist runs under d.mu so the stored list always mirrors the latest mutation.
func (d *Dispatcher) persist(ctx context.Context, e PersistCities) {
	if err := d.store.Persist(ctx, e.Directory); err != nil {
		d.logger.Error().Ctx(ctx).Err(err).Str("city", e.City).Msg("failed to persist cities")
		return
	}
	names := e.Directory.Names()
	if d.opts.Metrics != nil {
		d.opts.Metrics.CitiesChanged(e.Action, len(names))
	}
	if d.opts.Publish != nil {
		if err := d.opts.Publish.CitiesChanged(ctx, e.Action, e.City, names); err != nil {
			d.logger.Error().Ctx(ctx).Err(err).Str("action", e.Action).Msg("failed to publish cities change")
		}
	}
}

func (d *Dispatcher) track(city string) {
	if d.opts.Clock == nil {
		return
	}
	d.opts.Clock.Track(city, func(label string) {
		_ = d.Dispatch(context.Background(), ClockTicked{City: city, Label: label})
	})
}

func (d *Dispatcher) run(ctx context.Context, eff Effect) error {
	switch e := eff.(type) {
	case FetchCurrent:
		data, err := d.client.Current(ctx, e.City)
		if err != nil {
			return d.Dispatch(ctx, CurrentFailed{City: e.City, Err: err})
		}
		return d.Dispatch(ctx, CurrentLoaded{City: e.City, Data: data, At: d.now()})

	case FetchForecast:
		days, err := d.forecastDays(ctx, e.City)
		if err != nil {
			return d.Dispatch(ctx, ForecastFailed{City: e.City, Err: err})
		}
		return d.Dispatch(ctx, ForecastLoaded{City: e.City, Days: days, Loc: d.opts.Location})

	case FetchAirQuality:
		aqi, err := d.airQuality(ctx, e)
		if err != nil {
			return d.Dispatch(ctx, AirQualityFailed{City: e.City, Err: err})
		}
		return d.Dispatch(ctx, AirQualityLoaded{City: e.City, AQI: aqi})

	case ReverseGeocode:
		place, err := d.client.ReverseGeocode(ctx, e.Coords)
		if err != nil {
			return d.Dispatch(ctx, LocationFailed{Err: err})
		}
		return d.Dispatch(ctx, LocationResolved{Place: place})
	}
	return nil
}

func (d *Dispatcher) forecastDays(ctx context.Context, city string) ([]models.DaySummary, error) {
	feed, err := d.client.Forecast(ctx, city)
	if err != nil {
		if d.opts.Metrics != nil {
			d.opts.Metrics.ForecastUnavailable()
		}
		return nil, err
	}
	return forecast.Aggregate(forecast.Samples(feed), d.now()), nil
}

func (d *Dispatcher) airQuality(ctx context.Context, e FetchAirQuality) (int, error) {
	coords := e.Coords
	if coords == (models.Coordinates{}) {
		place, err := d.client.Geocode(ctx, e.City)
		if err != nil {
			return 0, err
		}
		coords = place.Coordinates()
	}
	aq, err := d.client.AirQuality(ctx, coords)
	if err != nil {
		return 0, err
	}
	return aq.AQI, nil
}

// ForecastRows fetches and renders the forecast for any city without touching State.
func (d *Dispatcher) ForecastRows(ctx context.Context, city string) ([]presenter.ForecastRowView, error) {
	days, err := d.forecastDays(ctx, city)
	if err != nil {
		d.logger.Warn().Ctx(ctx).Err(err).Str("city", city).Msg("forecast unavailable")
		return nil, err
	}
	return presenter.ForecastRows(days, d.opts.Location), nil
}
