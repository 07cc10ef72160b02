package dashboard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
	"github.com/Nazarious-ucu/weather-dashboard/internal/presenter"
)

var ErrUnknownTab = errors.New("unknown tab")

// Reduce applies ev to s and returns the next state with the effects to run.
// It never mutates s and performs no I/O.
func Reduce(s State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case CitySubmitted:
		return submit(s, e.Name)
	case CurrentLoaded:
		return currentLoaded(s, e)
	case CurrentFailed:
		if !s.Pending[e.City] {
			return s, []Effect{LogWarning{Msg: "dropping late failure for removed city", City: e.City, Err: e.Err}}
		}
		next := s.clone()
		delete(next.Pending, e.City)
		return next, []Effect{Notify{Err: e.Err}}
	case CitySelected:
		return selectCity(s, e)
	case CityRemoved:
		return remove(s, e.Name)
	case TabActivated:
		return activateTab(s, e.Tab)
	case ForecastLoaded:
		if !forecastAwaited(s, e.City) {
			return s, nil
		}
		next := s.clone()
		next.Forecast = ForecastPanel{
			City:   e.City,
			Status: ForecastReady,
			Rows:   presenter.ForecastRows(e.Days, e.Loc),
		}
		return next, nil
	case ForecastFailed:
		if !forecastAwaited(s, e.City) {
			return s, nil
		}
		next := s.clone()
		next.Forecast = ForecastPanel{
			City:    e.City,
			Status:  ForecastUnavailable,
			Message: presenter.ForecastUnavailable,
		}
		return next, []Effect{LogWarning{Msg: "forecast unavailable", City: e.City, Err: e.Err}}
	case AirQualityLoaded:
		if !s.Directory.IsSelected(e.City) {
			return s, nil
		}
		next := s.clone()
		next.AirQuality = e.AQI
		next.Detail.AirQuality = presenter.AirQualityIndex(e.AQI)
		return next, nil
	case AirQualityFailed:
		if !s.Directory.IsSelected(e.City) {
			return s, nil
		}
		next := s.clone()
		next.AirQuality = 0
		next.Detail.AirQuality = presenter.AirQualityIndex(0)
		return next, []Effect{LogWarning{Msg: "air quality unavailable", City: e.City, Err: e.Err}}
	case ClockTicked:
		if !s.Directory.IsSelected(e.City) {
			return s, nil
		}
		next := s.clone()
		next.Detail.LocalTime = e.Label
		return next, nil
	case LocationReported:
		return s, []Effect{ReverseGeocode{Coords: e.Coords}}
	case LocationResolved:
		return submit(s, e.Place.Name)
	case LocationFailed:
		return s, []Effect{
			LogWarning{Msg: "could not resolve location", Err: e.Err},
			Notify{Err: e.Err},
		}
	case LocationUnavailable:
		return s, []Effect{LogWarning{Msg: "location sensor unavailable", Err: e.Err}}
	}
	return s, nil
}

func submit(s State, name string) (State, []Effect) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, nil
	}
	if s.Pending[name] {
		return s, []Effect{Notify{Err: fmt.Errorf("%s: %w", name, models.ErrFetchInFlight)}}
	}
	next := s.clone()
	next.Pending[name] = true
	return next, []Effect{FetchCurrent{City: name}}
}

func currentLoaded(s State, e CurrentLoaded) (State, []Effect) {
	if !s.Pending[e.City] {
		return s, []Effect{LogWarning{Msg: "dropping late conditions for removed city", City: e.City}}
	}

	next := s.clone()
	delete(next.Pending, e.City)
	next.Current[e.City] = e.Data
	next.Cards[e.City] = presenter.Card(e.City, e.Data)

	var effects []Effect
	dir, changed := next.Directory.Add(e.City)
	next.Directory = dir
	if changed {
		effects = append(effects, PersistCities{Directory: dir, Action: ActionAdd, City: e.City})
	}

	switch {
	case next.Directory.SelectedName() == "":
		shown, selEffects := showCity(next, e.City, e.At)
		return shown, append(effects, selEffects...)
	case next.Directory.IsSelected(e.City):
		next.Header = nowHeader(e.At, e.Data)
		next.Detail = presenter.Detail(e.City, e.Data, next.AirQuality, e.At)
	}
	return next, effects
}

func selectCity(s State, e CitySelected) (State, []Effect) {
	if !s.Directory.Contains(e.Name) {
		return s, []Effect{Notify{Err: fmt.Errorf("%s: %w", e.Name, models.ErrNotFound)}}
	}
	if _, ok := s.Current[e.Name]; !ok {
		if s.Pending[e.Name] {
			return s, []Effect{Notify{Err: fmt.Errorf("%s: %w", e.Name, models.ErrFetchInFlight)}}
		}
		return s, []Effect{Notify{Err: fmt.Errorf("no weather loaded for %s: %w", e.Name, models.ErrNotFound)}}
	}
	return showCity(s.clone(), e.Name, e.At)
}

// showCity selects a loaded city and renders it. next must already be a clone.
func showCity(next State, city string, at time.Time) (State, []Effect) {
	data := next.Current[city]
	next.Directory, _ = next.Directory.Select(city)
	next.Header = nowHeader(at, data)
	next.AirQuality = 0
	next.Detail = presenter.Detail(city, data, 0, at)
	next.ActiveTab = TabCurrent
	next.Forecast = ForecastPanel{}
	return next, []Effect{
		FetchAirQuality{City: city, Coords: data.Coord},
		TrackClock{City: city},
	}
}

func remove(s State, name string) (State, []Effect) {
	_, hasCard := s.Cards[name]
	if !s.Directory.Contains(name) && !hasCard && !s.Pending[name] {
		return s, []Effect{Notify{Err: fmt.Errorf("%s: %w", name, models.ErrNotFound)}}
	}

	wasSelected := s.Directory.IsSelected(name)
	next := s.clone()
	delete(next.Pending, name)
	delete(next.Cards, name)
	delete(next.Current, name)

	var effects []Effect
	dir, changed := next.Directory.Remove(name)
	next.Directory = dir
	if changed {
		effects = append(effects, PersistCities{Directory: dir, Action: ActionRemove, City: name})
	}

	if wasSelected {
		next.Header = nil
		next.AirQuality = 0
		next.Detail = presenter.EmptyDetail()
		next.Forecast = ForecastPanel{}
		effects = append(effects, StopClock{})
	}
	return next, effects
}

func activateTab(s State, tab Tab) (State, []Effect) {
	if _, ok := ParseTab(string(tab)); !ok {
		return s, []Effect{Notify{Err: fmt.Errorf("%q: %w", tab, ErrUnknownTab)}}
	}
	next := s.clone()
	next.ActiveTab = tab

	city := next.Directory.SelectedName()
	if tab != TabForecast || city == "" {
		return next, nil
	}
	next.Forecast = ForecastPanel{
		City:    city,
		Status:  ForecastLoading,
		Message: presenter.ForecastLoading,
	}
	return next, []Effect{FetchForecast{City: city}}
}

// forecastAwaited reports whether a forecast result for city still belongs on screen.
func forecastAwaited(s State, city string) bool {
	return s.Directory.IsSelected(city) && s.Forecast.City == city
}

func nowHeader(at time.Time, data models.CurrentConditions) *presenter.NowHeaderView {
	h := presenter.NowHeader(at, data)
	return &h
}
