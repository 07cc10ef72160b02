package dashboard_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-dashboard/internal/dashboard"
	"github.com/Nazarious-ucu/weather-dashboard/internal/directory"
	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
	"github.com/Nazarious-ucu/weather-dashboard/internal/presenter"
)

var at = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func conditions(name string, temp float64) models.CurrentConditions {
	return models.CurrentConditions{
		Name:    name,
		Coord:   models.Coordinates{Lat: 51.5, Lon: -0.12},
		Main:    models.MainReadings{Temp: temp, Humidity: 60},
		Weather: []models.WeatherDescription{{Main: "Clear", Description: "clear sky", Icon: "01d"}},
		Wind:    models.Wind{Speed: 3},
	}
}

// reduceAll folds events over s and returns the final state and every effect emitted.
func reduceAll(s dashboard.State, events ...dashboard.Event) (dashboard.State, []dashboard.Effect) {
	var all []dashboard.Effect
	for _, ev := range events {
		var effects []dashboard.Effect
		s, effects = dashboard.Reduce(s, ev)
		all = append(all, effects...)
	}
	return s, all
}

func loaded(names ...string) dashboard.State {
	return dashboard.NewState(directory.NewState(names))
}

func TestReduce_SubmitBlankDoesNothing(t *testing.T) {
	s := loaded("London")

	next, effects := dashboard.Reduce(s, dashboard.CitySubmitted{Name: "   "})

	assert.Empty(t, effects)
	assert.Empty(t, next.Pending)
}

func TestReduce_SubmitWhilePendingIsRejected(t *testing.T) {
	s, effects := reduceAll(loaded(),
		dashboard.CitySubmitted{Name: "Kyiv"},
		dashboard.CitySubmitted{Name: " Kyiv "},
	)

	require.Len(t, effects, 2)
	assert.Equal(t, dashboard.FetchCurrent{City: "Kyiv"}, effects[0])
	notify, ok := effects[1].(dashboard.Notify)
	require.True(t, ok)
	assert.ErrorIs(t, notify.Err, models.ErrFetchInFlight)
	assert.True(t, s.Pending["Kyiv"])
}

func TestReduce_FirstLoadedCityIsSelected(t *testing.T) {
	s, effects := reduceAll(loaded(),
		dashboard.CitySubmitted{Name: "Kyiv"},
		dashboard.CurrentLoaded{City: "Kyiv", Data: conditions("Kyiv", 21.5), At: at},
	)

	assert.Equal(t, []string{"Kyiv"}, s.Directory.Names())
	assert.Equal(t, "Kyiv", s.Directory.SelectedName())
	assert.Empty(t, s.Pending)
	assert.Equal(t, "22°C", s.Cards["Kyiv"].Temperature)
	require.NotNil(t, s.Header)
	assert.Equal(t, "22°C", s.Header.Temperature)
	assert.Equal(t, "Kyiv", s.Detail.City)
	assert.Equal(t, dashboard.TabCurrent, s.ActiveTab)

	persisted := filter[dashboard.PersistCities](effects)
	require.Len(t, persisted, 1)
	assert.Equal(t, dashboard.ActionAdd, persisted[0].Action)
	assert.Equal(t, []string{"Kyiv"}, persisted[0].Directory.Names())
	assert.Contains(t, effects, dashboard.FetchAirQuality{City: "Kyiv", Coords: models.Coordinates{Lat: 51.5, Lon: -0.12}})
	assert.Contains(t, effects, dashboard.TrackClock{City: "Kyiv"})
}

func TestReduce_AddIsIdempotent(t *testing.T) {
	s, _ := reduceAll(loaded("London"),
		dashboard.CitySubmitted{Name: "London"},
		dashboard.CurrentLoaded{City: "London", Data: conditions("London", 15), At: at},
	)
	s, effects := reduceAll(s,
		dashboard.CitySubmitted{Name: "London"},
		dashboard.CurrentLoaded{City: "London", Data: conditions("London", 16), At: at},
	)

	assert.Equal(t, []string{"London"}, s.Directory.Names())
	for _, eff := range effects {
		_, persisted := eff.(dashboard.PersistCities)
		assert.False(t, persisted, "re-adding a tracked city must not persist")
	}
	assert.Equal(t, "16", s.Detail.Temperature, "selected city detail is refreshed")
}

func TestReduce_SecondCityDoesNotStealSelection(t *testing.T) {
	s, effects := reduceAll(loaded(),
		dashboard.CitySubmitted{Name: "London"},
		dashboard.CurrentLoaded{City: "London", Data: conditions("London", 15), At: at},
		dashboard.CitySubmitted{Name: "Paris"},
		dashboard.CurrentLoaded{City: "Paris", Data: conditions("Paris", 25), At: at},
	)

	assert.Equal(t, []string{"London", "Paris"}, s.Directory.Names())
	assert.Equal(t, "London", s.Directory.SelectedName())
	assert.Equal(t, []string{"Paris", "London"}, cardCities(s))
	assert.Len(t, filter[dashboard.TrackClock](effects), 1)
}

func TestReduce_CardsListNewestFirst(t *testing.T) {
	var events []dashboard.Event
	for _, name := range []string{"London", "Paris", "Kyiv"} {
		events = append(events,
			dashboard.CitySubmitted{Name: name},
			dashboard.CurrentLoaded{City: name, Data: conditions(name, 20), At: at},
		)
	}

	s, _ := reduceAll(loaded(), events...)

	assert.Equal(t, []string{"Kyiv", "Paris", "London"}, cardCities(s))
	assert.Equal(t, []string{"London", "Paris", "Kyiv"}, s.Directory.Names())

	s, _ = dashboard.Reduce(s, dashboard.CityRemoved{Name: "Paris"})
	assert.Equal(t, []string{"Kyiv", "London"}, cardCities(s))
}

func TestReduce_CurrentFailedLeavesDirectoryUntouched(t *testing.T) {
	before, _ := reduceAll(loaded("London"), dashboard.CitySubmitted{Name: "Atlantis"})
	failure := &models.TransportError{StatusCode: 500, Message: "Internal error"}

	s, effects := dashboard.Reduce(before, dashboard.CurrentFailed{City: "Atlantis", Err: failure})

	assert.Equal(t, []string{"London"}, s.Directory.Names())
	assert.Empty(t, s.Pending)
	assert.Equal(t, []dashboard.Effect{dashboard.Notify{Err: failure}}, effects)
}

func TestReduce_RemoveDuringFetchDropsLateResult(t *testing.T) {
	s, effects := reduceAll(loaded(),
		dashboard.CitySubmitted{Name: "Oslo"},
		dashboard.CityRemoved{Name: "Oslo"},
		dashboard.CurrentLoaded{City: "Oslo", Data: conditions("Oslo", 5), At: at},
	)

	assert.Empty(t, s.Directory.Names())
	assert.Empty(t, s.Cards)
	assert.Empty(t, filter[dashboard.PersistCities](effects))
	assert.Len(t, filter[dashboard.LogWarning](effects), 1)
}

func TestReduce_RemoveSelectedResetsDetail(t *testing.T) {
	s, _ := reduceAll(loaded(),
		dashboard.CitySubmitted{Name: "London"},
		dashboard.CurrentLoaded{City: "London", Data: conditions("London", 15), At: at},
		dashboard.CitySubmitted{Name: "Paris"},
		dashboard.CurrentLoaded{City: "Paris", Data: conditions("Paris", 25), At: at},
		dashboard.TabActivated{Tab: dashboard.TabForecast},
	)

	s, effects := dashboard.Reduce(s, dashboard.CityRemoved{Name: "London"})

	assert.Equal(t, []string{"Paris"}, s.Directory.Names())
	assert.Empty(t, s.Directory.SelectedName(), "no fallback selection")
	assert.Equal(t, presenter.EmptyDetail(), s.Detail)
	assert.Nil(t, s.Header)
	assert.Equal(t, dashboard.ForecastPanel{}, s.Forecast)
	assert.Contains(t, effects, dashboard.StopClock{})
	assert.Contains(t, effects, dashboard.PersistCities{Directory: s.Directory, Action: dashboard.ActionRemove, City: "London"})
}

func TestReduce_RemoveUnknownCity(t *testing.T) {
	s := loaded("London")

	next, effects := dashboard.Reduce(s, dashboard.CityRemoved{Name: "Paris"})

	assert.Equal(t, s.Directory, next.Directory)
	require.Len(t, effects, 1)
	assert.ErrorIs(t, effects[0].(dashboard.Notify).Err, models.ErrNotFound)
}

func TestReduce_SelectCity(t *testing.T) {
	s, _ := reduceAll(loaded(),
		dashboard.CitySubmitted{Name: "London"},
		dashboard.CurrentLoaded{City: "London", Data: conditions("London", 15), At: at},
		dashboard.CitySubmitted{Name: "Paris"},
		dashboard.CurrentLoaded{City: "Paris", Data: conditions("Paris", 25), At: at},
		dashboard.TabActivated{Tab: dashboard.TabDetails},
	)

	next, effects := dashboard.Reduce(s, dashboard.CitySelected{Name: "Paris", At: at})
	assert.Equal(t, "Paris", next.Directory.SelectedName())
	assert.Equal(t, "Paris", next.Detail.City)
	assert.Equal(t, dashboard.TabCurrent, next.ActiveTab)
	assert.Contains(t, effects, dashboard.TrackClock{City: "Paris"})

	_, effects = dashboard.Reduce(s, dashboard.CitySelected{Name: "Rome", At: at})
	require.Len(t, effects, 1)
	assert.ErrorIs(t, effects[0].(dashboard.Notify).Err, models.ErrNotFound)
}

func TestReduce_ForecastTab(t *testing.T) {
	base, _ := reduceAll(loaded(),
		dashboard.CitySubmitted{Name: "London"},
		dashboard.CurrentLoaded{City: "London", Data: conditions("London", 15), At: at},
	)

	t.Run("loading then ready", func(t *testing.T) {
		s, effects := dashboard.Reduce(base, dashboard.TabActivated{Tab: dashboard.TabForecast})
		assert.Equal(t, []dashboard.Effect{dashboard.FetchForecast{City: "London"}}, effects)
		assert.Equal(t, dashboard.ForecastLoading, s.Forecast.Status)
		assert.Equal(t, "Loading forecast...", s.Forecast.Message)

		days := []models.DaySummary{{Timestamp: at.Add(24 * time.Hour).Unix(), TempMin: 10, TempMax: 20,
			Condition: models.Condition{Code: "01d", Main: "Clear"}}}
		s, _ = dashboard.Reduce(s, dashboard.ForecastLoaded{City: "London", Days: days, Loc: time.UTC})
		assert.Equal(t, dashboard.ForecastReady, s.Forecast.Status)
		require.Len(t, s.Forecast.Rows, 1)
		assert.Equal(t, "Wed", s.Forecast.Rows[0].Day)
	})

	t.Run("transport error keeps directory", func(t *testing.T) {
		s, _ := dashboard.Reduce(base, dashboard.TabActivated{Tab: dashboard.TabForecast})
		s, effects := dashboard.Reduce(s, dashboard.ForecastFailed{City: "London", Err: &models.TransportError{StatusCode: 502}})

		assert.Equal(t, dashboard.ForecastUnavailable, s.Forecast.Status)
		assert.Equal(t, "Forecast unavailable", s.Forecast.Message)
		assert.Equal(t, base.Directory, s.Directory)
		assert.Empty(t, filter[dashboard.Notify](effects))
	})

	t.Run("no selection", func(t *testing.T) {
		s, effects := dashboard.Reduce(loaded("London"), dashboard.TabActivated{Tab: dashboard.TabForecast})
		assert.Empty(t, effects)
		assert.Equal(t, dashboard.TabForecast, s.ActiveTab)
		assert.Equal(t, dashboard.ForecastIdle, s.Forecast.Status)
	})

	t.Run("stale result after deselection", func(t *testing.T) {
		s, _ := reduceAll(base,
			dashboard.TabActivated{Tab: dashboard.TabForecast},
			dashboard.CityRemoved{Name: "London"},
		)
		next, effects := dashboard.Reduce(s, dashboard.ForecastFailed{City: "London", Err: errors.New("late")})
		assert.Empty(t, effects)
		assert.Equal(t, s.Forecast, next.Forecast)
	})

	t.Run("unknown tab", func(t *testing.T) {
		_, effects := dashboard.Reduce(base, dashboard.TabActivated{Tab: "radar"})
		require.Len(t, effects, 1)
		assert.ErrorIs(t, effects[0].(dashboard.Notify).Err, dashboard.ErrUnknownTab)
	})
}

func TestReduce_AirQualityAndClockOnlyForSelected(t *testing.T) {
	s, _ := reduceAll(loaded(),
		dashboard.CitySubmitted{Name: "London"},
		dashboard.CurrentLoaded{City: "London", Data: conditions("London", 15), At: at},
		dashboard.AirQualityLoaded{City: "London", AQI: 2},
		dashboard.AirQualityLoaded{City: "Paris", AQI: 5},
		dashboard.ClockTicked{City: "London", Label: "13:05"},
		dashboard.ClockTicked{City: "Paris", Label: "14:05"},
	)

	assert.Equal(t, "2", s.Detail.AirQuality)
	assert.Equal(t, "13:05", s.Detail.LocalTime)

	s, _ = dashboard.Reduce(s, dashboard.AirQualityFailed{City: "London", Err: errors.New("down")})
	assert.Equal(t, "--", s.Detail.AirQuality)
}

func TestReduce_Location(t *testing.T) {
	coords := models.Coordinates{Lat: 49.84, Lon: 24.03}

	_, effects := dashboard.Reduce(loaded(), dashboard.LocationReported{Coords: coords})
	assert.Equal(t, []dashboard.Effect{dashboard.ReverseGeocode{Coords: coords}}, effects)

	s, effects := dashboard.Reduce(loaded(), dashboard.LocationResolved{Place: models.Place{Name: "Lviv"}})
	assert.Equal(t, []dashboard.Effect{dashboard.FetchCurrent{City: "Lviv"}}, effects)
	assert.True(t, s.Pending["Lviv"])

	_, effects = dashboard.Reduce(loaded(), dashboard.LocationUnavailable{Err: models.ErrCapabilityUnavailable})
	assert.Empty(t, filter[dashboard.Notify](effects))
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	s, _ := reduceAll(loaded(),
		dashboard.CitySubmitted{Name: "London"},
		dashboard.CurrentLoaded{City: "London", Data: conditions("London", 15), At: at},
	)
	snapshot := len(s.Cards)

	_, _ = reduceAll(s,
		dashboard.CitySubmitted{Name: "Paris"},
		dashboard.CurrentLoaded{City: "Paris", Data: conditions("Paris", 25), At: at},
		dashboard.CityRemoved{Name: "London"},
	)

	assert.Len(t, s.Cards, snapshot)
	assert.Empty(t, s.Pending)
	assert.Equal(t, "London", s.Directory.SelectedName())
}

func cardCities(s dashboard.State) []string {
	var names []string
	for _, c := range s.OrderedCards() {
		names = append(names, c.City)
	}
	return names
}

func filter[T dashboard.Effect](effects []dashboard.Effect) []T {
	var out []T
	for _, eff := range effects {
		if e, ok := eff.(T); ok {
			out = append(out, e)
		}
	}
	return out
}
