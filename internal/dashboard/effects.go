package dashboard

import (
	"github.com/Nazarious-ucu/weather-dashboard/internal/directory"
	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

// Effect is work requested by Reduce. The Dispatcher executes it.
type Effect interface {
	isEffect()
}

type FetchCurrent struct {
	City string
}

type FetchForecast struct {
	City string
}

// FetchAirQuality looks up the AQI at Coords, geocoding City first when Coords is zero.
type FetchAirQuality struct {
	City   string
	Coords models.Coordinates
}

type ReverseGeocode struct {
	Coords models.Coordinates
}

const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// PersistCities rewrites the stored list from Directory.
type PersistCities struct {
	Directory directory.State
	Action    string
	City      string
}

type TrackClock struct {
	City string
}

type StopClock struct{}

// Notify is an error the user has to see. Dispatch returns it.
type Notify struct {
	Err error
}

type LogWarning struct {
	Msg  string
	City string
	Err  error
}

func (FetchCurrent) isEffect()    {}
func (FetchForecast) isEffect()   {}
func (FetchAirQuality) isEffect() {}
func (ReverseGeocode) isEffect()  {}
func (PersistCities) isEffect()   {}
func (TrackClock) isEffect()      {}
func (StopClock) isEffect()       {}
func (Notify) isEffect()          {}
func (LogWarning) isEffect()      {}
