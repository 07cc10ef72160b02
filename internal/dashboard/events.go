package dashboard

import (
	"time"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

// Event is an input to Reduce: a user action or the result of an effect.
type Event interface {
	isEvent()
}

// CitySubmitted asks to add (or refresh) a city by name.
type CitySubmitted struct {
	Name string
}

type CurrentLoaded struct {
	City string
	Data models.CurrentConditions
	At   time.Time
}

type CurrentFailed struct {
	City string
	Err  error
}

type CitySelected struct {
	Name string
	At   time.Time
}

type CityRemoved struct {
	Name string
}

type TabActivated struct {
	Tab Tab
}

type ForecastLoaded struct {
	City string
	Days []models.DaySummary
	Loc  *time.Location
}

type ForecastFailed struct {
	City string
	Err  error
}

type AirQualityLoaded struct {
	City string
	AQI  int
}

type AirQualityFailed struct {
	City string
	Err  error
}

type ClockTicked struct {
	City  string
	Label string
}

// LocationReported carries a device fix or coordinates posted by a client.
type LocationReported struct {
	Coords models.Coordinates
}

type LocationResolved struct {
	Place models.Place
}

type LocationFailed struct {
	Err error
}

// LocationUnavailable means no sensor is present. It is logged and otherwise ignored.
type LocationUnavailable struct {
	Err error
}

func (CitySubmitted) isEvent()       {}
func (CurrentLoaded) isEvent()       {}
func (CurrentFailed) isEvent()       {}
func (CitySelected) isEvent()        {}
func (CityRemoved) isEvent()         {}
func (TabActivated) isEvent()        {}
func (ForecastLoaded) isEvent()      {}
func (ForecastFailed) isEvent()      {}
func (AirQualityLoaded) isEvent()    {}
func (AirQualityFailed) isEvent()    {}
func (ClockTicked) isEvent()         {}
func (LocationReported) isEvent()    {}
func (LocationResolved) isEvent()    {}
func (LocationFailed) isEvent()      {}
func (LocationUnavailable) isEvent() {}
