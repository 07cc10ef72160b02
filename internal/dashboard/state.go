// Package dashboard owns the application state: an explicit State, the events that change it,
// a pure Reduce and a Dispatcher that carries out the resulting effects.
package dashboard

import (
	"maps"
	"slices"

	"github.com/Nazarious-ucu/weather-dashboard/internal/directory"
	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
	"github.com/Nazarious-ucu/weather-dashboard/internal/presenter"
)

type Tab string

const (
	TabCurrent  Tab = "current"
	TabForecast Tab = "forecast"
	TabDetails  Tab = "details"
)

// ParseTab validates a tab name.
func ParseTab(name string) (Tab, bool) {
	switch t := Tab(name); t {
	case TabCurrent, TabForecast, TabDetails:
		return t, true
	}
	return "", false
}

type ForecastStatus string

const (
	ForecastIdle        ForecastStatus = ""
	ForecastLoading     ForecastStatus = "loading"
	ForecastReady       ForecastStatus = "ready"
	ForecastUnavailable ForecastStatus = "unavailable"
)

type ForecastPanel struct {
	City    string                      `json:"city,omitempty"`
	Status  ForecastStatus              `json:"status"`
	Rows    []presenter.ForecastRowView `json:"rows,omitempty"`
	Message string                      `json:"message,omitempty"`
}

type State struct {
	Directory  directory.State
	Cards      map[string]presenter.CardView
	Current    map[string]models.CurrentConditions
	Pending    map[string]bool
	Header     *presenter.NowHeaderView
	Detail     presenter.DetailView
	AirQuality int
	ActiveTab  Tab
	Forecast   ForecastPanel
}

// NewState returns the initial state for a freshly loaded directory.
func NewState(dir directory.State) State {
	return State{
		Directory: dir,
		Cards:     map[string]presenter.CardView{},
		Current:   map[string]models.CurrentConditions{},
		Pending:   map[string]bool{},
		Detail:    presenter.EmptyDetail(),
		ActiveTab: TabCurrent,
	}
}

// OrderedCards returns the loaded cards newest first. The directory itself
// keeps insertion order.
func (s State) OrderedCards() []presenter.CardView {
	names := s.Directory.Names()
	cards := make([]presenter.CardView, 0, len(s.Cards))
	for i := len(names) - 1; i >= 0; i-- {
		if c, ok := s.Cards[names[i]]; ok {
			cards = append(cards, c)
		}
	}
	return cards
}

// clone copies the mutable parts of s. directory.State is immutable and is shared.
func (s State) clone() State {
	next := s
	next.Cards = maps.Clone(s.Cards)
	next.Current = maps.Clone(s.Current)
	next.Pending = maps.Clone(s.Pending)
	if s.Header != nil {
		h := *s.Header
		next.Header = &h
	}
	next.Forecast.Rows = slices.Clone(s.Forecast.Rows)
	if next.Cards == nil {
		next.Cards = map[string]presenter.CardView{}
	}
	if next.Current == nil {
		next.Current = map[string]models.CurrentConditions{}
	}
	if next.Pending == nil {
		next.Pending = map[string]bool{}
	}
	return next
}
