package http

import (
	"github.com/Nazarious-ucu/weather-dashboard/internal/dashboard"
	"github.com/Nazarious-ucu/weather-dashboard/internal/presenter"
)

// DashboardResponse is the rendered dashboard: header, summary cards and the tabbed detail panel.
type DashboardResponse struct {
	Header    *presenter.NowHeaderView `json:"header"`
	Cards     []presenter.CardView     `json:"cards"`
	Detail    presenter.DetailView     `json:"detail"`
	ActiveTab dashboard.Tab            `json:"active_tab"`
	Forecast  dashboard.ForecastPanel  `json:"forecast"`
	Loading   []string                 `json:"loading,omitempty"`
}

type CitiesResponse struct {
	Cities   []string `json:"cities"`
	Selected string   `json:"selected,omitempty"`
}

type ForecastResponse struct {
	City string                      `json:"city"`
	Days []presenter.ForecastRowView `json:"days"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type addCityRequest struct {
	Name string `json:"name" binding:"required"`
}

type locationRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lon *float64 `json:"lon" binding:"required"`
}

func newDashboardResponse(s dashboard.State) DashboardResponse {
	var loading []string
	for _, name := range s.Directory.Names() {
		if s.Pending[name] {
			loading = append(loading, name)
		}
	}
	return DashboardResponse{
		Header:    s.Header,
		Cards:     s.OrderedCards(),
		Detail:    s.Detail,
		ActiveTab: s.ActiveTab,
		Forecast:  s.Forecast,
		Loading:   loading,
	}
}

func newCitiesResponse(s dashboard.State) CitiesResponse {
	return CitiesResponse{
		Cities:   s.Directory.Names(),
		Selected: s.Directory.SelectedName(),
	}
}
