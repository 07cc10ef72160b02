package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nazarious-ucu/weather-dashboard/internal/dashboard"
	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
	"github.com/Nazarious-ucu/weather-dashboard/internal/presenter"
)

const timeoutDuration = 15 * time.Second

type dashboardService interface {
	State() dashboard.State
	Dispatch(ctx context.Context, ev dashboard.Event) error
	ForecastRows(ctx context.Context, city string) ([]presenter.ForecastRowView, error)
}

type Handler struct {
	service dashboardService
	now     func() time.Time
}

// NewHandler builds the dashboard handler. now supplies the viewer's clock.
func NewHandler(svc dashboardService, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{service: svc, now: now}
}

// Register mounts the dashboard routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/dashboard", h.GetDashboard)
	r.GET("/cities", h.ListCities)
	r.POST("/cities", h.AddCity)
	r.DELETE("/cities/:name", h.RemoveCity)
	r.POST("/cities/:name/select", h.SelectCity)
	r.GET("/cities/:name/forecast", h.GetForecast)
	r.POST("/tabs/:tab", h.ActivateTab)
	r.POST("/location", h.ReportLocation)
}

// GetDashboard
// @Summary Get the dashboard
// @Description Returns the rendered header, city cards, detail panel and forecast panel
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, newDashboardResponse(h.service.State()))
}

// ListCities
// @Summary List tracked cities
// @Tags cities
// @Produce json
// @Success 200 {object} CitiesResponse
// @Router /cities [get]
func (h *Handler) ListCities(c *gin.Context) {
	c.JSON(http.StatusOK, newCitiesResponse(h.service.State()))
}

// AddCity
// @Summary Track a city
// @Description Fetches current conditions and adds the city once they arrive
// @Tags cities
// @Accept json
// @Produce json
// @Param city body addCityRequest true "City to add"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /cities [post]
func (h *Handler) AddCity(c *gin.Context) {
	var req addCityRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "city name is required"})
		return
	}
	h.dispatch(c, dashboard.CitySubmitted{Name: req.Name})
}

// RemoveCity
// @Summary Stop tracking a city
// @Tags cities
// @Produce json
// @Param name path string true "City name"
// @Success 200 {object} DashboardResponse
// @Failure 404 {object} ErrorResponse
// @Router /cities/{name} [delete]
func (h *Handler) RemoveCity(c *gin.Context) {
	h.dispatch(c, dashboard.CityRemoved{Name: c.Param("name")})
}

// SelectCity
// @Summary Select a tracked city
// @Description Shows the city in the detail panel and switches to the current tab
// @Tags cities
// @Produce json
// @Param name path string true "City name"
// @Success 200 {object} DashboardResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /cities/{name}/select [post]
func (h *Handler) SelectCity(c *gin.Context) {
	h.dispatch(c, dashboard.CitySelected{Name: c.Param("name"), At: h.now()})
}

// GetForecast
// @Summary Get the five day forecast for a city
// @Tags forecast
// @Produce json
// @Param name path string true "City name"
// @Success 200 {object} ForecastResponse
// @Failure 404 {object} MessageResponse
// @Failure 502 {object} MessageResponse
// @Router /cities/{name}/forecast [get]
func (h *Handler) GetForecast(c *gin.Context) {
	city := strings.TrimSpace(c.Param("name"))
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	rows, err := h.service.ForecastRows(ctx, city)
	if err != nil {
		c.JSON(statusFor(err), MessageResponse{Message: presenter.ForecastUnavailable})
		return
	}
	c.JSON(http.StatusOK, ForecastResponse{City: city, Days: rows})
}

// ActivateTab
// @Summary Switch the detail panel tab
// @Description Activating the forecast tab loads the forecast of the selected city
// @Tags dashboard
// @Produce json
// @Param tab path string true "current, forecast or details"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Router /tabs/{tab} [post]
func (h *Handler) ActivateTab(c *gin.Context) {
	tab, ok := dashboard.ParseTab(c.Param("tab"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown tab " + c.Param("tab")})
		return
	}
	h.dispatch(c, dashboard.TabActivated{Tab: tab})
}

// ReportLocation
// @Summary Add the city at a position
// @Description Reverse geocodes the coordinates and tracks the resulting city
// @Tags location
// @Accept json
// @Produce json
// @Param position body locationRequest true "Coordinates"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /location [post]
func (h *Handler) ReportLocation(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "lat and lon are required"})
		return
	}
	h.dispatch(c, dashboard.LocationReported{Coords: models.Coordinates{Lat: *req.Lat, Lon: *req.Lon}})
}

func (h *Handler) dispatch(c *gin.Context, ev dashboard.Event) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	if err := h.service.Dispatch(ctx, ev); err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: models.UserMessage(err)})
		return
	}
	c.JSON(http.StatusOK, newDashboardResponse(h.service.State()))
}

func statusFor(err error) int {
	var te *models.TransportError
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrFetchInFlight):
		return http.StatusConflict
	case errors.Is(err, dashboard.ErrUnknownTab):
		return http.StatusBadRequest
	case errors.As(err, &te):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
