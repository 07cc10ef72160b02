package presenter

import (
	"time"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

const (
	NoSelection         = "Select a City"
	ForecastLoading     = "Loading forecast..."
	ForecastUnavailable = "Forecast unavailable"
)

type NowHeaderView struct {
	Date        string `json:"date"`
	Temperature string `json:"temperature"`
}

type CardView struct {
	City        string `json:"city"`
	Temperature string `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    string `json:"humidity"`
	Wind        string `json:"wind"`
	IconURL     string `json:"icon_url"`
	Glyph       string `json:"glyph"`
}

// DetailView is the selected-city panel. Every field is already formatted for display.
type DetailView struct {
	City          string `json:"city"`
	Temperature   string `json:"temperature"`
	Description   string `json:"description"`
	FeelsLike     string `json:"feels_like"`
	MinMax        string `json:"min_max"`
	Humidity      string `json:"humidity"`
	Wind          string `json:"wind"`
	Visibility    string `json:"visibility"`
	Pressure      string `json:"pressure"`
	Sunrise       string `json:"sunrise"`
	Sunset        string `json:"sunset"`
	LocalTime     string `json:"local_time"`
	WindDirection string `json:"wind_direction"`
	WindGust      string `json:"wind_gust"`
	CloudCover    string `json:"cloud_cover"`
	Rain1h        string `json:"rain_1h"`
	Snow1h        string `json:"snow_1h"`
	DewPoint      string `json:"dew_point"`
	AirQuality    string `json:"air_quality"`
	Glyph         string `json:"glyph"`
}

type ForecastRowView struct {
	Day          string `json:"day"`
	Condition    string `json:"condition"`
	IconURL      string `json:"icon_url"`
	Glyph        string `json:"glyph"`
	Temperatures string `json:"temperatures"`
}

// NowHeader renders the date line and temperature shown above the city list.
func NowHeader(now time.Time, c models.CurrentConditions) NowHeaderView {
	return NowHeaderView{
		Date:        LongDate(now),
		Temperature: RoundedTemp(c.Main.Temp),
	}
}

func Card(city string, c models.CurrentConditions) CardView {
	w := c.Primary()
	return CardView{
		City:        city,
		Temperature: RoundedTemp(c.Main.Temp),
		Condition:   w.Main,
		Humidity:    Percent(c.Main.Humidity),
		Wind:        Round(c.Wind.Speed) + " m/s",
		IconURL:     IconURL(w.Icon, true),
		Glyph:       WeatherIcon(w.Icon, w.Description),
	}
}

// Detail fills the selected-city panel. Sunrise and sunset are shown on the viewer's clock
// (now.Location()); the local time label uses the city's own UTC offset.
func Detail(city string, c models.CurrentConditions, aqi int, now time.Time) DetailView {
	w := c.Primary()
	loc := now.Location()

	var rain, snow *float64
	if c.Rain != nil {
		rain = c.Rain.OneHour
	}
	if c.Snow != nil {
		snow = c.Snow.OneHour
	}

	return DetailView{
		City:          city,
		Temperature:   Round(c.Main.Temp),
		Description:   w.Description,
		FeelsLike:     Round(c.Main.FeelsLike),
		MinMax:        Round(c.Main.TempMin) + "/" + Round(c.Main.TempMax),
		Humidity:      Percent(c.Main.Humidity),
		Wind:          Round(c.Wind.Speed) + " m/s",
		Visibility:    Visibility(c.Visibility),
		Pressure:      Round(float64(c.Main.Pressure)),
		Sunrise:       ClockTime(c.Sys.Sunrise, loc),
		Sunset:        ClockTime(c.Sys.Sunset, loc),
		LocalTime:     LocalTimeLabel(now, c.Timezone),
		WindDirection: OptionalWindDirection(c.Wind.Deg),
		WindGust:      Speed(c.Wind.Gust),
		CloudCover:    Percent(c.Clouds.All),
		Rain1h:        Millimetres(rain),
		Snow1h:        Millimetres(snow),
		DewPoint:      OptionalTemp(c.Main.DewPoint),
		AirQuality:    AirQualityIndex(aqi),
		Glyph:         WeatherIcon(w.Icon, w.Description),
	}
}

// EmptyDetail is the panel shown when no city is selected.
func EmptyDetail() DetailView {
	return DetailView{
		City:          NoSelection,
		Temperature:   Placeholder,
		Description:   Placeholder,
		FeelsLike:     Placeholder,
		MinMax:        Placeholder + "/" + Placeholder,
		Humidity:      Placeholder + "%",
		Wind:          Placeholder + " m/s",
		Visibility:    Placeholder,
		Pressure:      Placeholder,
		Sunrise:       TimePlaceholder,
		Sunset:        TimePlaceholder,
		LocalTime:     TimePlaceholder,
		WindDirection: Placeholder,
		WindGust:      Placeholder + " m/s",
		CloudCover:    Placeholder + "%",
		Rain1h:        Placeholder + " mm",
		Snow1h:        Placeholder + " mm",
		DewPoint:      TempPlaceholder,
		AirQuality:    Placeholder,
	}
}

func ForecastRow(day models.DaySummary, loc *time.Location) ForecastRowView {
	return ForecastRowView{
		Day:          ShortDay(day.Timestamp, loc),
		Condition:    day.Condition.Main,
		IconURL:      IconURL(day.Condition.Code, false),
		Glyph:        WeatherIcon(day.Condition.Code, day.Condition.Main),
		Temperatures: Round(day.TempMin) + "° / " + Round(day.TempMax) + "°",
	}
}

// ForecastRows maps every summary with ForecastRow.
func ForecastRows(days []models.DaySummary, loc *time.Location) []ForecastRowView {
	rows := make([]ForecastRowView, 0, len(days))
	for _, d := range days {
		rows = append(rows, ForecastRow(d, loc))
	}
	return rows
}
