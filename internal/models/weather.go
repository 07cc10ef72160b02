package models

// Condition is a sky/precipitation state as reported by OpenWeatherMap, e.g. ("01d", "Clear").
type Condition struct {
	Code string `json:"code"`
	Main string `json:"main"`
}

// WeatherSample is a single 3-hour forecast point.
type WeatherSample struct {
	Timestamp int64     `json:"timestamp"`
	TempMin   float64   `json:"temp_min"`
	TempMax   float64   `json:"temp_max"`
	Condition Condition `json:"condition"`
}

// DaySummary is the representative forecast for one calendar day.
type DaySummary struct {
	Timestamp int64     `json:"timestamp"`
	TempMin   float64   `json:"temp_min"`
	TempMax   float64   `json:"temp_max"`
	Condition Condition `json:"condition"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Place is a geocoding result.
type Place struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func (p Place) Coordinates() Coordinates {
	return Coordinates{Lat: p.Lat, Lon: p.Lon}
}

type WeatherDescription struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type MainReadings struct {
	Temp      float64  `json:"temp"`
	FeelsLike float64  `json:"feels_like"`
	TempMin   float64  `json:"temp_min"`
	TempMax   float64  `json:"temp_max"`
	Pressure  int      `json:"pressure"`
	Humidity  int      `json:"humidity"`
	DewPoint  *float64 `json:"dew_point,omitempty"`
}

type Wind struct {
	Speed float64  `json:"speed"`
	Deg   *float64 `json:"deg,omitempty"`
	Gust  *float64 `json:"gust,omitempty"`
}

type Clouds struct {
	All int `json:"all"`
}

// Precipitation holds the volume for the last hour, in mm.
type Precipitation struct {
	OneHour *float64 `json:"1h,omitempty"`
}

type Sun struct {
	Sunrise int64 `json:"sunrise"`
	Sunset  int64 `json:"sunset"`
}

// CurrentConditions mirrors the OpenWeatherMap /data/2.5/weather payload.
// Fields that the API may omit are pointers.
type CurrentConditions struct {
	Name       string               `json:"name"`
	Coord      Coordinates          `json:"coord"`
	Main       MainReadings         `json:"main"`
	Weather    []WeatherDescription `json:"weather"`
	Wind       Wind                 `json:"wind"`
	Clouds     Clouds               `json:"clouds"`
	Rain       *Precipitation       `json:"rain,omitempty"`
	Snow       *Precipitation       `json:"snow,omitempty"`
	Visibility *int                 `json:"visibility,omitempty"`
	Sys        Sun                  `json:"sys"`
	Timezone   int                  `json:"timezone"`
	Dt         int64                `json:"dt"`
}

// Primary returns the first weather description, or a zero value when the API sent none.
func (c CurrentConditions) Primary() WeatherDescription {
	if len(c.Weather) == 0 {
		return WeatherDescription{}
	}
	return c.Weather[0]
}

// AirQuality is the OpenWeatherMap air quality index, 1 (good) to 5 (very poor).
type AirQuality struct {
	AQI int `json:"aqi"`
}

// ForecastItem is one entry of the /data/2.5/forecast list.
type ForecastItem struct {
	Dt      int64                `json:"dt"`
	Main    ForecastReadings     `json:"main"`
	Weather []WeatherDescription `json:"weather"`
}

type ForecastReadings struct {
	TempMin float64 `json:"temp_min"`
	TempMax float64 `json:"temp_max"`
}

// ForecastFeed mirrors the OpenWeatherMap /data/2.5/forecast payload.
type ForecastFeed struct {
	City ForecastCity   `json:"city"`
	List []ForecastItem `json:"list"`
}

type ForecastCity struct {
	Name     string `json:"name"`
	Timezone int    `json:"timezone"`
}
