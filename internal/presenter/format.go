// Package presenter maps weather API records to display-ready strings.
package presenter

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	Placeholder     = "--"
	TempPlaceholder = "--°C"
	TimePlaceholder = "--:--"
)

var compass = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// round rounds half-way values toward positive infinity.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Round renders v as a bare integer.
func Round(v float64) string {
	return strconv.Itoa(round(v))
}

// RoundedTemp renders a Celsius temperature, e.g. "13°C".
func RoundedTemp(v float64) string {
	return Round(v) + "°C"
}

// OptionalTemp is RoundedTemp for fields the API may omit.
func OptionalTemp(v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return TempPlaceholder
	}
	return RoundedTemp(*v)
}

// WindDirection maps degrees onto the 16-point compass rose starting at N.
func WindDirection(degrees float64) string {
	i := round(degrees/22.5) % len(compass)
	if i < 0 {
		i += len(compass)
	}
	return compass[i]
}

// OptionalWindDirection is WindDirection for a missing bearing.
func OptionalWindDirection(degrees *float64) string {
	if degrees == nil {
		return Placeholder
	}
	return WindDirection(*degrees)
}

// Speed renders a wind speed in m/s; nil yields "-- m/s".
func Speed(v *float64) string {
	if v == nil {
		return Placeholder + " m/s"
	}
	return Round(*v) + " m/s"
}

// Millimetres renders a precipitation volume; nil yields "0 mm".
func Millimetres(v *float64) string {
	if v == nil {
		return "0 mm"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + " mm"
}

// Visibility converts metres to kilometres with one decimal.
func Visibility(metres *int) string {
	if metres == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.1f", float64(*metres)/1000)
}

func Percent(v int) string {
	return strconv.Itoa(v) + "%"
}

// AirQualityIndex renders the AQI or a placeholder when it was not available.
func AirQualityIndex(aqi int) string {
	if aqi <= 0 {
		return Placeholder
	}
	return strconv.Itoa(aqi)
}

// LocalTimeLabel shifts now to UTC+offsetSeconds and renders it as 24-hour "HH:MM".
func LocalTimeLabel(now time.Time, offsetSeconds int) string {
	return now.UTC().Add(time.Duration(offsetSeconds) * time.Second).Format("15:04")
}

// DeviceTimeLabel renders now in the viewer's own zone. Used when a city's offset is unknown.
func DeviceTimeLabel(now time.Time) string {
	return now.Format("15:04")
}

// ClockTime renders a unix timestamp as "HH:MM" in loc.
func ClockTime(ts int64, loc *time.Location) string {
	if ts == 0 {
		return TimePlaceholder
	}
	return time.Unix(ts, 0).In(loc).Format("15:04")
}

// ShortDay renders a unix timestamp as an abbreviated weekday, e.g. "Mon".
func ShortDay(ts int64, loc *time.Location) string {
	return time.Unix(ts, 0).In(loc).Format("Mon")
}

// LongDate renders the header date, e.g. "Tuesday, Jun 10".
func LongDate(t time.Time) string {
	return t.Format("Monday, Jan 2")
}
