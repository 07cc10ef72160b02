package presenter

import "strings"

const (
	glyphSun          = "☀️"
	glyphMoon         = "🌙"
	glyphSunCloud     = "⛅"
	glyphCloud        = "☁️"
	glyphSunRain      = "🌦️"
	glyphRain         = "🌧️"
	glyphThunder      = "⛈️"
	glyphSnow         = "🌨️"
	glyphFog          = "🌫️"
	glyphWind         = "💨"
	glyphTornado      = "🌪️"
	glyphVolcano      = "🌋"
	glyphPartlyCloudy = "🌤️"
)

const iconBaseURL = "https://openweathermap.org/img/wn/"

// iconGlyphs maps OpenWeatherMap icon codes to glyphs.
var iconGlyphs = map[string]string{
	"01d": glyphSun, "01n": glyphMoon,
	"02d": glyphSunCloud, "02n": glyphCloud,
	"03d": glyphCloud, "03n": glyphCloud,
	"04d": glyphCloud, "04n": glyphCloud,
	"09d": glyphSunRain, "09n": glyphRain,
	"10d": glyphRain, "10n": glyphRain,
	"11d": glyphThunder, "11n": glyphThunder,
	"13d": glyphSnow, "13n": glyphSnow,
	"50d": glyphFog, "50n": glyphFog,
}

type keywordRule struct {
	keywords []string
	glyph    string
}

// descriptionRules are checked in order; the first rule with a matching keyword wins.
var descriptionRules = []keywordRule{
	{keywords: []string{"rain", "drizzle"}, glyph: glyphRain},
	{keywords: []string{"snow"}, glyph: glyphSnow},
	{keywords: []string{"thunder", "storm"}, glyph: glyphThunder},
	{keywords: []string{"cloud"}, glyph: glyphCloud},
	{keywords: []string{"clear"}, glyph: glyphSun},
	{keywords: []string{"fog", "mist"}, glyph: glyphFog},
	{keywords: []string{"haze"}, glyph: glyphFog},
	{keywords: []string{"smoke"}, glyph: glyphWind},
	{keywords: []string{"dust", "sand"}, glyph: glyphTornado},
	{keywords: []string{"ash"}, glyph: glyphVolcano},
	{keywords: []string{"squall"}, glyph: glyphWind},
	{keywords: []string{"tornado"}, glyph: glyphTornado},
}

// WeatherIcon picks a glyph by icon code, then by keywords in the description,
// and finally falls back to a partly-cloudy glyph.
func WeatherIcon(code, description string) string {
	if glyph, ok := iconGlyphs[code]; ok {
		return glyph
	}

	desc := strings.ToLower(description)
	for _, rule := range descriptionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.glyph
			}
		}
	}
	return glyphPartlyCloudy
}

// IconURL returns the OpenWeatherMap image for code; large selects the @2x variant.
func IconURL(code string, large bool) string {
	if code == "" {
		return ""
	}
	if large {
		return iconBaseURL + code + "@2x.png"
	}
	return iconBaseURL + code + ".png"
}
