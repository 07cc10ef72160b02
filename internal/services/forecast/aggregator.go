// Package forecast collapses the 3-hour forecast feed into one summary per day.
package forecast

import (
	"time"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

// MaxDays is the number of day summaries the dashboard shows.
const MaxDays = 5

type dateKey struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) dateKey {
	y, m, d := t.Date()
	return dateKey{year: y, month: m, day: d}
}

// Aggregate groups samples by calendar date in today's location, skips today and
// returns at most MaxDays summaries in the order the dates first appear in samples.
//
// Per day: lowest TempMin, highest TempMax, the sample at index len/2 as the
// representative timestamp, and the most frequent condition. On a tie the condition
// that reached the leading count first is kept.
func Aggregate(samples []models.WeatherSample, today time.Time) []models.DaySummary {
	loc := today.Location()
	todayKey := dateOf(today)

	var order []dateKey
	groups := make(map[dateKey][]models.WeatherSample)

	for _, s := range samples {
		key := dateOf(time.Unix(s.Timestamp, 0).In(loc))
		if key == todayKey {
			continue
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], s)
	}

	summaries := make([]models.DaySummary, 0, MaxDays)
	for _, key := range order {
		summaries = append(summaries, summarize(groups[key]))
		if len(summaries) == MaxDays {
			break
		}
	}
	return summaries
}

func summarize(day []models.WeatherSample) models.DaySummary {
	minTemp, maxTemp := day[0].TempMin, day[0].TempMax
	counts := make(map[models.Condition]int)
	chosen := day[0].Condition

	for _, s := range day {
		if s.TempMin < minTemp {
			minTemp = s.TempMin
		}
		if s.TempMax > maxTemp {
			maxTemp = s.TempMax
		}
		counts[s.Condition]++
		if counts[s.Condition] > counts[chosen] {
			chosen = s.Condition
		}
	}

	return models.DaySummary{
		Timestamp: day[len(day)/2].Timestamp,
		TempMin:   minTemp,
		TempMax:   maxTemp,
		Condition: chosen,
	}
}

// Samples converts the raw forecast feed into aggregator input.
func Samples(feed models.ForecastFeed) []models.WeatherSample {
	out := make([]models.WeatherSample, 0, len(feed.List))
	for _, item := range feed.List {
		var cond models.Condition
		if len(item.Weather) > 0 {
			cond = models.Condition{Code: item.Weather[0].Icon, Main: item.Weather[0].Main}
		}
		out = append(out, models.WeatherSample{
			Timestamp: item.Dt,
			TempMin:   item.Main.TempMin,
			TempMax:   item.Main.TempMax,
			Condition: cond,
		})
	}
	return out
}
