package domain

import (
	"time"
	_ "time/tzdata" // zone names from timezone=auto must resolve in slim images
)

// dateLayout is the ISO date format of Open-Meteo's daily time series.
const dateLayout = "2006-01-02"

// DayForecast is one day of a daily forecast. Pointer fields are nil when
// the provider returned no value for that day.
type DayForecast struct {
	Date                     string
	MaxTemp                  *float64
	MinTemp                  *float64
	PrecipitationProbability *float64
	WeatherCode              *int
	Summary                  string
	Symbol                   string
	Label                    string // "Today", "Tomorrow" or short weekday; empty if Date is malformed
}

// Forecast is a daily forecast in chronological order.
type Forecast struct {
	Timezone string // IANA zone the dates are local to
	Days     []DayForecast
}

// NewDayForecast builds a DayForecast and fills Summary and Symbol from the
// weather code.
func NewDayForecast(date string, maxTemp, minTemp, precipProb *float64, code *int) DayForecast {
	entry := LookupOptionalWeatherCode(code)
	return DayForecast{
		Date:                     date,
		MaxTemp:                  maxTemp,
		MinTemp:                  minTemp,
		PrecipitationProbability: precipProb,
		WeatherCode:              code,
		Summary:                  entry.Description,
		Symbol:                   entry.Symbol,
	}
}

// LabelDays returns a copy of days with Label set relative to the current
// date in timezone. An unknown timezone falls back to UTC.
func LabelDays(days []DayForecast, timezone string) []DayForecast {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	now := clock.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	out := make([]DayForecast, len(days))
	for i, d := range days {
		d.Label = dayLabel(d.Date, today)
		out[i] = d
	}
	return out
}

func dayLabel(date string, today time.Time) string {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	switch {
	case d.Equal(today):
		return "Today"
	case d.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow"
	default:
		return d.Format("Mon")
	}
}
