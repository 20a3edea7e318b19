package domain

import "fmt"

// WeatherCodeEntry is the display text for a WMO weather code.
type WeatherCodeEntry struct {
	Description string
	Symbol      string
}

const fallbackSymbol = "🌡️"

// weatherCodes maps WMO weather interpretation codes to display entries.
// Read-only after init.
var weatherCodes = map[int]WeatherCodeEntry{
	0:  {"Clear sky", "☀️"},
	1:  {"Mainly clear", "🌤️"},
	2:  {"Partly cloudy", "⛅"},
	3:  {"Overcast", "☁️"},
	45: {"Fog", "🌫️"},
	48: {"Depositing rime fog", "🌫️"},
	51: {"Light drizzle", "🌦️"},
	53: {"Moderate drizzle", "🌦️"},
	55: {"Dense drizzle", "🌧️"},
	56: {"Light freezing drizzle", "🌧️"},
	57: {"Dense freezing drizzle", "🌧️"},
	61: {"Slight rain", "🌧️"},
	63: {"Moderate rain", "🌧️"},
	65: {"Heavy rain", "🌧️"},
	66: {"Light freezing rain", "🌧️"},
	67: {"Heavy freezing rain", "🌧️"},
	71: {"Slight snow fall", "🌨️"},
	73: {"Moderate snow fall", "🌨️"},
	75: {"Heavy snow fall", "❄️"},
	77: {"Snow grains", "🌨️"},
	80: {"Slight rain showers", "🌦️"},
	81: {"Moderate rain showers", "🌦️"},
	82: {"Violent rain showers", "⛈️"},
	85: {"Slight snow showers", "🌨️"},
	86: {"Heavy snow showers", "❄️"},
	95: {"Thunderstorm", "⛈️"},
	96: {"Thunderstorm with slight hail", "⛈️"},
	99: {"Thunderstorm with heavy hail", "⛈️"},
}

// LookupWeatherCode returns the entry for code. Codes outside the table get a
// generated "Weather code N" entry, so the result is never empty.
func LookupWeatherCode(code int) WeatherCodeEntry {
	if e, ok := weatherCodes[code]; ok {
		return e
	}
	return WeatherCodeEntry{
		Description: fmt.Sprintf("Weather code %d", code),
		Symbol:      fallbackSymbol,
	}
}

// LookupOptionalWeatherCode is LookupWeatherCode for values that may be
// missing from the provider response.
func LookupOptionalWeatherCode(code *int) WeatherCodeEntry {
	if code == nil {
		return WeatherCodeEntry{Description: "Weather code unavailable", Symbol: fallbackSymbol}
	}
	return LookupWeatherCode(*code)
}
