// Package domain models city lookups and daily forecasts served by Open-Meteo.
//
// # Data Source
//
// Both upstreams are Open-Meteo public endpoints and need no API key:
//
//	geocoding: https://geocoding-api.open-meteo.com/v1/search
//	forecast:  https://api.open-meteo.com/v1/forecast
//
// # Open-Meteo Conventions
//
// Geocoding results:
//
//	The first entry of "results" is taken as the match. "admin1" is the
//	first-level administrative region (state, district) and may be missing.
//	A missing or empty "results" array means the name did not resolve.
//
// Daily forecast (column-oriented):
//
//	"daily" holds one array per requested variable, aligned by index with
//	"daily.time" (ISO dates, ascending). Values may be JSON null, and an
//	array may be shorter than "time"; both become absent (nil) values.
//	With timezone=auto the dates are local to the forecast location and the
//	resolved IANA zone name is returned in the top-level "timezone" field.
//
// Weather codes:
//
//	WMO 4677 interpretation codes, sparse in 0-99. See [LookupWeatherCode].
//
// Errors:
//
//	Non-2xx responses carry {"error": true, "reason": "..."}; the reason is
//	kept on [UpstreamError] for operator logs and never rendered to users.
package domain
