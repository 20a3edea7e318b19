package domain

// Coordinates is a WGS-84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Location is a geocoded place.
type Location struct {
	Name      string
	Region    string // first-level admin area, empty when the provider omits it
	Country   string
	Latitude  float64
	Longitude float64
}

// Coordinates returns the location's position.
func (l Location) Coordinates() Coordinates {
	return Coordinates{Latitude: l.Latitude, Longitude: l.Longitude}
}

// Label formats the location for display: "Name, Region, Country", with the
// region segment dropped when absent.
func (l Location) Label() string {
	label := l.Name
	if l.Region != "" {
		label += ", " + l.Region
	}
	return label + ", " + l.Country
}
