package types

// CityRecord matches one row of the cities CSV export. It only lives for
// the duration of the parse; the loader maps it to a NewCity immediately.
type CityRecord struct {
	Country    string
	City       string
	AccentCity string
	Region     string
	Latitude   float64
	Longitude  float64
}

// NewCity is the insertable shape for the cities table.
type NewCity struct {
	Country    string
	City       string
	AccentCity string
	Region     string
	Location   Point
}

// ToNewCity maps a parsed record into an insertable row. The
// latitude/longitude pair is swapped into x=longitude, y=latitude order,
// which is the order PostGIS expects for geographic points.
func (r CityRecord) ToNewCity() NewCity {
	return NewCity{
		Country:    r.Country,
		City:       r.City,
		AccentCity: r.AccentCity,
		Region:     r.Region,
		Location:   NewWGS84Point(r.Longitude, r.Latitude),
	}
}

// City matches the cities table structure.
type City struct {
	ID         int64  `json:"id"`
	Country    string `json:"country"`
	City       string `json:"city"`
	AccentCity string `json:"accent_city"`
	Region     string `json:"region"`
	Location   Point  `json:"location"`
}
