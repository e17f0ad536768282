package types

// SRIDWGS84 is the spatial reference identifier for geographic
// longitude/latitude coordinates in degrees.
const SRIDWGS84 = 4326

// Point is a PostGIS point in x/y order: X is longitude, Y is latitude.
type Point struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	SRID int     `json:"srid"`
}

// NewWGS84Point builds a geographic point tagged with SRID 4326.
func NewWGS84Point(lon, lat float64) Point {
	return Point{X: lon, Y: lat, SRID: SRIDWGS84}
}
