// Package geo provides the address record and validated geographic
// coordinate used alongside the measurement types.
package geo

import (
	"fmt"
	"math"

	"github.com/logistics-platform/libs/go/measures/measure"
)

// earthRadiusMeters is the radius used by the haversine distance.
const earthRadiusMeters = 6376500

// Address is a flat postal address record.
type Address struct {
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
}

// Coordinate is a validated latitude/longitude pair in degrees.
type Coordinate struct {
	latitude  float64
	longitude float64
}

// NewCoordinate creates a Coordinate, validating the degree ranges.
func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	if latitude < -90 || latitude > 90 {
		return Coordinate{}, fmt.Errorf("latitude out of range [-90, 90]: %v", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return Coordinate{}, fmt.Errorf("longitude out of range [-180, 180]: %v", longitude)
	}
	return Coordinate{latitude: latitude, longitude: longitude}, nil
}

// MustNewCoordinate creates a Coordinate, panicking on invalid input.
func MustNewCoordinate(latitude, longitude float64) Coordinate {
	c, err := NewCoordinate(latitude, longitude)
	if err != nil {
		panic(err)
	}
	return c
}

// Latitude returns the latitude in degrees.
func (c Coordinate) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in degrees.
func (c Coordinate) Longitude() float64 {
	return c.longitude
}

// Equals checks exact equality of both components.
func (c Coordinate) Equals(other Coordinate) bool {
	return c.latitude == other.latitude && c.longitude == other.longitude
}

// String renders the pair as "lat,lon".
func (c Coordinate) String() string {
	return fmt.Sprintf("%v,%v", c.latitude, c.longitude)
}

// DistanceTo computes the great-circle distance to other using the
// haversine formula.
func (c Coordinate) DistanceTo(other Coordinate) measure.Distance {
	lat1 := radians(c.latitude)
	lat2 := radians(other.latitude)
	dLat := radians(other.latitude - c.latitude)
	dLon := radians(other.longitude - c.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	d := 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
	return measure.Meters(d)
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
