// Package geo provides great-circle distance helpers for proximity checks.
package geo

import (
	"errors"
	"math"
)

// EarthRadius is the mean earth radius in meters.
const EarthRadius = 6371000.0

const (
	// MinCheckinDistance is exclusive: a claim at exactly this distance is too close.
	MinCheckinDistance = 10.0
	// MaxCheckinDistance is inclusive.
	MaxCheckinDistance = 20.0
)

var (
	ErrTooClose = errors.New("too close to the place")
	ErrTooFar   = errors.New("too far from the place")
)

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// FromPair builds a Point from a [longitude, latitude] pair.
func FromPair(pair []float64) (Point, bool) {
	if len(pair) != 2 {
		return Point{}, false
	}
	p := Point{Lng: pair[0], Lat: pair[1]}
	return p, p.Valid()
}

func (p Point) Valid() bool {
	if math.IsNaN(p.Lng) || math.IsNaN(p.Lat) {
		return false
	}
	return p.Lng >= -180 && p.Lng <= 180 && p.Lat >= -90 && p.Lat <= 90
}

// Pair returns the point as [longitude, latitude].
func (p Point) Pair() []float64 {
	return []float64{p.Lng, p.Lat}
}

// Distance returns the haversine distance between a and b in meters.
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadius * c
}

// InBand accepts distances in (MinCheckinDistance, MaxCheckinDistance].
func InBand(d float64) error {
	if d <= MinCheckinDistance {
		return ErrTooClose
	}
	if d > MaxCheckinDistance {
		return ErrTooFar
	}
	return nil
}

// OffsetNorth returns the point d meters due north of p.
func OffsetNorth(p Point, d float64) Point {
	return Point{Lng: p.Lng, Lat: p.Lat + toDegrees(d/EarthRadius)}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
