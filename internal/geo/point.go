// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

// Package geo ranks attractions by great-circle distance from a query point.
package geo

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// ErrBadCoordinate is returned when a latitude or longitude is not a finite
// number inside its WGS84 range.
var ErrBadCoordinate = errors.New("invalid coordinate")

// Point is a WGS84 position in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether p is finite and within [-90,90] x [-180,180].
func (p Point) Valid() bool {
	return validLat(p.Lat) && validLng(p.Lng)
}

// ParseCoordinate parses raw latitude and longitude strings into a Point.
func ParseCoordinate(latRaw, lngRaw string) (Point, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil || !validLat(lat) {
		return Point{}, ErrBadCoordinate
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
	if err != nil || !validLng(lng) {
		return Point{}, ErrBadCoordinate
	}
	return Point{Lat: lat, Lng: lng}, nil
}

// Haversine returns the great-circle distance between a and b in kilometers.
func Haversine(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180.0
	lat2 := b.Lat * math.Pi / 180.0
	dLat := lat2 - lat1
	dLng := (b.Lng - a.Lng) * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

func validLat(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= -90 && v <= 90
}

func validLng(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= -180 && v <= 180
}
