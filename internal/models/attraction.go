// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package models

import (
	"github.com/goccy/go-json"
)

// Attraction is a geolocated public artwork.
// Lat and Lng are nil when the row has no position yet.
type Attraction struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Lat          *float64        `json:"lat"`
	Lng          *float64        `json:"lng"`
	Description  string          `json:"description"`
	Img          json.RawMessage `json:"img" swaggertype:"object"`
	Size         *int            `json:"size"`
	AuthorID     *int64          `json:"id_author"`
	StyleID      *int64          `json:"id_style"`
	UserID       *int64          `json:"id_user"`
	MacAddressID *int64          `json:"id_mac_address"`
	CategoryID   *int64          `json:"id_category"`
	MaterialIDs  []int64         `json:"materials"`
	TechniqueIDs []int64         `json:"techniques"`
}

// CandidateID returns the attraction id for proximity ranking.
func (a Attraction) CandidateID() int64 {
	return a.ID
}

// Coordinates returns the stored position; ok is false if either axis is missing.
func (a Attraction) Coordinates() (lat, lng float64, ok bool) {
	if a.Lat == nil || a.Lng == nil {
		return 0, 0, false
	}
	return *a.Lat, *a.Lng, true
}

// AttractionRequest creates an attraction or updates the fields it carries.
// MaterialIDs and TechniqueIDs, when present, replace the existing sets.
type AttractionRequest struct {
	Name         *string         `json:"name" validate:"omitempty,min=1,max=255"`
	Lat          *float64        `json:"lat" validate:"omitempty,latitude"`
	Lng          *float64        `json:"lng" validate:"omitempty,longitude"`
	Description  *string         `json:"description" validate:"omitempty,max=10000"`
	Img          json.RawMessage `json:"img,omitempty" swaggertype:"object"`
	Size         *int            `json:"size" validate:"omitempty,min=0"`
	AuthorID     *int64          `json:"id_author" validate:"omitempty,min=1"`
	StyleID      *int64          `json:"id_style" validate:"omitempty,min=1"`
	MacAddressID *int64          `json:"id_mac_address" validate:"omitempty,min=1"`
	CategoryID   *int64          `json:"id_category" validate:"omitempty,min=1"`
	MaterialIDs  *[]int64        `json:"materials" validate:"omitempty,dive,min=1"`
	TechniqueIDs *[]int64        `json:"techniques" validate:"omitempty,dive,min=1"`
}

// NearbyAttraction is one entry of a proximity query result.
// Distance is in kilometers.
type NearbyAttraction struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Lat         float64         `json:"lat"`
	Lng         float64         `json:"lng"`
	Description string          `json:"description"`
	Img         json.RawMessage `json:"img" swaggertype:"object"`
	Size        *int            `json:"size"`
	Distance    float64         `json:"distance"`
}
