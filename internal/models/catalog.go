// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package models

import "time"

// Author is the artist behind one or more attractions.
type Author struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	FatherLastname string     `json:"father_lastname"`
	MotherLastname string     `json:"mother_lastname"`
	Birthday       *time.Time `json:"birthday,omitempty"`
	Death          *time.Time `json:"death,omitempty"`
}

// AuthorRequest creates or updates an author. Dates use YYYY-MM-DD.
type AuthorRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=60"`
	FatherLastname *string `json:"father_lastname" validate:"omitempty,max=60"`
	MotherLastname *string `json:"mother_lastname" validate:"omitempty,max=60"`
	Birthday       *string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Death          *string `json:"death" validate:"omitempty,datetime=2006-01-02"`
}

// Style is an artistic style such as muralism or street art.
type Style struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"create_at"`
	UpdatedAt time.Time `json:"update_at"`
}

// Technique is how a work was made (fresco, stencil, ...).
type Technique struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Material is what a work is made of.
type Material struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Category groups attractions for browsing.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NameRequest creates or updates a lookup entity that only has a name.
type NameRequest struct {
	Name string `json:"name" validate:"required,min=1,max=60"`
}

// CategoryRequest creates or updates a category.
type CategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=60"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// MacAddress identifies a beacon placed next to an attraction.
// Address is stored in upper case colon form, e.g. 00:1A:2B:3C:4D:5E.
type MacAddress struct {
	ID      int64  `json:"id"`
	Address string `json:"mac_address"`
}

// MacAddressRequest creates or updates a device identifier.
type MacAddressRequest struct {
	Address string `json:"mac_address" validate:"required,mac"`
}
