// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

/*
Package models defines the catalogue entities and the request and response
bodies exchanged over HTTP.

Entity Models:

  - User: an account that can sign in and edit the catalogue
  - Attraction: a geolocated public artwork with its associations
  - Author, Style, Technique, Material, Category: catalogue lookups
  - MacAddress: a beacon device identifier attached to an attraction

Request Models:

Request bodies carry go-playground/validator tags and are checked with
validation.ValidateStruct before reaching a repository. Update requests use
pointer fields so that omitted fields leave stored values untouched.

Response Models:

Write endpoints answer with MessageResponse or CreatedResponse. Failures use
MessageResponse for client errors and ErrorResponse for server errors.
*/
package models
