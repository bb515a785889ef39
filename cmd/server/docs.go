// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

// Package main provides the Artwalk HTTP server
//
// @title Artwalk API
// @version 1.0
// @description Public art catalogue with nearest-attraction search.
// @description
// @description ## Authentication
// @description
// @description Write operations and the user, author, style, technique, material and
// @description MAC address resources require a bearer token. Obtain one from
// @description `POST /user/login` and send it as `Authorization: Bearer <token>`.
// @description `POST /user/logout` revokes the token before it expires.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Login is limited per IP and per email address.
// @description
// @description ## Nearest Attractions
// @description
// @description `GET /attraction/GetTopAttracions/{lat}/{lng}` returns up to 3 attractions
// @description within 6 km of the given point, nearest first, with the distance in km.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/artwalk/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:5000
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token from POST /user/login, sent as "Authorization: Bearer <token>".
//
// @tag.name Health
// @tag.description Liveness and readiness probes
//
// @tag.name User
// @tag.description Login, logout, registration and user management
//
// @tag.name Attraction
// @tag.description Public art attractions and the nearest-attractions query
//
// @tag.name Author
// @tag.description Artists credited on attractions
//
// @tag.name Category
// @tag.description Attraction categories
package main
